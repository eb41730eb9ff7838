package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/adilzhm/weather_store_app/internal/adapters/database/pgsql"
	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumnNames() []string {
	return []string{
		"product_id", "name", "price", "description", "category", "icon", "weather",
		"stock", "image_url", "is_active", "average_rating", "total_reviews",
		"created_at", "last_updated_at",
	}
}

func sampleProduct() models.Product {
	now := time.Date(2025, 1, 1, 0, 0, 4, 0, time.UTC)
	return models.Product{
		ProductID:     "fan-1",
		Name:          "Portable Usb Fan",
		Price:         decimal.NewFromInt(29),
		Description:   "Compact rechargeable fan with three speed settings.",
		Category:      models.ProductCategory("accessory"),
		Icon:          "🌀",
		WeatherTag:    models.WeatherHot,
		Stock:         50,
		IsActive:      true,
		AverageRating: decimal.Zero,
		Timestamps:    models.Timestamps{CreatedAt: now, LastUpdatedAt: now},
	}
}

func productRow(p models.Product) *pgxmock.Rows {
	return pgxmock.NewRows(productColumnNames()).AddRow(
		p.ProductID, p.Name, p.Price, p.Description, p.Category, p.Icon, p.WeatherTag,
		p.Stock, p.ImageURL, p.IsActive, p.AverageRating, p.TotalReviews,
		p.CreatedAt, p.LastUpdatedAt,
	)
}

func TestProductRepository_FindProductByID(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := pgsql.NewProductRepository(mockPool)
	want := sampleProduct()

	mockPool.ExpectQuery("SELECT (.+) FROM products WHERE product_id = \\$1").
		WithArgs("fan-1").
		WillReturnRows(productRow(want))

	got, err := repo.FindProductByID(context.Background(), "fan-1")

	require.NoError(t, err)
	assert.Equal(t, want.ProductID, got.ProductID)
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, want.Price.Equal(got.Price))
	assert.Equal(t, models.WeatherHot, got.WeatherTag)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestProductRepository_FindProductByID_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := pgsql.NewProductRepository(mockPool)

	mockPool.ExpectQuery("SELECT (.+) FROM products WHERE product_id = \\$1").
		WithArgs("ghost-1").
		WillReturnRows(pgxmock.NewRows(productColumnNames()))

	got, err := repo.FindProductByID(context.Background(), "ghost-1")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductRepository_SaveProduct(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := pgsql.NewProductRepository(mockPool)
	p := sampleProduct()

	mockPool.ExpectExec("INSERT INTO products").
		WithArgs(
			p.ProductID, p.Name, p.Price, p.Description, p.Category, p.Icon, p.WeatherTag,
			p.Stock, p.ImageURL, p.IsActive, p.AverageRating, p.TotalReviews,
			p.CreatedAt, p.LastUpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.SaveProduct(context.Background(), p))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestProductRepository_ListProducts_WeatherFilterIncludesUniversal(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := pgsql.NewProductRepository(mockPool)
	hot := models.WeatherHot
	active := true

	// The weather filter must also match the universal tier.
	mockPool.ExpectQuery("SELECT (.+) FROM products WHERE \\(weather = \\$1 OR weather = 'all'\\) AND is_active = \\$2 ORDER BY created_at, product_id").
		WithArgs(hot, active).
		WillReturnRows(productRow(sampleProduct()))

	got, err := repo.ListProducts(context.Background(), models.ProductFilter{WeatherTag: &hot, IsActive: &active})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fan-1", got[0].ProductID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestProductRepository_UpdateProduct_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := pgsql.NewProductRepository(mockPool)
	p := sampleProduct()
	p.ProductID = "ghost-1"

	mockPool.ExpectExec("UPDATE products").
		WithArgs(
			p.Name, p.Price, p.Description, p.Category, p.Icon, p.WeatherTag,
			p.Stock, p.ImageURL, p.IsActive, p.LastUpdatedAt, p.ProductID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateProduct(context.Background(), p)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductRepository_DeleteProduct(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := pgsql.NewProductRepository(mockPool)

	mockPool.ExpectExec("DELETE FROM products WHERE product_id = \\$1").
		WithArgs("fan-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.DeleteProduct(context.Background(), "fan-1"))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
