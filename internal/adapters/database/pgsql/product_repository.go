package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/jackc/pgx/v5"
)

const productColumns = `product_id, name, price, description, category, icon, weather, stock, image_url, is_active, average_rating, total_reviews, created_at, last_updated_at`

// ProductRepository persists catalog products in PostgreSQL.
type ProductRepository struct {
	db DBPool
}

// NewProductRepository creates a new repository for catalog products.
func NewProductRepository(db DBPool) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) SaveProduct(ctx context.Context, product models.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Price,
		product.Description,
		product.Category,
		product.Icon,
		product.WeatherTag,
		product.Stock,
		product.ImageURL,
		product.IsActive,
		product.AverageRating,
		product.TotalReviews,
		product.CreatedAt,
		product.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

func (r *ProductRepository) FindProductByID(ctx context.Context, productID string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	product, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

func (r *ProductRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	var conds []string
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.WeatherTag != nil {
		args = append(args, *filter.WeatherTag)
		conds = append(conds, fmt.Sprintf("(weather = $%d OR weather = 'all')", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	// Catalog order: oldest entries first, so the seeded universal products
	// lead the recommendation input.
	query += " ORDER BY created_at, product_id;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return products, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product models.Product) error {
	query := `
		UPDATE products
		SET name = $1, price = $2, description = $3, category = $4, icon = $5,
			weather = $6, stock = $7, image_url = $8, is_active = $9, last_updated_at = $10
		WHERE product_id = $11;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		product.Name,
		product.Price,
		product.Description,
		product.Category,
		product.Icon,
		product.WeatherTag,
		product.Stock,
		product.ImageURL,
		product.IsActive,
		product.LastUpdatedAt,
		product.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	// Reviews are removed by the ON DELETE CASCADE on reviews.product_id.
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanProduct reads one product row from either a Row or Rows cursor.
func scanProduct(row pgx.Row) (*models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Category,
		&product.Icon,
		&product.WeatherTag,
		&product.Stock,
		&product.ImageURL,
		&product.IsActive,
		&product.AverageRating,
		&product.TotalReviews,
		&product.CreatedAt,
		&product.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
