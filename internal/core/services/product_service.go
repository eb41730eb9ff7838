package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService implements catalog CRUD on top of the product repository.
type ProductService struct {
	repo ports.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo ports.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

var _ ports.ProductSvcFacade = (*ProductService)(nil)

// CreateProduct validates and stores a new catalog product. Omitted fields
// take catalog defaults: the package icon, the universal weather tag, zero
// stock and active listing.
func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*models.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	product := models.Product{
		ProductID:     uuid.New().String(),
		Name:          titleCase(req.Name),
		Price:         req.Price,
		Description:   strings.TrimSpace(req.Description),
		Category:      models.ProductCategory(req.Category),
		Icon:          models.DefaultProductIcon,
		WeatherTag:    models.WeatherAll,
		ImageURL:      req.ImageURL,
		IsActive:      true,
		AverageRating: decimal.Zero,
		Timestamps: models.Timestamps{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.Icon != "" {
		product.Icon = req.Icon
	}
	if req.Weather != "" {
		product.WeatherTag = models.WeatherTag(req.Weather)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// GetProductByID fetches a single product.
func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	return s.repo.FindProductByID(ctx, productID)
}

// ListProducts returns the catalog filtered by the request parameters.
func (s *ProductService) ListProducts(ctx context.Context, req dto.ListProductsRequest) ([]models.Product, error) {
	filter, err := buildProductFilter(req)
	if err != nil {
		return nil, err
	}
	return s.repo.ListProducts(ctx, filter)
}

// UpdateProduct applies a partial update and returns the updated product.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = titleCase(*req.Name)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		product.Category = models.ProductCategory(*req.Category)
	}
	if req.Icon != nil {
		product.Icon = *req.Icon
	}
	if req.Weather != nil {
		product.WeatherTag = models.WeatherTag(*req.Weather)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product and returns its last state. Reviews of the
// product are removed with it.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return nil, err
	}
	return product, nil
}

func buildProductFilter(req dto.ListProductsRequest) (models.ProductFilter, error) {
	var filter models.ProductFilter

	if req.Category != "" {
		category := models.ProductCategory(req.Category)
		filter.Category = &category
	}
	if req.Weather != "" {
		weather := models.WeatherTag(req.Weather)
		filter.WeatherTag = &weather
	}
	if req.MinPrice != "" {
		min, err := decimal.NewFromString(req.MinPrice)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid minPrice %q", apperrors.ErrValidation, req.MinPrice)
		}
		filter.MinPrice = &min
	}
	if req.MaxPrice != "" {
		max, err := decimal.NewFromString(req.MaxPrice)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid maxPrice %q", apperrors.ErrValidation, req.MaxPrice)
		}
		filter.MaxPrice = &max
	}
	if req.Active != "" {
		active := req.Active == "true"
		filter.IsActive = &active
	}

	return filter, nil
}

// titleCase normalizes a product name so catalog listings read uniformly.
func titleCase(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
