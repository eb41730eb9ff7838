package dto

import (
	"time"

	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a catalog product.
// Field bounds mirror the catalog store contract (name 3-100, description
// 10-1000, category enum). Price is validated as non-negative in the service
// since validator tags cannot inspect decimal.Decimal.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=3,max=100"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description" binding:"required,min=10,max=1000"`
	Category    string          `json:"category" binding:"required,oneof=laptop phone tablet accessory wearable other"`
	Icon        string          `json:"icon" binding:"omitempty,max=16"`
	Weather     string          `json:"weather" binding:"omitempty,oneof=all hot cold rain"`
	Stock       *int            `json:"stock" binding:"omitempty,min=0"`
	ImageURL    *string         `json:"imageUrl" binding:"omitempty,url"`
}

// UpdateProductRequest carries a partial product update; nil fields are left
// unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=3,max=100"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty"`
	Description *string          `json:"description" binding:"omitempty,min=10,max=1000"`
	Category    *string          `json:"category" binding:"omitempty,oneof=laptop phone tablet accessory wearable other"`
	Icon        *string          `json:"icon" binding:"omitempty,max=16"`
	Weather     *string          `json:"weather" binding:"omitempty,oneof=all hot cold rain"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	ImageURL    *string          `json:"imageUrl" binding:"omitempty,url"`
	IsActive    *bool            `json:"isActive"`
}

// ListProductsRequest captures the catalog listing filters from query params.
type ListProductsRequest struct {
	Category string `form:"category" binding:"omitempty,oneof=laptop phone tablet accessory wearable other"`
	Weather  string `form:"weather" binding:"omitempty,oneof=all hot cold rain"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Active   string `form:"active" binding:"omitempty,oneof=true false"`
}

// ProductResponse defines the data returned for a catalog product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Icon          string          `json:"icon"`
	Weather       string          `json:"weather"`
	Stock         int             `json:"stock"`
	ImageURL      *string         `json:"imageUrl"`
	IsActive      bool            `json:"isActive"`
	AverageRating decimal.Decimal `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// RecommendedProductResponse is a product plus the weather-recommendation flag
// used for display emphasis.
type RecommendedProductResponse struct {
	ProductResponse
	Recommended bool `json:"recommended"`
}

// ToProductResponse converts a models.Product to its response DTO.
func ToProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Price:         p.Price,
		Description:   p.Description,
		Category:      string(p.Category),
		Icon:          p.Icon,
		Weather:       string(p.WeatherTag),
		Stock:         p.Stock,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		AverageRating: p.AverageRating,
		TotalReviews:  p.TotalReviews,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of products to response DTOs.
func ToListProductResponse(products []models.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ToRecommendedProductResponse converts an annotated catalog entry.
func ToRecommendedProductResponse(p models.RecommendedProduct) RecommendedProductResponse {
	return RecommendedProductResponse{
		ProductResponse: ToProductResponse(&p.Product),
		Recommended:     p.Recommended,
	}
}
