package ports

import (
	"context"

	"github.com/adilzhm/weather_store_app/internal/models"
)

// ProductRepository defines the persistence operations for catalog products.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product models.Product) error
	FindProductByID(ctx context.Context, productID string) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// ReviewRepository defines the persistence operations for product reviews.
// Save, Update and Delete recompute the parent product's averageRating and
// totalReviews atomically with the review write.
type ReviewRepository interface {
	SaveReview(ctx context.Context, review models.Review) error
	FindReviewByID(ctx context.Context, reviewID string) (*models.Review, error)
	ListReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) error
	DeleteReview(ctx context.Context, reviewID string) error
}
