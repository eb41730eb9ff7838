package ports

import (
	"context"
	"time"

	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/models"
)

// ProductSvcFacade exposes catalog CRUD to the handler layer.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, productID string) (*models.Product, error)
	ListProducts(ctx context.Context, req dto.ListProductsRequest) ([]models.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID string) (*models.Product, error)
}

// ReviewSvcFacade exposes review CRUD to the handler layer.
type ReviewSvcFacade interface {
	CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error)
	GetReviewByID(ctx context.Context, reviewID string) (*models.Review, error)
	ListReviews(ctx context.Context, req dto.ListReviewsRequest) ([]models.Review, error)
	ListReviewsForProduct(ctx context.Context, productID string) ([]models.Review, error)
	UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID string) (*models.Review, error)
}

// CartSvcFacade is the session cart ledger.
type CartSvcFacade interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, models.CartTotals)
	AddItem(ctx context.Context, sessionID, productID string) (*models.Cart, models.CartTotals, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, models.CartTotals)
	UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*models.Cart, models.CartTotals)
	ClearCart(ctx context.Context, sessionID string)
	Checkout(ctx context.Context, sessionID string) (*models.OrderSummary, error)
	SetCurrencyContext(sessionID string, cc models.CurrencyContext)
}

// RecommenderSvcFacade picks the products to display for an observation.
type RecommenderSvcFacade interface {
	Recommend(weather *models.WeatherReport, catalog []models.Product) []models.RecommendedProduct
}

// WeatherSvcFacade exposes the weather lookup.
type WeatherSvcFacade interface {
	GetCurrent(ctx context.Context, city string) (*models.WeatherReport, error)
}

// NewsSvcFacade exposes headline retrieval.
type NewsSvcFacade interface {
	TopHeadlines(ctx context.Context, q models.HeadlinesQuery) ([]models.NewsArticle, error)
	Search(ctx context.Context, q models.NewsSearchQuery) ([]models.NewsArticle, error)
}

// RatesSvcFacade exposes exchange-rate retrieval.
type RatesSvcFacade interface {
	PairRate(ctx context.Context, fromCode, toCode string) (*models.ExchangeRate, error)
	LatestRates(ctx context.Context, baseCode string) (*models.RateTable, error)
}

// StorefrontSvcFacade runs the composite storefront query for a city.
type StorefrontSvcFacade interface {
	Query(ctx context.Context, sessionID, city string) (*models.StorefrontView, error)
}

// AuthSvcFacade validates admin credentials and issues bearer tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)
}

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	Product    ProductSvcFacade
	Review     ReviewSvcFacade
	Cart       CartSvcFacade
	Weather    WeatherSvcFacade
	News       NewsSvcFacade
	Rates      RatesSvcFacade
	Storefront StorefrontSvcFacade
	Auth       AuthSvcFacade
}
