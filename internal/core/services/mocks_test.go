package services_test

import (
	"context"

	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

var _ ports.ProductRepository = (*MockProductRepository)(nil)

// --- Mock ReviewRepository ---
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, review models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, review models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

var _ ports.ReviewRepository = (*MockReviewRepository)(nil)

// --- Mock WeatherProvider ---
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherReport), args.Error(1)
}

var _ ports.WeatherProvider = (*MockWeatherProvider)(nil)

// --- Mock NewsProvider ---
type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) TopHeadlines(ctx context.Context, q models.HeadlinesQuery) ([]models.NewsArticle, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NewsArticle), args.Error(1)
}

func (m *MockNewsProvider) Search(ctx context.Context, q models.NewsSearchQuery) ([]models.NewsArticle, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NewsArticle), args.Error(1)
}

var _ ports.NewsProvider = (*MockNewsProvider)(nil)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) PairRate(ctx context.Context, fromCode, toCode string) (*models.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExchangeRate), args.Error(1)
}

func (m *MockRateProvider) LatestRates(ctx context.Context, baseCode string) (*models.RateTable, error) {
	args := m.Called(ctx, baseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RateTable), args.Error(1)
}

var _ ports.RateProvider = (*MockRateProvider)(nil)
