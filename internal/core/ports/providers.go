package ports

import (
	"context"

	"github.com/adilzhm/weather_store_app/internal/models"
)

// WeatherProvider abstracts the current-weather data source.
type WeatherProvider interface {
	CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, error)
}

// NewsProvider abstracts the headline source.
type NewsProvider interface {
	TopHeadlines(ctx context.Context, q models.HeadlinesQuery) ([]models.NewsArticle, error)
	Search(ctx context.Context, q models.NewsSearchQuery) ([]models.NewsArticle, error)
}

// RateProvider abstracts the currency exchange-rate source.
type RateProvider interface {
	PairRate(ctx context.Context, fromCode, toCode string) (*models.ExchangeRate, error)
	LatestRates(ctx context.Context, baseCode string) (*models.RateTable, error)
}
