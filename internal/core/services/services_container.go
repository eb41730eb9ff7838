package services

import (
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/platform/config"
)

// Repositories bundles the persistence dependencies of the service layer.
type Repositories struct {
	Product ports.ProductRepository
	Review  ports.ReviewRepository
}

// Providers bundles the upstream API clients of the service layer.
type Providers struct {
	Weather ports.WeatherProvider
	News    ports.NewsProvider
	Rates   ports.RateProvider
}

// NewServiceContainer wires every service facade with its dependencies.
func NewServiceContainer(cfg *config.Config, repos Repositories, providers Providers) *ports.ServiceContainer {
	weatherSvc := NewWeatherService(providers.Weather)
	newsSvc := NewNewsService(providers.News)
	ratesSvc := NewRatesService(providers.Rates)

	cartSvc := NewCartService(repos.Product)
	storefrontSvc := NewStorefrontService(
		weatherSvc,
		ratesSvc,
		newsSvc,
		NewRecommendationService(),
		cartSvc,
		repos.Product,
	)

	return &ports.ServiceContainer{
		Product:    NewProductService(repos.Product),
		Review:     NewReviewService(repos.Review, repos.Product),
		Cart:       cartSvc,
		Weather:    weatherSvc,
		News:       newsSvc,
		Rates:      ratesSvc,
		Storefront: storefrontSvc,
		Auth:       NewAuthService(cfg),
	}
}
