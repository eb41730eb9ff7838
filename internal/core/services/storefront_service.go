package services

import (
	"context"
	"fmt"

	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/adilzhm/weather_store_app/internal/models"
)

// StorefrontService runs the composite storefront query: one weather lookup
// drives the display currency, the recommended product set and the headline
// ticker. Weather is the only hard dependency; rate and news failures degrade
// the view instead of failing it.
type StorefrontService struct {
	weather     ports.WeatherSvcFacade
	rates       ports.RatesSvcFacade
	news        ports.NewsSvcFacade
	recommender ports.RecommenderSvcFacade
	cart        ports.CartSvcFacade
	productRepo ports.ProductRepository
}

// NewStorefrontService creates a new StorefrontService.
func NewStorefrontService(
	weather ports.WeatherSvcFacade,
	rates ports.RatesSvcFacade,
	news ports.NewsSvcFacade,
	recommender ports.RecommenderSvcFacade,
	cart ports.CartSvcFacade,
	productRepo ports.ProductRepository,
) *StorefrontService {
	return &StorefrontService{
		weather:     weather,
		rates:       rates,
		news:        news,
		recommender: recommender,
		cart:        cart,
		productRepo: productRepo,
	}
}

var _ ports.StorefrontSvcFacade = (*StorefrontService)(nil)

// Query assembles the storefront view for a city and installs the resolved
// currency context on the caller's session cart.
func (s *StorefrontService) Query(ctx context.Context, sessionID, city string) (*models.StorefrontView, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	weather, err := s.weather.GetCurrent(ctx, city)
	if err != nil {
		return nil, err
	}

	currency := s.resolveCurrency(ctx, weather.CountryCode)
	s.cart.SetCurrencyContext(sessionID, currency)

	active := true
	catalog, err := s.productRepo.ListProducts(ctx, models.ProductFilter{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for storefront: %w", err)
	}
	products := s.recommender.Recommend(weather, catalog)

	articles, err := s.news.TopHeadlines(ctx, models.HeadlinesQuery{})
	if err != nil {
		logger.Warn("headline fetch failed, rendering storefront without news", "error", err)
		articles = nil
	}

	return &models.StorefrontView{
		Weather:  weather,
		Currency: currency,
		Products: products,
		News:     articles,
	}, nil
}

// resolveCurrency maps the observation country to its display currency and
// fetches the conversion rate. A failed rate lookup falls back to showing
// reference prices.
func (s *StorefrontService) resolveCurrency(ctx context.Context, countryCode string) models.CurrencyContext {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := CurrencyForCountry(countryCode)
	if code == models.ReferenceCurrencyCode {
		return models.IdentityCurrencyContext()
	}

	rate, err := s.rates.PairRate(ctx, models.ReferenceCurrencyCode, code)
	if err != nil {
		logger.Warn("rate lookup failed, falling back to reference currency",
			"currency", code, "error", err)
		return models.IdentityCurrencyContext()
	}

	return models.CurrencyContext{
		Code:   code,
		Symbol: SymbolForCurrency(code),
		Rate:   rate.Rate,
	}
}
