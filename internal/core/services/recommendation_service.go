package services

import (
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
)

// Weather thresholds and display cap for the recommendation filter.
// Comparisons are strict: exactly 30°C or 10°C triggers neither branch.
const (
	hotThresholdC       = 30.0
	coldThresholdC      = 10.0
	recommendationLimit = 6
)

// RecommendationService selects the products to display for the current
// weather: every always-eligible product, plus the hot/cold tier for extreme
// temperatures and the rain tier when rain was observed.
type RecommendationService struct{}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

var _ ports.RecommenderSvcFacade = (*RecommendationService)(nil)

// Recommend filters the catalog against the observation. The result is
// deduplicated by product ID preserving first-seen order and truncated to
// the display limit. Products picked for a weather tier are flagged
// Recommended for display emphasis.
func (s *RecommendationService) Recommend(weather *models.WeatherReport, catalog []models.Product) []models.RecommendedProduct {
	picked := filterByTag(catalog, models.WeatherAll)

	if weather.Temperature > hotThresholdC {
		picked = append(picked, filterByTag(catalog, models.WeatherHot)...)
	} else if weather.Temperature < coldThresholdC {
		picked = append(picked, filterByTag(catalog, models.WeatherCold)...)
	}

	if weather.RainMM > 0 {
		picked = append(picked, filterByTag(catalog, models.WeatherRain)...)
	}

	seen := make(map[string]struct{}, len(picked))
	result := make([]models.RecommendedProduct, 0, recommendationLimit)
	for _, p := range picked {
		if _, dup := seen[p.ProductID]; dup {
			continue
		}
		seen[p.ProductID] = struct{}{}
		result = append(result, models.RecommendedProduct{
			Product:     p,
			Recommended: p.WeatherTag != models.WeatherAll,
		})
		if len(result) == recommendationLimit {
			break
		}
	}
	return result
}

func filterByTag(catalog []models.Product, tag models.WeatherTag) []models.Product {
	var out []models.Product
	for _, p := range catalog {
		if p.WeatherTag == tag {
			out = append(out, p)
		}
	}
	return out
}
