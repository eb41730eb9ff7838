package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
)

// WeatherService validates lookups before handing them to the provider.
type WeatherService struct {
	provider ports.WeatherProvider
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(provider ports.WeatherProvider) *WeatherService {
	return &WeatherService{provider: provider}
}

var _ ports.WeatherSvcFacade = (*WeatherService)(nil)

// GetCurrent fetches the current observation for a city. An empty city name
// is rejected before any network call.
func (s *WeatherService) GetCurrent(ctx context.Context, city string) (*models.WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", apperrors.ErrValidation)
	}
	return s.provider.CurrentByCity(ctx, city)
}
