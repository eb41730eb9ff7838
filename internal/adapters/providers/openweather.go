package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/sony/gobreaker"
)

// OpenWeatherClient fetches current weather from the OpenWeatherMap API.
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	cfg     httpConfig
	circuit *gobreaker.CircuitBreaker
}

var _ ports.WeatherProvider = (*OpenWeatherClient)(nil)

// NewOpenWeatherClient creates an OpenWeatherMap client sharing the given
// HTTP client with the other providers.
func NewOpenWeatherClient(client *http.Client, apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		cfg:     httpConfig{client: client, backoff: defaultBackoff()},
		circuit: newBreaker("openweather"),
	}
}

// CurrentByCity fetches the current observation for a city, in metric units.
func (p *OpenWeatherClient) CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: openweather api key is not configured", apperrors.ErrUpstreamAuth)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		return http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil)
	}

	resp, err := doResilient(ctx, p.cfg, p.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCityNotFound, city)
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: openweather rejected the api key", apperrors.ErrUpstreamAuth)
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload struct {
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Rain struct {
			ThreeH float64 `json:"3h"`
		} `json:"rain"`
		Sys struct {
			Country string `json:"country"`
		} `json:"sys"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode openweather response: %w", err)
	}

	report := &models.WeatherReport{
		CityName:    payload.Name,
		CountryCode: payload.Sys.Country,
		Coordinates: models.Coordinates{Lat: payload.Coord.Lat, Lon: payload.Coord.Lon},
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		WindSpeed:   payload.Wind.Speed,
		RainMM:      payload.Rain.ThreeH,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		FetchedAt:   time.Now().UTC(),
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
		report.Icon = payload.Weather[0].Icon
	}

	return report, nil
}
