package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient returns an OpenWeatherClient pointed at the test server with
// retries that do not sleep.
func testWeatherClient(serverURL string) *OpenWeatherClient {
	c := NewOpenWeatherClient(&http.Client{}, "test-key")
	c.baseURL = serverURL
	c.cfg.backoff = BackoffConfig{MaxRetries: 2}
	return c
}

const openWeatherBody = `{
	"coord": {"lat": 43.25, "lon": 76.95},
	"weather": [{"description": "clear sky", "icon": "01d"}],
	"main": {"temp": 35.2, "feels_like": 33.8, "humidity": 21, "pressure": 1012},
	"wind": {"speed": 2.3},
	"rain": {"3h": 0.5},
	"sys": {"country": "KZ"},
	"name": "Almaty"
}`

func TestOpenWeatherClient_CurrentByCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Almaty", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(openWeatherBody))
	}))
	defer srv.Close()

	report, err := testWeatherClient(srv.URL).CurrentByCity(context.Background(), "Almaty")

	require.NoError(t, err)
	assert.Equal(t, "Almaty", report.CityName)
	assert.Equal(t, "KZ", report.CountryCode)
	assert.InDelta(t, 35.2, report.Temperature, 0.001)
	assert.InDelta(t, 0.5, report.RainMM, 0.001)
	assert.Equal(t, 21, report.Humidity)
	assert.Equal(t, "clear sky", report.Description)
	assert.InDelta(t, 43.25, report.Coordinates.Lat, 0.001)
}

func TestOpenWeatherClient_CityNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	report, err := testWeatherClient(srv.URL).CurrentByCity(context.Background(), "Nowhere")

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
}

func TestOpenWeatherClient_BadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testWeatherClient(srv.URL).CurrentByCity(context.Background(), "Almaty")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamAuth)
}

func TestOpenWeatherClient_MissingKeyFailsWithoutNetwork(t *testing.T) {
	c := NewOpenWeatherClient(&http.Client{}, "")

	_, err := c.CurrentByCity(context.Background(), "Almaty")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamAuth)
}

func TestOpenWeatherClient_RetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(openWeatherBody))
	}))
	defer srv.Close()

	report, err := testWeatherClient(srv.URL).CurrentByCity(context.Background(), "Almaty")

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "Almaty", report.CityName)
}

func TestOpenWeatherClient_RetriesExhausted(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testWeatherClient(srv.URL).CurrentByCity(context.Background(), "Almaty")

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}
