package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeadlinesQuery() models.HeadlinesQuery {
	return models.HeadlinesQuery{Category: "technology", Country: "us", PageSize: 5}
}

func testRateClient(serverURL string) *ExchangeRateClient {
	c := NewExchangeRateClient(&http.Client{}, "test-key")
	c.baseURL = serverURL
	c.cfg.backoff = BackoffConfig{MaxRetries: 0}
	return c
}

func TestExchangeRateClient_PairRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/pair/USD/KZT", r.URL.Path)
		w.Write([]byte(`{
			"result": "success",
			"conversion_rate": 478.3542,
			"time_last_update_utc": "Fri, 27 Mar 2020 00:00:00 +0000",
			"time_next_update_utc": "Sat, 28 Mar 2020 00:00:00 +0000"
		}`))
	}))
	defer srv.Close()

	rate, err := testRateClient(srv.URL).PairRate(context.Background(), "usd", "kzt")

	require.NoError(t, err)
	assert.Equal(t, "USD", rate.FromCurrencyCode)
	assert.Equal(t, "KZT", rate.ToCurrencyCode)
	assert.True(t, rate.Rate.Equal(decimal.RequireFromString("478.3542")))
	assert.Equal(t, 2020, rate.LastUpdateAt.Year())
	assert.True(t, rate.NextUpdateAt.After(rate.LastUpdateAt))
}

func TestExchangeRateClient_PairRate_UnsupportedCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": "error", "error-type": "unsupported-code"}`))
	}))
	defer srv.Close()

	rate, err := testRateClient(srv.URL).PairRate(context.Background(), "USD", "XXX")

	require.Error(t, err)
	assert.Nil(t, rate)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExchangeRateClient_PairRate_BadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testRateClient(srv.URL).PairRate(context.Background(), "USD", "KZT")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamAuth)
}

func TestExchangeRateClient_LatestRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/latest/USD", r.URL.Path)
		w.Write([]byte(`{
			"result": "success",
			"conversion_rates": {"USD": 1, "KZT": 478.3542, "EUR": 0.9013},
			"time_last_update_utc": "Fri, 27 Mar 2020 00:00:00 +0000"
		}`))
	}))
	defer srv.Close()

	table, err := testRateClient(srv.URL).LatestRates(context.Background(), "usd")

	require.NoError(t, err)
	assert.Equal(t, "USD", table.BaseCode)
	assert.Len(t, table.Rates, 3)
	assert.True(t, table.Rates["KZT"].Equal(decimal.RequireFromString("478.3542")))
}

func TestNewsAPIClient_TopHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "technology", r.URL.Query().Get("category"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{
			"status": "ok",
			"articles": [{
				"source": {"name": "The Verge"},
				"author": "Reporter",
				"title": "Chips get faster",
				"description": "Another node shrink.",
				"url": "https://example.com/a",
				"urlToImage": "https://example.com/a.jpg",
				"publishedAt": "2025-06-01T10:00:00Z"
			}]
		}`))
	}))
	defer srv.Close()

	c := NewNewsAPIClient(&http.Client{}, "test-key")
	c.baseURL = srv.URL
	c.cfg.backoff = BackoffConfig{MaxRetries: 0}

	articles, err := c.TopHeadlines(context.Background(), testHeadlinesQuery())

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Chips get faster", articles[0].Title)
	assert.Equal(t, "The Verge", articles[0].Source)
}

func TestNewsAPIClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewNewsAPIClient(&http.Client{}, "test-key")
	c.baseURL = srv.URL
	c.cfg.backoff = BackoffConfig{MaxRetries: 0}

	_, err := c.TopHeadlines(context.Background(), testHeadlinesQuery())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamRateLimited)
}
