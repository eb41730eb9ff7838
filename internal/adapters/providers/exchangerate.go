package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

// ExchangeRateClient fetches conversion rates from the ExchangeRate-API v6.
type ExchangeRateClient struct {
	apiKey  string
	baseURL string
	cfg     httpConfig
	circuit *gobreaker.CircuitBreaker
}

var _ ports.RateProvider = (*ExchangeRateClient)(nil)

// NewExchangeRateClient creates an ExchangeRate-API client sharing the given
// HTTP client.
func NewExchangeRateClient(client *http.Client, apiKey string) *ExchangeRateClient {
	return &ExchangeRateClient{
		apiKey:  apiKey,
		baseURL: "https://v6.exchangerate-api.com/v6",
		cfg:     httpConfig{client: client, backoff: defaultBackoff()},
		circuit: newBreaker("exchangerate"),
	}
}

// upstream date format, e.g. "Fri, 27 Mar 2020 00:00:00 +0000"
const exchangeRateTimeLayout = time.RFC1123Z

// PairRate fetches the conversion rate for a currency pair.
func (p *ExchangeRateClient) PairRate(ctx context.Context, fromCode, toCode string) (*models.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	var payload struct {
		Result            string          `json:"result"`
		ErrorType         string          `json:"error-type"`
		ConversionRate    decimal.Decimal `json:"conversion_rate"`
		TimeLastUpdateUTC string          `json:"time_last_update_utc"`
		TimeNextUpdateUTC string          `json:"time_next_update_utc"`
	}
	if err := p.fetch(ctx, fmt.Sprintf("/%s/pair/%s/%s", p.apiKey, fromCode, toCode), &payload); err != nil {
		return nil, err
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("%w: invalid currency pair %s/%s (%s)", apperrors.ErrValidation, fromCode, toCode, payload.ErrorType)
	}

	rate := &models.ExchangeRate{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             payload.ConversionRate,
	}
	if t, err := time.Parse(exchangeRateTimeLayout, payload.TimeLastUpdateUTC); err == nil {
		rate.LastUpdateAt = t
	}
	if t, err := time.Parse(exchangeRateTimeLayout, payload.TimeNextUpdateUTC); err == nil {
		rate.NextUpdateAt = t
	}
	return rate, nil
}

// LatestRates fetches all conversion rates for a base currency.
func (p *ExchangeRateClient) LatestRates(ctx context.Context, baseCode string) (*models.RateTable, error) {
	baseCode = strings.ToUpper(baseCode)

	var payload struct {
		Result            string                     `json:"result"`
		ErrorType         string                     `json:"error-type"`
		ConversionRates   map[string]decimal.Decimal `json:"conversion_rates"`
		TimeLastUpdateUTC string                     `json:"time_last_update_utc"`
	}
	if err := p.fetch(ctx, fmt.Sprintf("/%s/latest/%s", p.apiKey, baseCode), &payload); err != nil {
		return nil, err
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("%w: invalid currency code %s (%s)", apperrors.ErrValidation, baseCode, payload.ErrorType)
	}

	table := &models.RateTable{
		BaseCode: baseCode,
		Rates:    payload.ConversionRates,
	}
	if t, err := time.Parse(exchangeRateTimeLayout, payload.TimeLastUpdateUTC); err == nil {
		table.LastUpdateAt = t
	}
	return table, nil
}

func (p *ExchangeRateClient) fetch(ctx context.Context, path string, out any) error {
	if p.apiKey == "" {
		return fmt.Errorf("%w: exchangerate api key is not configured", apperrors.ErrUpstreamAuth)
	}

	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, p.baseURL+path, nil)
	}

	resp, err := doResilient(ctx, p.cfg, p.circuit, buildRequest)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusUnauthorized:
		return fmt.Errorf("%w: exchangerate-api rejected the api key", apperrors.ErrUpstreamAuth)
	case http.StatusNotFound:
		// The v6 API reports unknown codes with a 404 plus an error body.
		return fmt.Errorf("%w: unknown currency code", apperrors.ErrValidation)
	default:
		return fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode exchangerate response: %w", err)
	}
	return nil
}
