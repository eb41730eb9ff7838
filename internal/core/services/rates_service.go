package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
)

// RatesService validates currency codes before handing lookups to the
// provider.
type RatesService struct {
	provider ports.RateProvider
}

// NewRatesService creates a new RatesService.
func NewRatesService(provider ports.RateProvider) *RatesService {
	return &RatesService{provider: provider}
}

var _ ports.RatesSvcFacade = (*RatesService)(nil)

// PairRate fetches the conversion rate between two currencies. Identical
// codes short-circuit to a unit rate without a provider call.
func (s *RatesService) PairRate(ctx context.Context, fromCode, toCode string) (*models.ExchangeRate, error) {
	from, err := normalizeCurrencyCode(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := normalizeCurrencyCode(toCode)
	if err != nil {
		return nil, err
	}

	if from == to {
		return &models.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             decimal.NewFromInt(1),
			LastUpdateAt:     time.Now().UTC(),
		}, nil
	}

	return s.provider.PairRate(ctx, from, to)
}

// LatestRates fetches the full rate table for a base currency.
func (s *RatesService) LatestRates(ctx context.Context, baseCode string) (*models.RateTable, error) {
	base, err := normalizeCurrencyCode(baseCode)
	if err != nil {
		return nil, err
	}
	return s.provider.LatestRates(ctx, base)
}

func normalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, code)
	}
	return code, nil
}
