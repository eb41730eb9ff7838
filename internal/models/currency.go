package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceCurrencyCode is the currency catalog prices are authored in.
const ReferenceCurrencyCode = "USD"

// ReferenceCurrencySymbol is the display symbol of the reference currency.
const ReferenceCurrencySymbol = "$"

// ExchangeRate is a conversion rate between two currencies as returned by the
// exchange-rate provider.
type ExchangeRate struct {
	FromCurrencyCode string          `json:"from"`
	ToCurrencyCode   string          `json:"to"`
	Rate             decimal.Decimal `json:"rate"`
	LastUpdateAt     time.Time       `json:"lastUpdate"`
	NextUpdateAt     time.Time       `json:"nextUpdate"`
}

// RateTable holds all conversion rates for a base currency.
type RateTable struct {
	BaseCode     string                     `json:"base"`
	Rates        map[string]decimal.Decimal `json:"rates"`
	LastUpdateAt time.Time                  `json:"lastUpdate"`
}

// CurrencyContext is the active display currency for a session: the
// reference-to-local conversion rate plus presentation metadata.
type CurrencyContext struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// IdentityCurrencyContext returns the reference-currency context (rate 1).
// It is the fallback whenever the rate lookup fails or the resolved country
// already uses the reference currency.
func IdentityCurrencyContext() CurrencyContext {
	return CurrencyContext{
		Code:   ReferenceCurrencyCode,
		Symbol: ReferenceCurrencySymbol,
		Rate:   decimal.NewFromInt(1),
	}
}
