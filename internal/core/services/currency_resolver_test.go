package services_test

import (
	"testing"

	"github.com/adilzhm/weather_store_app/internal/core/services"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyForCountry(t *testing.T) {
	assert.Equal(t, "KZT", services.CurrencyForCountry("KZ"))
	assert.Equal(t, "GBP", services.CurrencyForCountry("GB"))
	assert.Equal(t, "EUR", services.CurrencyForCountry("DE"))
	assert.Equal(t, "USD", services.CurrencyForCountry("US"))

	// Lookup is case insensitive.
	assert.Equal(t, "KZT", services.CurrencyForCountry("kz"))
}

func TestCurrencyForCountry_UnknownFallsBackToReference(t *testing.T) {
	assert.Equal(t, models.ReferenceCurrencyCode, services.CurrencyForCountry("ZZ"))
	assert.Equal(t, models.ReferenceCurrencyCode, services.CurrencyForCountry(""))
}

func TestSymbolForCurrency(t *testing.T) {
	assert.Equal(t, "₸", services.SymbolForCurrency("KZT"))
	assert.Equal(t, "$", services.SymbolForCurrency("USD"))
	assert.Equal(t, "€", services.SymbolForCurrency("eur"))
}

func TestSymbolForCurrency_UnknownActsAsOwnSymbol(t *testing.T) {
	assert.Equal(t, "XYZ", services.SymbolForCurrency("xyz"))
}
