package services

import (
	"strings"

	"github.com/adilzhm/weather_store_app/internal/models"
)

// countryCurrency maps ISO 3166 country codes to the currency shoppers in
// that country expect prices in.
var countryCurrency = map[string]string{
	"US": "USD", "GB": "GBP", "KZ": "KZT", "RU": "RUB",
	"CN": "CNY", "JP": "JPY", "IN": "INR", "CA": "CAD",
	"AU": "AUD", "EU": "EUR", "DE": "EUR", "FR": "EUR",
	"IT": "EUR", "ES": "EUR", "BR": "BRL", "MX": "MXN",
	"KR": "KRW", "TR": "TRY", "PL": "PLN", "SE": "SEK",
	"NO": "NOK", "DK": "DKK", "CH": "CHF", "NZ": "NZD",
}

// currencySymbols maps ISO 4217 currency codes to display symbols.
var currencySymbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "KZT": "₸",
	"RUB": "₽", "CNY": "¥", "JPY": "¥", "INR": "₹",
	"CAD": "C$", "AUD": "A$", "BRL": "R$", "MXN": "Mex$",
	"KRW": "₩", "TRY": "₺", "PLN": "zł", "SEK": "kr",
	"NOK": "kr", "DKK": "kr", "CHF": "Fr", "NZD": "NZ$",
}

// CurrencyForCountry resolves the display currency for a country code.
// Unmapped countries fail open to the reference currency.
func CurrencyForCountry(countryCode string) string {
	if code, ok := countryCurrency[strings.ToUpper(countryCode)]; ok {
		return code
	}
	return models.ReferenceCurrencyCode
}

// SymbolForCurrency resolves the display symbol for a currency code.
// Unmapped codes fail open by acting as their own symbol.
func SymbolForCurrency(currencyCode string) string {
	code := strings.ToUpper(currencyCode)
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}
