package models

// StorefrontView is the composite result of a single storefront query for a
// city: the weather that drove it, the currency context derived from the
// weather's country, the recommended products and the (best-effort) news.
type StorefrontView struct {
	Weather  *WeatherReport       `json:"weather"`
	Currency CurrencyContext      `json:"currency"`
	Products []RecommendedProduct `json:"products"`
	News     []NewsArticle        `json:"news"`
}
