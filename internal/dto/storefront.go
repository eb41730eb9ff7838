package dto

import (
	"time"

	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
)

// WeatherResponse is the normalized weather payload exposed by the API.
type WeatherResponse struct {
	CityName    string             `json:"cityName"`
	CountryCode string             `json:"countryCode"`
	Coordinates models.Coordinates `json:"coordinates"`
	Temperature float64            `json:"temperature"`
	FeelsLike   float64            `json:"feelsLike"`
	WindSpeed   float64            `json:"windSpeed"`
	Rain        float64            `json:"rain"`
	Humidity    int                `json:"humidity"`
	Pressure    int                `json:"pressure"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
}

// NewsArticleResponse is a single article on the wire.
type NewsArticleResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Image       string    `json:"image,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ExchangeRateResponse is a single currency pair rate.
type ExchangeRateResponse struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Rate       decimal.Decimal `json:"rate"`
	LastUpdate time.Time       `json:"lastUpdate"`
	NextUpdate time.Time       `json:"nextUpdate"`
}

// RateTableResponse holds all rates for a base currency.
type RateTableResponse struct {
	Base       string                     `json:"base"`
	Rates      map[string]decimal.Decimal `json:"rates"`
	LastUpdate time.Time                  `json:"lastUpdate"`
}

// CurrencyContextResponse is the session display currency.
type CurrencyContextResponse struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// StorefrontResponse is the composite storefront query result.
type StorefrontResponse struct {
	Weather  WeatherResponse              `json:"weather"`
	Currency CurrencyContextResponse      `json:"currency"`
	Products []RecommendedProductResponse `json:"products"`
	News     []NewsArticleResponse        `json:"news"`
}

// ToWeatherResponse converts a weather report to the wire form.
func ToWeatherResponse(w *models.WeatherReport) WeatherResponse {
	return WeatherResponse{
		CityName:    w.CityName,
		CountryCode: w.CountryCode,
		Coordinates: w.Coordinates,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		WindSpeed:   w.WindSpeed,
		Rain:        w.RainMM,
		Humidity:    w.Humidity,
		Pressure:    w.Pressure,
		Description: w.Description,
		Icon:        w.Icon,
	}
}

// ToNewsArticleResponse converts one article to the wire form.
func ToNewsArticleResponse(a models.NewsArticle) NewsArticleResponse {
	return NewsArticleResponse{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		Source:      a.Source,
		Author:      a.Author,
		Image:       a.ImageURL,
		PublishedAt: a.PublishedAt,
	}
}

// ToListNewsArticleResponse converts a slice of articles to the wire form.
// A nil slice converts to an empty one so degraded news renders as [].
func ToListNewsArticleResponse(articles []models.NewsArticle) []NewsArticleResponse {
	res := make([]NewsArticleResponse, len(articles))
	for i, a := range articles {
		res[i] = ToNewsArticleResponse(a)
	}
	return res
}

// ToExchangeRateResponse converts a pair rate to the wire form.
func ToExchangeRateResponse(r *models.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		From:       r.FromCurrencyCode,
		To:         r.ToCurrencyCode,
		Rate:       r.Rate,
		LastUpdate: r.LastUpdateAt,
		NextUpdate: r.NextUpdateAt,
	}
}

// ToRateTableResponse converts a rate table to the wire form.
func ToRateTableResponse(t *models.RateTable) RateTableResponse {
	return RateTableResponse{
		Base:       t.BaseCode,
		Rates:      t.Rates,
		LastUpdate: t.LastUpdateAt,
	}
}

// ToCurrencyContextResponse converts the session currency context.
func ToCurrencyContextResponse(cc models.CurrencyContext) CurrencyContextResponse {
	return CurrencyContextResponse{Code: cc.Code, Symbol: cc.Symbol, Rate: cc.Rate}
}

// ToStorefrontResponse converts a composite storefront view to the wire form.
func ToStorefrontResponse(v *models.StorefrontView) StorefrontResponse {
	products := make([]RecommendedProductResponse, len(v.Products))
	for i, p := range v.Products {
		products[i] = ToRecommendedProductResponse(p)
	}
	return StorefrontResponse{
		Weather:  ToWeatherResponse(v.Weather),
		Currency: ToCurrencyContextResponse(v.Currency),
		Products: products,
		News:     ToListNewsArticleResponse(v.News),
	}
}
