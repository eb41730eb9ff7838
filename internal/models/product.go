package models

import "github.com/shopspring/decimal"

// ProductCategory classifies a catalog entry.
type ProductCategory string

const (
	CategoryLaptop    ProductCategory = "laptop"
	CategoryPhone     ProductCategory = "phone"
	CategoryTablet    ProductCategory = "tablet"
	CategoryAccessory ProductCategory = "accessory"
	CategoryWearable  ProductCategory = "wearable"
	CategoryOther     ProductCategory = "other"
)

// WeatherTag marks the weather a product is recommended for.
// "all" products are always eligible for display.
type WeatherTag string

const (
	WeatherAll  WeatherTag = "all"
	WeatherHot  WeatherTag = "hot"
	WeatherCold WeatherTag = "cold"
	WeatherRain WeatherTag = "rain"
)

// DefaultProductIcon is used when a product is created without an icon.
const DefaultProductIcon = "📦"

// Product is a catalog entry. Prices are in the reference currency (USD).
type Product struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Category      ProductCategory `json:"category"`
	Icon          string          `json:"icon"`
	WeatherTag    WeatherTag      `json:"weather"`
	Stock         int             `json:"stock"`
	ImageURL      *string         `json:"imageUrl"`
	IsActive      bool            `json:"isActive"`
	AverageRating decimal.Decimal `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
	Timestamps
}

// IsAvailable reports whether the product can currently be sold.
func (p Product) IsAvailable() bool {
	return p.IsActive && p.Stock > 0
}

// ProductFilter narrows catalog listings. Nil fields are ignored.
type ProductFilter struct {
	Category   *ProductCategory
	WeatherTag *WeatherTag
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	IsActive   *bool
}

// RecommendedProduct is a catalog entry annotated for storefront display.
// Recommended is set when the product was picked for the current weather
// rather than being generally eligible.
type RecommendedProduct struct {
	Product
	Recommended bool `json:"recommended"`
}
