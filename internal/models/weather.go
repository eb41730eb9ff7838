package models

import "time"

// Coordinates is a lat/lon pair as reported by the weather provider.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherReport is the normalized current-weather observation for a city.
// Temperatures are °C, wind speed m/s, rain is mm over the last 3 hours.
// Reports are produced fresh per query and never persisted.
type WeatherReport struct {
	CityName    string      `json:"cityName"`
	CountryCode string      `json:"countryCode"`
	Coordinates Coordinates `json:"coordinates"`
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feelsLike"`
	WindSpeed   float64     `json:"windSpeed"`
	RainMM      float64     `json:"rain"`
	Humidity    int         `json:"humidity"`
	Pressure    int         `json:"pressure"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	FetchedAt   time.Time   `json:"fetchedAt"`
}
