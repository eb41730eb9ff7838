package models

import "time"

// NewsArticle is a single headline from the news provider.
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
	ImageURL    string    `json:"image,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// HeadlinesQuery selects top headlines by category and country.
type HeadlinesQuery struct {
	Category string
	Country  string
	PageSize int
}

// NewsSearchQuery is a free-text article search, newest first.
type NewsSearchQuery struct {
	Query    string
	Language string
	PageSize int
}
