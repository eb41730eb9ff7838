package models

import "time"

// Timestamps holds the standard audit timestamps carried by persisted entities.
type Timestamps struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
