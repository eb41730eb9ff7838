package dto

import (
	"time"

	"github.com/adilzhm/weather_store_app/internal/models"
)

// CreateReviewRequest defines the data needed to create a review. The product
// reference is checked against the catalog by the service.
type CreateReviewRequest struct {
	Title         string `json:"title" binding:"required,min=3,max=100"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"required,min=10,max=500"`
	ProductID     string `json:"product" binding:"required"`
	ReviewerName  string `json:"reviewerName" binding:"required,min=2,max=50"`
	ReviewerEmail string `json:"reviewerEmail" binding:"required,email"`
}

// UpdateReviewRequest carries a partial review update; nil fields are left
// unchanged. The product reference of an existing review cannot change.
type UpdateReviewRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=3,max=100"`
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment  *string `json:"comment" binding:"omitempty,min=10,max=500"`
	Helpful  *int    `json:"helpful" binding:"omitempty,min=0"`
	IsActive *bool   `json:"isActive"`
}

// ListReviewsRequest captures review listing filters from query params.
type ListReviewsRequest struct {
	ProductID string `form:"product"`
	Rating    *int   `form:"rating" binding:"omitempty,min=1,max=5"`
	MinRating *int   `form:"minRating" binding:"omitempty,min=1,max=5"`
}

// ReviewResponse defines the data returned for a review.
type ReviewResponse struct {
	ReviewID      string    `json:"reviewID"`
	ProductID     string    `json:"product"`
	Title         string    `json:"title"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
	Verified      bool      `json:"verified"`
	Helpful       int       `json:"helpful"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToReviewResponse converts a models.Review to its response DTO.
func ToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:      r.ReviewID,
		ProductID:     r.ProductID,
		Title:         r.Title,
		Rating:        r.Rating,
		Comment:       r.Comment,
		ReviewerName:  r.ReviewerName,
		ReviewerEmail: r.ReviewerEmail,
		Verified:      r.Verified,
		Helpful:       r.Helpful,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// ToListReviewResponse converts a slice of reviews to response DTOs.
func ToListReviewResponse(reviews []models.Review) []ReviewResponse {
	res := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		res[i] = ToReviewResponse(&reviews[i])
	}
	return res
}
