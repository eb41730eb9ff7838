package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/google/uuid"
)

// ReviewService implements review CRUD on top of the review repository. The
// repository keeps the parent product's rating aggregates in step with every
// write.
type ReviewService struct {
	repo        ports.ReviewRepository
	productRepo ports.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo ports.ReviewRepository, productRepo ports.ProductRepository) *ReviewService {
	return &ReviewService{repo: repo, productRepo: productRepo}
}

var _ ports.ReviewSvcFacade = (*ReviewService)(nil)

// CreateReview validates the product reference and stores a new review.
func (s *ReviewService) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %s does not exist", apperrors.ErrValidation, req.ProductID)
		}
		return nil, fmt.Errorf("failed to verify product for review: %w", err)
	}

	now := time.Now().UTC()
	review := models.Review{
		ReviewID:      uuid.New().String(),
		ProductID:     req.ProductID,
		Title:         strings.TrimSpace(req.Title),
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
		ReviewerName:  strings.TrimSpace(req.ReviewerName),
		ReviewerEmail: strings.ToLower(strings.TrimSpace(req.ReviewerEmail)),
		IsActive:      true,
		Timestamps: models.Timestamps{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.repo.SaveReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// GetReviewByID fetches a single review.
func (s *ReviewService) GetReviewByID(ctx context.Context, reviewID string) (*models.Review, error) {
	return s.repo.FindReviewByID(ctx, reviewID)
}

// ListReviews returns active reviews filtered by the request parameters.
func (s *ReviewService) ListReviews(ctx context.Context, req dto.ListReviewsRequest) ([]models.Review, error) {
	var filter models.ReviewFilter
	if req.ProductID != "" {
		productID := req.ProductID
		filter.ProductID = &productID
	}
	filter.Rating = req.Rating
	filter.MinRating = req.MinRating
	return s.repo.ListReviews(ctx, filter)
}

// ListReviewsForProduct returns the active reviews of one product, newest
// first. The product must exist.
func (s *ReviewService) ListReviewsForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, models.ReviewFilter{ProductID: &productID})
}

// UpdateReview applies a partial update and returns the updated review. The
// repository recomputes the product aggregates in the same transaction, so a
// rating or visibility change is reflected immediately.
func (s *ReviewService) UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.repo.FindReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		review.Title = strings.TrimSpace(*req.Title)
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = strings.TrimSpace(*req.Comment)
	}
	if req.Helpful != nil {
		review.Helpful = *req.Helpful
	}
	if req.IsActive != nil {
		review.IsActive = *req.IsActive
	}
	review.LastUpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateReview(ctx, *review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review and returns its last state.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID string) (*models.Review, error) {
	review, err := s.repo.FindReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteReview(ctx, reviewID); err != nil {
		return nil, err
	}
	return review, nil
}
