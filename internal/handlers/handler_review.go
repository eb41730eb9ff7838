package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reviewHandler handles review CRUD. Creating a review is public like the
// storefront itself; edits and deletions require the admin bearer token.
type reviewHandler struct {
	reviewService ports.ReviewSvcFacade
}

func newReviewHandler(rs ports.ReviewSvcFacade) *reviewHandler {
	return &reviewHandler{reviewService: rs}
}

func registerReviewRoutes(rg *gin.RouterGroup, reviewService ports.ReviewSvcFacade, admin gin.HandlerFunc) {
	h := newReviewHandler(reviewService)

	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.listReviews)
		reviews.GET("/:id", h.getReview)
		reviews.GET("/product/:productId", h.listReviewsForProduct)
		reviews.POST("", h.createReview)
		reviews.PUT("/:id", admin, h.updateReview)
		reviews.DELETE("/:id", admin, h.deleteReview)
	}
}

func (h *reviewHandler) createReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid request format: "+err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		logger.Error("Failed to create review", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to create review")
		return
	}

	logger.Info("Review created", slog.String("review_id", review.ReviewID), slog.String("product_id", review.ProductID))
	respondData(c, http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *reviewHandler) getReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reviewID := c.Param("id")

	review, err := h.reviewService.GetReviewByID(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found", "Review not found")
			return
		}
		logger.Error("Failed to get review", slog.String("review_id", reviewID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to retrieve review")
		return
	}

	respondData(c, http.StatusOK, dto.ToReviewResponse(review))
}

func (h *reviewHandler) listReviews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid query parameters: "+err.Error())
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to list reviews", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to list reviews")
		return
	}

	respondData(c, http.StatusOK, dto.ToListReviewResponse(reviews))
}

func (h *reviewHandler) listReviewsForProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productId")

	reviews, err := h.reviewService.ListReviewsForProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found", "Product not found")
			return
		}
		logger.Error("Failed to list product reviews", slog.String("product_id", productID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to list reviews")
		return
	}

	respondData(c, http.StatusOK, dto.ToListReviewResponse(reviews))
}

func (h *reviewHandler) updateReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reviewID := c.Param("id")

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid request format: "+err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), reviewID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found", "Review not found")
			return
		}
		logger.Error("Failed to update review", slog.String("review_id", reviewID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to update review")
		return
	}

	admin, _ := middleware.GetAdminFromCtx(c.Request.Context())
	logger.Info("Review updated", slog.String("review_id", reviewID), slog.String("admin_user", admin))
	respondData(c, http.StatusOK, dto.ToReviewResponse(review))
}

func (h *reviewHandler) deleteReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reviewID := c.Param("id")

	review, err := h.reviewService.DeleteReview(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found", "Review not found")
			return
		}
		logger.Error("Failed to delete review", slog.String("review_id", reviewID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to delete review")
		return
	}

	admin, _ := middleware.GetAdminFromCtx(c.Request.Context())
	logger.Info("Review deleted", slog.String("review_id", reviewID), slog.String("product_id", review.ProductID), slog.String("admin_user", admin))
	respondData(c, http.StatusOK, dto.ToReviewResponse(review))
}
