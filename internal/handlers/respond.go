package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// Every response uses the same envelope: {"success":true,"data":...} on
// success, {"success":false,"error":...,"message":...} on failure.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, errLabel, message string) {
	c.JSON(status, gin.H{"success": false, "error": errLabel, "message": message})
}

// respondUpstreamError maps provider and validation errors from the
// aggregation services onto HTTP statuses.
func respondUpstreamError(c *gin.Context, logger *slog.Logger, err error, subject string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, apperrors.ErrCityNotFound):
		respondError(c, http.StatusNotFound, "City not found", "No weather data for that city")
	case errors.Is(err, apperrors.ErrUpstreamAuth):
		logger.Error("Upstream rejected API credentials", slog.String("subject", subject), slog.String("error", err.Error()))
		respondError(c, http.StatusUnauthorized, "Upstream authentication failed", "The upstream API rejected our credentials")
	case errors.Is(err, apperrors.ErrUpstreamRateLimited):
		logger.Warn("Upstream rate limit hit", slog.String("subject", subject))
		respondError(c, http.StatusTooManyRequests, "Rate limited", "The upstream API rate limit was exceeded, try again later")
	default:
		logger.Error("Upstream request failed", slog.String("subject", subject), slog.String("error", err.Error()))
		respondError(c, http.StatusBadGateway, "Upstream unavailable", "Failed to reach the upstream API")
	}
}
