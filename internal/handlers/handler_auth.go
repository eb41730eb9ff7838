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

// authHandler handles the admin login endpoint.
type authHandler struct {
	authService ports.AuthSvcFacade
}

func newAuthHandler(as ports.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the public login route on the engine root so
// it stays outside the admin-guarded API group.
func registerAuthRoutes(r *gin.Engine, authService ports.AuthSvcFacade) {
	h := newAuthHandler(authService)
	r.POST("/auth/login", h.login)
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid request format: "+err.Error())
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Admin login rejected", slog.String("username", req.Username))
			respondError(c, http.StatusUnauthorized, "Unauthorized", "Invalid credentials")
			return
		}
		logger.Error("Failed to issue admin token", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to log in")
		return
	}

	logger.Info("Admin logged in", slog.String("username", req.Username))
	respondData(c, http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
