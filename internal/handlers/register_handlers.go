package handlers

import (
	"time"

	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/adilzhm/weather_store_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *ports.ServiceContainer, db DBPinger) {
	r.GET("/health", healthCheck)

	registerAuthRoutes(r, services.Auth)

	api := r.Group("/api")
	api.GET("/health", apiHealth(db, time.Now()))
	admin := middleware.AdminAuthMiddleware(cfg.JWTSecret)

	registerStorefrontRoutes(api, services.Storefront)
	registerWeatherRoutes(api, services.Weather)
	registerNewsRoutes(api, services.News)
	registerCurrencyRoutes(api, services.Rates)
	registerCartRoutes(api, services.Cart)
	registerProductRoutes(api, services.Product, admin)
	registerReviewRoutes(api, services.Review, admin)
}
