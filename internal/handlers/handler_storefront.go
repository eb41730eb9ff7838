package handlers

import (
	"log/slog"
	"net/http"

	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// storefrontHandler handles the composite storefront query.
type storefrontHandler struct {
	storefrontService ports.StorefrontSvcFacade
}

func newStorefrontHandler(ss ports.StorefrontSvcFacade) *storefrontHandler {
	return &storefrontHandler{storefrontService: ss}
}

func registerStorefrontRoutes(rg *gin.RouterGroup, storefrontService ports.StorefrontSvcFacade) {
	h := newStorefrontHandler(storefrontService)
	rg.GET("/storefront/:city", h.queryStorefront)
}

func (h *storefrontHandler) queryStorefront(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	city := c.Param("city")

	view, err := h.storefrontService.Query(c.Request.Context(), sid, city)
	if err != nil {
		respondUpstreamError(c, logger, err, "storefront")
		return
	}

	logger.Info("Storefront assembled",
		slog.String("city", view.Weather.CityName),
		slog.String("currency", view.Currency.Code),
		slog.Int("products", len(view.Products)))
	respondData(c, http.StatusOK, dto.ToStorefrontResponse(view))
}
