package handlers

import (
	"net/http"

	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles exchange-rate lookups.
type currencyHandler struct {
	ratesService ports.RatesSvcFacade
}

func newCurrencyHandler(rs ports.RatesSvcFacade) *currencyHandler {
	return &currencyHandler{ratesService: rs}
}

func registerCurrencyRoutes(rg *gin.RouterGroup, ratesService ports.RatesSvcFacade) {
	h := newCurrencyHandler(ratesService)

	currency := rg.Group("/currency")
	{
		currency.GET("/rates/:base", h.latestRates)
		currency.GET("/:from/:to", h.pairRate)
	}
}

func (h *currencyHandler) pairRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.ratesService.PairRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondUpstreamError(c, logger, err, "exchange rate")
		return
	}

	respondData(c, http.StatusOK, dto.ToExchangeRateResponse(rate))
}

func (h *currencyHandler) latestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.ratesService.LatestRates(c.Request.Context(), c.Param("base"))
	if err != nil {
		respondUpstreamError(c, logger, err, "rate table")
		return
	}

	respondData(c, http.StatusOK, dto.ToRateTableResponse(table))
}
