package handlers

import (
	"log/slog"
	"net/http"

	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// weatherHandler handles direct weather lookups.
type weatherHandler struct {
	weatherService ports.WeatherSvcFacade
}

func newWeatherHandler(ws ports.WeatherSvcFacade) *weatherHandler {
	return &weatherHandler{weatherService: ws}
}

func registerWeatherRoutes(rg *gin.RouterGroup, weatherService ports.WeatherSvcFacade) {
	h := newWeatherHandler(weatherService)
	rg.GET("/weather/:city", h.getCurrentWeather)
}

func (h *weatherHandler) getCurrentWeather(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	city := c.Param("city")

	report, err := h.weatherService.GetCurrent(c.Request.Context(), city)
	if err != nil {
		respondUpstreamError(c, logger, err, "weather")
		return
	}

	logger.Info("Weather retrieved", slog.String("city", report.CityName), slog.String("country", report.CountryCode))
	respondData(c, http.StatusOK, dto.ToWeatherResponse(report))
}
