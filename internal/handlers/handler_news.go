package handlers

import (
	"net/http"
	"strconv"

	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/gin-gonic/gin"
)

// newsHandler handles headline and article search lookups.
type newsHandler struct {
	newsService ports.NewsSvcFacade
}

func newNewsHandler(ns ports.NewsSvcFacade) *newsHandler {
	return &newsHandler{newsService: ns}
}

func registerNewsRoutes(rg *gin.RouterGroup, newsService ports.NewsSvcFacade) {
	h := newNewsHandler(newsService)

	news := rg.Group("/news")
	{
		news.GET("", h.topHeadlines)
		news.GET("/search", h.searchNews)
	}
}

func (h *newsHandler) topHeadlines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	q := models.HeadlinesQuery{
		Category: c.Query("category"),
		Country:  c.Query("country"),
		PageSize: intQuery(c, "pageSize"),
	}

	articles, err := h.newsService.TopHeadlines(c.Request.Context(), q)
	if err != nil {
		respondUpstreamError(c, logger, err, "news")
		return
	}

	respondData(c, http.StatusOK, dto.ToListNewsArticleResponse(articles))
}

func (h *newsHandler) searchNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	q := models.NewsSearchQuery{
		Query:    c.Query("q"),
		Language: c.Query("language"),
		PageSize: intQuery(c, "pageSize"),
	}

	articles, err := h.newsService.Search(c.Request.Context(), q)
	if err != nil {
		respondUpstreamError(c, logger, err, "news search")
		return
	}

	respondData(c, http.StatusOK, dto.ToListNewsArticleResponse(articles))
}

// intQuery reads an integer query parameter, treating absent or malformed
// values as zero so the service applies its defaults.
func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}
