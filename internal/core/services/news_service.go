package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
)

// Headline defaults for the storefront ticker.
const (
	defaultNewsCategory = "technology"
	defaultNewsCountry  = "us"
	defaultNewsPageSize = 5
	maxNewsPageSize     = 20
)

// NewsService applies query defaults and bounds before handing requests to
// the provider.
type NewsService struct {
	provider ports.NewsProvider
}

// NewNewsService creates a new NewsService.
func NewNewsService(provider ports.NewsProvider) *NewsService {
	return &NewsService{provider: provider}
}

var _ ports.NewsSvcFacade = (*NewsService)(nil)

// TopHeadlines fetches category headlines, defaulting to technology news for
// the US with the storefront page size.
func (s *NewsService) TopHeadlines(ctx context.Context, q models.HeadlinesQuery) ([]models.NewsArticle, error) {
	if q.Category == "" {
		q.Category = defaultNewsCategory
	}
	if q.Country == "" {
		q.Country = defaultNewsCountry
	}
	q.PageSize = clampPageSize(q.PageSize)
	return s.provider.TopHeadlines(ctx, q)
}

// Search runs a keyword query across recent articles.
func (s *NewsService) Search(ctx context.Context, q models.NewsSearchQuery) ([]models.NewsArticle, error) {
	q.Query = strings.TrimSpace(q.Query)
	if q.Query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	q.PageSize = clampPageSize(q.PageSize)
	return s.provider.Search(ctx, q)
}

func clampPageSize(n int) int {
	if n <= 0 {
		return defaultNewsPageSize
	}
	if n > maxNewsPageSize {
		return maxNewsPageSize
	}
	return n
}
