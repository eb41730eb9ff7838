package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/sony/gobreaker"
)

// NewsAPIClient fetches headlines from newsapi.org.
type NewsAPIClient struct {
	apiKey  string
	baseURL string
	cfg     httpConfig
	circuit *gobreaker.CircuitBreaker
}

var _ ports.NewsProvider = (*NewsAPIClient)(nil)

// NewNewsAPIClient creates a NewsAPI client sharing the given HTTP client.
func NewNewsAPIClient(client *http.Client, apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:  apiKey,
		baseURL: "https://newsapi.org/v2",
		cfg:     httpConfig{client: client, backoff: defaultBackoff()},
		circuit: newBreaker("newsapi"),
	}
}

type newsAPIPayload struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string    `json:"author"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// TopHeadlines fetches top headlines for a category and country.
func (p *NewsAPIClient) TopHeadlines(ctx context.Context, q models.HeadlinesQuery) ([]models.NewsArticle, error) {
	values := url.Values{}
	values.Set("category", q.Category)
	values.Set("country", q.Country)
	values.Set("pageSize", strconv.Itoa(q.PageSize))
	return p.fetch(ctx, "/top-headlines", values)
}

// Search queries the everything endpoint, newest articles first.
func (p *NewsAPIClient) Search(ctx context.Context, q models.NewsSearchQuery) ([]models.NewsArticle, error) {
	values := url.Values{}
	values.Set("q", q.Query)
	values.Set("language", q.Language)
	values.Set("pageSize", strconv.Itoa(q.PageSize))
	values.Set("sortBy", "publishedAt")
	return p.fetch(ctx, "/everything", values)
}

func (p *NewsAPIClient) fetch(ctx context.Context, path string, values url.Values) ([]models.NewsArticle, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: newsapi key is not configured", apperrors.ErrUpstreamAuth)
	}
	values.Set("apiKey", p.apiKey)

	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode()), nil)
	}

	resp, err := doResilient(ctx, p.cfg, p.circuit, buildRequest)
	if err != nil {
		if isRateLimited(err) {
			return nil, fmt.Errorf("%w: newsapi", apperrors.ErrUpstreamRateLimited)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: newsapi rejected the api key", apperrors.ErrUpstreamAuth)
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload newsAPIPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode newsapi response: %w", err)
	}

	articles := make([]models.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, models.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			Author:      a.Author,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
