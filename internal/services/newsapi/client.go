package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ai-news-telegram-bot/internal/config"
	"ai-news-telegram-bot/internal/models"
)

const userAgent = "ai-news-telegram-bot/1.0"

// APIError is a non-OK answer from the search API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("news API returned status: %d", e.StatusCode)
	}
	return fmt.Sprintf("news API returned status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

type Client struct {
	config *config.NewsAPIConfig
	client *http.Client
}

func NewClient(cfg *config.NewsAPIConfig) *Client {
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Search returns the articles matching query, most recent first. A response
// without an articles key yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]models.Article, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("sortBy", "publishedAt")
	params.Add("language", c.config.Language)
	params.Add("apiKey", c.config.APIKey)

	requestURL := strings.TrimRight(c.config.BaseURL, "/") + "/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result models.NewsAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to parse news response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || result.Status == "error" {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       result.Code,
			Message:    result.Message,
		}
	}

	if result.Articles == nil {
		return []models.Article{}, nil
	}
	return result.Articles, nil
}
