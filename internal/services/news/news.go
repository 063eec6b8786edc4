package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"ai-news-telegram-bot/internal/config"
	"ai-news-telegram-bot/internal/models"
)

const (
	Bullet = "•"

	untitledTitle      = "Без названия"
	messageNoNews      = "Нет свежих новостей по теме: %s"
	messageFetchFailed = "❌ Не удалось получить новости, попробуйте позже."
)

// Searcher looks up articles for a free text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Article, error)
}

type Service struct {
	cfg      *config.NewsConfig
	logger   *logrus.Logger
	searcher Searcher
}

func NewService(cfg *config.NewsConfig, logger *logrus.Logger, searcher Searcher) *Service {
	return &Service{
		cfg:      cfg,
		logger:   logger,
		searcher: searcher,
	}
}

// Fetch runs a single search for query and classifies the outcome. It never
// retries and never returns an error; failures are logged and carried in the
// result.
func (s *Service) Fetch(ctx context.Context, query string) models.FetchResult {
	articles, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Error("Failed to fetch news")
		return models.FetchResult{Kind: models.FetchFailure, Query: query, Err: err}
	}

	if len(articles) > s.cfg.Limit {
		articles = articles[:s.cfg.Limit]
	}
	if len(articles) == 0 {
		return models.FetchResult{Kind: models.FetchEmpty, Query: query}
	}

	return models.FetchResult{Kind: models.FetchResults, Query: query, Articles: articles}
}

// FetchText is Fetch followed by Format.
func (s *Service) FetchText(ctx context.Context, query string) string {
	return Format(s.Fetch(ctx, query))
}

// Format renders a fetch result as the chat message text.
func Format(result models.FetchResult) string {
	switch result.Kind {
	case models.FetchResults:
		var sb strings.Builder
		for _, article := range result.Articles {
			title := article.Title
			if title == "" {
				title = untitledTitle
			}
			sb.WriteString(fmt.Sprintf("%s %s\n%s\n\n", Bullet, title, article.URL))
		}
		return sb.String()
	case models.FetchEmpty:
		return fmt.Sprintf(messageNoNews, result.Query)
	default:
		return messageFetchFailed
	}
}
