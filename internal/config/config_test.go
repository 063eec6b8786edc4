package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("NEWSAPI_KEY", "key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"COMPANY_LIST", "NEWS_LIMIT", "NEWSAPI_TIMEOUT", "NEWSAPI_BASE_URL", "NEWSAPI_LANGUAGE", "NEWS_DEFAULT_QUERY", "PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := NewsAPIConfig{
		APIKey:   "key",
		BaseURL:  "https://newsapi.org/v2",
		Language: "en",
		Timeout:  10 * time.Second,
	}
	if diff := cmp.Diff(want, cfg.NewsAPI); diff != "" {
		t.Errorf("NewsAPI mismatch (-want +got):\n%s", diff)
	}
	if cfg.News.Limit != 5 {
		t.Errorf("News.Limit = %d, want 5", cfg.News.Limit)
	}
	if cfg.News.DefaultQuery != "artificial intelligence" {
		t.Errorf("News.DefaultQuery = %q", cfg.News.DefaultQuery)
	}
	if diff := cmp.Diff(DefaultCompanies, cfg.News.Companies); diff != "" {
		t.Errorf("Companies mismatch (-want +got):\n%s", diff)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("Telegram.BotToken = %q", cfg.Telegram.BotToken)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("COMPANY_LIST", "OpenAI, Mistral ,")
	t.Setenv("NEWS_LIMIT", "3")
	t.Setenv("NEWSAPI_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff([]string{"OpenAI", "Mistral"}, cfg.News.Companies); diff != "" {
		t.Errorf("Companies mismatch (-want +got):\n%s", diff)
	}
	if cfg.News.Limit != 3 {
		t.Errorf("News.Limit = %d, want 3", cfg.News.Limit)
	}
	if cfg.NewsAPI.Timeout != 2*time.Second {
		t.Errorf("NewsAPI.Timeout = %v, want 2s", cfg.NewsAPI.Timeout)
	}
}

func TestLoadConfigMissingSecrets(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		key         string
		wantMissing []string
	}{
		{
			name:        "both missing",
			wantMissing: []string{"TELEGRAM_TOKEN", "NEWSAPI_KEY"},
		},
		{
			name:        "token missing",
			key:         "key",
			wantMissing: []string{"TELEGRAM_TOKEN"},
		},
		{
			name:        "key blank",
			token:       "123:abc",
			key:         "   ",
			wantMissing: []string{"NEWSAPI_KEY"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_TOKEN", tt.token)
			t.Setenv("NEWSAPI_KEY", tt.key)

			cfg, err := LoadConfig()
			if !errors.Is(err, ErrMissingSecret) {
				t.Fatalf("LoadConfig() error = %v, want ErrMissingSecret", err)
			}
			if cfg != nil {
				t.Errorf("LoadConfig() returned config on error")
			}
			for _, key := range tt.wantMissing {
				if !strings.Contains(err.Error(), key) {
					t.Errorf("error %q does not name %s", err, key)
				}
			}
		})
	}
}
