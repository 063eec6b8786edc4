package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"ai-news-telegram-bot/internal/utils"
)

// ErrMissingSecret is returned by LoadConfig when a required secret is blank.
var ErrMissingSecret = errors.New("missing required secret")

// DefaultCompanies is the company catalog offered in the selection menu
// unless COMPANY_LIST overrides it. Order is display order.
var DefaultCompanies = []string{
	"OpenAI",
	"NVIDIA",
	"Google DeepMind",
	"Microsoft",
	"Amazon",
	"Meta",
	"Anthropic",
	"DeepSeek",
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	NewsAPI  NewsAPIConfig  `mapstructure:"newsapi"`
	News     NewsConfig     `mapstructure:"news"`
	Log      LogConfig      `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Port string
	Env  string
}

type TelegramConfig struct {
	BotToken    string
	PollTimeout time.Duration
}

type NewsAPIConfig struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

type NewsConfig struct {
	Limit        int
	DefaultQuery string
	Companies    []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TELEGRAM_POLL_TIMEOUT", 10*time.Second)
	v.SetDefault("NEWSAPI_BASE_URL", "https://newsapi.org/v2")
	v.SetDefault("NEWSAPI_LANGUAGE", "en")
	v.SetDefault("NEWSAPI_TIMEOUT", 10*time.Second)
	v.SetDefault("NEWS_LIMIT", 5)
	v.SetDefault("NEWS_DEFAULT_QUERY", "artificial intelligence")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		logrus.WithError(err).Debug("Failed to read config file .env, reading from environment variables")
	}

	companies := utils.SplitAndTrim(v.GetString("COMPANY_LIST"), ",")
	if len(companies) == 0 {
		companies = append([]string(nil), DefaultCompanies...)
	}

	limit := v.GetInt("NEWS_LIMIT")
	if limit <= 0 {
		limit = 5
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Telegram: TelegramConfig{
			BotToken:    strings.TrimSpace(v.GetString("TELEGRAM_TOKEN")),
			PollTimeout: v.GetDuration("TELEGRAM_POLL_TIMEOUT"),
		},
		NewsAPI: NewsAPIConfig{
			APIKey:   strings.TrimSpace(v.GetString("NEWSAPI_KEY")),
			BaseURL:  v.GetString("NEWSAPI_BASE_URL"),
			Language: v.GetString("NEWSAPI_LANGUAGE"),
			Timeout:  v.GetDuration("NEWSAPI_TIMEOUT"),
		},
		News: NewsConfig{
			Limit:        limit,
			DefaultQuery: v.GetString("NEWS_DEFAULT_QUERY"),
			Companies:    companies,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Telegram.BotToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.NewsAPI.APIKey == "" {
		missing = append(missing, "NEWSAPI_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSecret, strings.Join(missing, ", "))
	}
	return nil
}
