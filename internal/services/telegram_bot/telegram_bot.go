package telegram_bot

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"ai-news-telegram-bot/internal/config"
)

// ErrAlreadyRunning is returned by Start when the polling loop of this
// process has already been started.
var ErrAlreadyRunning = errors.New("telegram bot polling already running")

// NewsFetcher returns the chat-ready news text for a query.
type NewsFetcher interface {
	FetchText(ctx context.Context, query string) string
}

type callbackHandler func(ctx context.Context, c telebot.Context) error

type TelegramBotService struct {
	bot        *telebot.Bot
	config     *config.TelegramConfig
	newsConfig *config.NewsConfig
	logger     *logrus.Logger
	news       NewsFetcher
	callbacks  map[string]callbackHandler
	running    atomic.Bool
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewTelegramBotService(ctx context.Context, cfg *config.TelegramConfig, newsConfig *config.NewsConfig, logger *logrus.Logger, news NewsFetcher, bot *telebot.Bot) *TelegramBotService {
	ctx, cancel := context.WithCancel(ctx)

	service := &TelegramBotService{
		bot:        bot,
		config:     cfg,
		newsConfig: newsConfig,
		logger:     logger,
		news:       news,
		ctx:        ctx,
		cancel:     cancel,
	}
	service.callbacks = service.callbackRoutes()

	return service
}

// Start registers the handlers and runs the long polling loop until Stop is
// called. Only the first call in a process does anything; later calls log a
// warning and return ErrAlreadyRunning.
func (t *TelegramBotService) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		t.logger.Warn("Polling already active, skipping duplicate start")
		return ErrAlreadyRunning
	}

	t.RegisterMiddleware()
	t.registerHandlers()

	t.logger.Info("Starting Telegram bot long polling")
	t.bot.Start()
	return nil
}

// Running reports whether Start has claimed the polling loop.
func (t *TelegramBotService) Running() bool {
	return t.running.Load()
}

// Companies returns the catalog offered in the company menu.
func (t *TelegramBotService) Companies() []string {
	return t.newsConfig.Companies
}

func (t *TelegramBotService) Stop() {
	t.logger.Info("Stopping Telegram bot...")

	t.cancel()

	if !t.running.Load() {
		t.logger.Info("Telegram bot was not polling")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopDone := make(chan struct{})
	go func() {
		t.bot.Stop()
		close(stopDone)
	}()

	select {
	case <-stopDone:
		t.logger.Info("Telegram bot stopped successfully")
	case <-ctx.Done():
		t.logger.Warn("Timeout while stopping bot, forcing shutdown")
	}
}
