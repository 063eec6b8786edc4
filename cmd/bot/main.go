package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"ai-news-telegram-bot/internal/api/handlers"
	"ai-news-telegram-bot/internal/api/routes"
	"ai-news-telegram-bot/internal/config"
	"ai-news-telegram-bot/internal/services/news"
	"ai-news-telegram-bot/internal/services/newsapi"
	"ai-news-telegram-bot/internal/services/telegram_bot"
	"ai-news-telegram-bot/internal/utils"
)

func main() {
	ctxCancel, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	hostName, _ := os.Hostname()
	logger.WithFields(logrus.Fields{
		"start_time": time.Now().Format(time.RFC3339),
		"host":       hostName,
		"pid":        os.Getpid(),
	}).Info("Bot started")
	defer logger.WithField("pid", os.Getpid()).Info("Bot is shutting down")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	logrusLevel, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.WithError(err).Fatal("Failed to parse log level")
	}

	logger.SetLevel(logrusLevel)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	pref := telebot.Settings{
		Token:  cfg.Telegram.BotToken,
		Poller: &telebot.LongPoller{Timeout: cfg.Telegram.PollTimeout},
		OnError: func(err error, c telebot.Context) {
			logger.WithError(err).Error("Telegram bot error")
		},
	}

	bot, err := telebot.NewBot(pref)
	if err != nil {
		logger.WithError(err).Fatal("failed to create telegram bot")
	}

	// Initialize services
	newsAPIClient := newsapi.NewClient(&cfg.NewsAPI)
	newsService := news.NewService(&cfg.News, logger, newsAPIClient)
	telegramService := telegram_bot.NewTelegramBotService(ctxCancel, &cfg.Telegram, &cfg.News, logger, newsService, bot)

	// Setup routes
	routes.SetupRoutes(router, handlers.NewHealthHandler(), handlers.NewTelegramHandler(telegramService, logger))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	utils.SafeGo(logger, func() {
		logger.Info("Starting Telegram bot...")
		if err := telegramService.Start(); err != nil {
			logger.WithError(err).Warn("Telegram bot not started")
		}
	})

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	cancel()

	telegramDone := make(chan struct{})
	go func() {
		telegramService.Stop()
		close(telegramDone)
	}()

	select {
	case <-telegramDone:
	case <-time.After(15 * time.Second):
		logger.Warn("Timeout waiting for Telegram bot to stop, proceeding with server shutdown")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("HTTP server shutdown completed successfully")
	}
}
