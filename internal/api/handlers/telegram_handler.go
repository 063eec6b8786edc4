package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BotStatus is the part of the Telegram bot service the HTTP API reports on.
type BotStatus interface {
	Running() bool
	Companies() []string
}

type TelegramHandler struct {
	bot    BotStatus
	logger *logrus.Logger
}

func NewTelegramHandler(bot BotStatus, logger *logrus.Logger) *TelegramHandler {
	return &TelegramHandler{
		bot:    bot,
		logger: logger,
	}
}

// HealthCheck reports whether the polling loop is running
func (h *TelegramHandler) HealthCheck(c *gin.Context) {
	if !h.bot.Running() {
		h.logger.Debug("Telegram health check while polling is not running")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "starting",
			"service": "telegram-bot",
			"message": "Telegram bot is not polling",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "telegram-bot",
		"message": "Telegram bot is running",
	})
}

// GetBotInfo returns the commands and the company catalog of the bot
func (h *TelegramHandler) GetBotInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"service":   "telegram-bot",
		"running":   h.bot.Running(),
		"companies": h.bot.Companies(),
		"commands": []gin.H{
			{
				"command":     "/news",
				"description": "Latest artificial intelligence news",
			},
			{
				"command":     "/company <name>",
				"description": "Latest news about a company",
			},
			{
				"command":     "/deepseek",
				"description": "Latest news about DeepSeek",
			},
			{
				"command":     "/companies",
				"description": "List the supported companies",
			},
			{
				"command":     "/menu",
				"description": "Show the main menu",
			},
		},
	})
}
