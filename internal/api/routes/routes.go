package routes

import (
	"github.com/gin-gonic/gin"

	"ai-news-telegram-bot/internal/api/handlers"
)

func SetupRoutes(router *gin.Engine, healthHandler *handlers.HealthHandler, telegramHandler *handlers.TelegramHandler) {
	// Health check
	router.GET("/health", healthHandler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		telegram := v1.Group("/telegram")
		{
			telegram.GET("/health", telegramHandler.HealthCheck)
			telegram.GET("/info", telegramHandler.GetBotInfo)
		}
	}
}
