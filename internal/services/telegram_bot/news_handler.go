package telegram_bot

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotService) handleNews(ctx context.Context, c telebot.Context) error {
	if err := c.Send(messageCollectingNews); err != nil {
		t.logger.WithError(err).Error("Failed to send initial message")
		return err
	}
	return c.Send(t.news.FetchText(ctx, t.newsConfig.DefaultQuery))
}

func (t *TelegramBotService) handleCompany(ctx context.Context, c telebot.Context) error {
	query := joinArgs(c.Args())
	if query == "" {
		return c.Send(messageCompanyUsage)
	}
	return t.sendTopicNews(ctx, c, query)
}

func (t *TelegramBotService) handleDeepSeek(ctx context.Context, c telebot.Context) error {
	return t.sendTopicNews(ctx, c, deepSeekQuery)
}

// sendTopicNews acknowledges the query, then sends the news for it.
func (t *TelegramBotService) sendTopicNews(ctx context.Context, c telebot.Context, query string) error {
	if err := c.Send(fmt.Sprintf(messageSearchingTopic, query)); err != nil {
		t.logger.WithError(err).Error("Failed to send initial message")
		return err
	}
	return c.Send(t.news.FetchText(ctx, query))
}

// joinArgs joins command arguments with single spaces, dropping the empty
// ones telebot yields for repeated spaces.
func joinArgs(args []string) string {
	return strings.Join(strings.Fields(strings.Join(args, " ")), " ")
}
