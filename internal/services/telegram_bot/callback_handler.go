package telegram_bot

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotService) callbackRoutes() map[string]callbackHandler {
	return map[string]callbackHandler{
		PayloadNews:          t.handleNews,
		PayloadDeepSeek:      t.handleDeepSeek,
		PayloadCompanies:     t.handleBtnCompanies,
		PayloadMainMenu:      t.handleBtnMainMenu,
		PayloadNewsMenu:      t.handleBtnNewsMenu,
		PayloadCompaniesMenu: t.handleBtnCompaniesMenu,
	}
}

// handleCallback acknowledges the press before anything else, then routes on
// the raw payload.
func (t *TelegramBotService) handleCallback(ctx context.Context, c telebot.Context) error {
	if err := c.Respond(); err != nil {
		t.logger.WithError(err).Warn("Failed to respond to callback")
	}

	var payload string
	if cb := c.Callback(); cb != nil {
		payload = strings.TrimSpace(cb.Data)
	}

	if handler, ok := t.callbacks[payload]; ok {
		return handler(ctx, c)
	}

	if name, ok := strings.CutPrefix(payload, PayloadCompanyPrefix); ok && name != "" {
		return t.handleBtnCompany(ctx, c, name)
	}

	t.logger.WithField("payload", payload).Warn("Unknown callback payload")
	return nil
}

func (t *TelegramBotService) handleBtnCompanies(ctx context.Context, c telebot.Context) error {
	return t.handleCompanies(c)
}

func (t *TelegramBotService) handleBtnMainMenu(ctx context.Context, c telebot.Context) error {
	return t.editMenu(c, messageMainMenu, MainMenu())
}

func (t *TelegramBotService) handleBtnNewsMenu(ctx context.Context, c telebot.Context) error {
	return t.editMenu(c, messageNewsMenu, NewsMenu())
}

func (t *TelegramBotService) handleBtnCompaniesMenu(ctx context.Context, c telebot.Context) error {
	return t.editMenu(c, messageChooseCompany, CompaniesMenu(t.newsConfig.Companies))
}

func (t *TelegramBotService) handleBtnCompany(ctx context.Context, c telebot.Context, name string) error {
	if err := t.editMenu(c, fmt.Sprintf(messageCompanyMenu, name), CompanyMenu(name)); err != nil {
		t.logger.WithError(err).WithField("company", name).Error("Failed to show company menu")
	}
	return c.Send(t.news.FetchText(ctx, name))
}
