package telegram_bot

import (
	"gopkg.in/telebot.v3"
)

func (t *TelegramBotService) registerHandlers() {
	// Command handlers
	t.bot.Handle("/start", t.handleStart)
	t.bot.Handle("/help", t.handleHelp)
	t.bot.Handle("/menu", t.handleMenu)
	t.bot.Handle("/news", t.WithContext(t.handleNews))
	t.bot.Handle("/company", t.WithContext(t.handleCompany))
	t.bot.Handle("/deepseek", t.WithContext(t.handleDeepSeek))
	t.bot.Handle("/companies", t.handleCompanies)

	// Every inline button carries a raw payload, dispatched by handleCallback
	t.bot.Handle(telebot.OnCallback, t.WithContext(t.handleCallback))
}

func (t *TelegramBotService) handleStart(c telebot.Context) error {
	return c.Send(messageWelcome, MainMenu())
}

func (t *TelegramBotService) handleHelp(c telebot.Context) error {
	return c.Send(formatMessageHelp())
}

func (t *TelegramBotService) handleMenu(c telebot.Context) error {
	return c.Send(messageMainMenu, MainMenu())
}

func (t *TelegramBotService) handleCompanies(c telebot.Context) error {
	return c.Send(t.formatMessageCompanyList())
}
