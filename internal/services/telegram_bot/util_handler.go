package telegram_bot

import (
	"context"
	"errors"
	"time"

	"gopkg.in/telebot.v3"
)

const handlerTimeout = time.Minute

func (t *TelegramBotService) WithContext(handler func(ctx context.Context, c telebot.Context) error) func(c telebot.Context) error {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(t.ctx, handlerTimeout)
		defer cancel()

		return handler(ctx, c)
	}
}

// editMenu replaces the pressed message with text and markup. Pressing the
// button of the menu already shown is not an error.
func (t *TelegramBotService) editMenu(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	err := c.Edit(text, markup)
	if errors.Is(err, telebot.ErrSameMessageContent) || errors.Is(err, telebot.ErrMessageNotModified) {
		return nil
	}
	return err
}
