package telegram_bot

import (
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func (t *TelegramBotService) RegisterMiddleware() {
	t.bot.Use(t.LoggingMiddleware)
	t.bot.Use(t.RecoverMiddleware())
}

func (t *TelegramBotService) LoggingMiddleware(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		now := time.Now()
		err := next(c)
		t.logger.WithFields(updateFields(c)).WithFields(logrus.Fields{
			"error":    err,
			"duration": time.Since(now),
		}).Debug("Processed update")

		return err
	}
}

func (t *TelegramBotService) RecoverMiddleware() telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					t.logger.WithFields(updateFields(c)).WithField("panic", r).Error("Recovered from panic")
					_ = c.Send(commonMessageInternalError)
				}
			}()
			return next(c)
		}
	}
}

func updateFields(c telebot.Context) logrus.Fields {
	fields := logrus.Fields{"message": c.Text()}
	if sender := c.Sender(); sender != nil {
		fields["user_id"] = sender.ID
	}
	if cb := c.Callback(); cb != nil {
		fields["callback"] = cb.Data
	}
	return fields
}
