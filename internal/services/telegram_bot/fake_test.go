package telegram_bot

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/telebot.v3"

	"ai-news-telegram-bot/internal/config"
)

// fakeContext overrides the telebot.Context methods the handlers use. Any
// other method panics through the nil embedded interface.
type fakeContext struct {
	telebot.Context

	args     []string
	callback *telebot.Callback
	editErr  error

	events  []string
	sent    []string
	edited  []string
	markups []*telebot.ReplyMarkup
}

func (f *fakeContext) Args() []string              { return f.args }
func (f *fakeContext) Callback() *telebot.Callback { return f.callback }
func (f *fakeContext) Text() string                { return "" }
func (f *fakeContext) Sender() *telebot.User       { return &telebot.User{ID: 42} }

func (f *fakeContext) Respond(resp ...*telebot.CallbackResponse) error {
	f.events = append(f.events, "respond")
	return nil
}

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.events = append(f.events, "send")
	f.sent = append(f.sent, fmt.Sprint(what))
	f.recordMarkup(opts)
	return nil
}

func (f *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	f.events = append(f.events, "edit")
	f.edited = append(f.edited, fmt.Sprint(what))
	f.recordMarkup(opts)
	return f.editErr
}

func (f *fakeContext) recordMarkup(opts []interface{}) {
	for _, opt := range opts {
		if markup, ok := opt.(*telebot.ReplyMarkup); ok {
			f.markups = append(f.markups, markup)
		}
	}
}

type fakeNews struct {
	mu      sync.Mutex
	queries []string
}

func (f *fakeNews) FetchText(ctx context.Context, query string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return "news:" + query
}

func (f *fakeNews) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func testNewsConfig() *config.NewsConfig {
	return &config.NewsConfig{
		Limit:        5,
		DefaultQuery: "artificial intelligence",
		Companies:    append([]string(nil), config.DefaultCompanies...),
	}
}

func newTestService(t *testing.T, bot *telebot.Bot) (*TelegramBotService, *fakeNews, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	news := &fakeNews{}
	svc := NewTelegramBotService(context.Background(), &config.TelegramConfig{}, testNewsConfig(), logger, news, bot)
	t.Cleanup(svc.cancel)
	return svc, news, hook
}

// layoutOf extracts the (text, payload) rows of a rendered inline keyboard.
func layoutOf(markup *telebot.ReplyMarkup) menuLayout {
	var layout menuLayout
	for _, row := range markup.InlineKeyboard {
		var buttons []menuButton
		for _, b := range row {
			buttons = append(buttons, menuButton{Text: b.Text, Payload: b.Data})
		}
		layout = append(layout, buttons)
	}
	return layout
}
