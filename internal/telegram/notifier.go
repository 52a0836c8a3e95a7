package telegram

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

// defaultSendTimeout bounds each outbound Telegram call so a hung
// connection cannot stall the poll loop indefinitely.
const defaultSendTimeout = 30 * time.Second

// api is the slice of the telebot surface the notifier uses.
// It exists so tests can substitute a fake for *tele.Bot.
type api interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Notifier delivers messages to a single Telegram chat.
//
// Notifier performs one outbound call per [Notifier.Send] invocation and
// never retries; retrying is handled by the poll loop's outer cadence.
type Notifier struct {
	bot  api
	chat *tele.Chat
	log  *slog.Logger
}

// New creates a [Notifier] for the given bot token and destination chat.
//
// Constructing the underlying bot verifies the token against the Telegram
// API, so startup fails fast on a bad credential. Returns an error if the
// token is empty or the bot cannot be created.
func New(token string, chatID int64, log *slog.Logger) (*Notifier, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	if log == nil {
		log = slog.Default()
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Client: &http.Client{Timeout: defaultSendTimeout},
	})
	if err != nil {
		return nil, err
	}

	return &Notifier{
		bot:  bot,
		chat: &tele.Chat{ID: chatID},
		log:  log,
	}, nil
}

// Send delivers text to the configured chat and reports delivery success.
//
// Collaborator errors (transport failures, API-level rejections) are
// logged at error level and swallowed: Send returns false instead of
// propagating, so a broken chat connection cannot crash the poll loop.
func (n *Notifier) Send(ctx context.Context, text string) bool {
	if err := ctx.Err(); err != nil {
		n.log.Error("message not sent", slog.Int64("chat_id", n.chat.ID), slog.Any("err", err))
		return false
	}

	if _, err := n.bot.Send(n.chat, text); err != nil {
		n.log.Error("message delivery failed", slog.Int64("chat_id", n.chat.ID), slog.Any("err", err))
		return false
	}

	n.log.Debug("message sent", slog.Int64("chat_id", n.chat.ID), slog.String("text", text))
	return true
}
