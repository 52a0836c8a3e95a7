package homeworkbot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DenisBelikov/homework-bot/internal/history"
	"github.com/DenisBelikov/homework-bot/internal/server"
)

const defaultPollInterval = 600 * time.Second

// errorMessagePrefix starts every error report sent to the chat. The loop
// deduplicates on the full message text, prefix included.
const errorMessagePrefix = "Сбой в работе программы: "

// Fetcher retrieves homework statuses updated since the given cursor.
//
// Implementations issue one request per call and translate transport,
// HTTP-status and body-decoding failures into errors; they perform no
// retries and no shape validation. The production implementation lives
// in internal/practicum.
type Fetcher interface {
	FetchStatuses(ctx context.Context, from int64) (Response, error)
}

// Notifier delivers one message to the destination chat.
//
// Send reports delivery success. It must never propagate collaborator
// errors: the loop relies on non-propagation so that a broken chat
// connection cannot crash the very loop that needs to report it.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// Bot polls the homework-review API and forwards status changes to a chat.
//
// Bot is created using [New] with functional options and run with
// [Bot.Start]. The typical lifecycle is:
//
//	bot, err := homeworkbot.New(
//	    homeworkbot.WithFetcher(client),
//	    homeworkbot.WithNotifier(notifier),
//	)
//	if err != nil {
//	    slog.Error("failed to create bot", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	bot.Start(ctx) // blocks until context cancelled
//
// The caller controls the lifecycle via the context. Cancel the context to
// trigger graceful shutdown.
type Bot struct {
	fetcher    Fetcher
	notifier   Notifier
	interval   time.Duration
	logger     *slog.Logger
	log        history.Log
	statusPort int
	now        func() time.Time

	// mutable loop state; the poll loop is the only writer, the status
	// server reads through snapshot()
	mu        sync.Mutex
	cursor    int64
	lastError string
	startedAt time.Time
}

// New creates a new [Bot] with the given options.
//
// A fetcher and a notifier must be configured via [WithFetcher] and
// [WithNotifier]. Other options have sensible defaults:
//   - Poll interval: 600 seconds
//   - Logger: slog.Default()
//   - History: an in-memory log retaining recent deliveries
//   - Status server: disabled
//
// Returns an error if a required collaborator is missing or an option is
// invalid.
func New(opts ...Option) (*Bot, error) {
	cfg := &botConfig{
		interval: defaultPollInterval,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.fetcher == nil {
		return nil, errors.New("a fetcher is required")
	}
	if cfg.notifier == nil {
		return nil, errors.New("a notifier is required")
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	log := cfg.log
	if log == nil {
		log = history.NewMemoryLog()
	}

	return &Bot{
		fetcher:    cfg.fetcher,
		notifier:   cfg.notifier,
		interval:   cfg.interval,
		logger:     logger,
		log:        log,
		statusPort: cfg.statusPort,
		now:        time.Now,
	}, nil
}

// History returns the bot's notification log.
//
// Consumers can read recent deliveries or subscribe to observe them as
// they happen.
func (b *Bot) History() history.Log {
	return b.log
}

// Start begins polling the review API.
//
// Start is a blocking call that runs until the provided context is
// cancelled. During execution:
//
//   - The API is polled immediately, then at the configured interval
//   - Each status change is formatted and delivered to the chat
//   - Iteration failures are reported to the same chat, deduplicated by
//     error text so a persistent failure produces a single alert
//   - When a status port is configured, the status API server is started
//
// The wait between iterations is unconditional: it happens whether the
// iteration succeeded, failed or panicked. Returns nil on graceful
// shutdown. Returns an error only if the status server fails to start.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("bot starting", "interval", b.interval.String())

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	now := b.now()
	b.mu.Lock()
	b.startedAt = now
	b.cursor = now.Unix()
	b.mu.Unlock()

	if b.statusPort > 0 {
		srv := server.NewServer(b.snapshot, b.statusPort, b.logger)
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("failed to start status server: %w", err)
		}
		b.logger.Info("status server started", "port", b.statusPort)
	}

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		b.runIteration(ctx)

		select {
		case <-ctx.Done():
			b.logger.Info("bot stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// runIteration executes one poll cycle with panic recovery.
//
// If an iteration panics, the full stack trace is logged with a
// correlation ID and the loop proceeds to its normal wait.
func (b *Bot) runIteration(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			b.logger.Error("iteration panic",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := b.iterate(ctx); err != nil {
		b.reportError(ctx, err)
	}
}

// iterate performs the poll-validate-format-notify sequence of one cycle.
//
// The cursor advances to the reply's current_date only when the whole
// sequence succeeded and the key is present; any failure leaves it
// unchanged for the next attempt.
func (b *Bot) iterate(ctx context.Context) error {
	resp, err := b.fetcher.FetchStatuses(ctx, b.cursorValue())
	if err != nil {
		return err
	}

	records, err := CheckResponse(resp)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		b.logger.Debug("no new statuses")
	} else {
		// only the newest record is reported per cycle; the API returns
		// it first and re-returns older pending entries on later polls
		message, err := ParseStatus(records[0])
		if err != nil {
			return err
		}
		if b.notifier.Send(ctx, message) {
			b.log.Append(history.Entry{Kind: history.KindStatus, Text: message})
		}
	}

	if current, ok := resp.CurrentDate(); ok {
		b.setCursor(current)
	}
	return nil
}

// reportError forwards an iteration failure to the chat, suppressing
// repeats of the previously reported error text.
//
// lastError is updated only when delivery succeeded, so an undelivered
// report is retried on the next occurrence of the same failure.
func (b *Bot) reportError(ctx context.Context, err error) {
	message := errorMessagePrefix + err.Error()
	b.logger.Error("iteration failed", "error", err)

	if message == b.lastErrorValue() {
		b.logger.Debug("error already reported", "error", err)
		return
	}

	if b.notifier.Send(ctx, message) {
		b.setLastError(message)
		b.log.Append(history.Entry{Kind: history.KindError, Text: message})
	}
}

// snapshot assembles the current bot state for the status API server.
func (b *Bot) snapshot() server.Snapshot {
	b.mu.Lock()
	cursor := b.cursor
	lastError := b.lastError
	startedAt := b.startedAt
	b.mu.Unlock()

	return server.Snapshot{
		StartedAt: startedAt,
		Cursor:    cursor,
		LastError: lastError,
		History:   b.log.Recent(),
	}
}

func (b *Bot) cursorValue() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}

func (b *Bot) setCursor(v int64) {
	b.mu.Lock()
	b.cursor = v
	b.mu.Unlock()
}

func (b *Bot) lastErrorValue() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastError
}

func (b *Bot) setLastError(text string) {
	b.mu.Lock()
	b.lastError = text
	b.mu.Unlock()
}
