// Package homeworkbot provides a long-running poller for the
// Yandex.Practicum homework-review API that forwards human-readable
// status-change notifications to a Telegram chat.
//
// The bot is designed as an SDK-first library: collaborators are injected
// via the functional options pattern, so the polling loop can be driven by
// the real HTTP client and Telegram notifier in production and by fakes in
// tests.
//
// # Quick Start
//
// Create a bot and run it with graceful shutdown:
//
//	bot, _ := homeworkbot.New(
//	    homeworkbot.WithFetcher(client),
//	    homeworkbot.WithNotifier(notifier),
//	)
//
//	// Set up graceful shutdown on SIGINT/SIGTERM
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	bot.Start(ctx) // blocks until context is cancelled
//
// # Polling Loop
//
// Each cycle the bot fetches homework statuses updated since its cursor,
// validates the reply shape with [CheckResponse], renders the newest record
// with [ParseStatus], and delivers the resulting sentence via the
// configured [Notifier]. Failures inside a cycle never stop the loop: the
// error text is sent to the same chat, deduplicated against the previously
// reported error so a persistent failure produces a single alert.
//
// # Architecture
//
// The repository consists of several internal packages (under internal/):
//
//   - internal/practicum: HTTP client for the review API
//   - internal/telegram: Telegram notifier built on telebot
//   - internal/history: In-memory notification log with pub/sub
//   - internal/server: Optional status API server
//
// The internal packages are not part of the public API and may change
// without notice.
package homeworkbot
