// Command example demonstrates driving the homeworkbot SDK with custom
// collaborators: a canned fetcher instead of the real review API and a
// stdout notifier instead of Telegram. Run it with:
//
//	go run ./example
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	homeworkbot "github.com/DenisBelikov/homework-bot"
)

// cannedFetcher replays a fixed API reply on every poll.
type cannedFetcher struct{}

func (cannedFetcher) FetchStatuses(ctx context.Context, from int64) (homeworkbot.Response, error) {
	return homeworkbot.NewResponse(map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "example_project", "status": "approved"},
		},
		"current_date": time.Now().Unix(),
	}), nil
}

// stdoutNotifier prints messages instead of sending them to a chat.
type stdoutNotifier struct{}

func (stdoutNotifier) Send(ctx context.Context, text string) bool {
	fmt.Println(">>", text)
	return true
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	bot, err := homeworkbot.New(
		homeworkbot.WithFetcher(cannedFetcher{}),
		homeworkbot.WithNotifier(stdoutNotifier{}),
		homeworkbot.WithPollInterval(5*time.Second),
		homeworkbot.WithLogger(logger),
		homeworkbot.WithStatusPort(8080),
	)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Status snapshot available at http://localhost:8080/api/status
	if err := bot.Start(ctx); err != nil {
		logger.Error("bot error", "error", err)
		os.Exit(1)
	}
}
