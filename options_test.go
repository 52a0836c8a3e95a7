package homeworkbot

import (
	"testing"
	"time"
)

func TestWithFetcher_Nil(t *testing.T) {
	if _, err := New(WithFetcher(nil), WithNotifier(&fakeNotifier{})); err == nil {
		t.Error("New() with nil fetcher succeeded, want error")
	}
}

func TestWithNotifier_Nil(t *testing.T) {
	if _, err := New(WithFetcher(&fakeFetcher{}), WithNotifier(nil)); err == nil {
		t.Error("New() with nil notifier succeeded, want error")
	}
}

func TestWithPollInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		wantErr  bool
	}{
		{"valid", 30 * time.Second, false},
		{"zero", 0, true},
		{"negative", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, err := New(
				WithFetcher(&fakeFetcher{}),
				WithNotifier(&fakeNotifier{}),
				WithPollInterval(tt.interval),
			)
			if tt.wantErr {
				if err == nil {
					t.Errorf("New() with interval %v succeeded, want error", tt.interval)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if bot.interval != tt.interval {
				t.Errorf("interval = %v, want %v", bot.interval, tt.interval)
			}
		})
	}
}

func TestWithStatusPort(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"valid", 8080, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", 70000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(
				WithFetcher(&fakeFetcher{}),
				WithNotifier(&fakeNotifier{}),
				WithStatusPort(tt.port),
			)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	bot, err := New(WithFetcher(&fakeFetcher{}), WithNotifier(&fakeNotifier{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if bot.interval != defaultPollInterval {
		t.Errorf("interval = %v, want %v", bot.interval, defaultPollInterval)
	}
	if bot.logger == nil {
		t.Error("logger is nil, want a default")
	}
	if bot.log == nil {
		t.Error("history log is nil, want a default")
	}
	if bot.statusPort != 0 {
		t.Errorf("statusPort = %d, want 0 (disabled)", bot.statusPort)
	}
}
