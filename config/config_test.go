package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setCredentials populates the three required credentials for tests that
// exercise other parts of the config.
func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv(EnvPracticumToken, "practicum-secret")
	t.Setenv(EnvTelegramToken, "telegram-secret")
	t.Setenv(EnvTelegramChatID, "123456789")
}

func TestParse_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Endpoint != defaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, defaultEndpoint)
	}
	if cfg.PollInterval.Duration() != 600*time.Second {
		t.Errorf("PollInterval = %v, want 600s", cfg.PollInterval.Duration())
	}
	if cfg.Timeout.Duration() != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout.Duration())
	}
	if cfg.StatusPort != 0 {
		t.Errorf("StatusPort = %d, want 0", cfg.StatusPort)
	}
	if cfg.Practicum.Token != "practicum-secret" {
		t.Errorf("Practicum.Token = %q, want the env value", cfg.Practicum.Token)
	}
	if cfg.ChatID() != 123456789 {
		t.Errorf("ChatID() = %d, want 123456789", cfg.ChatID())
	}
}

func TestParse_ExplicitValues(t *testing.T) {
	setCredentials(t)

	cfg, err := Parse([]byte(`
endpoint: https://api.example.com/statuses/
poll_interval: 30s
timeout: 5s
status_port: 8080
practicum:
  token: inline-practicum
telegram:
  token: inline-telegram
  chat_id: "-100200300"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Endpoint != "https://api.example.com/statuses/" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.PollInterval.Duration() != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval.Duration())
	}
	if cfg.StatusPort != 8080 {
		t.Errorf("StatusPort = %d, want 8080", cfg.StatusPort)
	}
	// inline credentials win over the environment
	if cfg.Practicum.Token != "inline-practicum" {
		t.Errorf("Practicum.Token = %q, want inline value", cfg.Practicum.Token)
	}
	if cfg.ChatID() != -100200300 {
		t.Errorf("ChatID() = %d, want -100200300", cfg.ChatID())
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	setCredentials(t)
	t.Setenv("API_HOST", "api.example.com")

	cfg, err := Parse([]byte(`
endpoint: https://${API_HOST}/statuses/
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Endpoint != "https://api.example.com/statuses/" {
		t.Errorf("Endpoint = %q, want the expanded value", cfg.Endpoint)
	}
}

func TestParse_EnvDefault(t *testing.T) {
	setCredentials(t)
	os.Unsetenv("UNSET_HOST_FOR_TEST")

	cfg, err := Parse([]byte(`
endpoint: https://${UNSET_HOST_FOR_TEST:-fallback.example.com}/statuses/
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Endpoint != "https://fallback.example.com/statuses/" {
		t.Errorf("Endpoint = %q, want the fallback value", cfg.Endpoint)
	}
}

func TestParse_UnsetEndpointVar(t *testing.T) {
	setCredentials(t)
	os.Unsetenv("UNSET_HOST_FOR_TEST")

	_, err := Parse([]byte(`
endpoint: https://${UNSET_HOST_FOR_TEST}/statuses/
`))
	if err == nil {
		t.Fatal("Parse() succeeded with an unset endpoint variable, want error")
	}
}

func TestParse_MissingCredentialsEnumerated(t *testing.T) {
	for _, env := range []string{EnvPracticumToken, EnvTelegramToken, EnvTelegramChatID} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	_, err := Parse(nil)
	if err == nil {
		t.Fatal("Parse() succeeded without credentials, want error")
	}
	// all three are named in one error
	for _, env := range []string{EnvPracticumToken, EnvTelegramToken, EnvTelegramChatID} {
		if !strings.Contains(err.Error(), env) {
			t.Errorf("error %q does not name %s", err, env)
		}
	}
}

func TestParse_PartialCredentials(t *testing.T) {
	t.Setenv(EnvPracticumToken, "present")
	t.Setenv(EnvTelegramToken, "present")
	t.Setenv(EnvTelegramChatID, "")
	os.Unsetenv(EnvTelegramChatID)

	_, err := Parse(nil)
	if err == nil {
		t.Fatal("Parse() succeeded without chat_id, want error")
	}
	if !strings.Contains(err.Error(), EnvTelegramChatID) {
		t.Errorf("error %q does not name %s", err, EnvTelegramChatID)
	}
	if strings.Contains(err.Error(), EnvPracticumToken) {
		t.Errorf("error %q names a credential that is present", err)
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad endpoint scheme", "endpoint: ftp://example.com/"},
		{"interval too small", "poll_interval: 500ms"},
		{"negative port", "status_port: -1"},
		{"port too large", "status_port: 70000"},
		{"bad duration", "poll_interval: not-a-duration"},
		{"non-numeric chat id", "telegram:\n  chat_id: abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCredentials(t)
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.yaml)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	setCredentials(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "poll_interval: 2m\nstatus_port: 9090\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PollInterval.Duration() != 2*time.Minute {
		t.Errorf("PollInterval = %v, want 2m", cfg.PollInterval.Duration())
	}
	if cfg.StatusPort != 9090 {
		t.Errorf("StatusPort = %d, want 9090", cfg.StatusPort)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded, want error")
	}
}

func TestDefault(t *testing.T) {
	setCredentials(t)

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if cfg.Endpoint != defaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, defaultEndpoint)
	}
}
