package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BackendURL)
	assert.Equal(t, "https://x.com", cfg.SiteURL)
	assert.Equal(t, 60*time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.NavigateSettle)
	assert.Equal(t, time.Second, cfg.ClickSettle)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
backend_url: http://data-service:8080
poll_interval: 2m
click_settle: 250ms
show_browser: true
`)
	t.Setenv("BACKEND_URL", "http://override:9090")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://override:9090", cfg.BackendURL)
	assert.Equal(t, 2*time.Minute, cfg.PollInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.ClickSettle)
	assert.True(t, cfg.ShowBrowser)
	assert.True(t, cfg.TelegramEnabled())
	assert.Equal(t, int64(42), cfg.TelegramChatID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "bad yaml", yaml: "backend_url: [unclosed"},
		{name: "bad backend scheme", yaml: "backend_url: ftp://example.com"},
		{name: "negative settle", yaml: "navigate_settle: -1s"},
		{name: "bad poll interval env", env: map[string]string{"POLL_INTERVAL": "soon"}},
		{name: "token without chat", env: map[string]string{"TELEGRAM_BOT_TOKEN": "token"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_SampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2*time.Second, cfg.QueryTimeout)
}
