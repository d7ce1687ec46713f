// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values and validate

package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	//Collaborators
	BackendURL string `yaml:"backend_url" env:"BACKEND_URL"`
	SiteURL    string `yaml:"site_url" env:"SITE_URL"`

	//Timing
	PollInterval    time.Duration `yaml:"poll_interval" env:"POLL_INTERVAL"`
	NavigateSettle  time.Duration `yaml:"navigate_settle"`
	ClickSettle     time.Duration `yaml:"click_settle"`
	NavigateTimeout time.Duration `yaml:"navigate_timeout"`
	QueryTimeout    time.Duration `yaml:"query_timeout"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"`

	//Browser
	ShowBrowser   bool   `yaml:"show_browser" env:"SHOW_BROWSER"`
	UserAgent     string `yaml:"user_agent"`
	CookiesPath   string `yaml:"cookies_path" env:"COOKIES_PATH"`
	ScreenshotDir string `yaml:"screenshot_dir" env:"SCREENSHOT_DIR"`

	//Notifications, optional
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads path (a missing file is not an error), applies environment
// overrides and defaults, then validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config with every default applied and nothing loaded.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("SITE_URL"); v != "" {
		c.SiteURL = v
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid POLL_INTERVAL: %w", err)
		}
		c.PollInterval = d
	}
	if v := os.Getenv("SHOW_BROWSER"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SHOW_BROWSER: %w", err)
		}
		c.ShowBrowser = show
	}
	if v := os.Getenv("COOKIES_PATH"); v != "" {
		c.CookiesPath = v
	}
	if v := os.Getenv("SCREENSHOT_DIR"); v != "" {
		c.ScreenshotDir = v
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.BackendURL == "" {
		c.BackendURL = "http://localhost:8080"
	}
	if c.SiteURL == "" {
		c.SiteURL = "https://x.com"
	}
	if c.PollInterval == 0 {
		c.PollInterval = 60 * time.Second
	}
	if c.NavigateSettle == 0 {
		c.NavigateSettle = 5 * time.Second
	}
	if c.ClickSettle == 0 {
		c.ClickSettle = time.Second
	}
	if c.NavigateTimeout == 0 {
		c.NavigateTimeout = 30 * time.Second
	}
	if c.QueryTimeout == 0 {
		c.QueryTimeout = 2 * time.Second
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 15 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
}

func (c *Config) Validate() error {
	if err := validateURL("backend_url", c.BackendURL); err != nil {
		return err
	}
	if err := validateURL("site_url", c.SiteURL); err != nil {
		return err
	}

	durations := map[string]time.Duration{
		"poll_interval":    c.PollInterval,
		"navigate_settle":  c.NavigateSettle,
		"click_settle":     c.ClickSettle,
		"navigate_timeout": c.NavigateTimeout,
		"query_timeout":    c.QueryTimeout,
		"http_timeout":     c.HTTPTimeout,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, d)
		}
	}
	if c.PollInterval == 0 {
		return errors.New("poll_interval must be positive")
	}

	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return errors.New("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return nil
}

// TelegramEnabled reports whether cycle notifications should be sent.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != ""
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: scheme must be http or https", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s %q: missing host", name, raw)
	}
	return nil
}
