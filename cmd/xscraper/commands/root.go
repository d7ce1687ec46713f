package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-xscraper/internal/backend"
	"go-xscraper/internal/browser"
	"go-xscraper/internal/config"
	"go-xscraper/internal/scraper"
	"go-xscraper/internal/telegram"
	"go-xscraper/internal/worker"

	"github.com/spf13/cobra"
)

var configPath *string

var rootCmd = &cobra.Command{
	Use:   "xscraper",
	Short: "xscraper scrapes public X profiles and forwards their posts to the backend.",
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log.Printf("🔧 Config loaded. Backend: %s, site: %s", cfg.BackendURL, cfg.SiteURL)
	return cfg, nil
}

// newWorker wires the browser, backend client and optional Telegram bot.
func newWorker(cfg *config.Config) *worker.Worker {
	launcher := browser.NewLauncher(cfg)
	open := func(ctx context.Context) (worker.Session, error) {
		session, err := launcher.Open(ctx)
		if err != nil {
			return nil, err
		}
		return session, nil
	}

	var opts []worker.Option
	if cfg.TelegramEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram Bot, continuing without it: %v", err)
		} else {
			log.Println("🤖 Telegram Bot initialized.")
			opts = append(opts, worker.WithNotifier(bot))
		}
	}

	client := backend.NewClient(cfg.BackendURL, cfg.HTTPTimeout)
	return worker.New(client, open, scraper.NewXScraper(cfg), cfg.PollInterval, opts...)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
