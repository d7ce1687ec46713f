package commands

import (
	"fmt"

	"go-xscraper/internal/browser"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Loads the config and cookie jar and prints what would be used.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("🔧 Testing config loading...")
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("✅ Config loaded successfully!\n")
		fmt.Printf("   Backend URL: %s\n", cfg.BackendURL)
		fmt.Printf("   Site URL: %s\n", cfg.SiteURL)
		fmt.Printf("   Poll interval: %v\n", cfg.PollInterval)
		fmt.Printf("   Show browser: %t\n", cfg.ShowBrowser)
		fmt.Printf("   Telegram enabled: %t\n", cfg.TelegramEnabled())

		if cfg.CookiesPath == "" {
			fmt.Println("🍪 No cookie jar configured, scraping logged out.")
			return nil
		}

		cookies, err := browser.LoadCookies(cfg.CookiesPath)
		if err != nil {
			return fmt.Errorf("load cookies: %w", err)
		}
		fmt.Printf("🍪 Loaded %d cookies from %s\n", len(cookies), cfg.CookiesPath)

		//print first cookie as example, value masked
		if len(cookies) > 0 {
			c := cookies[0]
			fmt.Printf("   Name: %s\n", c.Name)
			if c.Domain != nil {
				fmt.Printf("   Domain: %s\n", *c.Domain)
			}
			fmt.Printf("   Secure: %t\n", c.Secure != nil && *c.Secure)
		}
		return nil
	},
}
