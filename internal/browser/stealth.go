package browser

import (
	"go-xscraper/internal/config"

	"github.com/playwright-community/playwright-go"
)

// Launch flags that remove the most obvious automation signals.
var stealthArgs = []string{
	"--disable-blink-features=AutomationControlled",
	"--disable-dev-shm-usage",
	"--no-sandbox",
}

// stealthScript runs before any page script in every frame.
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
window.chrome = window.chrome || { runtime: {} };
`

func launchOptions(cfg *config.Config) playwright.BrowserTypeLaunchOptions {
	return playwright.BrowserTypeLaunchOptions{
		Headless:          playwright.Bool(!cfg.ShowBrowser),
		Args:              stealthArgs,
		IgnoreDefaultArgs: []string{"--enable-automation"},
	}
}

func contextOptions(cfg *config.Config) playwright.BrowserNewContextOptions {
	return playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(cfg.UserAgent),
		Locale:    playwright.String("en-US"),
		Viewport: &playwright.Size{
			Width:  1366,
			Height: 768,
		},
	}
}

// ApplyStealth installs the init script on every page of bctx.
func ApplyStealth(bctx playwright.BrowserContext) error {
	return bctx.AddInitScript(playwright.Script{
		Content: playwright.String(stealthScript),
	})
}
