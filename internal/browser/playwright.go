package browser

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go-xscraper/internal/config"
	"go-xscraper/internal/dom"

	"github.com/playwright-community/playwright-go"
)

// Launcher opens one browser session per scrape from the loaded config.
type Launcher struct {
	cfg *config.Config
}

func NewLauncher(cfg *config.Config) *Launcher {
	return &Launcher{cfg: cfg}
}

// Session owns a Playwright driver, one Chromium process and a single page.
// Close must be called exactly once when the scrape is over, whatever the
// outcome; later calls are no-ops.
type Session struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	browserCtx playwright.BrowserContext
	page       playwright.Page

	settle          time.Duration
	navigateTimeout time.Duration
	queryTimeout    float64
	screenshots     *ScreenshotDebugger

	closeOnce sync.Once
	closeErr  error
}

func (l *Launcher) Open(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	s := &Session{
		pw:              pw,
		settle:          l.cfg.NavigateSettle,
		navigateTimeout: l.cfg.NavigateTimeout,
		queryTimeout:    float64(l.cfg.QueryTimeout.Milliseconds()),
		screenshots:     NewScreenshotDebugger(l.cfg.ScreenshotDir),
	}

	s.browser, err = pw.Chromium.Launch(launchOptions(l.cfg))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	s.browserCtx, err = s.browser.NewContext(contextOptions(l.cfg))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if err := ApplyStealth(s.browserCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("could not apply stealth script: %w", err)
	}

	if l.cfg.CookiesPath != "" {
		cookies, err := LoadCookies(l.cfg.CookiesPath)
		if err != nil {
			log.Printf("⚠️ Could not load cookies from %s: %v. Continuing logged out.", l.cfg.CookiesPath, err)
		} else if err := s.browserCtx.AddCookies(cookies); err != nil {
			log.Printf("⚠️ Could not add cookies: %v. Continuing logged out.", err)
		} else {
			log.Printf("🍪 Loaded %d cookies", len(cookies))
		}
	}

	s.page, err = s.browserCtx.NewPage()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	s.page.SetDefaultTimeout(s.queryTimeout)

	return s, nil
}

// Navigate loads url and then waits the settle period so client-side
// rendering can finish. Faults are logged and reported as false.
func (s *Session) Navigate(url string) bool {
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(s.navigateTimeout.Milliseconds())),
	}); err != nil {
		log.Printf("⚠️ Error navigating to %s: %v", url, err)
		s.screenshots.CaptureAndLog(s.page, "navigation-failed", "🚨 Navigation failed for "+url)
		return false
	}

	time.Sleep(s.settle)
	return true
}

func (s *Session) Root() dom.Node {
	return pageNode{page: s.page, timeout: s.queryTimeout}
}

func (s *Session) FindOne(selector string) (dom.Node, error) {
	return s.Root().FindOne(selector)
}

func (s *Session) FindAll(selector string) ([]dom.Node, error) {
	return s.Root().FindAll(selector)
}

// Page exposes the underlying tab for debugging and tests.
func (s *Session) Page() playwright.Page {
	return s.page
}

func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if s.page != nil {
			if err := s.page.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close page: %w", err))
			}
		}
		if s.browserCtx != nil {
			if err := s.browserCtx.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close context: %w", err))
			}
		}
		if s.browser != nil {
			if err := s.browser.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close browser: %w", err))
			}
		}
		if s.pw != nil {
			if err := s.pw.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("stop playwright: %w", err))
			}
		}
		if len(errs) > 0 {
			s.closeErr = errs[0]
			for _, err := range errs {
				log.Printf("⚠️ %v", err)
			}
		}
	})
	return s.closeErr
}
