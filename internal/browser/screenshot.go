package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotDebugger handles debug screenshots. A nil debugger does nothing.
type ScreenshotDebugger struct {
	outputDir string
}

// NewScreenshotDebugger returns nil when dir is empty, which disables capturing.
func NewScreenshotDebugger(dir string) *ScreenshotDebugger {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create screenshot directory: %v", err)
		return nil
	}
	return &ScreenshotDebugger{
		outputDir: dir,
	}
}

func (s *ScreenshotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	if s == nil || page == nil {
		return nil
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", name, timestamp)
	path := filepath.Join(s.outputDir, filename)
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", path)
	return nil
}
