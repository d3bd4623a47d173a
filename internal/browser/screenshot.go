package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotDebugger captures full-page screenshots when a page fails to
// render usable content, so empty-extraction skips can be diagnosed later.
type ScreenshotDebugger struct {
	outputDir string
}

func NewScreenshotDebugger() *ScreenshotDebugger {
	return &ScreenshotDebugger{outputDir: filepath.Join(".", "logs", "screenshots")}
}

// CaptureAndLog saves a screenshot of the session's page if the session is
// playwright-backed; for fakes it only logs the message.
func (d *ScreenshotDebugger) CaptureAndLog(s Session, name, message string) error {
	log.Printf("📸 %s", message)

	page := Page(s)
	if page == nil {
		return nil
	}

	if err := os.MkdirAll(d.outputDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create screenshot directory: %v", err)
		return err
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(d.outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", path)
	return nil
}
