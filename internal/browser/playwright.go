package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightManager owns the playwright driver and browser process.
// Construct once per run, release with Close on every exit path.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewPlaywright starts the driver and launches a Chromium instance.
func NewPlaywright(headless bool) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	chromium, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args:     []string{"--window-size=1920,1080"},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return &PlaywrightManager{pw: pw, browser: chromium}, nil
}

// NewSession opens a fresh browser context and page, preloaded with the
// given cookies (pass nil for a clean session).
func (pm *PlaywrightManager) NewSession(cookies []playwright.OptionalCookie) (Session, error) {
	browserCtx, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if len(cookies) > 0 {
		if err := browserCtx.AddCookies(cookies); err != nil {
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	return &pageSession{page: page}, nil
}

// Close releases the browser and stops the driver.
func (pm *PlaywrightManager) Close() error {
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			return err
		}
	}
	if pm.pw != nil {
		return pm.pw.Stop()
	}
	return nil
}

// pageSession adapts a playwright.Page to the Session interface.
type pageSession struct {
	page playwright.Page
}

func (s *pageSession) LoadPage(url string) (string, error) {
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return "", fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	return s.page.Content()
}

func (s *pageSession) HTML() (string, error) {
	return s.page.Content()
}

func (s *pageSession) VisibleText() (string, error) {
	return s.page.Locator("body").InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(10000),
	})
}

func (s *pageSession) CurrentHeight() (int, error) {
	result, err := s.page.Evaluate("document.body.scrollHeight")
	if err != nil {
		return 0, err
	}
	switch v := result.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("unexpected height type %T", result)
	}
}

func (s *pageSession) ScrollToBottom() error {
	_, err := s.page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}

func (s *pageSession) ClickIfPresent(selector string) bool {
	loc := s.page.Locator(selector).First()
	visible, err := loc.IsVisible()
	if err != nil || !visible {
		return false
	}
	if err := loc.Click(playwright.LocatorClickOptions{
		Force:   playwright.Bool(true),
		Timeout: playwright.Float(2000),
	}); err != nil {
		return false
	}
	return true
}

func (s *pageSession) CurrentURL() string {
	return s.page.URL()
}

// Page exposes the underlying playwright page for diagnostics (screenshots).
// Returns nil for non-playwright sessions.
func Page(s Session) playwright.Page {
	if ps, ok := s.(*pageSession); ok {
		return ps.page
	}
	return nil
}
