// Package scraper discovers job postings from configured boards.
//
// All boards share one adapter whose behavior — link filtering, noise
// phrases, scroll budget, navigation quirks — is supplied as data by
// config.SourceConfig rather than duplicated control flow per source.
package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/IBM07/Career-Cortex/internal/browser"
	"github.com/IBM07/Career-Cortex/internal/cleaner"
	"github.com/IBM07/Career-Cortex/internal/config"
)

// ErrContentTooShort marks a detail page whose cleaned text is too small to
// carry a real description — typically a page that failed to render.
var ErrContentTooShort = fmt.Errorf("cleaned content too short")

type Adapter struct {
	source       config.SourceConfig
	roles        []string
	excludeRoles []string
	debugger     *browser.ScreenshotDebugger
}

func NewAdapter(source config.SourceConfig, roles, excludeRoles []string) *Adapter {
	return &Adapter{
		source:       source,
		roles:        roles,
		excludeRoles: excludeRoles,
		debugger:     browser.NewScreenshotDebugger(),
	}
}

func (a *Adapter) Name() string {
	return a.source.Name
}

// DiscoverLinks loads the listing page (handling the manual-login step and
// cookie banner when the source needs them), drives incremental loading
// until the listing stops growing, and returns the filtered link set.
func (a *Adapter) DiscoverLinks(ctx context.Context, s browser.Session, query string) ([]Link, error) {
	if a.source.ManualLogin {
		if _, err := s.LoadPage(a.source.LoginURL); err != nil {
			return nil, fmt.Errorf("failed to open login page: %w", err)
		}
		if err := AwaitOperator(ctx, a.source.Name, operatorWait); err != nil {
			return nil, err
		}
	}

	listingURL := a.ListingURL(query)
	log.Printf("🔍 %s: loading listing %s", a.source.Name, listingURL)
	if _, err := s.LoadPage(listingURL); err != nil {
		return nil, fmt.Errorf("failed to load listing page: %w", err)
	}

	//accept the cookie banner if one appears
	if a.source.CookieBannerSelector != "" && s.ClickIfPresent(a.source.CookieBannerSelector) {
		log.Printf("    🍪 Cookie banner accepted")
	}

	pause := time.Duration(a.source.ScrollPauseSeconds) * time.Second
	if err := browser.ScrollUntilStable(ctx, s, a.source.MaxScrollAttempts, pause, a.source.ShowMoreSelector); err != nil {
		return nil, fmt.Errorf("incremental load failed: %w", err)
	}

	html, err := s.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to read listing DOM: %w", err)
	}

	links, err := FilterLinks(html, a.source, a.roles, a.excludeRoles)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	log.Printf("    📦 Found %d valid job links", len(links))
	return links, nil
}

// FetchAndClean navigates to a detail page, extracts its visible text, and
// strips the source's boilerplate. Returns ErrContentTooShort when the
// cleaned result cannot carry a real description.
func (a *Adapter) FetchAndClean(s browser.Session, link Link) (string, error) {
	if _, err := s.LoadPage(link.URL); err != nil {
		return "", err
	}

	text, err := s.VisibleText()
	if err != nil {
		return "", fmt.Errorf("failed to read page text: %w", err)
	}

	cleaned := cleaner.Clean(text, a.source.NoisePhrases)
	if len(cleaned) < a.source.MinCleanedLength {
		a.debugger.CaptureAndLog(s, "short-content", fmt.Sprintf("🚨 %s: insufficient content after cleaning: %s", a.source.Name, link.URL))
		return "", ErrContentTooShort
	}

	return cleaned, nil
}

// ListingURL builds the listing address from the role query and the
// source's configured search filters.
func (a *Adapter) ListingURL(query string) string {
	if query == "" && len(a.source.SearchFilters) == 0 {
		return a.source.ListingURL
	}

	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	for key, values := range a.source.SearchFilters {
		for _, v := range values {
			params.Add(key, v)
		}
	}

	if encoded := params.Encode(); encoded != "" {
		return a.source.ListingURL + "?" + encoded
	}
	return a.source.ListingURL
}
