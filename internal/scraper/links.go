package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/IBM07/Career-Cortex/internal/config"
	"github.com/IBM07/Career-Cortex/internal/dedup"
)

// Link is a discovered (title, url) candidate from a listing page.
type Link struct {
	Title string
	URL   string
}

var digitRegex = regexp.MustCompile(`\d`)

// FilterLinks extracts job-detail links from listing HTML. Candidate
// anchors pass when the path looks like a job detail page, the visible
// title is non-empty, the title matches a role keyword, and no deny-list
// keyword matches. Results are deduplicated on normalized absolute URL
// within the run.
func FilterLinks(html string, src config.SourceConfig, roles, excludeRoles []string) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []Link
	seen := dedup.NewURLSet()

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		fullURL := absoluteURL(src.BaseURL, href)
		if !pathLooksLikeJob(fullURL, src) {
			return
		}

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return
		}
		if !roleAllowed(title, roles, excludeRoles) {
			return
		}

		if !seen.Add(fullURL) {
			return
		}
		links = append(links, Link{Title: title, URL: dedup.NormalizeURL(fullURL)})
	})

	return links, nil
}

func absoluteURL(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + href
}

// pathLooksLikeJob applies the source's path-pattern rules: a required path
// segment, an optional numeric-identifier requirement, a minimum path
// depth, and exclusion substrings.
func pathLooksLikeJob(fullURL string, src config.SourceConfig) bool {
	if src.PathMustContain != "" && !strings.Contains(fullURL, src.PathMustContain) {
		return false
	}
	if src.RequireDigitInPath && !digitRegex.MatchString(fullURL) {
		return false
	}
	if src.MinPathDepth > 0 && strings.Count(fullURL, "/") < src.MinPathDepth {
		return false
	}
	for _, excluded := range src.PathExclude {
		if excluded != "" && strings.Contains(fullURL, excluded) {
			return false
		}
	}
	return true
}

// roleAllowed checks the title against the deny-list first, then requires
// at least one allow-list keyword (case-insensitive substring).
func roleAllowed(title string, roles, excludeRoles []string) bool {
	titleLower := strings.ToLower(title)

	for _, excluded := range excludeRoles {
		if excluded != "" && strings.Contains(titleLower, strings.ToLower(excluded)) {
			return false
		}
	}

	for _, role := range roles {
		if role != "" && strings.Contains(titleLower, strings.ToLower(role)) {
			return true
		}
	}
	return false
}
