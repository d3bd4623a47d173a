// Package cleaner strips per-source boilerplate from scraped page text.
package cleaner

import "strings"

// Clean removes every occurrence of each noise substring (exact match, not
// regex), then collapses all whitespace runs, newlines included, into single
// spaces and trims the result. Pure function.
func Clean(raw string, noise []string) string {
	cleaned := raw
	for _, phrase := range noise {
		if phrase == "" {
			continue
		}
		cleaned = strings.ReplaceAll(cleaned, phrase, " ")
	}
	return strings.Join(strings.Fields(cleaned), " ")
}
