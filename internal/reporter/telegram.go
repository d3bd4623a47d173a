// Package reporter pushes run summaries to Telegram so an unattended run
// can still be audited from a phone. Reporting is optional and best-effort:
// a missing token disables it and a send failure never fails the run.
package reporter

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/IBM07/Career-Cortex/internal/scraper"
)

type Reporter struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// New connects to the Telegram bot API. An empty token returns a nil
// reporter, which every method treats as "reporting disabled".
func New(token string, chatID int64) (*Reporter, error) {
	if token == "" {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	return &Reporter{api: api, chatID: chatID}, nil
}

// SendRunSummary reports per-source scrape counts for one run.
func (r *Reporter) SendRunSummary(results map[string]scraper.Stats) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 *Scrape run complete*\n\n")

	var totalFound, totalSaved int
	for name, stats := range results {
		sb.WriteString(fmt.Sprintf("*%s*\n", escapeMarkdown(name)))
		sb.WriteString(fmt.Sprintf("  🔍 Found: %d\n", stats.Found))
		sb.WriteString(fmt.Sprintf("  ✅ Saved: %d\n", stats.Saved))
		sb.WriteString(fmt.Sprintf("  ♻️ Duplicates: %d\n", stats.Duplicates))
		sb.WriteString(fmt.Sprintf("  ⏭️ Skipped: %d\n", stats.Skipped))
		sb.WriteString(fmt.Sprintf("  ⚠️ Failed: %d\n\n", stats.Failed))
		totalFound += stats.Found
		totalSaved += stats.Saved
	}
	sb.WriteString(fmt.Sprintf("Total: %d found, %d saved", totalFound, totalSaved))

	r.send(sb.String())
}

// SendExtractionSummary reports one extraction sweep.
func (r *Reporter) SendExtractionSummary(processed, extracted, fallback int) {
	if r == nil {
		return
	}
	msg := fmt.Sprintf("🧠 *Extraction sweep complete*\n\n  📄 Processed: %d\n  ✅ Structured: %d\n  ⚠️ Fallback: %d",
		processed, extracted, fallback)
	r.send(msg)
}

func (r *Reporter) send(text string) {
	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = "MarkdownV2"
	if _, err := r.api.Send(msg); err != nil {
		log.Printf("⚠️ Failed to send Telegram report: %v", err)
	}
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}
