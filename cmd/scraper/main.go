package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/IBM07/Career-Cortex/internal/browser"
	"github.com/IBM07/Career-Cortex/internal/config"
	"github.com/IBM07/Career-Cortex/internal/dedup"
	"github.com/IBM07/Career-Cortex/internal/reporter"
	"github.com/IBM07/Career-Cortex/internal/scraper"
	"github.com/IBM07/Career-Cortex/internal/store"
)

func main() {
	query := flag.String("query", "software engineer", "search query recorded with each posting")
	flag.Parse()

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Sources: %d, roles: %v", len(cfg.Sources), cfg.Roles)

	//init telegram reporter (optional)
	rep, err := reporter.New(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram reporting disabled: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Minute)
	defer cancelTimeout()

	log.Println("🚀 Starting Career Cortex scraper...")

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer st.Close()

	//init playwright manager
	pwManager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer pwManager.Close()
	log.Println("✅ Browser initialized successfully!")

	cache := dedup.NewSeenCache(cfg.CachePath)

	//run sources sequentially, one fresh session per source
	results := make(map[string]scraper.Stats)
	for _, src := range cfg.Sources {
		log.Printf("\n▶️ Starting source: %s", src.Name)

		var cookies []playwright.OptionalCookie
		if src.CookiesFile != "" {
			cookies, err = browser.LoadCookies(src.CookiesFile)
			if err != nil {
				log.Printf("⚠️ Could not load %s cookies: %v. Continuing.", src.Name, err)
			} else {
				log.Printf("🍪 Loaded %s cookies (%d)", src.Name, len(cookies))
				//a restored session substitutes for the manual login
				src.ManualLogin = false
			}
		}

		session, err := pwManager.NewSession(cookies)
		if err != nil {
			log.Printf("❌ Failed to create session for %s: %v", src.Name, err)
			continue
		}

		worker := scraper.NewWorker(scraper.NewAdapter(src, cfg.Roles, cfg.ExcludeRoles), st, cache)
		stats, err := worker.Run(ctx, session, *query)
		results[src.Name] = stats
		if err != nil {
			log.Printf("❌ Source %s aborted: %v", src.Name, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		log.Printf("✅ Source %s finished. Found %d, saved %d, duplicates %d, skipped %d, failed %d",
			src.Name, stats.Found, stats.Saved, stats.Duplicates, stats.Skipped, stats.Failed)
	}

	var totalSaved int
	for _, stats := range results {
		totalSaved += stats.Saved
	}
	log.Printf("\n📦 Run complete. %d new postings saved.", totalSaved)

	rep.SendRunSummary(results)
}
