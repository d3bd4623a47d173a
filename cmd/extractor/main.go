package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/robfig/cron/v3"

	"github.com/IBM07/Career-Cortex/internal/ai"
	"github.com/IBM07/Career-Cortex/internal/config"
	"github.com/IBM07/Career-Cortex/internal/extract"
	"github.com/IBM07/Career-Cortex/internal/reporter"
	"github.com/IBM07/Career-Cortex/internal/store"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Model: %s @ %s", cfg.OllamaModel, cfg.OllamaHost)

	rep, err := reporter.New(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram reporting disabled: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer st.Close()

	client := ai.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel,
		time.Duration(cfg.InferenceTimeoutSeconds)*time.Second)
	ex := extract.New(client)

	if cfg.ExtractIntervalHours <= 0 {
		//one-shot sweep
		runSweep(ctx, st, ex, rep)
		return
	}

	//daemon mode: sweep immediately, then on a fixed interval
	log.Printf("⏰ Daemon mode: sweeping every %dh", cfg.ExtractIntervalHours)
	runSweep(ctx, st, ex, rep)

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %dh", cfg.ExtractIntervalHours), func() {
		runSweep(ctx, st, ex, rep)
	}); err != nil {
		log.Fatalf("❌ Failed to schedule sweep: %v", err)
	}
	c.Start()

	<-ctx.Done()
	log.Println("👋 Shutting down extractor daemon")
	<-c.Stop().Done()
}

// runSweep processes every pending posting. Each record is independent: a
// failed update is logged and skipped so one bad row never stalls the queue.
func runSweep(ctx context.Context, st *store.Store, ex *extract.Extractor, rep *reporter.Reporter) {
	pending, err := st.PendingPostings(ctx)
	if err != nil {
		log.Printf("❌ Failed to load pending postings: %v", err)
		return
	}
	if len(pending) == 0 {
		log.Println("✅ No pending postings")
		return
	}
	log.Printf("🧠 Extracting %d pending postings...", len(pending))

	var structured, fallback, failed int
	for _, p := range pending {
		if ctx.Err() != nil {
			log.Println("⏹️ Sweep cancelled")
			break
		}

		fields, mode := ex.JobFields(ctx, p.RawText)
		if err := st.MarkExtracted(ctx, p.URL, fields); err != nil {
			//server-side rejections and missing rows are per-record; anything
			//else means the connection is gone
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) || errors.Is(err, store.ErrPostingNotFound) {
				log.Printf("⚠️ Failed to update %s: %v", p.URL, err)
				failed++
				continue
			}
			log.Printf("❌ Database unavailable, aborting sweep: %v", err)
			break
		}

		if mode == extract.ModeInference {
			structured++
		} else {
			fallback++
		}
		log.Printf("  ✅ [%s] %s (%d skills)", mode, p.Title, len(fields.RequiredSkills))
	}

	log.Printf("📊 Sweep complete: %d structured, %d fallback, %d failed",
		structured, fallback, failed)
	rep.SendExtractionSummary(structured+fallback+failed, structured, fallback)
}
