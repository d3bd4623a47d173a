package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/IBM07/Career-Cortex/internal/browser"
	"github.com/IBM07/Career-Cortex/internal/dedup"
	"github.com/IBM07/Career-Cortex/internal/models"
)

// Ingestor is the slice of the store a worker needs.
type Ingestor interface {
	InsertPosting(ctx context.Context, p *models.Posting) (bool, error)
}

// Stats summarizes one source run.
type Stats struct {
	Found      int
	Saved      int
	Duplicates int
	Skipped    int
	Failed     int
}

// Worker runs one source end to end: discover links, fetch and clean each
// detail page, persist the raw postings.
type Worker struct {
	adapter *Adapter
	store   Ingestor
	cache   *dedup.SeenCache
}

func NewWorker(adapter *Adapter, store Ingestor, cache *dedup.SeenCache) *Worker {
	return &Worker{adapter: adapter, store: store, cache: cache}
}

// Run scrapes one query against the worker's source. Per-record database
// rejections are counted and skipped; a database error that is not a
// server-side rejection means the connection is gone and aborts the run.
func (w *Worker) Run(ctx context.Context, s browser.Session, query string) (Stats, error) {
	var stats Stats

	links, err := w.adapter.DiscoverLinks(ctx, s, query)
	if err != nil {
		return stats, fmt.Errorf("%s: discovery failed: %w", w.adapter.Name(), err)
	}
	stats.Found = len(links)

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if w.cache != nil && w.cache.IsSeen(link.URL) {
			stats.Duplicates++
			continue
		}

		text, err := w.adapter.FetchAndClean(s, link)
		if err != nil {
			if errors.Is(err, ErrContentTooShort) {
				stats.Skipped++
			} else {
				log.Printf("    ⚠️ %s: failed to fetch %s: %v", w.adapter.Name(), link.URL, err)
				stats.Failed++
			}
			continue
		}

		posting := &models.Posting{
			SearchQuery: query,
			Title:       link.Title,
			URL:         link.URL,
			RawText:     text,
		}

		inserted, err := w.store.InsertPosting(ctx, posting)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				log.Printf("    ⚠️ %s: database rejected %s: %v", w.adapter.Name(), link.URL, err)
				stats.Failed++
				continue
			}
			return stats, fmt.Errorf("%s: database unavailable: %w", w.adapter.Name(), err)
		}

		if inserted {
			stats.Saved++
			log.Printf("    ✅ Saved: %s", link.Title)
		} else {
			stats.Duplicates++
		}
		if w.cache != nil {
			w.cache.Add([]string{link.URL})
		}
	}

	return stats, nil
}
