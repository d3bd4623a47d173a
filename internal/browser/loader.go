package browser

import (
	"context"
	"log"
	"time"
)

// ScrollUntilStable repeatedly scrolls the page to the bottom until the
// content height stops growing or maxAttempts is exhausted, pausing between
// attempts so asynchronous content can render. When the height looks stable
// it performs one confirmatory extra scroll to rule out a transient stall
// before declaring convergence. If showMoreSelector is non-empty, a visible
// "show more" affordance is clicked best-effort after each scroll.
//
// It only drives loading; link extraction happens elsewhere.
func ScrollUntilStable(ctx context.Context, s Session, maxAttempts int, pause time.Duration, showMoreSelector string) error {
	lastHeight, err := s.CurrentHeight()
	if err != nil {
		return err
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		height, err := loadMore(ctx, s, pause, showMoreSelector)
		if err != nil {
			return err
		}

		if height == lastHeight {
			//confirmatory extra attempt before declaring convergence
			height, err = loadMore(ctx, s, pause, showMoreSelector)
			if err != nil {
				return err
			}
			if height == lastHeight {
				log.Printf("    Scroll complete after %d attempt(s) - all content loaded", attempt)
				return nil
			}
		}
		lastHeight = height
		log.Printf("    Scroll iteration %d/%d", attempt, maxAttempts)
	}

	log.Printf("    Scroll budget (%d) exhausted", maxAttempts)
	return nil
}

// loadMore performs a single scroll-pause-probe cycle.
func loadMore(ctx context.Context, s Session, pause time.Duration, showMoreSelector string) (int, error) {
	if err := s.ScrollToBottom(); err != nil {
		return 0, err
	}
	if err := sleep(ctx, pause); err != nil {
		return 0, err
	}
	if showMoreSelector != "" && s.ClickIfPresent(showMoreSelector) {
		if err := sleep(ctx, pause); err != nil {
			return 0, err
		}
	}
	return s.CurrentHeight()
}

// sleep pauses for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
