package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBM07/Career-Cortex/internal/config"
	"github.com/IBM07/Career-Cortex/internal/models"
)

// stubSession serves canned listing HTML and per-URL detail text.
type stubSession struct {
	listingHTML string
	pages       map[string]string
	current     string
}

func (s *stubSession) LoadPage(url string) (string, error) {
	s.current = url
	return url, nil
}

func (s *stubSession) HTML() (string, error) { return s.listingHTML, nil }

func (s *stubSession) VisibleText() (string, error) {
	text, ok := s.pages[s.current]
	if !ok {
		return "", errors.New("page load failed")
	}
	return text, nil
}

func (s *stubSession) CurrentHeight() (int, error) { return 100, nil }

func (s *stubSession) ScrollToBottom() error { return nil }

func (s *stubSession) ClickIfPresent(sel string) bool { return false }

func (s *stubSession) CurrentURL() string { return s.current }

type stubStore struct {
	inserted  []*models.Posting
	duplicate map[string]bool
	failWith  map[string]error
}

func (s *stubStore) InsertPosting(ctx context.Context, p *models.Posting) (bool, error) {
	if err, ok := s.failWith[p.URL]; ok {
		return false, err
	}
	if s.duplicate[p.URL] {
		return false, nil
	}
	s.inserted = append(s.inserted, p)
	return true, nil
}

func testSource() config.SourceConfig {
	return config.SourceConfig{
		Name:               "YC Scraper",
		BaseURL:            "https://www.workatastartup.com",
		PathMustContain:    "/jobs/",
		RequireDigitInPath: true,
		MinCleanedLength:   20,
		MaxScrollAttempts:  1,
	}
}

const listingHTML = `
<html><body>
	<a href="/jobs/1">Backend Engineer</a>
	<a href="/jobs/2">Frontend Engineer</a>
	<a href="/jobs/3">Platform Engineer</a>
</body></html>`

func TestWorkerRunSavesCleanPostings(t *testing.T) {
	session := &stubSession{
		listingHTML: listingHTML,
		pages: map[string]string{
			"https://www.workatastartup.com/jobs/1": "Backend role building Go services at scale",
			"https://www.workatastartup.com/jobs/2": "Frontend role shipping React dashboards daily",
			"https://www.workatastartup.com/jobs/3": "too short",
		},
	}
	store := &stubStore{}
	worker := NewWorker(NewAdapter(testSource(), []string{"engineer"}, nil), store, nil)

	stats, err := worker.Run(context.Background(), session, "engineer")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 2, stats.Saved)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)

	require.Len(t, store.inserted, 2)
	assert.Equal(t, "engineer", store.inserted[0].SearchQuery)
	assert.Equal(t, "Backend Engineer", store.inserted[0].Title)
	assert.Equal(t, "https://www.workatastartup.com/jobs/1", store.inserted[0].URL)
}

func TestWorkerRunCountsDuplicates(t *testing.T) {
	session := &stubSession{
		listingHTML: listingHTML,
		pages: map[string]string{
			"https://www.workatastartup.com/jobs/1": "Backend role building Go services at scale",
			"https://www.workatastartup.com/jobs/2": "Frontend role shipping React dashboards daily",
			"https://www.workatastartup.com/jobs/3": "Platform role running Kubernetes infrastructure",
		},
	}
	store := &stubStore{duplicate: map[string]bool{
		"https://www.workatastartup.com/jobs/2": true,
	}}
	worker := NewWorker(NewAdapter(testSource(), []string{"engineer"}, nil), store, nil)

	stats, err := worker.Run(context.Background(), session, "engineer")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Saved)
	assert.Equal(t, 1, stats.Duplicates)
}

func TestWorkerRunContinuesPastServerRejection(t *testing.T) {
	session := &stubSession{
		listingHTML: listingHTML,
		pages: map[string]string{
			"https://www.workatastartup.com/jobs/1": "Backend role building Go services at scale",
			"https://www.workatastartup.com/jobs/2": "Frontend role shipping React dashboards daily",
			"https://www.workatastartup.com/jobs/3": "Platform role running Kubernetes infrastructure",
		},
	}
	store := &stubStore{failWith: map[string]error{
		"https://www.workatastartup.com/jobs/2": &pgconn.PgError{Code: "22001", Message: "value too long"},
	}}
	worker := NewWorker(NewAdapter(testSource(), []string{"engineer"}, nil), store, nil)

	stats, err := worker.Run(context.Background(), session, "engineer")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Saved)
	assert.Equal(t, 1, stats.Failed)
}

func TestWorkerRunAbortsWhenDatabaseUnavailable(t *testing.T) {
	session := &stubSession{
		listingHTML: listingHTML,
		pages: map[string]string{
			"https://www.workatastartup.com/jobs/1": "Backend role building Go services at scale",
		},
	}
	store := &stubStore{failWith: map[string]error{
		"https://www.workatastartup.com/jobs/1": errors.New("connection refused"),
	}}
	worker := NewWorker(NewAdapter(testSource(), []string{"engineer"}, nil), store, nil)

	_, err := worker.Run(context.Background(), session, "engineer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestWorkerRunCountsFetchFailures(t *testing.T) {
	session := &stubSession{
		listingHTML: listingHTML,
		pages: map[string]string{
			"https://www.workatastartup.com/jobs/1": "Backend role building Go services at scale",
			// jobs/2 and jobs/3 have no text at all
		},
	}
	store := &stubStore{}
	worker := NewWorker(NewAdapter(testSource(), []string{"engineer"}, nil), store, nil)

	stats, err := worker.Run(context.Background(), session, "engineer")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Saved)
	assert.Equal(t, 2, stats.Failed)
}
