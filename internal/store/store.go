// Package store persists postings in the job_openings table.
//
// The unique index on job_url is the sole dedup key and the only
// coordination point between concurrent scrape workers; a constraint hit is
// the dedup signal, never an error.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IBM07/Career-Cortex/internal/models"
)

const uniqueViolationCode = "23505"

// ErrPostingNotFound is returned by MarkExtracted when no row matches the url.
var ErrPostingNotFound = errors.New("posting not found")

type Store struct {
	db *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Store{db: pool}, nil
}

func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// IsUniqueViolation reports whether err is a uniqueness-constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// InsertPosting saves a scraped posting. Inserting a url that already exists
// is a successful no-op; the returned bool reports whether a new row was
// created. Any other failure is a hard error.
func (s *Store) InsertPosting(ctx context.Context, p *models.Posting) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO job_openings (search_query, job_url, job_title, raw_description)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (job_url) DO NOTHING`,
		p.SearchQuery, p.URL, p.Title, p.RawText,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert posting: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// PendingPostings returns every posting still awaiting extraction.
func (s *Store) PendingPostings(ctx context.Context) ([]models.Posting, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, job_url, job_title, raw_description
		 FROM job_openings
		 WHERE is_extracted = FALSE`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending postings: %w", err)
	}
	defer rows.Close()

	var postings []models.Posting
	for rows.Next() {
		var p models.Posting
		if err := rows.Scan(&p.ID, &p.URL, &p.Title, &p.RawText); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

// MarkExtracted writes the extraction fields and flips is_extracted in one
// transaction: the flag is never set without the fields or vice versa.
func (s *Store) MarkExtracted(ctx context.Context, url string, fields *models.JobFields) error {
	skillsJSON, err := json.Marshal(fields.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE job_openings
		 SET company = $1,
		     location_scraped = $2,
		     is_remote = $3,
		     job_type = $4,
		     seniority = $5,
		     required_skills = $6,
		     is_extracted = TRUE
		 WHERE job_url = $7`,
		fields.Company, fields.LocationScraped, fields.IsRemote,
		fields.JobType, fields.Seniority, string(skillsJSON), url,
	)
	if err != nil {
		return fmt.Errorf("failed to update extraction fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("url %s: %w", url, ErrPostingNotFound)
	}

	return tx.Commit(ctx)
}
