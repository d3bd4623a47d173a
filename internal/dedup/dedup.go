package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// NormalizeURL strips the query string and trailing slash so tracking
// parameters don't make the same posting look like different URLs.
func NormalizeURL(rawURL string) string {
	if idx := strings.Index(rawURL, "?"); idx != -1 {
		rawURL = rawURL[:idx]
	}
	return strings.TrimSuffix(rawURL, "/")
}

// URLSet tracks normalized URLs discovered within a single run.
type URLSet struct {
	seen mapset.Set[string]
}

func NewURLSet() *URLSet {
	return &URLSet{seen: mapset.NewThreadUnsafeSet[string]()}
}

// Add records url and reports whether it was new.
func (u *URLSet) Add(rawURL string) bool {
	return u.seen.Add(NormalizeURL(rawURL))
}

func (u *URLSet) Contains(rawURL string) bool {
	return u.seen.Contains(NormalizeURL(rawURL))
}

func (u *URLSet) Len() int {
	return u.seen.Cardinality()
}

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// SeenCache is a persistent file-backed record of URLs already navigated in
// previous runs, used to skip pointless detail-page fetches. It is purely an
// optimization: the store's unique index remains the correctness mechanism.
type SeenCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewSeenCache creates or loads the cache; entries older than thirty days
// are dropped on load.
func NewSeenCache(cacheDir string) *SeenCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &SeenCache{
		filePath: filepath.Join(cacheDir, "seen_postings.json"),
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen checks if a URL was already processed in a previous run.
func (c *SeenCache) IsSeen(rawURL string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.seen[NormalizeURL(rawURL)]
	return exists
}

// Add marks urls as seen and persists the cache if anything changed.
func (c *SeenCache) Add(urls []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, rawURL := range urls {
		key := NormalizeURL(rawURL)
		if _, exists := c.seen[key]; !exists {
			c.seen[key] = now
			changed = true
		}
	}

	if changed {
		c.save()
	}
}

func (c *SeenCache) load() {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_postings.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_postings.json: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			c.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen postings (%d expired and removed)", loaded, len(entries)-loaded)
}

func (c *SeenCache) save() {
	entries := make([]seenEntry, 0, len(c.seen))
	for url, ts := range c.seen {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen postings: %v", err)
		return
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_postings.json: %v", err)
	}
}
