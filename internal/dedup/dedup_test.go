package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"https://example.com/jobs/123?ref=abc&track=1", "https://example.com/jobs/123"},
		{"https://example.com/jobs/123/", "https://example.com/jobs/123"},
		{"https://example.com/jobs/123", "https://example.com/jobs/123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeURL(tt.in))
	}
}

func TestURLSet(t *testing.T) {
	set := NewURLSet()

	assert.True(t, set.Add("https://example.com/jobs/123?utm=x"))
	//same posting behind different tracking params is a duplicate
	assert.False(t, set.Add("https://example.com/jobs/123?utm=y"))
	assert.True(t, set.Add("https://example.com/jobs/456"))
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("https://example.com/jobs/123"))
}

func TestSeenCachePersists(t *testing.T) {
	dir := t.TempDir()

	cache := NewSeenCache(dir)
	assert.False(t, cache.IsSeen("https://example.com/jobs/1"))
	cache.Add([]string{"https://example.com/jobs/1?ref=z"})
	assert.True(t, cache.IsSeen("https://example.com/jobs/1"))

	//reload from disk
	reloaded := NewSeenCache(dir)
	assert.True(t, reloaded.IsSeen("https://example.com/jobs/1"))
	assert.False(t, reloaded.IsSeen("https://example.com/jobs/2"))
}
