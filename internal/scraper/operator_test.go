package scraper

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitConfirmationProceedsOnEnter(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\n")

	err := awaitConfirmation(context.Background(), in, &out, "Wellfound Scraper", time.Second)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "manual login")
}

func TestAwaitConfirmationTimesOut(t *testing.T) {
	var out bytes.Buffer
	in := blockingReader{}

	err := awaitConfirmation(context.Background(), in, &out, "Wellfound Scraper", 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrOperatorTimeout)
}

func TestAwaitConfirmationCancelled(t *testing.T) {
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := awaitConfirmation(ctx, blockingReader{}, &out, "Wellfound Scraper", time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

// blockingReader never produces input, like an operator who walked away.
type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {}
}
