package resume

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBM07/Career-Cortex/internal/extract"
)

type stubDecoder struct {
	text string
	err  error
}

func (d stubDecoder) DecodeText(r io.Reader) (string, error) { return d.text, d.err }

type stubBackend struct {
	response string
	err      error
}

func (b stubBackend) ChatJSON(ctx context.Context, systemPrompt, userText string) (string, error) {
	return b.response, b.err
}

const resumeText = `Senior backend engineer with eight years of experience
building distributed systems in Python and Go. Deployed services on AWS
with Docker and Kubernetes, PostgreSQL for persistence.`

func TestParseWithInferenceBackend(t *testing.T) {
	pipeline := NewPipeline(
		stubDecoder{text: resumeText},
		extract.New(stubBackend{response: `{"skills": ["Python", "Go", "AWS", "Docker"]}`}),
	)

	result := pipeline.Parse(context.Background(), strings.NewReader("pdf bytes"))

	assert.True(t, result.Success)
	assert.Equal(t, []string{"Python", "Go", "AWS", "Docker"}, result.Skills)
	assert.Contains(t, result.Message, "using AI")
}

func TestParseFallbackMessageIndicatesDegradedMode(t *testing.T) {
	pipeline := NewPipeline(
		stubDecoder{text: resumeText},
		extract.New(stubBackend{err: errors.New("connection refused")}),
	)

	result := pipeline.Parse(context.Background(), strings.NewReader("pdf bytes"))

	require.True(t, result.Success)
	assert.NotEmpty(t, result.Skills)
	//a degraded run must be distinguishable from a full one
	assert.Contains(t, result.Message, "fallback")
	assert.NotContains(t, result.Message, "using AI")
}

func TestParseRejectsShortText(t *testing.T) {
	atBoundary := strings.Repeat("a", 100)
	belowBoundary := strings.Repeat("a", 99)

	pipeline := NewPipeline(
		stubDecoder{text: belowBoundary},
		extract.New(stubBackend{response: `{"skills": ["Go"]}`}),
	)
	result := pipeline.Parse(context.Background(), strings.NewReader("pdf bytes"))
	assert.False(t, result.Success)
	assert.Empty(t, result.Skills)
	assert.Contains(t, result.Message, "too short")

	pipeline = NewPipeline(
		stubDecoder{text: atBoundary},
		extract.New(stubBackend{response: `{"skills": ["Go"]}`}),
	)
	result = pipeline.Parse(context.Background(), strings.NewReader("pdf bytes"))
	assert.True(t, result.Success)
}

func TestParseRejectsFailedDecode(t *testing.T) {
	pipeline := NewPipeline(
		stubDecoder{err: errors.New("not a PDF")},
		extract.New(stubBackend{response: `{"skills": ["Go"]}`}),
	)

	result := pipeline.Parse(context.Background(), strings.NewReader("junk"))

	assert.False(t, result.Success)
	assert.Empty(t, result.Skills)
	assert.Contains(t, result.Message, "Failed to extract text")
}

func TestParseFailsWhenNothingFound(t *testing.T) {
	noSkills := strings.Repeat("career objective and hobbies ", 10)
	pipeline := NewPipeline(
		stubDecoder{text: noSkills},
		extract.New(stubBackend{err: errors.New("connection refused")}),
	)

	result := pipeline.Parse(context.Background(), strings.NewReader("pdf bytes"))

	assert.False(t, result.Success)
	assert.Empty(t, result.Skills)
	assert.Contains(t, result.Message, "no skills found")
}
