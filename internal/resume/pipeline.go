package resume

import (
	"context"
	"fmt"
	"io"

	"github.com/IBM07/Career-Cortex/internal/extract"
)

// minResumeLength rejects decodes that clearly did not capture a full
// resume, such as a scanned PDF with no text layer.
const minResumeLength = 100

// Result reports one parse attempt. Message is human-readable and always
// states whether the skills came from the inference backend or the keyword
// fallback, so a degraded run is never mistaken for a full one.
type Result struct {
	Success bool
	Skills  []string
	Message string
}

// Pipeline decodes a resume document and extracts its technical skills.
type Pipeline struct {
	decoder   TextDecoder
	extractor *extract.Extractor
}

func NewPipeline(decoder TextDecoder, ex *extract.Extractor) *Pipeline {
	return &Pipeline{decoder: decoder, extractor: ex}
}

// Parse runs the full decode-validate-extract sequence on one document.
func (p *Pipeline) Parse(ctx context.Context, r io.Reader) Result {
	text, err := p.decoder.DecodeText(r)
	if err != nil || text == "" {
		return Result{Skills: []string{}, Message: "Failed to extract text from document"}
	}

	if len(text) < minResumeLength {
		return Result{Skills: []string{}, Message: "Resume text too short - please upload a complete resume"}
	}

	skills, mode := p.extractor.Skills(ctx, text)

	if mode == extract.ModeInference {
		return Result{
			Success: true,
			Skills:  skills,
			Message: fmt.Sprintf("✅ Extracted %d skills using AI", len(skills)),
		}
	}

	if len(skills) > 0 {
		return Result{
			Success: true,
			Skills:  skills,
			Message: fmt.Sprintf("⚠️ Inference unavailable - extracted %d skills using keyword fallback", len(skills)),
		}
	}

	return Result{Skills: []string{}, Message: "❌ Inference unavailable and no skills found in fallback"}
}
