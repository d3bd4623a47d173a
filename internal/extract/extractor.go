// Package extract turns raw posting or resume text into structured records.
//
// The structured path asks the inference backend for a schema-constrained
// JSON object; any failure there (backend unreachable, bad JSON, empty
// skills) is a soft failure recovered locally via the keyword fallback.
// Callers never see an error from this package.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/IBM07/Career-Cortex/internal/ai"
	"github.com/IBM07/Career-Cortex/internal/models"
)

// Mode reports which path produced a result.
type Mode string

const (
	ModeInference Mode = "inference"
	ModeFallback  Mode = "fallback"
)

type Extractor struct {
	client ai.Client
}

func New(client ai.Client) *Extractor {
	return &Extractor{client: client}
}

// JobFields extracts structured job fields from a posting description.
// Always returns a usable record: the fallback path fills defaults and runs
// the keyword taxonomy when the structured path soft-fails.
func (e *Extractor) JobFields(ctx context.Context, text string) (*models.JobFields, Mode) {
	fields, err := e.jobFieldsFromBackend(ctx, text)
	if err != nil {
		log.Printf("⚠️ Structured extraction failed, using fallback: %v", err)
		return fallbackJobFields(text), ModeFallback
	}
	return fields, ModeInference
}

// Skills extracts a normalized skill list from resume text (skills-only
// schema). Soft failures route to the fallback taxonomy.
func (e *Extractor) Skills(ctx context.Context, text string) ([]string, Mode) {
	skills, err := e.skillsFromBackend(ctx, text)
	if err != nil {
		log.Printf("⚠️ Skill extraction failed, using fallback: %v", err)
		return FallbackSkills(text), ModeFallback
	}
	return skills, ModeInference
}

func (e *Extractor) jobFieldsFromBackend(ctx context.Context, text string) (*models.JobFields, error) {
	raw, err := e.client.ChatJSON(ctx, ai.JobExtractionPrompt(), text)
	if err != nil {
		return nil, fmt.Errorf("backend call: %w", err)
	}
	return ParseJobFields(raw)
}

func (e *Extractor) skillsFromBackend(ctx context.Context, text string) ([]string, error) {
	raw, err := e.client.ChatJSON(ctx, ai.SkillExtractionPrompt(), text)
	if err != nil {
		return nil, fmt.Errorf("backend call: %w", err)
	}
	return ParseSkills(raw)
}

// ParseJobFields decodes a job-extraction response and validates it against
// the schema. Present fields are kept as-is; only missing optionals get
// defaults. A missing or empty required_skills array is a soft failure.
func ParseJobFields(raw string) (*models.JobFields, error) {
	var fields models.JobFields
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &fields); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}

	fields.RequiredSkills = NormalizeSkills(fields.RequiredSkills)
	if len(fields.RequiredSkills) == 0 {
		return nil, fmt.Errorf("response has no required_skills")
	}

	fields.FillDefaults()
	return &fields, nil
}

// skillsResponse is the skills-only schema variant.
type skillsResponse struct {
	Skills []string `json:"skills"`
}

// ParseSkills decodes a skills-only response. An empty skill list is a soft
// failure so the caller falls back to the taxonomy.
func ParseSkills(raw string) ([]string, error) {
	var resp skillsResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}

	skills := NormalizeSkills(resp.Skills)
	if len(skills) == 0 {
		return nil, fmt.Errorf("response has no skills")
	}
	return skills, nil
}

// fallbackJobFields builds a record entirely from documented defaults plus
// the offline taxonomy. A zero-skill result is still a valid record: the
// posting must leave the pending state once any extractor ran.
func fallbackJobFields(text string) *models.JobFields {
	fields := &models.JobFields{
		RequiredSkills: FallbackSkills(text),
	}
	fields.FillDefaults()
	return fields
}
