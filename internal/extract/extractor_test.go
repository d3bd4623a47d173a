package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBM07/Career-Cortex/internal/models"
)

// fakeClient returns a canned response or error for every call.
type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) ChatJSON(_ context.Context, _, _ string) (string, error) {
	return f.response, f.err
}

const techCorpText = "Join TechCorp as Senior Python Developer working remotely from anywhere. Must know AWS, Docker."

const techCorpResponse = `{"company":"TechCorp","location_scraped":"Remote","is_remote":true,"job_type":"Full-time","seniority":"Senior","required_skills":["AWS","Docker","Python"]}`

func TestJobFieldsInference(t *testing.T) {
	e := New(&fakeClient{response: techCorpResponse})

	fields, mode := e.JobFields(context.Background(), techCorpText)

	assert.Equal(t, ModeInference, mode)
	assert.Equal(t, "TechCorp", fields.Company)
	assert.Equal(t, "Remote", fields.LocationScraped)
	assert.True(t, fields.IsRemote)
	assert.Equal(t, "Full-time", fields.JobType)
	assert.Equal(t, "Senior", fields.Seniority)
	assert.ElementsMatch(t, []string{"AWS", "Docker", "Python"}, fields.RequiredSkills)
}

func TestJobFieldsBackendUnreachable(t *testing.T) {
	e := New(&fakeClient{err: errors.New("connection refused")})

	fields, mode := e.JobFields(context.Background(), techCorpText)

	assert.Equal(t, ModeFallback, mode)
	//fallback still yields a complete record from defaults + taxonomy
	assert.Equal(t, models.DefaultCompany, fields.Company)
	assert.Equal(t, models.DefaultLocation, fields.LocationScraped)
	assert.False(t, fields.IsRemote)
	assert.Equal(t, models.DefaultJobType, fields.JobType)
	assert.ElementsMatch(t, []string{"Python", "Aws", "Docker"}, fields.RequiredSkills)
}

func TestJobFieldsSoftFailures(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"non-JSON response", "I could not process that request."},
		{"truncated JSON", `{"company":"TechCo`},
		{"missing required_skills", `{"company":"TechCorp","is_remote":true}`},
		{"empty required_skills", `{"company":"TechCorp","required_skills":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(&fakeClient{response: tt.response})
			_, mode := e.JobFields(context.Background(), techCorpText)
			assert.Equal(t, ModeFallback, mode)
		})
	}
}

func TestParseJobFieldsDefaults(t *testing.T) {
	fields, err := ParseJobFields(`{"required_skills":["Go"]}`)
	require.NoError(t, err)

	assert.Equal(t, models.DefaultCompany, fields.Company)
	assert.Equal(t, models.DefaultLocation, fields.LocationScraped)
	assert.Equal(t, models.DefaultJobType, fields.JobType)
	assert.Equal(t, models.DefaultSeniority, fields.Seniority)
	assert.False(t, fields.IsRemote)
	assert.Equal(t, []string{"Go"}, fields.RequiredSkills)
}

func TestParseJobFieldsIdempotent(t *testing.T) {
	//a fully-specified response parses to the same record every time;
	//present fields are never replaced by defaults
	direct, err := ParseJobFields(techCorpResponse)
	require.NoError(t, err)

	again, err := ParseJobFields(techCorpResponse)
	require.NoError(t, err)

	assert.Equal(t, direct, again)
	assert.Equal(t, "TechCorp", direct.Company)
	assert.Equal(t, "Senior", direct.Seniority)
}

func TestParseJobFieldsDedupesSkills(t *testing.T) {
	fields, err := ParseJobFields(`{"required_skills":["AWS","aws"," AWS ","Docker"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"AWS", "Docker"}, fields.RequiredSkills)
}

func TestSkills(t *testing.T) {
	t.Run("inference path", func(t *testing.T) {
		e := New(&fakeClient{response: `{"skills":["Python","React","python"]}`})
		skills, mode := e.Skills(context.Background(), "resume text")
		assert.Equal(t, ModeInference, mode)
		assert.Equal(t, []string{"Python", "React"}, skills)
	})

	t.Run("empty skills is a soft failure", func(t *testing.T) {
		e := New(&fakeClient{response: `{"skills":[]}`})
		skills, mode := e.Skills(context.Background(), "worked with terraform and jenkins")
		assert.Equal(t, ModeFallback, mode)
		assert.ElementsMatch(t, []string{"Terraform", "Jenkins"}, skills)
	})

	t.Run("backend error falls back", func(t *testing.T) {
		e := New(&fakeClient{err: errors.New("timeout")})
		skills, mode := e.Skills(context.Background(), "python and docker daily")
		assert.Equal(t, ModeFallback, mode)
		assert.ElementsMatch(t, []string{"Python", "Docker"}, skills)
	})
}
