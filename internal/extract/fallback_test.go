package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackSkills(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "matches are title-cased in first-seen taxonomy order",
			text:     "Experienced with Docker and PostgreSQL, some Python.",
			expected: []string{"Python", "Postgresql", "Docker"},
		},
		{
			name:     "repeated keyword appears once",
			text:     "Docker docker DOCKER everywhere, docker compose too",
			expected: []string{"Docker"},
		},
		{
			name:     "case-insensitive substring match",
			text:     "we run KUBERNETES clusters on aws",
			expected: []string{"Aws", "Kubernetes"},
		},
		{
			name:     "multi-word keywords",
			text:     "background in machine learning and rest api design",
			expected: []string{"Rest Api", "Machine Learning"},
		},
		{
			name:     "no matches yields empty result",
			text:     "We sell artisanal cheese.",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackSkills(tt.text)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFallbackSkillsEveryKeywordOnce(t *testing.T) {
	//each taxonomy keyword embedded in noise must surface exactly once
	for _, keyword := range []string{"python", "terraform", "spring boot", "c++"} {
		text := "xxx " + keyword + " yyy " + strings.ToUpper(keyword) + " zzz"
		got := FallbackSkills(text)

		count := 0
		for _, s := range got {
			if strings.EqualFold(s, keyword) {
				count++
			}
		}
		assert.Equal(t, 1, count, "keyword %q", keyword)
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{" Python ", "AWS", "python", "", "aws", "Docker"})
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, got)
}
