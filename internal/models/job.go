package models

// Posting is a single scraped job listing keyed by its canonical detail-page
// URL. Rows are append-only; the url is the sole dedup key.
type Posting struct {
	ID          int64  `json:"id"`
	SearchQuery string `json:"search_query"`
	Title       string `json:"job_title"`
	URL         string `json:"job_url"`
	RawText     string `json:"raw_description"`
	IsExtracted bool   `json:"is_extracted"`
}

// Default values applied when the extraction backend leaves a field empty.
const (
	DefaultCompany   = "Not specified"
	DefaultLocation  = "Not specified"
	DefaultJobType   = "Full-time"
	DefaultSeniority = "Not specified"
)

// JobFields is the structured record attached to a Posting after extraction.
// Field names mirror the job_openings columns / the extraction schema.
type JobFields struct {
	Company         string   `json:"company"`
	LocationScraped string   `json:"location_scraped"`
	IsRemote        bool     `json:"is_remote"`
	JobType         string   `json:"job_type"`
	Seniority       string   `json:"seniority"`
	RequiredSkills  []string `json:"required_skills"`
}

// FillDefaults replaces empty optional fields with their documented defaults.
// Present values are never overwritten.
func (f *JobFields) FillDefaults() {
	if f.Company == "" {
		f.Company = DefaultCompany
	}
	if f.LocationScraped == "" {
		f.LocationScraped = DefaultLocation
	}
	if f.JobType == "" {
		f.JobType = DefaultJobType
	}
	if f.Seniority == "" {
		f.Seniority = DefaultSeniority
	}
	if f.RequiredSkills == nil {
		f.RequiredSkills = []string{}
	}
}
