package ai

import (
	"context"
	"strings"
)

// Client is the interface for inference backends.
type Client interface {
	// ChatJSON sends a system prompt plus user text and returns the raw
	// response content. The backend is constrained to answer with a single
	// JSON object at temperature 0.
	ChatJSON(ctx context.Context, systemPrompt, userText string) (string, error)
}

// jobExtractionPrompt pins the job-posting extraction schema, the per-field
// fallback defaults, the skill normalization rules, and two worked examples.
const jobExtractionPrompt = `You are an expert job data extraction agent. Extract ONLY these fields from job postings and return a valid JSON object. Use the exact keys and rules below.

CRITICAL LOCATION EXTRACTION RULES:
- Search for ANY location mentions: cities (New York), countries (USA), states (California), regions (Europe)
- Look for patterns like "based in", "located in", "from [location]", "must be in [location]"
- If you see "Remote", "Work from Home", "Anywhere", "Global", set location_scraped = "Remote" AND is_remote = true
- If you see "Hybrid", set location_scraped to the actual location mentioned AND is_remote = true
- If multiple locations: use "Location1 + Location2" format
- Only use "Not specified" if absolutely no location clues exist

REMOTE STATUS DETECTION:
- is_remote = true if you see: "Remote", "Work from Home", "WFH", "Anywhere", "Global", "Virtual", "Telecommute"
- is_remote = true for "Hybrid" roles (partially remote)
- is_remote = false for on-site only roles with specific office locations

EXACT OUTPUT FORMAT (minified JSON, no extra text):
{
    "company": "string",
    "location_scraped": "string",
    "is_remote": boolean,
    "job_type": "string",
    "seniority": "string",
    "required_skills": ["array", "of", "strings"]
}

FALLBACK VALUES:
- company: "Not specified" if no company name found
- location_scraped: "Not specified" if no location clues
- is_remote: false if no remote indicators
- job_type: "Full-time" (most common default)
- seniority: Infer from title/requirements: "Entry-level" (0-2y), "Mid-level" (3-5y), "Senior" (5+y)
- required_skills: [] empty array if none found

SKILL NORMALIZATION EXAMPLES:
- "Python programming" → "Python"
- "React.js" → "React"
- "Amazon Web Services" → "AWS"
- "Google Cloud Platform" → "GCP"
- "SQL database" → "SQL"
- "Docker containers" → "Docker"
- "Figma design" → "Figma"
- "Agile methodology" → "Agile"

STRICT EXAMPLES:
Input: "Join TechCorp as Senior Python Developer working remotely from anywhere. Must know AWS, Docker."
Output: {"company":"TechCorp","location_scraped":"Remote","is_remote":true,"job_type":"Full-time","seniority":"Senior","required_skills":["AWS","Docker","Python"]}

Input: "Python Developer needed in New York office. Requires 3+ years experience with React."
Output: {"company":"Not specified","location_scraped":"New York","is_remote":false,"job_type":"Full-time","seniority":"Mid-level","required_skills":["Python","React"]}

Return only the JSON object. No explanations.`

// skillExtractionPrompt is the skills-only schema used by the resume pipeline.
const skillExtractionPrompt = `You are an expert resume analyzer. Extract ALL technical skills from the resume text provided.

EXTRACTION RULES:
1. Focus on technical skills: programming languages, frameworks, tools, platforms, databases, cloud services, methodologies
2. Normalize skill names (e.g., "React.js" → "React", "Amazon Web Services" → "AWS")
3. Include both hard skills and technologies
4. Exclude soft skills (communication, leadership, etc.)
5. Return only unique skills

OUTPUT FORMAT (JSON only, no explanations):
{
    "skills": ["skill1", "skill2", "skill3"]
}

EXAMPLES OF VALID SKILLS:
- Languages: Python, Java, JavaScript, TypeScript, C++, Go, Rust
- Frameworks: React, Django, Flask, FastAPI, Node.js, Spring Boot
- Databases: PostgreSQL, MySQL, MongoDB, Redis, Cassandra
- Cloud: AWS, GCP, Azure, EC2, Lambda, S3, Kubernetes
- Tools: Docker, Git, Jenkins, Terraform, Ansible
- Concepts: REST APIs, GraphQL, Microservices, CI/CD, Machine Learning

Return ONLY the JSON object with the skills array.`

// JobExtractionPrompt returns the system prompt for the job-fields schema.
func JobExtractionPrompt() string { return jobExtractionPrompt }

// SkillExtractionPrompt returns the system prompt for the skills-only schema.
func SkillExtractionPrompt() string { return skillExtractionPrompt }

// CleanMarkdownJSON removes markdown code fences if the model tries to be
// helpful and wraps its JSON answer.
func CleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
