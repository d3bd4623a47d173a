package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// taxonomy is the fixed keyword list used for deterministic, offline skill
// detection when the inference backend is unavailable or returns garbage.
var taxonomy = []string{
	//core languages
	"python", "java", "c++", "go", "golang", "rust", "javascript", "typescript",
	"node.js", "c#", "ruby", "php", "swift", "kotlin", "scala",

	//data structures & algorithms
	"data structures", "algorithms", "big o", "dynamic programming",

	//backend frameworks
	"django", "flask", "fastapi", "spring boot", "express.js", "nest.js",

	//frontend
	"react", "vue", "angular", "svelte", "next.js", "nuxt.js",

	//api standards
	"rest api", "graphql", "grpc", "websockets",

	//databases
	"postgresql", "mysql", "mongodb", "redis", "cassandra", "dynamodb",
	"elasticsearch", "neo4j", "sqlite",

	//cloud platforms
	"aws", "gcp", "azure", "ec2", "lambda", "s3", "kubernetes", "docker",

	//devops & tools
	"git", "jenkins", "gitlab ci", "github actions", "terraform", "ansible",

	//testing
	"pytest", "jest", "selenium", "cypress", "postman",

	//ai/ml
	"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn",
	"nlp", "computer vision", "langchain", "huggingface",

	//data engineering
	"kafka", "airflow", "spark", "hadoop", "etl",

	//others
	"linux", "bash", "agile", "scrum", "oauth", "jwt", "microservices",
}

var titleCaser = cases.Title(language.English)

// FallbackSkills scans lower-cased text for taxonomy keywords (substring
// match), title-cases every hit and dedupes case-insensitively, preserving
// first-seen order. Deterministic, offline, no external calls.
func FallbackSkills(text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	for _, keyword := range taxonomy {
		if strings.Contains(textLower, keyword) {
			found = append(found, titleCaser.String(keyword))
		}
	}
	return NormalizeSkills(found)
}

// NormalizeSkills trims entries, drops empties, and removes duplicates under
// case-insensitive comparison while preserving first-occurrence order.
func NormalizeSkills(skills []string) []string {
	unique := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		clean := strings.TrimSpace(skill)
		key := strings.ToLower(clean)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, clean)
	}
	return unique
}
