// Load envs from .env
// Load YAML config
// Apply env overrides and defaults
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SourceConfig describes one job board entirely as data: link filtering
// rules, noise phrases, scroll behavior, and navigation quirks. All source
// adapters share a single control flow parameterized by this struct.
type SourceConfig struct {
	Name       string `yaml:"name"`
	BaseURL    string `yaml:"base_url"`
	ListingURL string `yaml:"listing_url"`

	//link filtering
	PathMustContain    string   `yaml:"path_must_contain"`
	RequireDigitInPath bool     `yaml:"require_digit_in_path"`
	MinPathDepth       int      `yaml:"min_path_depth"`
	PathExclude        []string `yaml:"path_exclude"`

	//cleaning
	NoisePhrases     []string `yaml:"noise_phrases"`
	MinCleanedLength int      `yaml:"min_cleaned_length"`

	//incremental loading
	MaxScrollAttempts  int    `yaml:"max_scroll_attempts"`
	ScrollPauseSeconds int    `yaml:"scroll_pause_seconds"`
	ShowMoreSelector   string `yaml:"show_more_selector"`

	//navigation quirks
	CookieBannerSelector string `yaml:"cookie_banner_selector"`
	ManualLogin          bool   `yaml:"manual_login"`
	LoginURL             string `yaml:"login_url"`
	CookiesFile          string `yaml:"cookies_file"`

	//extra query parameters appended to the listing URL
	SearchFilters map[string][]string `yaml:"search_filters"`
}

type Config struct {
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`

	OllamaHost              string `yaml:"ollama_host" env:"OLLAMA_HOST"`
	OllamaModel             string `yaml:"ollama_model" env:"OLLAMA_MODEL"`
	InferenceTimeoutSeconds int    `yaml:"inference_timeout_seconds"`

	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	Headless  bool   `yaml:"headless"`
	CachePath string `yaml:"cache_path"`

	//Role keywords a candidate link title must match (case-insensitive
	//substring) and titles that disqualify a link outright.
	Roles        []string `yaml:"roles"`
	ExcludeRoles []string `yaml:"exclude_roles"`

	Sources []SourceConfig `yaml:"sources"`

	//When > 0, the extractor runs as a daemon sweeping every N hours.
	ExtractIntervalHours int `yaml:"extract_interval_hours"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.OllamaHost = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.OllamaModel = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}
	if v := os.Getenv("EXTRACT_INTERVAL_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Fatalf("Invalid EXTRACT_INTERVAL_HOURS: %q", v)
		}
		cfg.ExtractIntervalHours = n
	}

	//Set default values if not set
	if cfg.OllamaHost == "" {
		cfg.OllamaHost = "http://127.0.0.1:11434"
	}
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "qwen2.5:14b"
	}
	if cfg.InferenceTimeoutSeconds == 0 {
		cfg.InferenceTimeoutSeconds = 60
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
	if len(cfg.Roles) == 0 {
		cfg.Roles = DefaultRoles()
	}
	if len(cfg.ExcludeRoles) == 0 {
		cfg.ExcludeRoles = DefaultExcludeRoles()
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = DefaultSources()
	}

	return cfg
}

// DefaultRoles is the inclusion allow-list of role tokens.
func DefaultRoles() []string {
	return []string{
		"engineer", "developer", "backend", "frontend", "full stack",
		"python", "ai", "machine learning", "data",
	}
}

// DefaultExcludeRoles lists non-engineering titles that disqualify a link.
func DefaultExcludeRoles() []string {
	return []string{
		"sales", "marketing", "account executive", "recruiter",
		"design", "operations", "customer",
	}
}

// DefaultSources defines the three built-in boards. Overridable from yaml.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Name:               "YC Scraper",
			BaseURL:            "https://www.workatastartup.com",
			ListingURL:         "https://www.workatastartup.com/jobs",
			PathMustContain:    "/jobs/",
			RequireDigitInPath: true,
			NoisePhrases: []string{
				"Menu Work at a Startup",
				"Startup Jobs Internships Upcoming Events How it Works Log In",
				"› Work at a Startup",
				"Software Engineer jobs at Y Combinator startups",
				"Find open roles and connect with founders",
				"About What Happens at YC?",
				"Apply YC Interview Guide FAQ People YC Blog",
				"Companies Startup Directory Founder Directory Launch YC",
				"Startup Jobs All Jobs ◦ Engineering ◦ Operations ◦ Marketing ◦ Sales",
				"Internships Startup Job Guide YC Startup Jobs Blog",
				"Jobs by role:",
				"Jobs by Location",
				"Sign up to see more ›",
			},
			MinCleanedLength:   200,
			MaxScrollAttempts:  15,
			ScrollPauseSeconds: 2,
		},
		{
			Name:            "Wellfound Scraper",
			BaseURL:         "https://wellfound.com",
			ListingURL:      "https://wellfound.com/jobs",
			PathMustContain: "/jobs/",
			NoisePhrases: []string{
				"Wellfound",
				"Overview",
				"Jobs",
				"About us",
				"Reviews",
				"Recommended for you",
				"Apply now",
				"Save",
				"Share",
				"Recruiters from this company",
				"Browse by:",
				"Hiring now",
				"Login",
				"Sign Up",
			},
			MinCleanedLength:   500,
			MaxScrollAttempts:  20,
			ScrollPauseSeconds: 2,
			ShowMoreSelector:   `button:has-text("Show more")`,
			ManualLogin:        true,
			LoginURL:           "https://wellfound.com/login",
			CookiesFile:        ".cookies/cookies-wellfound.json",
		},
		{
			Name:            "Remote Board",
			BaseURL:         "https://remote.com",
			ListingURL:      "https://remote.com/jobs/all",
			PathMustContain: "/jobs/",
			MinPathDepth:    5,
			PathExclude:     []string{"jobs/all"},
			NoisePhrases: []string{
				"Your choice regarding cookies on this site",
				"We use cookies to personalize content",
			},
			MinCleanedLength:     1,
			MaxScrollAttempts:    5,
			ScrollPauseSeconds:   2,
			CookieBannerSelector: `button:has-text("Accept all")`,
			SearchFilters: map[string][]string{
				"employmentType":    {"full_time"},
				"workplaceLocation": {"remote"},
			},
		},
	}
}
