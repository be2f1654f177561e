package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Mode selects the lookback window and paper budget for one digest run.
type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeWeekly  Mode = "weekly"
	ModeMonthly Mode = "monthly"
)

// ParseMode validates a mode string from the command line.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDaily, ModeWeekly, ModeMonthly:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("config: unsupported mode %q (supported: daily, weekly, monthly)", s)
	}
}

// Lookback returns the length of the mode's date window.
func (m Mode) Lookback() time.Duration {
	switch m {
	case ModeWeekly:
		return 7 * 24 * time.Hour
	case ModeMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// DateFilter bounds the publication dates a run queries.
// PublishedAfter is never later than PublishedBefore.
type DateFilter struct {
	PublishedAfter  string `json:"published_after"`
	PublishedBefore string `json:"published_before"`
}

// DigestConfig is the full input for one generator invocation.
// It is built fresh per run and never persisted.
type DigestConfig struct {
	Categories     []string
	Interests      string
	MaxPapers      int
	TopN           int
	Provider       string
	ProviderAPIKey string
	ExtraAPIKeys   map[string]string
	Sources        []string
	DateFilter     DateFilter
	ExcludeIDs     []string
}

const (
	defaultCategories = "cs.AI,cs.CL,cs.LG"
	defaultInterests  = "machine learning, AI agents"
	defaultProvider   = "openai"

	// Appended to the interests for monthly runs so the ranking provider
	// weighs venue reputation and novelty over recency.
	monthlyInterestSuffix = ". Weight papers from reputable venues and authors, and favor novel results over incremental ones"

	monthlyProvider = "openrouter"
)

// BuildDigestConfig derives the run configuration for a mode from the
// process environment. Every input has a default, so it cannot fail.
func BuildDigestConfig(mode Mode, now time.Time) *DigestConfig {
	now = now.UTC()
	after := now.Add(-mode.Lookback())

	cfg := &DigestConfig{
		Interests: getEnv("DIGEST_INTERESTS", defaultInterests),
		MaxPapers: 50,
		TopN:      15,
		Provider:  getEnv("LLM_PROVIDER", defaultProvider),
		DateFilter: DateFilter{
			PublishedAfter:  after.Format("2006-01-02"),
			PublishedBefore: now.Format("2006-01-02"),
		},
	}

	switch mode {
	case ModeWeekly:
		cfg.Categories = splitAndTrim(getEnv("DIGEST_CATEGORIES", defaultCategories))
		cfg.MaxPapers = 100
		cfg.TopN = 20
	case ModeMonthly:
		cfg.Interests += monthlyInterestSuffix
		cfg.Provider = getEnv("MONTHLY_LLM_PROVIDER", monthlyProvider)
		cfg.Sources = []string{"arxiv"}
		cfg.ExtraAPIKeys = map[string]string{
			"OPENROUTER_API_KEY": os.Getenv("OPENROUTER_API_KEY"),
		}
	default:
		cfg.Categories = splitAndTrim(getEnv("DIGEST_CATEGORIES", defaultCategories))
	}

	cfg.ProviderAPIKey = os.Getenv(providerKeyVar(cfg.Provider))
	return cfg
}

func providerKeyVar(provider string) string {
	return strings.ToUpper(strings.ReplaceAll(provider, "-", "_")) + "_API_KEY"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
