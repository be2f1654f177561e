package digest

import (
	"context"

	"github.com/ryotahase/research-digest/internal/config"
)

// Paper is one ranked research paper as returned by a generator.
type Paper struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Authors    []string `json:"authors,omitempty"`
	Abstract   string   `json:"abstract,omitempty"`
	URL        string   `json:"url,omitempty"`
	Published  string   `json:"published,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// Digest is one run's ranked set of papers.
type Digest struct {
	RunID  string  `json:"run_id,omitempty"`
	Date   string  `json:"date"`
	Papers []Paper `json:"papers"`
}

// Result statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Result is the tagged outcome of one generator invocation. Digest is
// set only when Status is StatusOK; Errors only on StatusError.
type Result struct {
	Status string
	Digest *Digest
	Errors []string
}

// Generator produces a digest for one run configuration. This is the
// single long-latency, potentially-failing step in the pipeline; ranking
// failures come back as a StatusError result, while the error return is
// reserved for conditions like a cancelled context.
type Generator interface {
	Generate(ctx context.Context, cfg *config.DigestConfig) (*Result, error)
}
