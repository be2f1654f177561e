// Package archive owns the durable directory of digest artifacts, the
// system of record for digest history.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ryotahase/research-digest/internal/digest"
)

// NamingPolicy stamps a run, fixing both the digest's date field and
// its artifact filename. Making the policy an explicit value keeps the
// archive and the index compiler decoupled from run-mode specifics.
type NamingPolicy interface {
	Stamp(now time.Time) string
}

// DateNaming stamps runs by calendar date: at most one artifact per day,
// a second run the same day overwrites the first.
type DateNaming struct{}

func (DateNaming) Stamp(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// TimestampNaming stamps runs down to the second, so several runs per
// day archive without collision. The format is filename-safe.
type TimestampNaming struct{}

func (TimestampNaming) Stamp(now time.Time) string {
	return now.UTC().Format("2006-01-02T15-04-05")
}

// Archive writes digests into a flat storage directory.
type Archive struct {
	dir string
}

func New(dir string) *Archive {
	return &Archive{dir: dir}
}

// Store writes the digest as a pretty-printed JSON artifact named after
// its date stamp, creating the directory if needed, and returns the
// path written. Filesystem failures are fatal to the run and propagate.
func (a *Archive) Store(d *digest.Digest) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("archive: failed to create %s: %w", a.dir, err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("archive: failed to encode digest: %w", err)
	}

	path := filepath.Join(a.dir, d.Date+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("archive: failed to write %s: %w", path, err)
	}
	return path, nil
}
