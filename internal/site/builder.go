// Package site compiles the digest archive into a publishable static
// site. The output is a derived, rebuildable projection of the archive;
// the archive directory stays the system of record.
package site

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IndexEntry summarizes one archived digest for the presentation layer.
type IndexEntry struct {
	Date       string `json:"date"`
	PaperCount int    `json:"paper_count"`
}

// Builder turns an archive directory plus presentation assets into a
// self-contained output directory. It assumes exclusive access to
// OutputDir during a build: the directory is deleted and recreated.
type Builder struct {
	SiteDir    string // presentation assets: *.html templates, css/, js/
	ArchiveDir string // digest artifacts, the system of record
	OutputDir  string // destination, destroyed and rebuilt every run
	Favorites  string // optional favorites file copied verbatim, may be ""
	Owner      string // substituted for {{OWNER}} in templates
	Repo       string // substituted for {{REPO}} in templates
}

// Build compiles the site. It is idempotent: unchanged inputs produce
// byte-identical output.
func (b *Builder) Build() error {
	log.Printf("Building site for %s/%s", b.Owner, b.Repo)

	// Destroy the destination first so no partial prior build leaks
	// into this one.
	if err := os.RemoveAll(b.OutputDir); err != nil {
		return fmt.Errorf("site: failed to clean %s: %w", b.OutputDir, err)
	}
	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return fmt.Errorf("site: failed to create %s: %w", b.OutputDir, err)
	}

	for _, sub := range []string{"css", "js"} {
		src := filepath.Join(b.SiteDir, sub)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := copyDir(src, filepath.Join(b.OutputDir, sub)); err != nil {
			return err
		}
	}

	if err := b.renderTemplates(); err != nil {
		return err
	}

	entries, err := b.compileDigests()
	if err != nil {
		return err
	}

	indexData, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("site: failed to encode index: %w", err)
	}
	indexPath := filepath.Join(b.OutputDir, "digests", "index.json")
	if err := os.WriteFile(indexPath, indexData, 0o644); err != nil {
		return fmt.Errorf("site: failed to write %s: %w", indexPath, err)
	}

	if b.Favorites != "" {
		if _, err := os.Stat(b.Favorites); err == nil {
			dst := filepath.Join(b.OutputDir, filepath.Base(b.Favorites))
			if err := copyFile(b.Favorites, dst); err != nil {
				return err
			}
		}
	}

	log.Printf("Site built in %s (%d digests indexed)", b.OutputDir, len(entries))
	return nil
}

// renderTemplates copies every root HTML file with literal placeholder
// substitution. Unresolved placeholders stay as-is, never an error.
func (b *Builder) renderTemplates() error {
	pages, err := filepath.Glob(filepath.Join(b.SiteDir, "*.html"))
	if err != nil {
		return fmt.Errorf("site: failed to list templates: %w", err)
	}

	for _, page := range pages {
		content, err := os.ReadFile(page)
		if err != nil {
			return fmt.Errorf("site: failed to read %s: %w", page, err)
		}

		rendered := strings.ReplaceAll(string(content), "{{OWNER}}", b.Owner)
		rendered = strings.ReplaceAll(rendered, "{{REPO}}", b.Repo)

		dst := filepath.Join(b.OutputDir, filepath.Base(page))
		if err := os.WriteFile(dst, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("site: failed to write %s: %w", dst, err)
		}
	}
	return nil
}

// compileDigests copies every artifact verbatim into the output's
// digests directory and builds the index, most recent first. Artifacts
// that fail to parse are copied but skipped for index purposes, so raw
// data is never lost.
func (b *Builder) compileDigests() ([]IndexEntry, error) {
	outDir := filepath.Join(b.OutputDir, "digests")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("site: failed to create %s: %w", outDir, err)
	}

	entries := make([]IndexEntry, 0)

	dirEntries, err := os.ReadDir(b.ArchiveDir)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("site: failed to read archive %s: %w", b.ArchiveDir, err)
	}

	var names []string
	for _, de := range dirEntries {
		if !de.IsDir() && strings.HasSuffix(de.Name(), ".json") {
			names = append(names, de.Name())
		}
	}
	// Descending lexical order is reverse-chronological under the
	// archive's naming policies.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names {
		src := filepath.Join(b.ArchiveDir, name)
		if err := copyFile(src, filepath.Join(outDir, name)); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("site: failed to read %s: %w", src, err)
		}

		var doc struct {
			Date   string            `json:"date"`
			Papers []json.RawMessage `json:"papers"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			log.Printf("WARNING: failed to parse %s, excluding from index: %v", src, err)
			continue
		}

		date := doc.Date
		if date == "" {
			date = strings.TrimSuffix(name, ".json")
		}
		entries = append(entries, IndexEntry{Date: date, PaperCount: len(doc.Papers)})
	}

	return entries, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("site: failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("site: failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("site: failed to copy %s: %w", src, err)
	}
	return out.Close()
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}
