// Package seen persists the set of paper identifiers already delivered
// by long-window runs, so repeated runs can bias the generator away
// from them. The file has a single writer by design: runs are scheduled
// one at a time and there is no locking.
package seen

import (
	"encoding/json"
	"os"
	"sort"
)

// Set holds paper identifiers observed by previous runs.
type Set map[string]struct{}

func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Add(id string) {
	s[id] = struct{}{}
}

// IDs returns the identifiers in sorted order, for stable serialization.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type fileFormat struct {
	SeenIDs []string `json:"seen_ids"`
}

// Store reads and writes the seen set at a well-known path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted set. A missing or unparsable file yields
// the empty set; losing dedup history must never fail a run.
func (st *Store) Load() Set {
	set := make(Set)

	data, err := os.ReadFile(st.path)
	if err != nil {
		return set
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return set
	}

	for _, id := range f.SeenIDs {
		set.Add(id)
	}
	return set
}

// Save overwrites the file with the full current set.
func (st *Store) Save(s Set) error {
	data, err := json.MarshalIndent(fileFormat{SeenIDs: s.IDs()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0o644)
}
