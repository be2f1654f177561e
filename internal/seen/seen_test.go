package seen

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	set := st.Load()
	if len(set) != 0 {
		t.Errorf("Expected empty set for missing file, got %d entries", len(set))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	set := NewStore(path).Load()
	if len(set) != 0 {
		t.Errorf("Expected empty set for corrupt file, got %d entries", len(set))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	st := NewStore(path)

	// Insertion order must not matter.
	set := make(Set)
	for _, id := range []string{"2401.00002", "2401.00001", "2401.00003"} {
		set.Add(id)
	}

	if err := st.Save(set); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := st.Load()
	if !reflect.DeepEqual(loaded.IDs(), set.IDs()) {
		t.Errorf("Round trip mismatch: saved %v, loaded %v", set.IDs(), loaded.IDs())
	}
}

func TestSaveWritesSortedIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	st := NewStore(path)

	set := make(Set)
	set.Add("b")
	set.Add("a")
	if err := st.Save(set); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read seen file: %v", err)
	}

	want := "{\n  \"seen_ids\": [\n    \"a\",\n    \"b\"\n  ]\n}"
	if string(data) != want {
		t.Errorf("Unexpected file content:\n%s", data)
	}
}

func TestContains(t *testing.T) {
	set := make(Set)
	set.Add("2401.00001")

	if !set.Contains("2401.00001") {
		t.Error("Expected set to contain added ID")
	}
	if set.Contains("2401.99999") {
		t.Error("Expected set not to contain unknown ID")
	}
}
