package digest

import (
	"strings"
	"testing"
)

func TestValidateArtifactValid(t *testing.T) {
	doc := `{
  "run_id": "a2c4",
  "date": "2024-05-10",
  "papers": [
    {"id": "2401.00001", "title": "A Paper", "authors": ["Alice"]}
  ]
}`

	violations, err := ValidateArtifact([]byte(doc))
	if err != nil {
		t.Fatalf("ValidateArtifact returned error: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("Expected no violations, got %v", violations)
	}
}

func TestValidateArtifactMissingFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing papers", `{"date": "2024-05-10"}`, "papers"},
		{"missing date", `{"papers": []}`, "date"},
		{"paper missing id", `{"date": "2024-05-10", "papers": [{"title": "t"}]}`, "id"},
		{"wrong papers type", `{"date": "2024-05-10", "papers": "nope"}`, "papers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := ValidateArtifact([]byte(tt.doc))
			if err != nil {
				t.Fatalf("ValidateArtifact returned error: %v", err)
			}
			if len(violations) == 0 {
				t.Fatal("Expected violations, got none")
			}
			found := false
			for _, v := range violations {
				if strings.Contains(v, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected a violation mentioning %q, got %v", tt.want, violations)
			}
		})
	}
}

func TestValidateArtifactUnparsable(t *testing.T) {
	if _, err := ValidateArtifact([]byte("not json")); err == nil {
		t.Fatal("Expected error for unparsable document")
	}
}
