package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	valid := `{"date": "2024-05-10", "papers": [{"id": "a", "title": "A"}]}`
	if err := os.WriteFile(filepath.Join(dir, "2024-05-10.json"), []byte(valid), 0o644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	out, err := runCommand(t, "validate", "--archive-dir", dir)
	if err != nil {
		t.Fatalf("Expected valid archive to pass, got: %v", err)
	}
	if !strings.Contains(out, "1 artifacts valid") {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestValidateCommandInvalidArtifact(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "2024-05-10.json"), []byte(`{"papers": []}`), 0o644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	out, err := runCommand(t, "validate", "--archive-dir", dir)
	if err == nil {
		t.Fatal("Expected error for invalid artifact")
	}
	if !strings.Contains(out, "date") {
		t.Errorf("Expected violation naming the missing field, got %q", out)
	}
}

func TestGenerateRejectsUnknownMode(t *testing.T) {
	_, err := runCommand(t, "generate", "--mode", "hourly", "--once")
	if err == nil {
		t.Fatal("Expected error for unsupported mode")
	}
	if !strings.Contains(err.Error(), "unsupported mode") {
		t.Errorf("Unexpected error: %v", err)
	}
}
