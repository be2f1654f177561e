package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds deployment-level configuration: where the archive and
// site directories live and how scheduled runs fire. Digest parameters
// come from the environment (see BuildDigestConfig), not from here.
type Settings struct {
	Schedule   string `yaml:"schedule"`
	RunOnStart bool   `yaml:"run_on_start"`
	ArchiveDir string `yaml:"archive_dir"`
	SiteDir    string `yaml:"site_dir"`
	OutputDir  string `yaml:"output_dir"`
	SeenFile   string `yaml:"seen_file"`
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

func setDefaults(s *Settings) {
	if s.ArchiveDir == "" {
		s.ArchiveDir = "digests"
	}
	if s.SiteDir == "" {
		s.SiteDir = "site"
	}
	if s.OutputDir == "" {
		s.OutputDir = "_site"
	}
	if s.SeenFile == "" {
		s.SeenFile = "seen_papers.json"
	}
}

func validate(s *Settings) error {
	if s.OutputDir == s.SiteDir {
		return fmt.Errorf("config: output_dir must differ from site_dir (the build deletes it)")
	}
	if s.OutputDir == s.ArchiveDir {
		return fmt.Errorf("config: output_dir must differ from archive_dir (the build deletes it)")
	}
	return nil
}

// DefaultSettings returns settings with every field at its default, for
// runs that have no settings file.
func DefaultSettings() *Settings {
	s := &Settings{}
	setDefaults(s)
	return s
}

// LoadSettings reads a settings file, expands environment variables,
// applies defaults, and validates the result.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var s Settings
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	setDefaults(&s)

	if err := validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}
