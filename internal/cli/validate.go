package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryotahase/research-digest/internal/digest"
)

var validateArchiveDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every archived digest against the artifact schema",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateArchiveDir, "archive-dir", "digests", "Directory of digest artifacts")
}

func runValidate(cmd *cobra.Command, args []string) error {
	dirEntries, err := os.ReadDir(validateArchiveDir)
	if err != nil {
		return fmt.Errorf("failed to read archive %s: %w", validateArchiveDir, err)
	}

	var names []string
	for _, de := range dirEntries {
		if !de.IsDir() && strings.HasSuffix(de.Name(), ".json") {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	invalid := 0
	for _, name := range names {
		path := filepath.Join(validateArchiveDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		violations, err := digest.ValidateArtifact(data)
		if err != nil {
			violations = []string{err.Error()}
		}
		if len(violations) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			continue
		}

		invalid++
		for _, v := range violations {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, v)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d artifacts are invalid", invalid, len(names))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d artifacts valid\n", len(names))
	return nil
}
