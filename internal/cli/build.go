package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryotahase/research-digest/internal/site"
)

var (
	buildArchiveDir string
	buildSiteDir    string
	buildOutputDir  string
	buildFavorites  string
	buildRepo       string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the digest archive into a static site",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildArchiveDir, "archive-dir", "digests", "Directory of digest artifacts")
	buildCmd.Flags().StringVar(&buildSiteDir, "site-dir", "site", "Directory of presentation assets")
	buildCmd.Flags().StringVar(&buildOutputDir, "output-dir", "_site", "Output directory (deleted and recreated)")
	buildCmd.Flags().StringVar(&buildFavorites, "favorites", "favorites.json", "Favorites file copied into the output if present")
	buildCmd.Flags().StringVar(&buildRepo, "repo", "", "Hosting repository as owner/name (default: resolved from environment or git)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	var owner, name string
	if parts := strings.SplitN(buildRepo, "/", 2); len(parts) == 2 {
		owner, name = parts[0], parts[1]
	} else {
		owner, name = site.ResolveRepo()
	}

	b := &site.Builder{
		SiteDir:    buildSiteDir,
		ArchiveDir: buildArchiveDir,
		OutputDir:  buildOutputDir,
		Favorites:  buildFavorites,
		Owner:      owner,
		Repo:       name,
	}
	return b.Build()
}
