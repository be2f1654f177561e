package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/ryotahase/research-digest/internal/archive"
	"github.com/ryotahase/research-digest/internal/config"
	"github.com/ryotahase/research-digest/internal/digest"
	"github.com/ryotahase/research-digest/internal/runner"
	"github.com/ryotahase/research-digest/internal/seen"
)

var (
	generateMode   string
	generateOnce   bool
	generateConfig string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the digest pipeline (once or on a schedule)",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "daily", "Run mode: daily, weekly, or monthly")
	generateCmd.Flags().BoolVar(&generateOnce, "once", false, "Run the pipeline once and exit, ignoring any schedule")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Path to settings file (optional)")
}

func loadSettings() (*config.Settings, error) {
	if generateConfig == "" {
		return config.DefaultSettings(), nil
	}
	return config.LoadSettings(generateConfig)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mode, err := config.ParseMode(generateMode)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	r := runner.New(
		mode,
		digest.NewArxivGenerator(),
		archive.New(settings.ArchiveDir),
		seen.NewStore(settings.SeenFile),
	)

	// Single-run mode: scheduled execution belongs to an external
	// scheduler unless a cron expression is configured.
	if generateOnce || settings.Schedule == "" {
		return r.Run(cmd.Context())
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if settings.RunOnStart {
		log.Println("Running initial digest...")
		if err := r.Run(ctx); err != nil {
			log.Printf("Initial run failed: %v", err)
		}
	}

	c := cron.New()
	_, err = c.AddFunc(settings.Schedule, func() {
		log.Println("Cron triggered, running digest...")
		if err := r.Run(ctx); err != nil {
			log.Printf("Scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	log.Printf("Scheduled %s digest with cron expression: %s", mode, settings.Schedule)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received signal %v, shutting down...", sig)

	cancel()
	c.Stop()
	return nil
}
