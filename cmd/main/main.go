package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"panduit/scraper/internal/config"
	"panduit/scraper/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panduit-scraper",
		Short: "Scrape Panduit product pages into JSON and download their images",
		Long: `panduit-scraper reads a list of product page URLs, extracts title, SKU,
description, images, breadcrumbs and the specification table of each page,
downloads the images and writes all records to a single JSON file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	cmd.Flags().String("config", "", "Config file path (default ./config.yaml if present)")
	cmd.Flags().String("input", "new_links.txt", "File with one product page URL per line")
	cmd.Flags().String("output", "data.json", "JSON file the product records are written to")
	cmd.Flags().String("images", "images", "Directory downloaded images are written to")
	cmd.Flags().Bool("continue-on-error", false, "Skip pages that fail instead of aborting the run")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")

	// Load configuration using viper
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	if err := configureLogging(cfg.Log); err != nil {
		return err
	}
	log.Info("Starting Panduit scraper...")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize container with all dependencies
	app, err := container.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		return err
	}

	log.Info("Application finished successfully")
	return nil
}
