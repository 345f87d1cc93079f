// Command migrate applies migrations/ to the configured database with the
// atlas CLI, which must be on PATH.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"parking-app/internal/handler/middleware"
	"parking-app/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "schema source")
	devURL := flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "atlas dev database used to compute the diff")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("atlas client unavailable", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          *dir,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	logger.Info("schema apply finished",
		"dry_run", *dryRun,
		"planned", len(res.Changes.Pending),
		"applied", len(res.Changes.Applied),
	)
}
