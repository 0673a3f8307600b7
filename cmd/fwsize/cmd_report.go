package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/fwsize/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/fwsize/internal/domain-orchestrators"
	"github.com/ochairo/fwsize/internal/domain/entities"
	"github.com/ochairo/fwsize/internal/domain/services"
	"github.com/ochairo/fwsize/internal/external-adapters/yaml"
	"github.com/ochairo/fwsize/internal/external-adapters/zaplog"
)

func runReport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	var (
		release    = fs.Bool("release", false, "Measure the release binary (debug if not set)")
		projectDir = fs.String("project-dir", "", "Project directory (default: current directory)")
		noBuild    = fs.Bool("no-build", false, "Skip invoking cargo build before measuring")
		jsonOut    = fs.Bool("json", false, "Emit the report as JSON instead of text")
		human      = fs.Bool("human", false, "Render byte counts in human-readable units")
		verbose    = fs.Bool("verbose", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: fwsize report [options]

Build the current cargo project and print the size of its code and data
sections. When a memory.x file declares FLASH and RAM regions, the usage
is also reported as a percentage of those capacities.

Examples:
  fwsize report                  # measure the debug binary
  fwsize report --release        # measure the release binary
  fwsize report --no-build --json

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	mode := entities.ModeFromRelease(*release)

	start := *projectDir
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fail(err)
		}
		start = cwd
	}

	cargo := gateways.NewCargoGateway()
	root, err := cargo.FindRoot(start)
	if err != nil {
		fail(err)
	}

	cfg, err := yaml.LoadConfig(root)
	if err != nil {
		fail(err)
	}

	level := cfg.Logging.Level
	if *verbose {
		level = "debug"
	}
	log, err := zaplog.New(level)
	if err != nil {
		fail(err)
	}
	defer log.Sync()

	artifactName := cfg.Artifact
	if artifactName == "" {
		artifactName, err = cargo.CrateName(ctx, root)
		if err != nil {
			fail(err)
		}
	}

	if !*noBuild {
		if err := cargo.Build(ctx, root, mode); err != nil {
			fail(err)
		}
	}

	layoutPath := cfg.LayoutFile
	if !filepath.IsAbs(layoutPath) {
		layoutPath = filepath.Join(root, layoutPath)
	}

	orch := orchestrators.NewSizeOrchestrator(
		gateways.NewArtifactLocator(cfg.ExtraTargets),
		gateways.NewSectionReader(cfg.Sections.Code, cfg.Sections.Data),
		gateways.NewLayoutReader(),
		services.NewReportService(),
		log,
	)

	report, err := orch.MeasureUsage(ctx, root, artifactName, layoutPath, mode)
	if err != nil {
		fail(err)
	}

	if *jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fail(err)
		}
		fmt.Println(string(data))
		return
	}

	printStatus("Printing", renderReport(report, *human))
}
