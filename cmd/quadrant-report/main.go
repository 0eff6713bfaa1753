package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"darahcli/internal/config"
	"darahcli/internal/dataset"
	"darahcli/internal/infrastructure"
	"darahcli/internal/quadrant"
)

func main() {
	inputPath := flag.String("in", "", "path to a donation CSV file (defaults to the facility dataset)")
	kindFlag := flag.String("kind", "facility", "dataset kind: facility or state")
	outputDir := flag.String("out", "", "output directory for the quadrant report (defaults to data/reports)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	paths := config.GetPaths(cfg)

	kind := dataset.KindFacility
	if *kindFlag == "state" {
		kind = dataset.KindState
	}
	if *inputPath == "" {
		if kind == dataset.KindState {
			*inputPath = paths.StateCSV
		} else {
			*inputPath = paths.FacilityCSV
		}
	}
	if *outputDir == "" {
		*outputDir = paths.ReportsDir
	}

	ctx := context.Background()

	ds, err := dataset.NewLoader(logger).Load(ctx, *inputPath, kind)
	if err != nil {
		logger.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	policy := quadrant.DefaultPolicy()
	if cfg.Analysis.StdConvention == "population" {
		policy.StdConvention = quadrant.PopulationStd
	}
	policy.TieBreakHigh = cfg.Analysis.TieBreakHigh

	classifier := quadrant.NewClassifier(policy, logger)
	result, err := classifier.Run(ctx, ds.Observations)
	if err != nil {
		logger.Error("Quadrant classification failed", "error", err)
		os.Exit(1)
	}

	insights := quadrant.GenerateInsights(result)

	csvPath := filepath.Join(*outputDir, fmt.Sprintf("quadrant_%s.csv", kind.String()))
	if err := quadrant.SaveToCSV(result, csvPath); err != nil {
		logger.Error("Failed to save quadrant CSV", "error", err)
		os.Exit(1)
	}

	summaryPath := filepath.Join(*outputDir, fmt.Sprintf("quadrant_%s_summary.txt", kind.String()))
	if err := quadrant.SaveSummaryReport(insights, summaryPath); err != nil {
		logger.Error("Failed to save quadrant summary", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "quadrant report generated",
		"csv", csvPath,
		"summary", summaryPath,
		"entities", len(result.Assignments),
	)

	printOverview(insights)
}

// printOverview echoes the group summary to stdout for interactive runs
func printOverview(insights quadrant.Insights) {
	fmt.Println("\n=== QUADRANT OVERVIEW ===")
	fmt.Printf("Entities: %d  mean_threshold=%.2f  std_threshold=%.2f\n",
		insights.TotalEntities,
		insights.Thresholds.MeanThreshold,
		insights.Thresholds.StdThreshold)
	for _, g := range insights.Groups {
		fmt.Println(quadrant.FormatGroupLine(g))
	}
}
