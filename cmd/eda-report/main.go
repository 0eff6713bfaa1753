package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"darahcli/internal/analytics"
	"darahcli/internal/config"
	"darahcli/internal/dataset"
	"darahcli/internal/exporter"
	"darahcli/internal/infrastructure"
	"darahcli/internal/quadrant"
)

func main() {
	facilityPath := flag.String("facility", "", "path to donations_facility.csv (defaults to data/donations_facility.csv)")
	statePath := flag.String("state", "", "path to donations_state.csv (defaults to data/donations_state.csv)")
	outputDir := flag.String("out", "", "output directory for reports (defaults to data/reports)")
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
	if *facilityPath == "" {
		*facilityPath = paths.FacilityCSV
	}
	if *statePath == "" {
		*statePath = paths.StateCSV
	}
	if *outputDir == "" {
		*outputDir = paths.ReportsDir
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		logger.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	loader := dataset.NewLoader(logger)

	facility, state, err := loader.LoadPair(ctx, *facilityPath, *statePath)
	if err != nil {
		logger.Error("Failed to load datasets", "error", err)
		os.Exit(1)
	}

	classifier := quadrant.NewClassifier(policyFromConfig(cfg.Analysis), logger)
	csvWriter := exporter.NewCSVWriter(paths)

	// Facility vs state daily total reconciliation
	verification, err := analytics.VerifyDailyTotals(facility.Observations, state.Observations)
	if err != nil {
		logger.Error("Failed to verify daily totals", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "verified daily totals",
		"days_compared", verification.DaysCompared,
		"mismatched_days", verification.MismatchedDays,
	)

	if err := writeVerificationCSV(csvWriter, verification); err != nil {
		logger.Error("Failed to write verification report", "error", err)
		os.Exit(1)
	}

	for _, ds := range []*dataset.Dataset{facility, state} {
		if err := analyzeDataset(ctx, logger, classifier, cfg, *outputDir, ds, verification); err != nil {
			logger.Error("Dataset analysis failed",
				"dataset", ds.Kind.String(),
				"error", err,
			)
			os.Exit(1)
		}
	}

	logger.InfoContext(ctx, "EDA report generated",
		"output_dir", *outputDir,
		"facility_observations", len(facility.Observations),
		"state_observations", len(state.Observations),
	)
}

// policyFromConfig translates the analysis config into a classifier policy
func policyFromConfig(cfg config.AnalysisConfig) quadrant.Policy {
	policy := quadrant.DefaultPolicy()
	if cfg.StdConvention == "population" {
		policy.StdConvention = quadrant.PopulationStd
	}
	policy.TieBreakHigh = cfg.TieBreakHigh
	return policy
}

// analyzeDataset runs the full EDA pass over one dataset and writes its reports
func analyzeDataset(ctx context.Context, logger *slog.Logger, classifier *quadrant.Classifier,
	cfg *config.Config, outputDir string, ds *dataset.Dataset, verification *analytics.VerificationReport) error {

	kind := ds.Kind.String()

	result, err := classifier.Run(ctx, ds.Observations)
	if err != nil {
		return fmt.Errorf("quadrant classification: %w", err)
	}
	insights := quadrant.GenerateInsights(result)

	stats, err := analytics.Describe(ds.Observations)
	if err != nil {
		return fmt.Errorf("descriptive statistics: %w", err)
	}

	matrix, err := analytics.Correlate(ds.Observations)
	if err != nil {
		return fmt.Errorf("correlation matrix: %w", err)
	}

	quadrantCSV := filepath.Join(outputDir, fmt.Sprintf("quadrant_%s.csv", kind))
	if err := quadrant.SaveToCSV(result, quadrantCSV); err != nil {
		return fmt.Errorf("save quadrant CSV: %w", err)
	}

	summaryPath := filepath.Join(outputDir, fmt.Sprintf("quadrant_%s_summary.txt", kind))
	if err := quadrant.SaveSummaryReport(insights, summaryPath); err != nil {
		return fmt.Errorf("save quadrant summary: %w", err)
	}

	report := &exporter.ExcelReport{
		Title:        fmt.Sprintf("Blood Donation EDA (%s)", kind),
		Insights:     insights,
		Result:       result,
		Descriptive:  stats,
		Monthly:      analytics.MonthlyTotals(ds.Observations),
		Yearly:       analytics.YearlyTotals(ds.Observations),
		TopEntities:  analytics.TopEntities(ds.Observations, cfg.Analysis.TopEntities),
		Categories:   analytics.CategoryTotals(ds.Observations),
		Correlation:  matrix,
		Verification: verification,
	}

	workbookPath := filepath.Join(outputDir, fmt.Sprintf("eda_%s.xlsx", kind))
	if err := exporter.SaveExcelReport(report, workbookPath); err != nil {
		return fmt.Errorf("save Excel report: %w", err)
	}

	logger.InfoContext(ctx, "dataset analyzed",
		"dataset", kind,
		"entities", len(result.Assignments),
		"quadrant_csv", quadrantCSV,
		"workbook", workbookPath,
	)

	return nil
}

// writeVerificationCSV persists the reconciliation report
func writeVerificationCSV(writer *exporter.CSVWriter, report *analytics.VerificationReport) error {
	records := [][]string{
		{"days_compared", strconv.Itoa(report.DaysCompared)},
		{"mismatched_days", strconv.Itoa(report.MismatchedDays)},
		{"facility_only_days", strconv.Itoa(report.FacilityOnly)},
		{"state_only_days", strconv.Itoa(report.StateOnly)},
		{"min_difference", strconv.Itoa(report.MinDifference)},
		{"max_difference", strconv.Itoa(report.MaxDifference)},
		{"mean_difference", strconv.FormatFloat(report.MeanDifference, 'f', 4, 64)},
	}
	for _, m := range report.SampleMismatches {
		records = append(records, []string{
			"mismatch_" + m.Date,
			fmt.Sprintf("facility=%d state=%d diff=%d", m.FacilityTotal, m.StateTotal, m.Difference),
		})
	}

	return writer.WriteSimpleCSV(config.VerificationCSVName, []string{"Metric", "Value"}, records)
}
