package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"darahcli/internal/analytics"
	"darahcli/internal/quadrant"
)

// ExcelReport bundles the full EDA output for one dataset into a
// multi-sheet workbook: quadrant assignments, descriptive statistics,
// trends, categorical breakdowns and the correlation matrix.
type ExcelReport struct {
	Title         string
	Insights      quadrant.Insights
	Result        *quadrant.Result
	Descriptive   []analytics.ColumnStats
	Monthly       []analytics.PeriodTotal
	Yearly        []analytics.PeriodTotal
	TopEntities   []analytics.EntityTotal
	Categories    []analytics.CategoryBreakdown
	Correlation   *analytics.CorrelationMatrix
	Verification  *analytics.VerificationReport
}

// Sheet names in the generated workbook
const (
	sheetSummary     = "Summary"
	sheetQuadrants   = "Quadrants"
	sheetDescriptive = "Descriptive"
	sheetTrends      = "Trends"
	sheetCategories  = "Categories"
	sheetCorrelation = "Correlation"
)

// SaveExcelReport writes the report workbook to outputPath
func SaveExcelReport(report *ExcelReport, outputPath string) error {
	if report == nil || report.Result == nil {
		return fmt.Errorf("no report data to save")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}
	if err := writeQuadrantSheet(f, report.Result); err != nil {
		return fmt.Errorf("write quadrant sheet: %w", err)
	}
	if err := writeDescriptiveSheet(f, report.Descriptive); err != nil {
		return fmt.Errorf("write descriptive sheet: %w", err)
	}
	if err := writeTrendsSheet(f, report); err != nil {
		return fmt.Errorf("write trends sheet: %w", err)
	}
	if err := writeCategoriesSheet(f, report.Categories); err != nil {
		return fmt.Errorf("write categories sheet: %w", err)
	}
	if err := writeCorrelationSheet(f, report.Correlation); err != nil {
		return fmt.Errorf("write correlation sheet: %w", err)
	}

	// The default sheet is replaced by Summary
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	slog.Info("Wrote Excel report",
		slog.String("path", outputPath),
		slog.Int("entities", len(report.Result.Assignments)))

	return nil
}

func writeSummarySheet(f *excelize.File, report *ExcelReport) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	rows := [][]interface{}{
		{report.Title},
		{"Generated", report.Insights.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Entities analyzed", report.Insights.TotalEntities},
		{"Mean threshold", report.Insights.Thresholds.MeanThreshold},
		{"Std threshold", report.Insights.Thresholds.StdThreshold},
		{},
		{"Quadrant", "Entities", "Avg mean", "Avg std", "Recommendation"},
	}
	for _, g := range report.Insights.Groups {
		rows = append(rows, []interface{}{
			g.Quadrant.String(), g.Count, g.MeanOfMeans, g.MeanOfStds, g.Recommendation,
		})
	}

	if report.Verification != nil {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Daily total verification (facility vs state)"},
			[]interface{}{"Days compared", report.Verification.DaysCompared},
			[]interface{}{"Mismatched days", report.Verification.MismatchedDays},
			[]interface{}{"Mean difference", report.Verification.MeanDifference},
		)
	}

	return writeRows(f, sheetSummary, rows)
}

func writeQuadrantSheet(f *excelize.File, result *quadrant.Result) error {
	if _, err := f.NewSheet(sheetQuadrants); err != nil {
		return err
	}

	obsByEntity := make(map[string]int, len(result.Summaries))
	for _, s := range result.Summaries {
		obsByEntity[s.Entity] = s.Observations
	}

	rows := [][]interface{}{
		{"Entity", "Quadrant", "Mean_Count", "Std_Count", "Observations"},
	}
	for _, a := range result.Assignments {
		rows = append(rows, []interface{}{
			a.Entity, a.Quadrant.String(), a.MeanCount, a.StdCount, obsByEntity[a.Entity],
		})
	}

	return writeRows(f, sheetQuadrants, rows)
}

func writeDescriptiveSheet(f *excelize.File, stats []analytics.ColumnStats) error {
	if _, err := f.NewSheet(sheetDescriptive); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Column", "Count", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"},
	}
	for _, s := range stats {
		rows = append(rows, []interface{}{
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max,
		})
	}

	return writeRows(f, sheetDescriptive, rows)
}

func writeTrendsSheet(f *excelize.File, report *ExcelReport) error {
	if _, err := f.NewSheet(sheetTrends); err != nil {
		return err
	}

	rows := [][]interface{}{{"Monthly totals"}, {"Month", "Total"}}
	for _, p := range report.Monthly {
		rows = append(rows, []interface{}{p.Period, p.Total})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Yearly totals"}, []interface{}{"Year", "Total"})
	for _, p := range report.Yearly {
		rows = append(rows, []interface{}{p.Period, p.Total})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Top entities"}, []interface{}{"Entity", "Total"})
	for _, e := range report.TopEntities {
		rows = append(rows, []interface{}{e.Entity, e.Total})
	}

	return writeRows(f, sheetTrends, rows)
}

func writeCategoriesSheet(f *excelize.File, breakdowns []analytics.CategoryBreakdown) error {
	if _, err := f.NewSheet(sheetCategories); err != nil {
		return err
	}

	var rows [][]interface{}
	for _, b := range breakdowns {
		rows = append(rows, []interface{}{b.Dimension})
		for _, key := range b.Order {
			rows = append(rows, []interface{}{key, b.Totals[key]})
		}
		rows = append(rows, []interface{}{})
	}

	return writeRows(f, sheetCategories, rows)
}

func writeCorrelationSheet(f *excelize.File, matrix *analytics.CorrelationMatrix) error {
	if _, err := f.NewSheet(sheetCorrelation); err != nil {
		return err
	}
	if matrix == nil {
		return nil
	}

	header := make([]interface{}, 0, len(matrix.Columns)+1)
	header = append(header, "")
	for _, col := range matrix.Columns {
		header = append(header, col)
	}
	rows := [][]interface{}{header}

	for i, col := range matrix.Columns {
		row := make([]interface{}, 0, len(matrix.Columns)+1)
		row = append(row, col)
		for j := range matrix.Columns {
			row = append(row, matrix.Values[i][j])
		}
		rows = append(rows, row)
	}

	return writeRows(f, sheetCorrelation, rows)
}

// writeRows writes rows starting at A1, one slice per spreadsheet row
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := "A" + strconv.Itoa(i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("set row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
