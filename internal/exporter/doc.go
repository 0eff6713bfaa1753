// Package exporter writes analysis output to disk: UTF-8 CSV files with a
// BOM so Excel opens them correctly, and a multi-sheet Excel workbook
// bundling the full EDA report.
package exporter
