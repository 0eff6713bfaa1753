package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the resolved application paths.
// This is the single source of truth for file paths; every path is relative
// to the executable directory, never the current working directory.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// Input datasets
	FacilityCSV string
	StateCSV    string

	// Well-known report files
	QuadrantCSV      string
	QuadrantSummary  string
	VerificationCSV  string
	ExcelReport      string
}

// executableDir resolves the directory containing the running executable,
// following symlinks.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}
	return filepath.Dir(exe), nil
}

// GetPaths derives the full path set from a loaded configuration
func GetPaths(cfg *Config) *Paths {
	exeDir, err := executableDir()
	if err != nil {
		exeDir = "."
	}

	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       cfg.Paths.DataDir,
		ReportsDir:    cfg.Paths.ReportsDir,
		LogsDir:       cfg.Paths.LogsDir,
		FacilityCSV:   cfg.Paths.FacilityCSV,
		StateCSV:      cfg.Paths.StateCSV,

		QuadrantCSV:     filepath.Join(cfg.Paths.ReportsDir, QuadrantCSVName),
		QuadrantSummary: filepath.Join(cfg.Paths.ReportsDir, QuadrantSummaryName),
		VerificationCSV: filepath.Join(cfg.Paths.ReportsDir, VerificationCSVName),
		ExcelReport:     filepath.Join(cfg.Paths.ReportsDir, ExcelReportName),
	}
}

// EnsureDirs creates the data, reports and logs directories if missing
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
