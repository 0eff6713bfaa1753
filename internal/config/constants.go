package config

// Application constants
const (
	// Application Info
	AppName    = "Darah EDA"
	AppVersion = "1.0.0"

	// Config file searched for next to the executable
	ConfigFileName = "darah-config.yaml"

	// Well-known report file names
	QuadrantCSVName     = "quadrant_assignments.csv"
	QuadrantSummaryName = "quadrant_summary.txt"
	VerificationCSVName = "daily_total_verification.csv"
	ExcelReportName     = "donation_eda_report.xlsx"

	// Date format used throughout reports
	ReportDateFormat = "2006-01-02"
)
