package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration.
// Relative paths are resolved against the executable directory.
type PathsConfig struct {
	DataDir     string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	ReportsDir  string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	LogsDir     string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
	FacilityCSV string `yaml:"facility_csv" envconfig:"FACILITY_CSV" validate:"required"`
	StateCSV    string `yaml:"state_csv" envconfig:"STATE_CSV" validate:"required"`
}

// AnalysisConfig fixes the statistical policy for a run.
// The defaults match the documented conventions: sample standard deviation
// and threshold ties classified as HIGH.
type AnalysisConfig struct {
	StdConvention string `yaml:"std_convention" envconfig:"STD_CONVENTION" validate:"oneof=sample population"`
	TieBreakHigh  bool   `yaml:"tie_break_high" envconfig:"TIE_BREAK_HIGH"`
	TopEntities   int    `yaml:"top_entities" envconfig:"TOP_ENTITIES" validate:"gte=1,lte=100"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/darah.log",
		},
		Paths: PathsConfig{
			DataDir:     "data",
			ReportsDir:  filepath.Join("data", "reports"),
			LogsDir:     "logs",
			FacilityCSV: filepath.Join("data", "donations_facility.csv"),
			StateCSV:    filepath.Join("data", "donations_state.csv"),
		},
		Analysis: AnalysisConfig{
			StdConvention: "sample",
			TieBreakHigh:  true,
			TopEntities:   15,
		},
	}
}

// Load builds the configuration in three layers: built-in defaults, then the
// optional YAML file next to the executable, then DARAH_* environment
// variables. Later layers win.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("DARAH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// resolvePaths makes relative paths absolute against the executable directory
func (c *Config) resolvePaths() error {
	exeDir, err := executableDir()
	if err != nil {
		return err
	}

	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(exeDir, p)
	}

	c.Paths.DataDir = resolve(c.Paths.DataDir)
	c.Paths.ReportsDir = resolve(c.Paths.ReportsDir)
	c.Paths.LogsDir = resolve(c.Paths.LogsDir)
	c.Paths.FacilityCSV = resolve(c.Paths.FacilityCSV)
	c.Paths.StateCSV = resolve(c.Paths.StateCSV)
	c.Logging.FilePath = resolve(c.Logging.FilePath)

	return nil
}

// getConfigFilePath returns the path to the optional config file,
// which lives next to the executable.
func getConfigFilePath() string {
	if path := os.Getenv("DARAH_CONFIG_FILE"); path != "" {
		return path
	}
	exeDir, err := executableDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(exeDir, ConfigFileName)
}
