// Package config loads application configuration from environment variables
// (prefix DARAH) merged with an optional darah-config.yaml next to the
// executable, validates it, and resolves all file paths relative to the
// executable directory.
package config
