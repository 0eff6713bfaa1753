// Package dataset loads the two blood donation CSV files (facility-level and
// state-level) into typed, immutable Observation snapshots.
//
// Columns are resolved by header name rather than position, so the loader
// tolerates reordered or extra columns. Cleaning mirrors the published data's
// quirks: blank entity names become "Unknown", rows with unparseable dates are
// skipped, and the country-level aggregate row is dropped from the state file.
package dataset
