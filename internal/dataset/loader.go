package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// UnknownEntity is substituted for blank hospital/state names during cleaning
const UnknownEntity = "Unknown"

// countryAggregate marks state-file rows that duplicate the national total.
// They are dropped so per-state statistics are not skewed by the aggregate row.
const countryAggregate = "malaysia"

// dateLayout is the date format used by both donation CSV files
const dateLayout = "2006-01-02"

// Loader reads the donation CSV files into immutable Dataset snapshots
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader with the given logger
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadPair loads the facility and state datasets concurrently
func (l *Loader) LoadPair(ctx context.Context, facilityPath, statePath string) (*Dataset, *Dataset, error) {
	var facility, state *Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		facility, err = l.Load(gctx, facilityPath, KindFacility)
		if err != nil {
			return fmt.Errorf("load facility dataset: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		state, err = l.Load(gctx, statePath, KindState)
		if err != nil {
			return fmt.Errorf("load state dataset: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return facility, state, nil
}

// Load reads a single donation CSV file.
// Cleaning rules applied while reading:
//   - rows with unparseable dates are skipped and logged
//   - blank entity names are replaced with "Unknown"
//   - the country-level aggregate row ("Malaysia") is dropped from the state file
//   - rows with negative counts are rejected
func (l *Loader) Load(ctx context.Context, path string, kind Kind) (*Dataset, error) {
	l.logger.InfoContext(ctx, "loading donation dataset",
		slog.String("path", path),
		slog.String("kind", kind.String()),
	)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	observations, skipped, err := l.parse(file, kind)
	if err != nil {
		return nil, err
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("no valid observations in %s", path)
	}

	l.logger.InfoContext(ctx, "loaded donation dataset",
		slog.String("kind", kind.String()),
		slog.Int("observations", len(observations)),
		slog.Int("skipped_rows", skipped),
	)

	return &Dataset{Kind: kind, Source: path, Observations: observations}, nil
}

// entityColumn returns the header name carrying the entity identifier
func entityColumn(kind Kind) string {
	if kind == KindState {
		return "state"
	}
	return "hospital"
}

func (l *Loader) parse(r io.Reader, kind Kind) ([]Observation, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	indices := make(map[string]int)
	for i, col := range header {
		indices[strings.TrimSpace(strings.ToLower(col))] = i
	}

	required := []string{"date", entityColumn(kind), "daily"}
	for _, col := range required {
		if _, ok := indices[col]; !ok {
			return nil, 0, fmt.Errorf("missing required column: %s", col)
		}
	}

	var observations []Observation
	skipped := 0
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read record at line %d: %w", line+1, err)
		}
		line++

		cell := func(name string) string {
			idx, ok := indices[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		date, err := time.Parse(dateLayout, cell("date"))
		if err != nil {
			l.logger.Warn("skipping row with invalid date",
				slog.Int("line", line),
				slog.String("date", cell("date")),
			)
			skipped++
			continue
		}

		entity := cell(entityColumn(kind))
		if entity == "" {
			entity = UnknownEntity
		}
		if kind == KindState && strings.EqualFold(entity, countryAggregate) {
			skipped++
			continue
		}

		count := func(name string) (int, error) {
			s := cell(name)
			if s == "" {
				return 0, nil
			}
			// Some exports serialize counts as floats ("12.0")
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, fmt.Errorf("column %s at line %d: %w", name, line, err)
			}
			return int(f), nil
		}

		obs := Observation{Entity: entity, Date: date}
		fields := []struct {
			name string
			dst  *int
		}{
			{"daily", &obs.Daily},
			{"blood_a", &obs.BloodA},
			{"blood_b", &obs.BloodB},
			{"blood_o", &obs.BloodO},
			{"blood_ab", &obs.BloodAB},
			{"type_wholeblood", &obs.TypeWholeBlood},
			{"type_apheresis_platelet", &obs.TypeApheresisPlatelet},
			{"type_apheresis_plasma", &obs.TypeApheresisPlasma},
			{"type_other", &obs.TypeOther},
			{"social_civilian", &obs.SocialCivilian},
			{"social_student", &obs.SocialStudent},
			{"social_policearmy", &obs.SocialPoliceArmy},
			{"donations_new", &obs.DonationsNew},
			{"donations_regular", &obs.DonationsRegular},
			{"donations_irregular", &obs.DonationsIrregular},
		}
		parseErr := false
		for _, f := range fields {
			v, err := count(f.name)
			if err != nil {
				l.logger.Warn("skipping row with unparseable count",
					slog.Int("line", line),
					slog.String("error", err.Error()),
				)
				skipped++
				parseErr = true
				break
			}
			*f.dst = v
		}
		if parseErr {
			continue
		}

		if !obs.IsValid() {
			return nil, 0, fmt.Errorf("invalid observation at line %d: negative count for entity %q", line, entity)
		}

		observations = append(observations, obs)
	}

	return observations, skipped, nil
}
