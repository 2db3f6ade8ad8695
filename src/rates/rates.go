// Package rates holds the per-jurisdiction rate tables used by the cashflow
// engine: stamp-duty bracket schedules, registration fee constants and
// landlord-insurance / management-fee defaults. Tables are loaded once at
// process start and are read-only afterwards, so they can be shared across
// concurrent report requests without locking.
package rates

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_rates.yaml
var defaultRatesYAML []byte

// Duty schedule styles. NSW keeps the statutory dollars-per-$100 shape and NT
// keeps the percentage-of-total approximation; the two are structurally
// different formulas, not formatting variants, and are kept separate.
const (
	StyleMarginal       = "marginal"
	StylePer100         = "per100"
	StylePercentOfTotal = "percent_of_total"
)

// Bracket is one row of a duty schedule: prices up to UpperBound pay Base for
// the preceding brackets plus Rate on the excess. UpperBound 0 marks the
// open-ended top bracket.
type Bracket struct {
	UpperBound float64 `yaml:"upper_bound"`
	Base       float64 `yaml:"base"`
	Rate       float64 `yaml:"rate"`
}

// DutySchedule is an ordered, ascending bracket schedule. Minimum is the
// nominal floor some jurisdictions charge at very low prices.
type DutySchedule struct {
	Style    string    `yaml:"style"`
	Minimum  float64   `yaml:"minimum"`
	Brackets []Bracket `yaml:"brackets"`
}

// Jurisdiction bundles everything the engine looks up per state/territory.
type Jurisdiction struct {
	LandlordInsurance       float64      `yaml:"landlord_insurance"`
	ManagementPercent       float64      `yaml:"management_percent"`
	TransferFee             float64      `yaml:"transfer_fee"`
	MortgageRegistrationFee float64      `yaml:"mortgage_registration_fee"`
	StampDuty               DutySchedule `yaml:"stamp_duty"`
}

// Fallback is the explicit unknown-region policy: insurance and management
// defaults borrowed from the designated fallback jurisdiction, a flat
// approximate stamp-duty rate and a generic registration fee pair. An
// unrecognized code is never an error.
type Fallback struct {
	FlatStampRate           float64 `yaml:"flat_stamp_rate"`
	LandlordInsurance       float64 `yaml:"landlord_insurance"`
	ManagementPercent       float64 `yaml:"management_percent"`
	TransferFee             float64 `yaml:"transfer_fee"`
	MortgageRegistrationFee float64 `yaml:"mortgage_registration_fee"`
}

// Table is the full immutable rate table.
type Table struct {
	Fallback      Fallback                `yaml:"fallback"`
	Jurisdictions map[string]Jurisdiction `yaml:"jurisdictions"`
}

// Lookup returns the table entry for a jurisdiction code (case-insensitive)
// and whether the code was recognized.
func (t *Table) Lookup(code string) (Jurisdiction, bool) {
	j, ok := t.Jurisdictions[strings.ToUpper(strings.TrimSpace(code))]
	return j, ok
}

// Default returns the compiled-in rate tables.
func Default() *Table {
	table, err := parse(defaultRatesYAML)
	if err != nil {
		// The embedded tables are fixed at build time; failing to parse them
		// is a programming error, not a runtime condition.
		panic(fmt.Sprintf("rates: embedded default tables invalid: %v", err))
	}
	return table
}

// Load reads rate tables from a YAML file. An empty path returns the
// compiled-in defaults.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates config %s: %w", path, err)
	}
	table, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rates config %s: %w", path, err)
	}
	return table, nil
}

func parse(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	if len(table.Jurisdictions) == 0 {
		return nil, fmt.Errorf("no jurisdictions defined")
	}
	for code, j := range table.Jurisdictions {
		if len(j.StampDuty.Brackets) == 0 {
			return nil, fmt.Errorf("jurisdiction %s has no stamp duty brackets", code)
		}
		prev := 0.0
		for i, b := range j.StampDuty.Brackets {
			last := i == len(j.StampDuty.Brackets)-1
			if last {
				if b.UpperBound != 0 {
					return nil, fmt.Errorf("jurisdiction %s: last bracket must be open-ended", code)
				}
				continue
			}
			if b.UpperBound <= prev {
				return nil, fmt.Errorf("jurisdiction %s: brackets must be ascending", code)
			}
			prev = b.UpperBound
		}
	}
	return &table, nil
}
