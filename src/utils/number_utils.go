package utils

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseAmount normalizes a raw numeric field coming from the request layer.
// Values arrive either as numbers or as strings carrying currency symbols,
// percent signs and thousands separators ("$1,234.50", "5.5%"). Anything that
// still fails to parse after stripping degrades to 0 rather than erroring.
func ParseAmount(raw string) float64 {
	cleaned := strings.NewReplacer(",", "", "$", "", "%", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// NormalizePercent applies the dual percent convention used across every
// percentage-typed input field: a value greater than 1 is a whole percentage
// (20 means 20%), a value of 1 or below is an already-normalized fraction
// (0.20 means 20%). An input of exactly 1 is therefore read as a fraction
// meaning 100%, never as 1% - a known boundary kept for compatibility.
func NormalizePercent(value float64) float64 {
	if value > 1 {
		return value / 100
	}
	return value
}

// FormatMoney renders a monetary amount for display: fixed two decimal
// places with thousands separators ("21,605.00").
func FormatMoney(value float64) string {
	return humanize.FormatFloat("#,###.##", value)
}

// FormatPercent renders a 0-1 fraction as a whole-number percentage with two
// decimal places ("5.50%").
func FormatPercent(fraction float64) string {
	return humanize.FormatFloat("#,###.##", fraction*100) + "%"
}
