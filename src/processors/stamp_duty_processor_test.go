package processors

import (
	"math"
	"testing"

	"github.com/username/propfolio/src/rates"
)

func newStampDutyCalculator(t *testing.T) StampDutyCalculator {
	t.Helper()
	return NewStampDutyCalculator(rates.Default())
}

func TestStampDutyNSWBrackets(t *testing.T) {
	calc := newStampDutyCalculator(t)

	tests := []struct {
		price    float64
		expected float64
	}{
		{0, 20},      // nominal minimum
		{10000, 125}, // 10000/100 * 1.25
		{16000, 200},
		{35000, 485},
		{600000, 21605}, // 10985 + (600000-364000)/100 * 4.50
		{1214000, 49235},
		{1500000, 64965}, // 49235 + (1500000-1214000)/100 * 5.50
	}
	for _, tc := range tests {
		got := calc.Calculate(tc.price, "NSW")
		if math.Abs(got-tc.expected) > 0.01 {
			t.Errorf("NSW duty at %.0f: expected %.2f, got %.2f", tc.price, tc.expected, got)
		}
	}
}

func TestStampDutyNTPercentOfTotal(t *testing.T) {
	calc := newStampDutyCalculator(t)

	// The approximated schedule charges the band rate on the whole price.
	if got := calc.Calculate(400000, "NT"); math.Abs(got-14000) > 0.01 {
		t.Errorf("NT duty at 400000: expected 14000.00, got %.2f", got)
	}
	if got := calc.Calculate(600000, "NT"); math.Abs(got-29700) > 0.01 {
		t.Errorf("NT duty at 600000: expected 29700.00, got %.2f", got)
	}
}

func TestStampDutyTASLowBandMinimum(t *testing.T) {
	calc := newStampDutyCalculator(t)

	// Very low prices pay a flat nominal amount, not zero.
	for _, price := range []float64{0, 1000, 3000} {
		if got := calc.Calculate(price, "TAS"); got != 50 {
			t.Errorf("TAS duty at %.0f: expected 50.00, got %.2f", price, got)
		}
	}
}

func TestStampDutyUnknownJurisdictionFlatRate(t *testing.T) {
	calc := newStampDutyCalculator(t)

	// Unknown region policy: flat 4% approximation, never an error.
	if got := calc.Calculate(500000, "XYZ"); math.Abs(got-20000) > 0.01 {
		t.Errorf("fallback duty at 500000: expected 20000.00, got %.2f", got)
	}
	if got := calc.Calculate(0, ""); got != 0 {
		t.Errorf("fallback duty at 0: expected 0.00, got %.2f", got)
	}
}

func TestStampDutyNonNegativeAndMonotonic(t *testing.T) {
	calc := newStampDutyCalculator(t)

	jurisdictions := []string{"NSW", "VIC", "QLD", "SA", "WA", "TAS", "ACT", "NT", "UNKNOWN"}
	for _, j := range jurisdictions {
		prev := -1.0
		for price := 0.0; price <= 2500000; price += 25000 {
			got := calc.Calculate(price, j)
			if got < 0 {
				t.Fatalf("%s duty at %.0f is negative: %.2f", j, price, got)
			}
			if got < prev {
				t.Fatalf("%s duty decreased at %.0f: %.2f -> %.2f", j, price, prev, got)
			}
			prev = got
		}
	}
}
