package processors

import (
	"math"
	"testing"
)

func TestLMIDepositBands(t *testing.T) {
	calc := NewLMICalculator()
	loan := 480000.0

	tests := []struct {
		depositRatio float64
		expected     float64
	}{
		{0.25, 0},
		{0.20, 0},
		{0.18, loan * 0.010},
		{0.15, loan * 0.010}, // exactly 15% takes the higher band
		{0.14, loan * 0.017},
		{0.12, loan * 0.017},
		{0.11, loan * 0.025},
		{0.10, loan * 0.025},
		{0.09, loan * 0.035},
		{0.00, loan * 0.035},
	}
	for _, tc := range tests {
		got := calc.Calculate(tc.depositRatio, loan)
		if math.Abs(got-tc.expected) > 0.01 {
			t.Errorf("LMI at deposit %.2f: expected %.2f, got %.2f", tc.depositRatio, tc.expected, got)
		}
	}
}

func TestLMINonIncreasingInDeposit(t *testing.T) {
	calc := NewLMICalculator()
	loan := 350000.0

	prev := math.Inf(1)
	for ratio := 0.0; ratio <= 0.30; ratio += 0.005 {
		got := calc.Calculate(ratio, loan)
		if got > prev {
			t.Fatalf("LMI increased with deposit ratio %.3f: %.2f -> %.2f", ratio, prev, got)
		}
		prev = got
	}
}
