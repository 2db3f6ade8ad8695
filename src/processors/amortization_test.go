package processors

import (
	"math"
	"testing"
)

func TestAnnualLoanPaymentZeroRate(t *testing.T) {
	// Zero rate degrades to linear repayment: 300000 over 30 years.
	got := AnnualLoanPayment(0, 30, 300000)
	if math.Abs(got-10000) > 1e-9 {
		t.Errorf("expected 10000.00 annual, got %.2f", got)
	}
}

func TestAnnualLoanPaymentMatchesClosedForm(t *testing.T) {
	// 6% over 30 years on 300000 is the textbook $1,798.65 monthly annuity.
	got := AnnualLoanPayment(0.06, 30, 300000)
	expected := 12 * 1798.65
	if math.Abs(got-expected) > 0.5 {
		t.Errorf("expected ~%.2f annual, got %.2f", expected, got)
	}

	// Cross-check against the closed form at a second rate/term.
	rate, years, principal := 0.0725, 25, 480000.0
	monthlyRate := rate / 12
	n := float64(years * 12)
	closedForm := 12 * principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
	if got := AnnualLoanPayment(rate, years, principal); math.Abs(got-closedForm) > 1e-6 {
		t.Errorf("expected %.6f annual, got %.6f", closedForm, got)
	}
}

func TestAnnualLoanPaymentZeroPrincipal(t *testing.T) {
	if got := AnnualLoanPayment(0.06, 30, 0); got != 0 {
		t.Errorf("expected 0.00 annual for zero principal, got %.2f", got)
	}
}
