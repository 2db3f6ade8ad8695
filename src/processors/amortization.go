package processors

import "math"

// AnnualLoanPayment returns the annual cost of a fixed-payment
// principal-and-interest loan: the standard annuity formula with monthly
// compounding (monthly rate = annualRate/12, n = termYears*12), annualized
// as 12 monthly payments. A zero rate degrades to linear repayment. The term
// must be positive; that is the caller's responsibility.
func AnnualLoanPayment(annualRate float64, termYears int, principal float64) float64 {
	n := float64(termYears * 12)
	monthlyRate := annualRate / 12

	var monthly float64
	if monthlyRate == 0 {
		monthly = principal / n
	} else {
		monthly = principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
	}
	return 12 * monthly
}
