package processors

import (
	"github.com/username/propfolio/src/utils"
)

// lmiCalculatorImpl implements the LMICalculator interface.
type lmiCalculatorImpl struct{}

// NewLMICalculator creates a new LMICalculator.
func NewLMICalculator() LMICalculator {
	return &lmiCalculatorImpl{}
}

// Calculate returns the lender's mortgage insurance premium. A deposit of
// 20% or more needs no insurance. Below that, the premium rate is a single
// step keyed to the deposit band, checked high to low so an exact 15%
// deposit gets the 1.0% band.
func (c *lmiCalculatorImpl) Calculate(depositRatio, loanPrincipal float64) float64 {
	var rate float64
	switch {
	case depositRatio >= 0.20:
		return 0
	case depositRatio >= 0.15:
		rate = 0.010
	case depositRatio >= 0.12:
		rate = 0.017
	case depositRatio >= 0.10:
		rate = 0.025
	default:
		rate = 0.035
	}
	return utils.RoundFloat(rate*loanPrincipal, 2)
}
