package processors

import (
	"time"

	"github.com/username/propfolio/src/models"
)

// StampDutyCalculator computes the government transfer tax for a purchase
// price under a jurisdiction's bracket schedule.
type StampDutyCalculator interface {
	Calculate(price float64, jurisdiction string) float64
}

// LMICalculator computes the lender's mortgage insurance premium from the
// deposit ratio and loan principal.
type LMICalculator interface {
	Calculate(depositRatio, loanPrincipal float64) float64
}

// MortgageFeeCalculator computes the government registration costs for a
// jurisdiction.
type MortgageFeeCalculator interface {
	Calculate(price float64, jurisdiction string) float64
}

// CashflowProcessor is the engine's single entry point: it resolves defaults,
// runs the calculators and produces the complete, display-formatted cashflow
// projection. Pure and side-effect free; safe for concurrent use.
type CashflowProcessor interface {
	Calculate(input models.CashflowInput, jurisdiction string, loanType models.LoanType, asOf time.Time) models.CashflowResult
}
