package processors

import (
	"github.com/username/propfolio/src/rates"
	"github.com/username/propfolio/src/utils"
)

// mortgageFeeCalculatorImpl implements the MortgageFeeCalculator interface.
type mortgageFeeCalculatorImpl struct {
	table *rates.Table
}

// NewMortgageFeeCalculator creates a MortgageFeeCalculator over the given
// rate tables.
func NewMortgageFeeCalculator(table *rates.Table) MortgageFeeCalculator {
	return &mortgageFeeCalculatorImpl{table: table}
}

// Calculate returns the government registration costs for the jurisdiction:
// two transfer lodgements plus one mortgage registration, rounded up to the
// nearest 100. The price parameter is accepted but unused; the simplified
// fee model charges the same lodgement costs at any price. This is a known
// approximation, not a bug.
func (c *mortgageFeeCalculatorImpl) Calculate(price float64, jurisdiction string) float64 {
	_ = price

	transfer := c.table.Fallback.TransferFee
	mortgageReg := c.table.Fallback.MortgageRegistrationFee
	if j, ok := c.table.Lookup(jurisdiction); ok {
		transfer = j.TransferFee
		mortgageReg = j.MortgageRegistrationFee
	}
	return utils.RoundUpToHundred(2*transfer + mortgageReg)
}
