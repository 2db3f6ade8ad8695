package processors

// Global default constants used when the caller supplies no override and the
// jurisdiction tables carry no value of their own. Monetary amounts are
// annual unless noted.
const (
	DefaultDepositPercent = 0.20
	DefaultLoanTermYears  = 30

	DefaultLegalFees        = 1500.0
	DefaultPestReportFee    = 500.0
	DefaultStrataReportFee  = 0.0
	DefaultBuyersAgencyFee  = 15000.0
	DefaultRenovationBudget = 0.0

	DefaultCouncilRates      = 1800.0
	DefaultStrataFees        = 0.0
	DefaultBuildingInsurance = 1100.0
	DefaultMiscCosts         = 500.0
)

// loanProfile is the per-loan-type default set. The SMSF profile carries
// higher lending rates, principal-and-interest servicing and a 0% tax
// bracket (superannuation funds in accumulation are modelled untaxed here).
type loanProfile struct {
	InterestOnlyRate      float64
	PrincipalInterestRate float64
	TaxBracket            float64
	ExpenseLabel          string
}

var (
	standardProfile = loanProfile{
		InterestOnlyRate:      0.065,
		PrincipalInterestRate: 0.06,
		TaxBracket:            0.325,
		ExpenseLabel:          "Expenses (interest only)",
	}
	smsfProfile = loanProfile{
		InterestOnlyRate:      0.0725,
		PrincipalInterestRate: 0.07,
		TaxBracket:            0.0,
		ExpenseLabel:          "Expenses (principal & interest)",
	}
)
