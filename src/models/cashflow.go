package models

import (
	"github.com/username/propfolio/src/utils"
)

// LoanType selects the default-rate set, servicing mode and tax bracket used
// by the cashflow pipeline. It is a flat two-way policy switch: a standard
// deal services the loan interest-only, an SMSF (self-managed superannuation
// fund) deal services principal-and-interest and defaults to a 0% tax bracket.
type LoanType string

const (
	LoanTypeStandard LoanType = "standard"
	LoanTypeSMSF     LoanType = "smsf"
)

// Normalize maps any unrecognized loan type onto the standard profile.
func (t LoanType) Normalize() LoanType {
	if t == LoanTypeSMSF {
		return LoanTypeSMSF
	}
	return LoanTypeStandard
}

// CashflowInput is the sparse, caller-supplied input record. Purchase price
// and at least one weekly rent figure are expected; every other field is an
// optional override. Pointer fields distinguish "not supplied" (use the
// jurisdiction or global default) from an explicit zero.
type CashflowInput struct {
	PurchasePrice   FlexNumber  `json:"purchasePrice"`
	LowerRentWeekly FlexNumber  `json:"lowerRentWeekly"`
	HigherRentWeekly *FlexNumber `json:"higherRentWeekly,omitempty"`
	DepositPercent   *FlexNumber `json:"depositPercent,omitempty"`

	// One-off acquisition cost overrides.
	StampDuty        *FlexNumber `json:"stampDuty,omitempty"`
	MortgageFee      *FlexNumber `json:"mortgageFee,omitempty"`
	LMI              *FlexNumber `json:"lmi,omitempty"`
	LegalFees        *FlexNumber `json:"legalFees,omitempty"`
	PestReportFee    *FlexNumber `json:"pestReportFee,omitempty"`
	StrataReportFee  *FlexNumber `json:"strataReportFee,omitempty"`
	BuyersAgencyFee  *FlexNumber `json:"buyersAgencyFee,omitempty"`
	RenovationBudget *FlexNumber `json:"renovationBudget,omitempty"`

	// Recurring annual expense overrides.
	CouncilRates      *FlexNumber `json:"councilRates,omitempty"`
	StrataFees        *FlexNumber `json:"strataFees,omitempty"`
	BuildingInsurance *FlexNumber `json:"buildingInsurance,omitempty"`
	LandlordInsurance *FlexNumber `json:"landlordInsurance,omitempty"`
	MiscCosts         *FlexNumber `json:"miscCosts,omitempty"`

	// Percentage-typed overrides; both the whole-percent and fraction
	// conventions are accepted (20 and 0.20 both mean 20%).
	ManagementPercent     *FlexNumber `json:"managementPercent,omitempty"`
	InterestOnlyRate      *FlexNumber `json:"interestOnlyRate,omitempty"`
	PrincipalInterestRate *FlexNumber `json:"principalInterestRate,omitempty"`
	TaxBracket            *FlexNumber `json:"taxBracket,omitempty"`

	ExpenseLabel string `json:"expenseLabel,omitempty"`
}

// Amount is a single monetary value plus its display form.
type Amount struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

func NewAmount(value float64) Amount {
	rounded := utils.RoundFloat(value, 2)
	return Amount{Value: rounded, Display: utils.FormatMoney(rounded)}
}

// Figure is a monetary quantity expanded into weekly, monthly and annual
// granularity. The annual magnitude is authoritative; weekly and monthly are
// simple divisions (annual/52, annual/12), not compounding conversions.
type Figure struct {
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Annual  float64 `json:"annual"`

	WeeklyDisplay  string `json:"weeklyDisplay"`
	MonthlyDisplay string `json:"monthlyDisplay"`
	AnnualDisplay  string `json:"annualDisplay"`
}

func NewFigure(annual float64) Figure {
	weekly := utils.RoundFloat(annual/52, 2)
	monthly := utils.RoundFloat(annual/12, 2)
	annual = utils.RoundFloat(annual, 2)
	return Figure{
		Weekly:         weekly,
		Monthly:        monthly,
		Annual:         annual,
		WeeklyDisplay:  utils.FormatMoney(weekly),
		MonthlyDisplay: utils.FormatMoney(monthly),
		AnnualDisplay:  utils.FormatMoney(annual),
	}
}

// CashflowResult is the fully computed output record consumed by the
// rendering layer. It is constructed once per request and never mutated.
type CashflowResult struct {
	Jurisdiction string   `json:"jurisdiction"`
	LoanType     LoanType `json:"loanType"`
	AsOf         string   `json:"asOf"`

	PurchasePrice         Amount `json:"purchasePrice"`
	DepositPercentDisplay string `json:"depositPercentDisplay"`
	Deposit               Amount `json:"deposit"`
	LoanAmount            Amount `json:"loanAmount"`
	LVRDisplay            string `json:"lvrDisplay"`

	StampDuty        Amount `json:"stampDuty"`
	MortgageFee      Amount `json:"mortgageFee"`
	LMI              Amount `json:"lmi"`
	LegalFees        Amount `json:"legalFees"`
	PestReportFee    Amount `json:"pestReportFee"`
	StrataReportFee  Amount `json:"strataReportFee"`
	BuyersAgencyFee  Amount `json:"buyersAgencyFee"`
	RenovationBudget Amount `json:"renovationBudget"`

	TotalFundsRequired Amount `json:"totalFundsRequired"`

	RentLower  Figure `json:"rentLower"`
	RentHigher Figure `json:"rentHigher"`

	YieldLower         float64 `json:"yieldLower"`
	YieldHigher        float64 `json:"yieldHigher"`
	YieldLowerDisplay  string  `json:"yieldLowerDisplay"`
	YieldHigherDisplay string  `json:"yieldHigherDisplay"`

	CouncilRates      Figure `json:"councilRates"`
	StrataFees        Figure `json:"strataFees"`
	BuildingInsurance Figure `json:"buildingInsurance"`
	LandlordInsurance Figure `json:"landlordInsurance"`
	MiscCosts         Figure `json:"miscCosts"`
	ManagementFee     Figure `json:"managementFee"`

	InterestOnlyCost      Figure `json:"interestOnlyCost"`
	PrincipalInterestCost Figure `json:"principalInterestCost"`

	TotalExpenses Figure `json:"totalExpenses"`
	ExpenseLabel  string `json:"expenseLabel"`

	// Cashflow figures are reported as unsigned magnitudes; the sign is
	// implied by context in the rendered report.
	PreTaxCashflowLower  Figure `json:"preTaxCashflowLower"`
	PreTaxCashflowHigher Figure `json:"preTaxCashflowHigher"`

	TaxBracketDisplay string `json:"taxBracketDisplay"`

	PostTaxCashflowLower  Figure `json:"postTaxCashflowLower"`
	PostTaxCashflowHigher Figure `json:"postTaxCashflowHigher"`
}
