package processors

import (
	"math"
	"strings"
	"time"

	"github.com/username/propfolio/src/models"
	"github.com/username/propfolio/src/rates"
	"github.com/username/propfolio/src/utils"
)

// cashflowProcessorImpl implements the CashflowProcessor interface.
type cashflowProcessorImpl struct {
	table       *rates.Table
	stampDuty   StampDutyCalculator
	lmi         LMICalculator
	mortgageFee MortgageFeeCalculator
}

// NewCashflowProcessor creates the aggregator over the given rate tables and
// calculators.
func NewCashflowProcessor(
	table *rates.Table,
	stampDuty StampDutyCalculator,
	lmi LMICalculator,
	mortgageFee MortgageFeeCalculator,
) CashflowProcessor {
	return &cashflowProcessorImpl{
		table:       table,
		stampDuty:   stampDuty,
		lmi:         lmi,
		mortgageFee: mortgageFee,
	}
}

// Calculate runs the full cashflow pipeline. Every step is a
// default-substitution decision, never a failure path: missing fields fall
// back to jurisdiction or global defaults and the result is always complete
// and renderable.
func (p *cashflowProcessorImpl) Calculate(input models.CashflowInput, jurisdiction string, loanType models.LoanType, asOf time.Time) models.CashflowResult {
	jurisdiction = strings.ToUpper(strings.TrimSpace(jurisdiction))
	loanType = loanType.Normalize()

	profile := standardProfile
	if loanType == models.LoanTypeSMSF {
		profile = smsfProfile
	}

	// Jurisdiction defaults; an unknown code borrows the fallback entry
	// rather than erroring.
	landlordInsuranceDefault := p.table.Fallback.LandlordInsurance
	managementPercentDefault := p.table.Fallback.ManagementPercent
	if j, ok := p.table.Lookup(jurisdiction); ok {
		landlordInsuranceDefault = j.LandlordInsurance
		managementPercentDefault = j.ManagementPercent
	}

	price := input.PurchasePrice.Float()
	if price < 0 {
		price = 0
	}

	// Loan sizing.
	depositPercent := utils.NormalizePercent(models.FloatOr(input.DepositPercent, DefaultDepositPercent))
	deposit := price * depositPercent
	loan := price - deposit
	lvr := 1 - depositPercent

	// One-off acquisition costs, each independently overridable.
	stampDuty := models.FloatOr(input.StampDuty, p.stampDuty.Calculate(price, jurisdiction))
	mortgageFee := models.FloatOr(input.MortgageFee, p.mortgageFee.Calculate(price, jurisdiction))
	lmi := models.FloatOr(input.LMI, p.lmi.Calculate(depositPercent, loan))
	legalFees := models.FloatOr(input.LegalFees, DefaultLegalFees)
	pestReport := models.FloatOr(input.PestReportFee, DefaultPestReportFee)
	strataReport := models.FloatOr(input.StrataReportFee, DefaultStrataReportFee)
	buyersAgency := models.FloatOr(input.BuyersAgencyFee, DefaultBuyersAgencyFee)
	renovation := models.FloatOr(input.RenovationBudget, DefaultRenovationBudget)

	totalFundsRequired := deposit + stampDuty + mortgageFee + lmi +
		legalFees + pestReport + strataReport + buyersAgency + renovation

	// Rent tiers; a single supplied figure serves both tiers.
	lowerRentWeekly := input.LowerRentWeekly.Float()
	higherRentWeekly := models.FloatOr(input.HigherRentWeekly, lowerRentWeekly)
	if lowerRentWeekly == 0 {
		lowerRentWeekly = higherRentWeekly
	}
	lowerRentAnnual := lowerRentWeekly * 52
	higherRentAnnual := higherRentWeekly * 52

	// Gross yield on price plus renovation, guarded against a zero
	// denominator.
	yieldLower := 0.0
	yieldHigher := 0.0
	if denom := price + renovation; denom != 0 {
		yieldLower = lowerRentAnnual / denom
		yieldHigher = higherRentAnnual / denom
	}

	// Recurring annual expense lines.
	councilRates := models.FloatOr(input.CouncilRates, DefaultCouncilRates)
	strataFees := models.FloatOr(input.StrataFees, DefaultStrataFees)
	buildingInsurance := models.FloatOr(input.BuildingInsurance, DefaultBuildingInsurance)
	landlordInsurance := models.FloatOr(input.LandlordInsurance, landlordInsuranceDefault)
	miscCosts := models.FloatOr(input.MiscCosts, DefaultMiscCosts)

	// Management fee is sized to the conservative (lower) rent estimate
	// regardless of which tier the cashflow is reported against.
	managementPercent := utils.NormalizePercent(models.FloatOr(input.ManagementPercent, managementPercentDefault))
	managementFee := managementPercent * lowerRentAnnual

	// Both servicing costs are always computed; the loan type selects which
	// one drives total expenses.
	interestOnlyRate := utils.NormalizePercent(models.FloatOr(input.InterestOnlyRate, profile.InterestOnlyRate))
	principalInterestRate := utils.NormalizePercent(models.FloatOr(input.PrincipalInterestRate, profile.PrincipalInterestRate))
	interestOnlyCost := loan * interestOnlyRate
	principalInterestCost := AnnualLoanPayment(principalInterestRate, DefaultLoanTermYears, loan)

	servicingCost := interestOnlyCost
	if loanType == models.LoanTypeSMSF {
		servicingCost = principalInterestCost
	}
	expenseLabel := profile.ExpenseLabel
	if input.ExpenseLabel != "" {
		expenseLabel = input.ExpenseLabel
	}

	totalExpenses := councilRates + strataFees + buildingInsurance +
		landlordInsurance + miscCosts + managementFee + servicingCost

	// Cashflow may be negative; the output convention reports the unsigned
	// magnitude and lets the rendering layer supply the sign.
	preTaxLower := lowerRentAnnual - totalExpenses
	preTaxHigher := higherRentAnnual - totalExpenses

	taxBracket := utils.NormalizePercent(models.FloatOr(input.TaxBracket, profile.TaxBracket))
	postTaxLower := preTaxLower * (1 - taxBracket)
	postTaxHigher := preTaxHigher * (1 - taxBracket)

	return models.CashflowResult{
		Jurisdiction: jurisdiction,
		LoanType:     loanType,
		AsOf:         utils.FormatReportDate(asOf),

		PurchasePrice:         models.NewAmount(price),
		DepositPercentDisplay: utils.FormatPercent(depositPercent),
		Deposit:               models.NewAmount(deposit),
		LoanAmount:            models.NewAmount(loan),
		LVRDisplay:            utils.FormatPercent(lvr),

		StampDuty:        models.NewAmount(stampDuty),
		MortgageFee:      models.NewAmount(mortgageFee),
		LMI:              models.NewAmount(lmi),
		LegalFees:        models.NewAmount(legalFees),
		PestReportFee:    models.NewAmount(pestReport),
		StrataReportFee:  models.NewAmount(strataReport),
		BuyersAgencyFee:  models.NewAmount(buyersAgency),
		RenovationBudget: models.NewAmount(renovation),

		TotalFundsRequired: models.NewAmount(totalFundsRequired),

		RentLower:  models.NewFigure(lowerRentAnnual),
		RentHigher: models.NewFigure(higherRentAnnual),

		YieldLower:         utils.RoundFloat(yieldLower, 4),
		YieldHigher:        utils.RoundFloat(yieldHigher, 4),
		YieldLowerDisplay:  utils.FormatPercent(yieldLower),
		YieldHigherDisplay: utils.FormatPercent(yieldHigher),

		CouncilRates:      models.NewFigure(councilRates),
		StrataFees:        models.NewFigure(strataFees),
		BuildingInsurance: models.NewFigure(buildingInsurance),
		LandlordInsurance: models.NewFigure(landlordInsurance),
		MiscCosts:         models.NewFigure(miscCosts),
		ManagementFee:     models.NewFigure(managementFee),

		InterestOnlyCost:      models.NewFigure(interestOnlyCost),
		PrincipalInterestCost: models.NewFigure(principalInterestCost),

		TotalExpenses: models.NewFigure(totalExpenses),
		ExpenseLabel:  expenseLabel,

		PreTaxCashflowLower:  models.NewFigure(math.Abs(preTaxLower)),
		PreTaxCashflowHigher: models.NewFigure(math.Abs(preTaxHigher)),

		TaxBracketDisplay: utils.FormatPercent(taxBracket),

		PostTaxCashflowLower:  models.NewFigure(math.Abs(postTaxLower)),
		PostTaxCashflowHigher: models.NewFigure(math.Abs(postTaxHigher)),
	}
}
