package processors

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/username/propfolio/src/models"
	"github.com/username/propfolio/src/rates"
)

func newCashflowProcessor(t *testing.T) CashflowProcessor {
	t.Helper()
	table := rates.Default()
	return NewCashflowProcessor(
		table,
		NewStampDutyCalculator(table),
		NewLMICalculator(),
		NewMortgageFeeCalculator(table),
	)
}

func flex(v float64) *models.FlexNumber {
	f := models.FlexNumber(v)
	return &f
}

var testAsOf = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestCashflowNSWStandardScenario(t *testing.T) {
	p := newCashflowProcessor(t)

	input := models.CashflowInput{
		PurchasePrice:   600000,
		LowerRentWeekly: 500,
		DepositPercent:  flex(0.20),
	}
	result := p.Calculate(input, "NSW", models.LoanTypeStandard, testAsOf)

	if result.Deposit.Value != 120000 {
		t.Errorf("deposit: expected 120000.00, got %.2f", result.Deposit.Value)
	}
	if result.LoanAmount.Value != 480000 {
		t.Errorf("loan: expected 480000.00, got %.2f", result.LoanAmount.Value)
	}
	if result.LMI.Value != 0 {
		t.Errorf("LMI at 20%% deposit: expected 0.00, got %.2f", result.LMI.Value)
	}
	if result.StampDuty.Value != 21605 {
		t.Errorf("stamp duty: expected 21605.00, got %.2f", result.StampDuty.Value)
	}
	if result.MortgageFee.Value != 500 {
		t.Errorf("mortgage fee: expected 500.00, got %.2f", result.MortgageFee.Value)
	}
	if math.Abs(result.ManagementFee.Annual-1430) > 0.01 {
		t.Errorf("management fee: expected 1430.00/yr, got %.2f", result.ManagementFee.Annual)
	}

	// deposit + stamp duty + mortgage fee + legals + pest + buyer's agency;
	// no LMI, no renovation, no strata report by default.
	expectedFunds := 120000 + 21605 + 500 + 1500 + 500 + 15000.0
	if math.Abs(result.TotalFundsRequired.Value-expectedFunds) > 0.01 {
		t.Errorf("total funds: expected %.2f, got %.2f", expectedFunds, result.TotalFundsRequired.Value)
	}

	// Standard deals service the loan interest-only.
	expectedIO := 480000 * 0.065
	if math.Abs(result.InterestOnlyCost.Annual-expectedIO) > 0.01 {
		t.Errorf("IO cost: expected %.2f, got %.2f", expectedIO, result.InterestOnlyCost.Annual)
	}
	expectedExpenses := 1800 + 1100 + 400 + 500 + 1430 + expectedIO
	if math.Abs(result.TotalExpenses.Annual-expectedExpenses) > 0.01 {
		t.Errorf("total expenses: expected %.2f, got %.2f", expectedExpenses, result.TotalExpenses.Annual)
	}

	// Cashflow magnitudes are unsigned.
	expectedPreTax := math.Abs(26000 - expectedExpenses)
	if math.Abs(result.PreTaxCashflowLower.Annual-expectedPreTax) > 0.01 {
		t.Errorf("pre-tax cashflow: expected %.2f, got %.2f", expectedPreTax, result.PreTaxCashflowLower.Annual)
	}
	expectedPostTax := expectedPreTax * (1 - 0.325)
	if math.Abs(result.PostTaxCashflowLower.Annual-expectedPostTax) > 0.01 {
		t.Errorf("post-tax cashflow: expected %.2f, got %.2f", expectedPostTax, result.PostTaxCashflowLower.Annual)
	}
}

func TestCashflowSMSFVariant(t *testing.T) {
	p := newCashflowProcessor(t)

	input := models.CashflowInput{
		PurchasePrice:   600000,
		LowerRentWeekly: 500,
		DepositPercent:  flex(0.20),
	}
	standard := p.Calculate(input, "NSW", models.LoanTypeStandard, testAsOf)
	smsf := p.Calculate(input, "NSW", models.LoanTypeSMSF, testAsOf)

	// SMSF deals service principal-and-interest at the fund's default rate.
	expectedPI := AnnualLoanPayment(0.07, DefaultLoanTermYears, 480000)
	if math.Abs(smsf.PrincipalInterestCost.Annual-expectedPI) > 0.01 {
		t.Errorf("P&I cost: expected %.2f, got %.2f", expectedPI, smsf.PrincipalInterestCost.Annual)
	}
	expectedExpenses := 1800 + 1100 + 400 + 500 + 1430 + expectedPI
	if math.Abs(smsf.TotalExpenses.Annual-expectedExpenses) > 0.01 {
		t.Errorf("SMSF total expenses: expected %.2f, got %.2f", expectedExpenses, smsf.TotalExpenses.Annual)
	}
	if smsf.TotalExpenses.Annual == standard.TotalExpenses.Annual {
		t.Error("SMSF and standard variants produced identical total expenses")
	}

	// SMSF tax bracket defaults to 0%: post-tax equals pre-tax.
	if smsf.TaxBracketDisplay != "0.00%" {
		t.Errorf("SMSF tax bracket: expected 0.00%%, got %s", smsf.TaxBracketDisplay)
	}
	if smsf.PostTaxCashflowLower.Annual != smsf.PreTaxCashflowLower.Annual {
		t.Errorf("SMSF post-tax %.2f should equal pre-tax %.2f",
			smsf.PostTaxCashflowLower.Annual, smsf.PreTaxCashflowLower.Annual)
	}
	if smsf.ExpenseLabel == standard.ExpenseLabel {
		t.Error("expense label should reflect the servicing mode")
	}
}

func TestCashflowRentTierFallback(t *testing.T) {
	p := newCashflowProcessor(t)

	input := models.CashflowInput{
		PurchasePrice:   450000,
		LowerRentWeekly: 420,
	}
	result := p.Calculate(input, "VIC", models.LoanTypeStandard, testAsOf)

	if result.RentHigher != result.RentLower {
		t.Errorf("higher tier should mirror lower when only one rent is supplied: %+v vs %+v",
			result.RentHigher, result.RentLower)
	}
	if result.PreTaxCashflowHigher != result.PreTaxCashflowLower {
		t.Error("higher-tier cashflow should mirror lower tier")
	}
}

func TestCashflowManagementFeeUsesLowerTier(t *testing.T) {
	p := newCashflowProcessor(t)

	input := models.CashflowInput{
		PurchasePrice:    600000,
		LowerRentWeekly:  500,
		HigherRentWeekly: flex(600),
	}
	result := p.Calculate(input, "NSW", models.LoanTypeStandard, testAsOf)

	// Sized to the conservative estimate, not the higher tier.
	if math.Abs(result.ManagementFee.Annual-1430) > 0.01 {
		t.Errorf("management fee: expected 1430.00/yr, got %.2f", result.ManagementFee.Annual)
	}
}

func TestCashflowYieldZeroGuard(t *testing.T) {
	p := newCashflowProcessor(t)

	input := models.CashflowInput{
		PurchasePrice:   0,
		LowerRentWeekly: 400,
	}
	result := p.Calculate(input, "QLD", models.LoanTypeStandard, testAsOf)

	if result.YieldLowerDisplay != "0.00%" || result.YieldHigherDisplay != "0.00%" {
		t.Errorf("zero price should report 0.00%% yield, got %s / %s",
			result.YieldLowerDisplay, result.YieldHigherDisplay)
	}
}

func TestCashflowIdempotent(t *testing.T) {
	p := newCashflowProcessor(t)

	input := models.CashflowInput{
		PurchasePrice:    725000,
		LowerRentWeekly:  550,
		HigherRentWeekly: flex(585),
		DepositPercent:   flex(0.12),
	}
	a := p.Calculate(input, "WA", models.LoanTypeSMSF, testAsOf)
	b := p.Calculate(input, "WA", models.LoanTypeSMSF, testAsOf)

	aJSON, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	bJSON, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(aJSON, bJSON) {
		t.Error("identical input should produce byte-identical output")
	}
}

func TestCashflowPercentConvention(t *testing.T) {
	p := newCashflowProcessor(t)

	whole := models.CashflowInput{PurchasePrice: 600000, LowerRentWeekly: 500, DepositPercent: flex(20)}
	fraction := models.CashflowInput{PurchasePrice: 600000, LowerRentWeekly: 500, DepositPercent: flex(0.20)}

	a := p.Calculate(whole, "NSW", models.LoanTypeStandard, testAsOf)
	b := p.Calculate(fraction, "NSW", models.LoanTypeStandard, testAsOf)
	if a.Deposit.Value != b.Deposit.Value {
		t.Errorf("20 and 0.20 should both mean 20%%: %.2f vs %.2f", a.Deposit.Value, b.Deposit.Value)
	}

	// Known boundary of the dual convention: exactly 1 reads as a fraction
	// (100%), never as 1%. Kept for compatibility.
	taxed := models.CashflowInput{PurchasePrice: 600000, LowerRentWeekly: 500, TaxBracket: flex(1)}
	result := p.Calculate(taxed, "NSW", models.LoanTypeStandard, testAsOf)
	if result.TaxBracketDisplay != "100.00%" {
		t.Errorf("tax bracket of exactly 1: expected 100.00%%, got %s", result.TaxBracketDisplay)
	}
	if result.PostTaxCashflowLower.Annual != 0 {
		t.Errorf("100%% tax bracket should zero the post-tax cashflow, got %.2f", result.PostTaxCashflowLower.Annual)
	}
}

func TestCashflowUnknownJurisdictionDefaults(t *testing.T) {
	p := newCashflowProcessor(t)

	input := models.CashflowInput{
		PurchasePrice:   600000,
		LowerRentWeekly: 500,
	}
	result := p.Calculate(input, "ZZ", models.LoanTypeStandard, testAsOf)

	// Flat 4% stamp duty approximation and fallback insurance default.
	if math.Abs(result.StampDuty.Value-24000) > 0.01 {
		t.Errorf("fallback stamp duty: expected 24000.00, got %.2f", result.StampDuty.Value)
	}
	if result.LandlordInsurance.Annual != 400 {
		t.Errorf("fallback landlord insurance: expected 400.00, got %.2f", result.LandlordInsurance.Annual)
	}
}
