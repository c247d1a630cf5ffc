package validate

import (
	"strings"
	"testing"

	"finsight/pkg/models"
)

func countSeverity(issues []models.CleaningIssue, sev models.IssueSeverity) int {
	n := 0
	for _, iss := range issues {
		if iss.Severity == sev {
			n++
		}
	}
	return n
}

func TestBalancedStatementNoIssue(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.BalanceSheet.TotalAssets = 1000
	st.BalanceSheet.TotalLiabilities = 600
	st.BalanceSheet.TotalShareholdersEquity = 400

	_, issues := Clean(st)
	if n := countSeverity(issues, models.SeverityError); n != 0 {
		t.Errorf("balanced statement produced %d error issues: %+v", n, issues)
	}
}

func TestUnbalancedStatementErrorWithMismatch(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.BalanceSheet.TotalAssets = 1000
	st.BalanceSheet.TotalLiabilities = 600
	st.BalanceSheet.TotalShareholdersEquity = 300 // off by 100

	_, issues := Clean(st)
	var found *models.CleaningIssue
	for i, iss := range issues {
		if iss.Severity == models.SeverityError && iss.Field == "balanceSheet" {
			found = &issues[i]
		}
	}
	if found == nil {
		t.Fatalf("expected one error issue on balanceSheet, got %+v", issues)
	}
	// 1000 - (600 + 300) = 100
	if !strings.Contains(found.Issue, "100.00") {
		t.Errorf("issue %q should state mismatch 100.00", found.Issue)
	}
}

func TestDerivesTotalCurrentAssets(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.BalanceSheet.CurrentAssets.Cash = 100
	st.BalanceSheet.CurrentAssets.AccountsReceivable = 50
	st.BalanceSheet.CurrentAssets.Inventory = 25

	cleaned, issues := Clean(st)
	// 100 + 50 + 25 = 175
	if cleaned.BalanceSheet.TotalCurrentAssets != 175 {
		t.Errorf("totalCurrentAssets = %v, want 175", cleaned.BalanceSheet.TotalCurrentAssets)
	}
	if countSeverity(issues, models.SeverityInfo) == 0 {
		t.Error("derived total must be logged as an info fix")
	}
	// Input untouched.
	if st.BalanceSheet.TotalCurrentAssets != 0 {
		t.Error("Clean must not mutate its input")
	}
}

func TestSuppliedTotalNeverOverwritten(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.BalanceSheet.CurrentAssets.Cash = 100
	st.BalanceSheet.CurrentAssets.Inventory = 50
	st.BalanceSheet.TotalCurrentAssets = 200 // explicit, differs from 150

	cleaned, _ := Clean(st)
	if cleaned.BalanceSheet.TotalCurrentAssets != 200 {
		t.Errorf("explicit total was overwritten: %v", cleaned.BalanceSheet.TotalCurrentAssets)
	}
}

func TestIncomeStatementCascade(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.IncomeStatement.Revenue = 1000
	st.IncomeStatement.CostOfGoodsSold = 600
	st.IncomeStatement.OperatingExpenses.SellingExpenses = 100
	st.IncomeStatement.OperatingExpenses.AdministrativeExpenses = 50
	st.IncomeStatement.IncomeTaxExpense = 30

	cleaned, _ := Clean(st)
	is := cleaned.IncomeStatement
	// 1000 - 600 = 400
	if is.GrossProfit != 400 {
		t.Errorf("grossProfit = %v, want 400", is.GrossProfit)
	}
	// 100 + 50 = 150
	if is.TotalOperatingExpenses != 150 {
		t.Errorf("totalOperatingExpenses = %v, want 150", is.TotalOperatingExpenses)
	}
	// 400 - 150 = 250
	if is.OperatingIncome != 250 {
		t.Errorf("operatingIncome = %v, want 250", is.OperatingIncome)
	}
	// 250 - 0 + 0 = 250
	if is.IncomeBeforeTax != 250 {
		t.Errorf("incomeBeforeTax = %v, want 250", is.IncomeBeforeTax)
	}
	// 250 - 30 = 220
	if is.NetIncome != 220 {
		t.Errorf("netIncome = %v, want 220", is.NetIncome)
	}
}

func TestIdempotentSecondPass(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.BalanceSheet.CurrentAssets.Cash = 100
	st.BalanceSheet.CurrentAssets.AccountsReceivable = 50
	st.IncomeStatement.Revenue = 1000
	st.IncomeStatement.CostOfGoodsSold = 400

	first, _ := Clean(st)
	_, secondIssues := Clean(first)
	if n := countSeverity(secondIssues, models.SeverityInfo); n != 0 {
		t.Errorf("second pass applied %d new fixes, want 0: %+v", n, secondIssues)
	}
}

func TestAccumulatedDepreciationFlipped(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation = 500

	cleaned, issues := Clean(st)
	if cleaned.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation != -500 {
		t.Errorf("accumulatedDepreciation = %v, want -500", cleaned.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation)
	}
	if countSeverity(issues, models.SeverityInfo) == 0 {
		t.Error("sign flip must be recorded as an applied fix")
	}
}

func TestNegativeCashWarning(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.BalanceSheet.CurrentAssets.Cash = -10

	_, issues := Clean(st)
	found := false
	for _, iss := range issues {
		if iss.Field == "balanceSheet.currentAssets.cash" && iss.Severity == models.SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Error("negative cash must be a warning, not silently accepted or corrected")
	}
}

func TestNetMarginExceedingGrossMarginIsError(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.IncomeStatement.Revenue = 1000
	st.IncomeStatement.CostOfGoodsSold = 600
	st.IncomeStatement.GrossProfit = 400
	st.IncomeStatement.NetIncome = 500 // impossible: above gross profit

	_, issues := Clean(st)
	if countSeverity(issues, models.SeverityError) == 0 {
		t.Error("net margin above gross margin must be an error")
	}
}

func TestCrossStatementNetIncomeMismatch(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.IncomeStatement.NetIncome = 220
	st.CashFlowStatement.OperatingActivities.NetIncome = 300

	issues := CrossCheck(st)
	if countSeverity(issues, models.SeverityError) != 1 {
		t.Errorf("expected one error issue, got %+v", issues)
	}
}

func TestCrossStatementCashMismatchIsWarning(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.CashFlowStatement.CashEndPeriod = 150
	st.BalanceSheet.CurrentAssets.Cash = 100

	issues := CrossCheck(st)
	if countSeverity(issues, models.SeverityWarning) != 1 {
		t.Errorf("expected one warning, got %+v", issues)
	}
	if countSeverity(issues, models.SeverityError) != 0 {
		t.Error("cash mismatch is a warning, not an error")
	}
}

func TestCashFlowCompletion(t *testing.T) {
	st := models.FinancialStatement{Year: 2022}
	st.IncomeStatement.NetIncome = 200
	st.CashFlowStatement.OperatingActivities.Depreciation = 50
	st.CashFlowStatement.OperatingActivities.ChangeInReceivables = -30
	st.CashFlowStatement.InvestingActivities.CapitalExpenditures = 100
	st.CashFlowStatement.FinancingActivities.DividendsPaid = 40
	st.CashFlowStatement.CashBeginningPeriod = 500

	cleaned, _ := Clean(st)
	cf := cleaned.CashFlowStatement
	// 200 (copied net income) + 50 - 30 = 220
	if cf.NetCashFromOperating != 220 {
		t.Errorf("netCashFromOperating = %v, want 220", cf.NetCashFromOperating)
	}
	if cf.NetCashFromInvesting != -100 {
		t.Errorf("netCashFromInvesting = %v, want -100", cf.NetCashFromInvesting)
	}
	if cf.NetCashFromFinancing != -40 {
		t.Errorf("netCashFromFinancing = %v, want -40", cf.NetCashFromFinancing)
	}
	// 220 - 100 - 40 = 80
	if cf.NetChangeInCash != 80 {
		t.Errorf("netChangeInCash = %v, want 80", cf.NetChangeInCash)
	}
	// 500 + 80 = 580
	if cf.CashEndPeriod != 580 {
		t.Errorf("cashEndPeriod = %v, want 580", cf.CashEndPeriod)
	}
}

func TestRetainedEarningsLinkage(t *testing.T) {
	prior := models.FinancialStatement{Year: 2021}
	prior.BalanceSheet.ShareholdersEquity.RetainedEarnings = 1000

	current := models.FinancialStatement{Year: 2022}
	current.BalanceSheet.ShareholdersEquity.RetainedEarnings = 1100
	current.IncomeStatement.NetIncome = 300
	current.IncomeStatement.DividendsPaid = 50
	// Expected movement 300 - 50 = 250, actual 100: warning.

	issues := CheckRetainedEarningsLinkage(prior, current)
	if countSeverity(issues, models.SeverityWarning) != 1 {
		t.Errorf("expected retained-earnings warning, got %+v", issues)
	}
}

func TestCalculateYoY(t *testing.T) {
	// (120 - 100) / 100 * 100 = 20%
	if got := CalculateYoY(120, 100); got != 20 {
		t.Errorf("YoY = %v, want 20", got)
	}
	if got := CalculateYoY(0, 0); got != 0 {
		t.Errorf("YoY(0,0) = %v, want 0", got)
	}
}

func TestCalculateCAGR(t *testing.T) {
	// 100 -> 121 over 2 years = 10%
	got := CalculateCAGR(100, 121, 2)
	if got < 9.99 || got > 10.01 {
		t.Errorf("CAGR = %v, want ~10", got)
	}
	if got := CalculateCAGR(0, 100, 2); got != 0 {
		t.Errorf("CAGR with zero start = %v, want 0", got)
	}
}
