// Package validate derives missing statement totals and enforces the
// accounting identities. Clean never rejects a statement: it returns a
// best-effort corrected copy plus the full issue list, and the caller
// decides whether an error-severity issue blocks the run.
package validate

import (
	"fmt"
	"math"

	"finsight/pkg/models"
)

// Tolerance is the absolute tolerance for all identity checks, in
// currency units.
const Tolerance = 0.01

// =============================================================================
// ENTRY POINTS
// =============================================================================

// Clean runs the completion, identity, sign and margin passes on a
// single statement. Pure: the input is never mutated.
func Clean(st models.FinancialStatement) (models.FinancialStatement, []models.CleaningIssue) {
	out := st // value copy; group structs are values too
	issues := []models.CleaningIssue{}

	issues = append(issues, complete(&out)...)
	issues = append(issues, checkIdentities(&out)...)
	issues = append(issues, checkSigns(&out)...)
	issues = append(issues, checkMargins(&out)...)

	return out, issues
}

// CleanAll cleans every statement and then runs the cross-statement
// checks, including the year-over-year retained-earnings linkage.
// Statements must be in chronological order.
func CleanAll(statements []models.FinancialStatement) ([]models.FinancialStatement, []models.CleaningIssue) {
	out := make([]models.FinancialStatement, len(statements))
	issues := []models.CleaningIssue{}

	for i, st := range statements {
		cleaned, stIssues := Clean(st)
		out[i] = cleaned
		issues = append(issues, stIssues...)
	}
	for i := range out {
		issues = append(issues, CrossCheck(out[i])...)
		if i > 0 {
			issues = append(issues, CheckRetainedEarningsLinkage(out[i-1], out[i])...)
		}
	}
	return out, issues
}

// =============================================================================
// COMPLETION PASS (bottom-up roll-ups)
// =============================================================================

// complete derives missing totals from their constituents. A supplied
// total is never overwritten; only zero (unreported) totals are filled.
// Each derivation is recorded as an info-severity applied fix.
func complete(st *models.FinancialStatement) []models.CleaningIssue {
	issues := []models.CleaningIssue{}
	fix := func(path string, value float64, formula string) {
		issues = append(issues, models.CleaningIssue{
			Field:        path,
			Issue:        fmt.Sprintf("derived %s = %.2f", path, value),
			Severity:     models.SeverityInfo,
			SuggestedFix: formula,
		})
	}

	bs := &st.BalanceSheet
	ca := bs.CurrentAssets
	if sum := ca.Cash + ca.AccountsReceivable + ca.Inventory + ca.PrepaidExpenses + ca.OtherCurrentAssets; bs.TotalCurrentAssets == 0 && sum != 0 {
		bs.TotalCurrentAssets = sum
		fix("balanceSheet.totalCurrentAssets", sum, "sum of current asset line items")
	}
	nca := bs.NonCurrentAssets
	if sum := nca.PropertyPlantEquipment + nca.AccumulatedDepreciation + nca.IntangibleAssets + nca.LongTermInvestments + nca.OtherNonCurrentAssets; bs.TotalNonCurrentAssets == 0 && sum != 0 {
		bs.TotalNonCurrentAssets = sum
		fix("balanceSheet.totalNonCurrentAssets", sum, "sum of non-current asset line items")
	}
	if bs.TotalAssets == 0 && bs.TotalCurrentAssets+bs.TotalNonCurrentAssets != 0 {
		bs.TotalAssets = bs.TotalCurrentAssets + bs.TotalNonCurrentAssets
		fix("balanceSheet.totalAssets", bs.TotalAssets, "totalCurrentAssets + totalNonCurrentAssets")
	}

	cl := bs.CurrentLiabilities
	if sum := cl.AccountsPayable + cl.ShortTermDebt + cl.AccruedExpenses + cl.CurrentPortionLongTerm + cl.OtherCurrentLiabilities; bs.TotalCurrentLiabilities == 0 && sum != 0 {
		bs.TotalCurrentLiabilities = sum
		fix("balanceSheet.totalCurrentLiabilities", sum, "sum of current liability line items")
	}
	ncl := bs.NonCurrentLiabilities
	if sum := ncl.LongTermDebt + ncl.DeferredTaxLiabilities + ncl.EmployeeBenefitObligations + ncl.OtherNonCurrentLiabilities; bs.TotalNonCurrentLiabilities == 0 && sum != 0 {
		bs.TotalNonCurrentLiabilities = sum
		fix("balanceSheet.totalNonCurrentLiabilities", sum, "sum of non-current liability line items")
	}
	if bs.TotalLiabilities == 0 && bs.TotalCurrentLiabilities+bs.TotalNonCurrentLiabilities != 0 {
		bs.TotalLiabilities = bs.TotalCurrentLiabilities + bs.TotalNonCurrentLiabilities
		fix("balanceSheet.totalLiabilities", bs.TotalLiabilities, "totalCurrentLiabilities + totalNonCurrentLiabilities")
	}

	eq := bs.ShareholdersEquity
	if sum := eq.ShareCapital + eq.RetainedEarnings + eq.StatutoryReserves + eq.OtherEquity; bs.TotalShareholdersEquity == 0 && sum != 0 {
		bs.TotalShareholdersEquity = sum
		fix("balanceSheet.totalShareholdersEquity", sum, "sum of equity line items")
	}
	if bs.TotalLiabilitiesAndEquity == 0 && bs.TotalLiabilities+bs.TotalShareholdersEquity != 0 {
		bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities + bs.TotalShareholdersEquity
		fix("balanceSheet.totalLiabilitiesAndEquity", bs.TotalLiabilitiesAndEquity, "totalLiabilities + totalShareholdersEquity")
	}

	is := &st.IncomeStatement
	if is.GrossProfit == 0 && is.Revenue != 0 && is.CostOfGoodsSold != 0 {
		is.GrossProfit = is.Revenue - is.CostOfGoodsSold
		fix("incomeStatement.grossProfit", is.GrossProfit, "revenue - costOfGoodsSold")
	}
	oe := is.OperatingExpenses
	if sum := oe.SellingExpenses + oe.AdministrativeExpenses + oe.DepreciationAmortization + oe.OtherOperatingExpenses; is.TotalOperatingExpenses == 0 && sum != 0 {
		is.TotalOperatingExpenses = sum
		fix("incomeStatement.totalOperatingExpenses", sum, "sum of operating expense line items")
	}
	if is.OperatingIncome == 0 && is.GrossProfit != 0 && is.TotalOperatingExpenses != 0 {
		is.OperatingIncome = is.GrossProfit - is.TotalOperatingExpenses
		fix("incomeStatement.operatingIncome", is.OperatingIncome, "grossProfit - totalOperatingExpenses")
	}
	if is.IncomeBeforeTax == 0 && is.OperatingIncome != 0 {
		is.IncomeBeforeTax = is.OperatingIncome - is.InterestExpense + is.OtherIncome
		fix("incomeStatement.incomeBeforeTax", is.IncomeBeforeTax, "operatingIncome - interestExpense + otherIncome")
	}
	if is.NetIncome == 0 && is.IncomeBeforeTax != 0 {
		is.NetIncome = is.IncomeBeforeTax - is.IncomeTaxExpense
		fix("incomeStatement.netIncome", is.NetIncome, "incomeBeforeTax - incomeTaxExpense")
	}

	cf := &st.CashFlowStatement
	if cf.OperatingActivities.NetIncome == 0 && is.NetIncome != 0 {
		cf.OperatingActivities.NetIncome = is.NetIncome
		fix("cashFlowStatement.operatingActivities.netIncome", is.NetIncome, "copied from incomeStatement.netIncome")
	}
	op := cf.OperatingActivities
	if sum := op.NetIncome + op.Depreciation + op.Amortization + op.ChangeInReceivables + op.ChangeInInventory + op.ChangeInPayables + op.OtherOperatingAdjustments; cf.NetCashFromOperating == 0 && sum != 0 {
		cf.NetCashFromOperating = sum
		fix("cashFlowStatement.netCashFromOperating", sum, "net income + non-cash and working-capital adjustments")
	}
	inv := cf.InvestingActivities
	if sum := -inv.CapitalExpenditures + inv.ProceedsFromAssetSales - inv.InvestmentPurchases + inv.OtherInvesting; cf.NetCashFromInvesting == 0 && sum != 0 {
		cf.NetCashFromInvesting = sum
		fix("cashFlowStatement.netCashFromInvesting", sum, "asset sales - capital expenditures - investment purchases")
	}
	fin := cf.FinancingActivities
	if sum := fin.DebtIssued - fin.DebtRepaid - fin.DividendsPaid + fin.EquityIssued + fin.OtherFinancing; cf.NetCashFromFinancing == 0 && sum != 0 {
		cf.NetCashFromFinancing = sum
		fix("cashFlowStatement.netCashFromFinancing", sum, "debt issued - debt repaid - dividends + equity issued")
	}
	if cf.NetChangeInCash == 0 && cf.NetCashFromOperating+cf.NetCashFromInvesting+cf.NetCashFromFinancing != 0 {
		cf.NetChangeInCash = cf.NetCashFromOperating + cf.NetCashFromInvesting + cf.NetCashFromFinancing
		fix("cashFlowStatement.netChangeInCash", cf.NetChangeInCash, "operating + investing + financing")
	}
	if cf.CashEndPeriod == 0 && cf.CashBeginningPeriod != 0 {
		cf.CashEndPeriod = cf.CashBeginningPeriod + cf.NetChangeInCash
		fix("cashFlowStatement.cashEndPeriod", cf.CashEndPeriod, "cashBeginningPeriod + netChangeInCash")
	}

	return issues
}

// =============================================================================
// IDENTITY CHECKS
// =============================================================================

func checkIdentities(st *models.FinancialStatement) []models.CleaningIssue {
	issues := []models.CleaningIssue{}
	bs := st.BalanceSheet
	is := st.IncomeStatement
	cf := st.CashFlowStatement

	// Accounting equation: assets = liabilities + equity.
	if bs.TotalAssets != 0 && (bs.TotalLiabilities != 0 || bs.TotalShareholdersEquity != 0) {
		rhs := bs.TotalLiabilities + bs.TotalShareholdersEquity
		if diff := math.Abs(bs.TotalAssets - rhs); diff > Tolerance {
			issues = append(issues, models.CleaningIssue{
				Field:    "balanceSheet",
				Issue:    fmt.Sprintf("balance equation violated: totalAssets %.2f vs liabilities+equity %.2f (mismatch %.2f)", bs.TotalAssets, rhs, diff),
				Severity: models.SeverityError,
			})
		}
	}

	if is.GrossProfit != 0 && is.Revenue != 0 && is.CostOfGoodsSold != 0 {
		expected := is.Revenue - is.CostOfGoodsSold
		if diff := math.Abs(is.GrossProfit - expected); diff > Tolerance {
			issues = append(issues, models.CleaningIssue{
				Field:    "incomeStatement.grossProfit",
				Issue:    fmt.Sprintf("grossProfit %.2f does not equal revenue - costOfGoodsSold %.2f (mismatch %.2f)", is.GrossProfit, expected, diff),
				Severity: models.SeverityError,
			})
		}
	}

	sumFlows := cf.NetCashFromOperating + cf.NetCashFromInvesting + cf.NetCashFromFinancing
	if cf.NetChangeInCash != 0 && sumFlows != 0 {
		if diff := math.Abs(cf.NetChangeInCash - sumFlows); diff > Tolerance {
			issues = append(issues, models.CleaningIssue{
				Field:    "cashFlowStatement.netChangeInCash",
				Issue:    fmt.Sprintf("netChangeInCash %.2f does not equal sum of activity flows %.2f (mismatch %.2f)", cf.NetChangeInCash, sumFlows, diff),
				Severity: models.SeverityWarning,
			})
		}
	}

	if cf.CashEndPeriod != 0 && cf.CashBeginningPeriod != 0 && cf.NetChangeInCash != 0 {
		expected := cf.CashBeginningPeriod + cf.NetChangeInCash
		if diff := math.Abs(cf.CashEndPeriod - expected); diff > Tolerance {
			issues = append(issues, models.CleaningIssue{
				Field:    "cashFlowStatement.cashEndPeriod",
				Issue:    fmt.Sprintf("cashEndPeriod %.2f does not equal cashBeginningPeriod + netChangeInCash %.2f (mismatch %.2f)", cf.CashEndPeriod, expected, diff),
				Severity: models.SeverityError,
			})
		}
	}

	return issues
}

// =============================================================================
// SIGN CHECKS
// =============================================================================

// nonNegative lists the fields that are non-negative by definition.
// Negative values here are flagged but not corrected, because a
// negative may be an intentional contra entry.
func checkSigns(st *models.FinancialStatement) []models.CleaningIssue {
	issues := []models.CleaningIssue{}
	nonNegative := []struct {
		path  string
		value float64
	}{
		{"balanceSheet.currentAssets.cash", st.BalanceSheet.CurrentAssets.Cash},
		{"balanceSheet.currentAssets.accountsReceivable", st.BalanceSheet.CurrentAssets.AccountsReceivable},
		{"balanceSheet.currentAssets.inventory", st.BalanceSheet.CurrentAssets.Inventory},
		{"balanceSheet.totalCurrentAssets", st.BalanceSheet.TotalCurrentAssets},
		{"balanceSheet.totalNonCurrentAssets", st.BalanceSheet.TotalNonCurrentAssets},
		{"balanceSheet.totalAssets", st.BalanceSheet.TotalAssets},
		{"incomeStatement.revenue", st.IncomeStatement.Revenue},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			issues = append(issues, models.CleaningIssue{
				Field:    f.path,
				Issue:    fmt.Sprintf("%s is negative (%.2f) but non-negative by definition", f.path, f.value),
				Severity: models.SeverityWarning,
			})
		}
	}

	// Accumulated depreciation is a contra asset: a positive value is
	// a sign mistake and is flipped.
	if ad := st.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation; ad > 0 {
		st.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation = -ad
		issues = append(issues, models.CleaningIssue{
			Field:        "balanceSheet.nonCurrentAssets.accumulatedDepreciation",
			Issue:        fmt.Sprintf("accumulatedDepreciation was positive (%.2f), sign flipped", ad),
			Severity:     models.SeverityInfo,
			SuggestedFix: "contra account stored as negative",
		})
	}

	return issues
}

// =============================================================================
// MARGIN SANITY
// =============================================================================

func checkMargins(st *models.FinancialStatement) []models.CleaningIssue {
	issues := []models.CleaningIssue{}
	is := st.IncomeStatement
	if is.Revenue <= 0 {
		return issues
	}

	grossMargin := is.GrossProfit / is.Revenue
	netMargin := is.NetIncome / is.Revenue

	if is.GrossProfit != 0 && grossMargin > 0.9 {
		issues = append(issues, models.CleaningIssue{
			Field:    "incomeStatement.grossProfit",
			Issue:    fmt.Sprintf("gross margin %.1f%% is implausibly high", grossMargin*100),
			Severity: models.SeverityWarning,
		})
	}
	if is.GrossProfit != 0 && grossMargin < 0 {
		issues = append(issues, models.CleaningIssue{
			Field:    "incomeStatement.grossProfit",
			Issue:    fmt.Sprintf("gross margin is negative (%.1f%%), cost of goods exceeds revenue", grossMargin*100),
			Severity: models.SeverityWarning,
		})
	}
	if is.GrossProfit != 0 && is.NetIncome != 0 && netMargin > grossMargin+Tolerance {
		issues = append(issues, models.CleaningIssue{
			Field:    "incomeStatement.netIncome",
			Issue:    fmt.Sprintf("net margin %.1f%% exceeds gross margin %.1f%%", netMargin*100, grossMargin*100),
			Severity: models.SeverityError,
		})
	}

	return issues
}
