// Cross-statement linkage checks: the income statement, cash-flow
// statement and balance sheet of one fiscal year must tell the same
// story where they overlap.
package validate

import (
	"fmt"
	"math"

	"finsight/pkg/models"
)

// CrossCheck runs the single-year cross-statement pass. It only fires
// when both sides of a linkage are reported.
func CrossCheck(st models.FinancialStatement) []models.CleaningIssue {
	issues := []models.CleaningIssue{}
	is := st.IncomeStatement
	cf := st.CashFlowStatement
	bs := st.BalanceSheet

	// IS -> CF: the operating section starts from net income.
	if is.NetIncome != 0 && cf.OperatingActivities.NetIncome != 0 {
		if diff := math.Abs(is.NetIncome - cf.OperatingActivities.NetIncome); diff > Tolerance {
			issues = append(issues, models.CleaningIssue{
				Field:    "cashFlowStatement.operatingActivities.netIncome",
				Issue:    fmt.Sprintf("net income differs between income statement (%.2f) and cash-flow operating section (%.2f)", is.NetIncome, cf.OperatingActivities.NetIncome),
				Severity: models.SeverityError,
			})
		}
	}

	// CF -> BS: ending cash should match the balance-sheet cash line.
	// Warning only: restricted cash and consolidation differences are
	// legitimate.
	if cf.CashEndPeriod != 0 && bs.CurrentAssets.Cash != 0 {
		if diff := math.Abs(cf.CashEndPeriod - bs.CurrentAssets.Cash); diff > Tolerance {
			issues = append(issues, models.CleaningIssue{
				Field:    "cashFlowStatement.cashEndPeriod",
				Issue:    fmt.Sprintf("ending cash %.2f does not match balance-sheet cash %.2f", cf.CashEndPeriod, bs.CurrentAssets.Cash),
				Severity: models.SeverityWarning,
			})
		}
	}

	return issues
}

// CheckRetainedEarningsLinkage compares the retained-earnings movement
// between two consecutive years against net income less dividends.
// Buybacks and equity adjustments legitimately move retained earnings,
// so a mismatch is a warning.
func CheckRetainedEarningsLinkage(prior, current models.FinancialStatement) []models.CleaningIssue {
	rePrior := prior.BalanceSheet.ShareholdersEquity.RetainedEarnings
	reCurrent := current.BalanceSheet.ShareholdersEquity.RetainedEarnings
	ni := current.IncomeStatement.NetIncome
	if rePrior == 0 || reCurrent == 0 || ni == 0 {
		return nil
	}

	expected := ni - current.IncomeStatement.DividendsPaid
	actual := reCurrent - rePrior
	if diff := math.Abs(actual - expected); diff > 1.0 { // looser: equity adjustments are common
		return []models.CleaningIssue{{
			Field:    "balanceSheet.shareholdersEquity.retainedEarnings",
			Issue:    fmt.Sprintf("retained earnings moved %.2f but net income less dividends is %.2f (year %d)", actual, expected, current.Year),
			Severity: models.SeverityWarning,
		}}
	}
	return nil
}
