package normalize

import (
	"fmt"
	"testing"
	"time"

	"finsight/pkg/models"
)

func TestNormalizeEnglishLabels(t *testing.T) {
	year := 2022
	records := []models.RawRecord{{
		Year: &year,
		Fields: map[string]any{
			"Cash and Cash Equivalents": "1,200.50",
			"Accounts Receivable":       "850",
			"Total Assets":              5000.0,
			"Net Sales":                 "12,000",
			"Cost of Goods Sold":        "7,000",
		},
	}}

	statements, issues := Normalize(records)
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
	st := statements[0]
	if st.Year != 2022 {
		t.Errorf("year = %d, want 2022", st.Year)
	}
	if st.BalanceSheet.CurrentAssets.Cash != 1200.50 {
		t.Errorf("cash = %v, want 1200.50", st.BalanceSheet.CurrentAssets.Cash)
	}
	if st.BalanceSheet.CurrentAssets.AccountsReceivable != 850 {
		t.Errorf("receivables = %v, want 850", st.BalanceSheet.CurrentAssets.AccountsReceivable)
	}
	if st.BalanceSheet.TotalAssets != 5000 {
		t.Errorf("totalAssets = %v, want 5000", st.BalanceSheet.TotalAssets)
	}
	if st.IncomeStatement.Revenue != 12000 {
		t.Errorf("revenue = %v, want 12000", st.IncomeStatement.Revenue)
	}
	if st.IncomeStatement.CostOfGoodsSold != 7000 {
		t.Errorf("cogs = %v, want 7000", st.IncomeStatement.CostOfGoodsSold)
	}
	for _, iss := range issues {
		if iss.Severity == models.SeverityError {
			t.Errorf("unexpected error issue: %+v", iss)
		}
	}
}

func TestNormalizeArabicLabels(t *testing.T) {
	year := 2023
	records := []models.RawRecord{{
		Year: &year,
		Fields: map[string]any{
			"النقد":             "٥٠٠",   // Arabic-Indic digits
			"المبيعات":          "10,000",
			"ذمم مدينة":         "2500",
			"إجمالي الأصول":     "20000",
			"صافي الربح":        "1,250",
			"تكلفة المبيعات":    "6000",
			"مجمع الإهلاك":      "(300)",
		},
	}}

	statements, _ := Normalize(records)
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
	st := statements[0]
	if st.BalanceSheet.CurrentAssets.Cash != 500 {
		t.Errorf("cash = %v, want 500 (Arabic-Indic digits)", st.BalanceSheet.CurrentAssets.Cash)
	}
	if st.IncomeStatement.Revenue != 10000 {
		t.Errorf("revenue = %v, want 10000", st.IncomeStatement.Revenue)
	}
	if st.BalanceSheet.CurrentAssets.AccountsReceivable != 2500 {
		t.Errorf("receivables = %v, want 2500", st.BalanceSheet.CurrentAssets.AccountsReceivable)
	}
	if st.BalanceSheet.TotalAssets != 20000 {
		t.Errorf("totalAssets = %v, want 20000", st.BalanceSheet.TotalAssets)
	}
	if st.IncomeStatement.NetIncome != 1250 {
		t.Errorf("netIncome = %v, want 1250", st.IncomeStatement.NetIncome)
	}
	// Parenthesized value parses negative.
	if st.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation != -300 {
		t.Errorf("accumulatedDepreciation = %v, want -300", st.BalanceSheet.NonCurrentAssets.AccumulatedDepreciation)
	}
}

func TestYearExtractedFromLabel(t *testing.T) {
	records := []models.RawRecord{{
		Fields: map[string]any{
			"Revenue 2021": "9000",
		},
	}}
	statements, issues := Normalize(records)
	if len(statements) != 1 || statements[0].Year != 2021 {
		t.Fatalf("expected year 2021, got %+v", statements)
	}
	for _, iss := range issues {
		if iss.Severity == models.SeverityInfo {
			t.Errorf("year was found in label, no fallback issue expected: %+v", iss)
		}
	}
}

func TestYearFallbackLogsInfo(t *testing.T) {
	records := []models.RawRecord{{
		Fields: map[string]any{"Cash": "100"},
	}}
	statements, issues := Normalize(records)
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
	if statements[0].Year != time.Now().Year() {
		t.Errorf("fallback year = %d, want current year", statements[0].Year)
	}
	found := false
	for _, iss := range issues {
		if iss.Severity == models.SeverityInfo {
			found = true
		}
	}
	if !found {
		t.Error("year fallback must be logged as an info issue, never silent")
	}
}

func TestUnmappedLabelsPreserved(t *testing.T) {
	year := 2022
	records := []models.RawRecord{{
		Year: &year,
		Fields: map[string]any{
			"Cash":                  "100",
			"Frequent Flyer Points": "42",
		},
	}}
	statements, _ := Normalize(records)
	got, ok := statements[0].Metadata.Unmapped["Frequent Flyer Points"]
	if !ok {
		t.Fatal("unrecognized label must land in the unmapped bag, not be dropped")
	}
	if got != "42" {
		t.Errorf("unmapped value = %q, want \"42\"", got)
	}
}

func TestConflictingValuesFirstWins(t *testing.T) {
	year := 2022
	records := []models.RawRecord{
		{Year: &year, Fields: map[string]any{"Cash": "100"}},
		{Year: &year, Fields: map[string]any{"Cash and Cash Equivalents": "999"}},
	}
	statements, issues := Normalize(records)
	if len(statements) != 1 {
		t.Fatalf("same-year records must merge into 1 statement, got %d", len(statements))
	}
	if statements[0].BalanceSheet.CurrentAssets.Cash != 100 {
		t.Errorf("cash = %v, want 100 (first value wins)", statements[0].BalanceSheet.CurrentAssets.Cash)
	}
	foundWarning := false
	for _, iss := range issues {
		if iss.Severity == models.SeverityWarning {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Error("conflicting values must produce a warning")
	}
}

func TestMultiYearRecordsSortedAscending(t *testing.T) {
	y1, y2 := 2022, 2021
	records := []models.RawRecord{
		{Year: &y1, Fields: map[string]any{"Revenue": "200"}},
		{Year: &y2, Fields: map[string]any{"Revenue": "100"}},
	}
	statements, _ := Normalize(records)
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(statements))
	}
	if statements[0].Year != 2021 || statements[1].Year != 2022 {
		t.Errorf("statements not sorted by year: %d, %d", statements[0].Year, statements[1].Year)
	}
}

func TestUnknownCurrencyKeptVerbatim(t *testing.T) {
	year := 2022
	records := []models.RawRecord{{
		Year:     &year,
		Currency: "ZZZ",
		Fields:   map[string]any{"Cash": "100"},
	}}
	statements, issues := Normalize(records)
	if statements[0].Metadata.Currency != "ZZZ" {
		t.Errorf("currency = %q, want ZZZ kept verbatim", statements[0].Metadata.Currency)
	}
	found := false
	for _, iss := range issues {
		if iss.Field == "metadata.currency" && iss.Severity == models.SeverityInfo {
			found = true
		}
	}
	if !found {
		t.Error("unknown currency code must be flagged as info")
	}
}

// Round trip: a record regenerated from canonical keys must re-map onto
// the same canonical fields.
func TestCanonicalKeysRoundTrip(t *testing.T) {
	year := 2022
	fields := map[string]any{}
	want := map[string]float64{}
	for i, def := range fieldDefs {
		v := float64((i + 1) * 10)
		if def.key == "accumulatedDepreciation" {
			v = -v
		}
		fields[def.key] = fmt.Sprintf("%v", v)
		want[def.key] = v
	}

	statements, _ := Normalize([]models.RawRecord{{Year: &year, Fields: fields}})
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}
	st := statements[0]
	for i := range fieldDefs {
		def := &fieldDefs[i]
		if got := def.get(&st); got != want[def.key] {
			t.Errorf("%s = %v, want %v", def.key, got, want[def.key])
		}
	}
	if len(st.Metadata.Unmapped) != 0 {
		t.Errorf("no canonical key should be unmapped, got %v", st.Metadata.Unmapped)
	}
}
