// Package normalize maps loosely typed, multilingual raw records onto
// the canonical statement schema. It is the single chokepoint between
// untyped extraction output and typed business data: unrecognized
// labels land in the metadata unmapped bag instead of being dropped,
// and the function never fails.
package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/Rhymond/go-money"

	"finsight/pkg/models"
)

const DefaultCurrency = "SAR"

var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// Normalize converts raw records into one canonical statement per
// fiscal year. Pure: it never errors and never mutates its input.
// Problems are reported as issues alongside the statements.
func Normalize(records []models.RawRecord) ([]models.FinancialStatement, []models.CleaningIssue) {
	issues := []models.CleaningIssue{}
	byYear := map[int]*models.FinancialStatement{}

	for i, rec := range records {
		year, yearIssue := resolveYear(rec, i)
		if yearIssue != nil {
			issues = append(issues, *yearIssue)
		}

		st, ok := byYear[year]
		if !ok {
			st = &models.FinancialStatement{Year: year}
			st.Metadata.Currency = DefaultCurrency
			st.Metadata.Unmapped = map[string]string{}
			byYear[year] = st
		}

		if rec.CompanyName != "" && st.Metadata.CompanyName == "" {
			st.Metadata.CompanyName = rec.CompanyName
		}
		if rec.Currency != "" {
			issues = append(issues, applyCurrency(st, rec.Currency)...)
		}

		// Deterministic field order regardless of map iteration.
		labels := make([]string, 0, len(rec.Fields))
		for label := range rec.Fields {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		for _, label := range labels {
			issues = append(issues, applyField(st, label, rec.Fields[label])...)
		}
	}

	statements := make([]models.FinancialStatement, 0, len(byYear))
	for _, st := range byYear {
		statements = append(statements, *st)
	}
	sort.Slice(statements, func(i, j int) bool { return statements[i].Year < statements[j].Year })
	return statements, issues
}

// resolveYear picks the fiscal year for a record: explicit metadata
// first, then a 4-digit token scanned from labels and string values,
// then the current year as a logged fallback.
func resolveYear(rec models.RawRecord, recIndex int) (int, *models.CleaningIssue) {
	if rec.Year != nil && validYear(*rec.Year) {
		return *rec.Year, nil
	}

	labels := make([]string, 0, len(rec.Fields))
	for label := range rec.Fields {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		if y, ok := scanYear(label); ok {
			return y, nil
		}
		if s, ok := rec.Fields[label].(string); ok {
			if y, ok := scanYear(s); ok {
				return y, nil
			}
		}
	}

	fallback := time.Now().Year()
	return fallback, &models.CleaningIssue{
		Field:    fmt.Sprintf("records[%d].year", recIndex),
		Issue:    fmt.Sprintf("no fiscal year found, assuming %d", fallback),
		Severity: models.SeverityInfo,
	}
}

func scanYear(s string) (int, bool) {
	for _, m := range yearPattern.FindAllString(s, -1) {
		y := 0
		fmt.Sscanf(m, "%d", &y)
		if validYear(y) {
			return y, true
		}
	}
	return 0, false
}

func validYear(y int) bool {
	return y >= 1900 && y <= time.Now().Year()+10
}

func applyCurrency(st *models.FinancialStatement, code string) []models.CleaningIssue {
	if money.GetCurrency(code) == nil {
		st.Metadata.Currency = code
		return []models.CleaningIssue{{
			Field:    "metadata.currency",
			Issue:    fmt.Sprintf("unrecognized currency code %q, kept verbatim", code),
			Severity: models.SeverityInfo,
		}}
	}
	st.Metadata.Currency = code
	return nil
}

// applyField maps one label/value pair onto the statement. Unmapped
// labels and unparseable values are preserved in the unmapped bag so no
// financial information is silently lost.
func applyField(st *models.FinancialStatement, label string, value any) []models.CleaningIssue {
	def := matchField(label)
	if def == nil {
		st.Metadata.Unmapped[label] = fmt.Sprint(value)
		return nil
	}

	amount, err := parseAmount(value)
	if err != nil {
		st.Metadata.Unmapped[label] = fmt.Sprint(value)
		return []models.CleaningIssue{{
			Field:    def.path,
			Issue:    fmt.Sprintf("label %q matched but value not numeric: %v", label, err),
			Severity: models.SeverityWarning,
		}}
	}

	if existing := def.get(st); existing != 0 && existing != amount {
		return []models.CleaningIssue{{
			Field:    def.path,
			Issue:    fmt.Sprintf("conflicting values for %q: kept %v, ignored %v from label %q", def.key, existing, amount, label),
			Severity: models.SeverityWarning,
		}}
	}
	def.set(st, amount)
	return nil
}
