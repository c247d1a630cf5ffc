// Package metrics evaluates the declarative analysis catalogue against
// validated statements. The engine is a pure mapping from (statements,
// benchmarks, catalogue) to results and holds no state, so every
// formula is unit-testable in isolation and concurrent runs share
// nothing.
package metrics

import (
	"fmt"

	"finsight/pkg/models"
)

// Depth tiers, lowest to highest. A spec tagged with a tier is included
// for that depth and above.
var depthRank = map[models.AnalysisDepth]int{
	models.DepthBasic:         1,
	models.DepthIntermediate:  2,
	models.DepthAdvanced:      3,
	models.DepthComprehensive: 4,
}

// Breakpoints are per-metric absolute rating thresholds. For a
// higher-is-better metric a value at or above Excellent scores 95; for
// lower-is-better the comparisons invert.
type Breakpoints struct {
	Excellent  float64 `yaml:"excellent"`
	Good       float64 `yaml:"good"`
	Acceptable float64 `yaml:"acceptable"`
	Weak       float64 `yaml:"weak"`
}

// Spec is one declarative catalogue entry. Formula receives the full
// chronological series plus the index to evaluate, so growth metrics
// can look backward while single-year metrics just use the index.
type Spec struct {
	ID             string
	Category       models.AnalysisCategory
	Name           string // Arabic display name
	NameEn         string
	Depth          models.AnalysisDepth
	MinYears       int // statements required; 0 means 1
	HigherIsBetter bool
	BenchmarkKey   string
	Breakpoints    *Breakpoints
	Formula        func(statements []models.FinancialStatement, i int) models.MetricValue
}

// number wraps a scalar metric value.
func number(v float64) models.MetricValue {
	return models.MetricValue{Number: &v}
}

// table wraps a structured metric value (one figure per line item).
func table(rows map[string]float64) models.MetricValue {
	return models.MetricValue{Table: rows}
}

// undefined marks a result that cannot be computed, typically a zero
// denominator. The engine rates these acceptable instead of raising.
func undefined(reason string) models.MetricValue {
	return models.MetricValue{Undefined: true, UndefinedReason: reason}
}

// ratio is the safe-division helper every scalar formula goes through.
func ratio(num, den float64, denName string) models.MetricValue {
	if den == 0 {
		return undefined(fmt.Sprintf("%s is zero", denName))
	}
	return number(num / den)
}
