package benchmark

import "context"

// staticDefaults are broad cross-industry reference values used when no
// benchmark service is configured (CLI runs, offline analysis). They
// are deliberately conservative midpoints, not sector-tuned numbers.
var staticDefaults = Set{
	"currentRatio":           {Average: 2.0, Median: 1.8, Min: 0.8, Max: 4.0},
	"quickRatio":             {Average: 1.0, Median: 0.9, Min: 0.3, Max: 2.5},
	"cashRatio":              {Average: 0.4, Median: 0.3, Min: 0.05, Max: 1.2},
	"operatingCashFlowRatio": {Average: 0.5, Median: 0.4, Min: 0.1, Max: 1.5},
	"inventoryTurnover":      {Average: 6.0, Median: 5.0, Min: 1.5, Max: 15.0},
	"receivablesTurnover":    {Average: 8.0, Median: 7.0, Min: 3.0, Max: 20.0},
	"payablesTurnover":       {Average: 7.0, Median: 6.0, Min: 3.0, Max: 15.0},
	"assetTurnover":          {Average: 1.0, Median: 0.9, Min: 0.3, Max: 2.5},
	"fixedAssetTurnover":     {Average: 3.0, Median: 2.5, Min: 1.0, Max: 8.0},
	"debtToAssets":           {Average: 0.5, Median: 0.5, Min: 0.1, Max: 0.9},
	"debtToEquity":           {Average: 1.0, Median: 0.9, Min: 0.2, Max: 3.0},
	"equityRatio":            {Average: 0.5, Median: 0.5, Min: 0.1, Max: 0.9},
	"interestCoverage":       {Average: 5.0, Median: 4.0, Min: 1.0, Max: 15.0},
	"debtServiceCoverage":    {Average: 1.5, Median: 1.3, Min: 0.5, Max: 4.0},
	"grossMargin":            {Average: 30.0, Median: 28.0, Min: 10.0, Max: 60.0},
	"operatingMargin":        {Average: 12.0, Median: 10.0, Min: 2.0, Max: 30.0},
	"netMargin":              {Average: 8.0, Median: 7.0, Min: 1.0, Max: 25.0},
	"returnOnAssets":         {Average: 6.0, Median: 5.0, Min: 1.0, Max: 20.0},
	"returnOnEquity":         {Average: 12.0, Median: 10.0, Min: 3.0, Max: 30.0},
	"returnOnInvestedCapital": {Average: 10.0, Median: 9.0, Min: 2.0, Max: 25.0},
	"earningsQuality":        {Average: 1.1, Median: 1.0, Min: 0.5, Max: 2.0},
	"capexToRevenue":         {Average: 6.0, Median: 5.0, Min: 1.0, Max: 20.0},
	"dividendPayoutRatio":    {Average: 35.0, Median: 30.0, Min: 0.0, Max: 80.0},
	"cashFlowToDebt":         {Average: 0.3, Median: 0.25, Min: 0.05, Max: 1.0},
	"revenueGrowth":          {Average: 8.0, Median: 6.0, Min: -5.0, Max: 30.0},
	"netIncomeGrowth":        {Average: 10.0, Median: 8.0, Min: -10.0, Max: 40.0},
	"assetGrowth":            {Average: 6.0, Median: 5.0, Min: -3.0, Max: 25.0},
	"equityGrowth":           {Average: 8.0, Median: 6.0, Min: -5.0, Max: 30.0},
	"revenueCAGR":            {Average: 7.0, Median: 6.0, Min: 0.0, Max: 25.0},
	"netIncomeCAGR":          {Average: 9.0, Median: 7.0, Min: 0.0, Max: 30.0},
	"sustainableGrowthRate":  {Average: 8.0, Median: 7.0, Min: 1.0, Max: 20.0},
}

// Static serves the built-in defaults regardless of peer group. It
// never fails, which makes it the right provider for tests and the CLI.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) GetBenchmarks(_ context.Context, _, _, _ string, keys []string) (Set, error) {
	out := Set{}
	for _, k := range keys {
		if entry, ok := staticDefaults[k]; ok {
			out[k] = entry
		}
	}
	return out, nil
}
