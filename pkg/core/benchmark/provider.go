// Package benchmark supplies industry comparison statistics keyed by
// metric. The engine treats a missing key as "no comparison available"
// and still computes the metric with a neutral rating.
package benchmark

import "context"

// Entry is the industry statistic for one metric key.
type Entry struct {
	Average    float64 `json:"average"`
	Median     float64 `json:"median"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	SampleSize int     `json:"sampleSize"`
}

// Set maps metric keys to their industry statistics.
type Set map[string]Entry

// Provider fetches benchmarks for a sector/activity/region peer group.
type Provider interface {
	GetBenchmarks(ctx context.Context, sector, activity, region string, keys []string) (Set, error)
}
