package metrics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"finsight/pkg/models"
)

// NeutralScore is used when no benchmark comparison is available. It
// lands in the "good" band so an unbenchmarked metric neither flatters
// nor punishes the company.
const NeutralScore = 65

// UndefinedScore is the midpoint of the acceptable band, used for
// zero-denominator results.
const UndefinedScore = 50

// RatingFromScore maps a 0-100 score onto the five rating bands.
func RatingFromScore(score float64) models.Rating {
	switch {
	case score >= 90:
		return models.RatingExcellent
	case score >= 75:
		return models.RatingVeryGood
	case score >= 60:
		return models.RatingGood
	case score >= 40:
		return models.RatingAcceptable
	default:
		return models.RatingWeak
	}
}

// ScoreFromBenchmarkRatio scores a value by where it falls relative to
// the industry average. Direction is inverted before banding for
// lower-is-better metrics, so a debt ratio at half the industry average
// scores as high as a margin at twice it.
func ScoreFromBenchmarkRatio(value, benchmarkAvg float64, higherIsBetter bool) float64 {
	if benchmarkAvg == 0 {
		return NeutralScore
	}

	var r float64
	if higherIsBetter {
		r = value / benchmarkAvg
	} else {
		if value <= 0 {
			// No debt, no cost: as good as it gets for a
			// lower-is-better metric.
			return 95
		}
		r = benchmarkAvg / value
	}

	switch {
	case r >= 1.5:
		return 95
	case r >= 1.1:
		return 80
	case r >= 0.9:
		return 65
	case r >= 0.6:
		return 45
	default:
		return 25
	}
}

// ScoreFromBreakpoints scores a value against per-metric absolute
// thresholds.
func ScoreFromBreakpoints(value float64, bp Breakpoints, higherIsBetter bool) float64 {
	if higherIsBetter {
		switch {
		case value >= bp.Excellent:
			return 95
		case value >= bp.Good:
			return 80
		case value >= bp.Acceptable:
			return 60
		case value >= bp.Weak:
			return 40
		default:
			return 20
		}
	}
	switch {
	case value <= bp.Excellent:
		return 95
	case value <= bp.Good:
		return 80
	case value <= bp.Acceptable:
		return 60
	case value <= bp.Weak:
		return 40
	default:
		return 20
	}
}

// LoadBreakpointOverrides reads a YAML file of per-metric threshold
// overrides, keyed by spec ID. Missing file is not an error for the
// caller to treat defaults as final.
func LoadBreakpointOverrides(path string) (map[string]Breakpoints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read breakpoint overrides: %w", err)
	}
	overrides := map[string]Breakpoints{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse breakpoint overrides: %w", err)
	}
	return overrides, nil
}

// ApplyBreakpointOverrides returns a copy of the catalogue with the
// given thresholds swapped in. The input specs are not mutated.
func ApplyBreakpointOverrides(specs []Spec, overrides map[string]Breakpoints) []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	for i := range out {
		if bp, ok := overrides[out[i].ID]; ok {
			bpCopy := bp
			out[i].Breakpoints = &bpCopy
		}
	}
	return out
}
