package validate

import "math"

// =============================================================================
// GROWTH AND SERIES HELPERS
// =============================================================================

// CalculateYoY returns the year-over-year percentage change,
// (current - prior) / |prior| * 100. A zero prior with non-zero current
// is reported as +Inf so callers can mark the metric undefined.
func CalculateYoY(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return (current - prior) / math.Abs(prior) * 100
}

// CalculateCAGR returns the compound annual growth rate as a
// percentage: ((end/start)^(1/years) - 1) * 100. Zero when the series
// cannot support the calculation.
func CalculateCAGR(startValue, endValue float64, years int) float64 {
	if startValue <= 0 || endValue <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(endValue/startValue, 1.0/float64(years)) - 1) * 100
}

// Average of a series; zero for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
