package metrics

import (
	"testing"

	"finsight/pkg/models"
)

func TestRatingFromScoreCutPoints(t *testing.T) {
	cases := []struct {
		score float64
		want  models.Rating
	}{
		{95, models.RatingExcellent},
		{90, models.RatingExcellent},
		{89.9, models.RatingVeryGood},
		{75, models.RatingVeryGood},
		{74.9, models.RatingGood},
		{60, models.RatingGood},
		{59.9, models.RatingAcceptable},
		{40, models.RatingAcceptable},
		{39.9, models.RatingWeak},
		{0, models.RatingWeak},
	}
	for _, c := range cases {
		if got := RatingFromScore(c.score); got != c.want {
			t.Errorf("RatingFromScore(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestScoreFromBenchmarkRatioHigherIsBetter(t *testing.T) {
	// benchmark 10: value 15 -> ratio 1.5 -> 95; value 9 -> 0.9 -> 65
	if got := ScoreFromBenchmarkRatio(15, 10, true); got != 95 {
		t.Errorf("score = %v, want 95", got)
	}
	if got := ScoreFromBenchmarkRatio(9, 10, true); got != 65 {
		t.Errorf("score = %v, want 65", got)
	}
	if got := ScoreFromBenchmarkRatio(1, 10, true); got != 25 {
		t.Errorf("score = %v, want 25", got)
	}
}

func TestScoreFromBenchmarkRatioInvertsForLowerIsBetter(t *testing.T) {
	// Debt-style metric, benchmark 0.5: value 0.25 is twice as good.
	if got := ScoreFromBenchmarkRatio(0.25, 0.5, false); got != 95 {
		t.Errorf("score = %v, want 95", got)
	}
	// Value 1.0 is twice as bad: ratio 0.5 -> 25.
	if got := ScoreFromBenchmarkRatio(1.0, 0.5, false); got != 25 {
		t.Errorf("score = %v, want 25", got)
	}
	// Zero debt is the best possible.
	if got := ScoreFromBenchmarkRatio(0, 0.5, false); got != 95 {
		t.Errorf("score = %v, want 95", got)
	}
}

// Rating monotonicity: for a higher-is-better metric against a fixed
// benchmark, a higher value never rates worse.
func TestRatingMonotonicity(t *testing.T) {
	values := []float64{1, 3, 5, 7, 9, 11, 13, 15, 17}
	prev := -1
	for _, v := range values {
		rating := RatingFromScore(ScoreFromBenchmarkRatio(v, 10, true))
		if rating.Rank() < prev {
			t.Fatalf("rating dropped at value %v", v)
		}
		prev = rating.Rank()
	}
}

func TestScoreFromBreakpoints(t *testing.T) {
	bp := Breakpoints{Excellent: 2.5, Good: 2.0, Acceptable: 1.5, Weak: 1.0}
	if got := ScoreFromBreakpoints(2.6, bp, true); got != 95 {
		t.Errorf("score = %v, want 95", got)
	}
	if got := ScoreFromBreakpoints(1.2, bp, true); got != 40 {
		t.Errorf("score = %v, want 40", got)
	}
	if got := ScoreFromBreakpoints(0.5, bp, true); got != 20 {
		t.Errorf("score = %v, want 20", got)
	}

	// Lower-is-better inverts the comparisons.
	debt := Breakpoints{Excellent: 0.3, Good: 0.45, Acceptable: 0.6, Weak: 0.75}
	if got := ScoreFromBreakpoints(0.2, debt, false); got != 95 {
		t.Errorf("score = %v, want 95", got)
	}
	if got := ScoreFromBreakpoints(0.9, debt, false); got != 20 {
		t.Errorf("score = %v, want 20", got)
	}
}

func TestApplyBreakpointOverridesDoesNotMutate(t *testing.T) {
	specs := DefaultCatalogue()
	var original *Breakpoints
	for _, s := range specs {
		if s.ID == "currentRatio" {
			original = s.Breakpoints
		}
	}

	overridden := ApplyBreakpointOverrides(specs, map[string]Breakpoints{
		"currentRatio": {Excellent: 3.0, Good: 2.5, Acceptable: 2.0, Weak: 1.5},
	})

	for _, s := range overridden {
		if s.ID == "currentRatio" && s.Breakpoints.Excellent != 3.0 {
			t.Errorf("override not applied: %+v", s.Breakpoints)
		}
	}
	for _, s := range specs {
		if s.ID == "currentRatio" && s.Breakpoints != original {
			t.Error("input catalogue was mutated")
		}
	}
}
