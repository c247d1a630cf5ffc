package metrics

import (
	"fmt"
	"sort"
	"strings"

	"finsight/pkg/core/benchmark"
	"finsight/pkg/models"
)

// ComputeAll evaluates the catalogue against a chronologically ordered
// series of validated statements. Pure: no I/O, no shared state. Specs
// whose history requirement exceeds the series are skipped rather than
// reported undefined.
func ComputeAll(statements []models.FinancialStatement, benchmarks benchmark.Set, specs []Spec) []models.AnalysisResult {
	if len(statements) == 0 {
		return nil
	}

	results := make([]models.AnalysisResult, 0, len(specs))
	last := len(statements) - 1

	for _, spec := range specs {
		minYears := spec.MinYears
		if minYears == 0 {
			minYears = 1
		}
		if len(statements) < minYears {
			continue
		}

		value := spec.Formula(statements, last)
		results = append(results, buildResult(spec, value, benchmarks, statements[last].Year))
	}
	return results
}

// BenchmarkKeys lists the distinct benchmark keys the given specs need,
// for the provider request.
func BenchmarkKeys(specs []Spec) []string {
	seen := map[string]bool{}
	keys := []string{}
	for _, spec := range specs {
		if spec.BenchmarkKey != "" && !seen[spec.BenchmarkKey] {
			seen[spec.BenchmarkKey] = true
			keys = append(keys, spec.BenchmarkKey)
		}
	}
	sort.Strings(keys)
	return keys
}

func buildResult(spec Spec, value models.MetricValue, benchmarks benchmark.Set, year int) models.AnalysisResult {
	result := models.AnalysisResult{
		ID:       spec.ID,
		Category: spec.Category,
		Name:     spec.Name,
		NameEn:   spec.NameEn,
		Year:     year,
		Value:    value,
	}

	if value.Undefined {
		result.Score = UndefinedScore
		result.Rating = models.RatingAcceptable
		result.Interpretation = fmt.Sprintf("تعذر احتساب %s: %s", spec.Name, value.UndefinedReason)
		result.Recommendation = "استكمال البيانات المفقودة لإتاحة احتساب المؤشر"
		return result
	}

	if value.Table != nil {
		result.Score = NeutralScore
		result.Rating = RatingFromScore(NeutralScore)
		result.Interpretation = fmt.Sprintf("%s: يعرض التوزيع النسبي للبنود الرئيسية", spec.Name)
		return result
	}

	v := *value.Number
	bench, hasBench := benchmarks[spec.BenchmarkKey]
	if hasBench {
		avg := bench.Average
		result.IndustryAverage = &avg
	}

	switch {
	case spec.Breakpoints != nil:
		result.Score = ScoreFromBreakpoints(v, *spec.Breakpoints, spec.HigherIsBetter)
	case hasBench && bench.Average != 0:
		result.Score = ScoreFromBenchmarkRatio(v, bench.Average, spec.HigherIsBetter)
	default:
		result.Score = NeutralScore
	}
	result.Rating = RatingFromScore(result.Score)

	result.Interpretation = interpret(spec, v, result.Rating, result.IndustryAverage)
	result.Recommendation = recommend(spec, result.Rating)
	attachSWOT(&result, spec)

	return result
}

// =============================================================================
// NARRATIVE TEMPLATES (Arabic, deterministic)
// =============================================================================

var ratingArabic = map[models.Rating]string{
	models.RatingExcellent:  "ممتاز",
	models.RatingVeryGood:   "جيد جدا",
	models.RatingGood:       "جيد",
	models.RatingAcceptable: "مقبول",
	models.RatingWeak:       "ضعيف",
}

func interpret(spec Spec, v float64, rating models.Rating, industryAvg *float64) string {
	if industryAvg == nil {
		return fmt.Sprintf("%s بلغ %.2f ولا يتوفر متوسط صناعة للمقارنة، التقييم محايد", spec.Name, v)
	}
	return fmt.Sprintf("%s بلغ %.2f مقابل متوسط الصناعة %.2f، الأداء %s", spec.Name, v, *industryAvg, ratingArabic[rating])
}

func recommend(spec Spec, rating models.Rating) string {
	switch rating {
	case models.RatingExcellent, models.RatingVeryGood:
		return fmt.Sprintf("الحفاظ على مستوى %s الحالي وتعزيز العوامل الداعمة له", spec.Name)
	case models.RatingGood:
		return fmt.Sprintf("متابعة اتجاه %s والعمل على تحسينه تدريجيا", spec.Name)
	case models.RatingAcceptable:
		return fmt.Sprintf("وضع خطة تحسين لمؤشر %s ومراجعتها دوريا", spec.Name)
	default:
		return fmt.Sprintf("معالجة عاجلة لمؤشر %s ومراجعة السياسات المرتبطة به", spec.Name)
	}
}

func attachSWOT(result *models.AnalysisResult, spec Spec) {
	switch result.Rating {
	case models.RatingExcellent, models.RatingVeryGood:
		result.SWOT.Strengths = []string{fmt.Sprintf("%s أقوى من متوسط الصناعة", spec.Name)}
		result.Opportunities = []string{fmt.Sprintf("إمكانية استثمار قوة %s في التوسع", spec.Name)}
	case models.RatingAcceptable:
		result.SWOT.Weaknesses = []string{fmt.Sprintf("%s دون متوسط الصناعة", spec.Name)}
		result.Risks = []string{fmt.Sprintf("استمرار تراجع %s قد يضعف المركز المالي", spec.Name)}
	case models.RatingWeak:
		result.SWOT.Weaknesses = []string{fmt.Sprintf("%s أضعف بكثير من متوسط الصناعة", spec.Name)}
		result.SWOT.Threats = []string{fmt.Sprintf("ضعف %s يهدد استدامة النشاط", spec.Name)}
		result.Risks = []string{fmt.Sprintf("ضعف %s يشكل خطرا ماليا مباشرا", spec.Name)}
	}
}

// FormatValue renders a metric value for the summary table.
func FormatValue(v models.MetricValue) string {
	switch {
	case v.Undefined:
		return "—"
	case v.Number != nil:
		return fmt.Sprintf("%.2f", *v.Number)
	case v.Table != nil:
		keys := make([]string, 0, len(v.Table))
		for k := range v.Table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s %.1f%%", k, v.Table[k]))
		}
		return strings.Join(parts, ", ")
	default:
		return "—"
	}
}
