package metrics

import (
	"fmt"

	"finsight/pkg/core/validate"
	"finsight/pkg/models"
)

// BuildExecutiveSummary aggregates all results of one run into the
// summary the report consumers render. AI insights, when present, are
// merged verbatim into the key-insights list; their absence degrades
// the summary but never blocks it.
func BuildExecutiveSummary(results []models.AnalysisResult, company models.Company, aiInsights []string) models.ExecutiveSummary {
	summary := models.ExecutiveSummary{
		CompanyName:        company.Name,
		RatingDistribution: map[models.Rating]int{},
	}

	scores := make([]float64, 0, len(results))
	var best, worst *models.AnalysisResult
	for i := range results {
		r := &results[i]
		summary.RatingDistribution[r.Rating]++
		scores = append(scores, r.Score)
		if best == nil || r.Score > best.Score {
			best = r
		}
		if worst == nil || r.Score < worst.Score {
			worst = r
		}
	}

	summary.AverageScore = validate.Average(scores)
	summary.OverallRating = RatingFromScore(summary.AverageScore)

	summary.KeyInsights = append(summary.KeyInsights, aiInsights...)
	if len(results) > 0 {
		strong := summary.RatingDistribution[models.RatingExcellent] + summary.RatingDistribution[models.RatingVeryGood]
		summary.KeyInsights = append(summary.KeyInsights,
			fmt.Sprintf("%d من أصل %d مؤشرا بتقييم جيد جدا أو أفضل", strong, len(results)))
		if best != nil {
			summary.KeyInsights = append(summary.KeyInsights, fmt.Sprintf("أقوى المؤشرات: %s", best.Name))
		}
		if worst != nil && worst.Rating == models.RatingWeak {
			summary.KeyInsights = append(summary.KeyInsights, fmt.Sprintf("أضعف المؤشرات: %s", worst.Name))
		}
	}

	summary.SWOT = mergeSWOT(results)
	summary.Risks = dedup(collect(results, func(r models.AnalysisResult) []string { return r.Risks }))
	summary.Forecasts = buildForecasts(results)
	summary.Recommendations = buildRecommendations(summary, results)
	summary.SummaryTable = buildSummaryTable(results)

	return summary
}

func mergeSWOT(results []models.AnalysisResult) models.SWOT {
	return models.SWOT{
		Strengths:     dedup(collect(results, func(r models.AnalysisResult) []string { return r.SWOT.Strengths })),
		Weaknesses:    dedup(collect(results, func(r models.AnalysisResult) []string { return r.SWOT.Weaknesses })),
		Opportunities: dedup(collect(results, func(r models.AnalysisResult) []string { return r.SWOT.Opportunities })),
		Threats:       dedup(collect(results, func(r models.AnalysisResult) []string { return r.SWOT.Threats })),
	}
}

func collect(results []models.AnalysisResult, pick func(models.AnalysisResult) []string) []string {
	var out []string
	for _, r := range results {
		out = append(out, pick(r)...)
	}
	return out
}

func dedup(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func buildForecasts(results []models.AnalysisResult) []string {
	var forecasts []string
	for _, r := range results {
		if r.ID != "revenueGrowth" || r.Value.Number == nil {
			continue
		}
		if *r.Value.Number > 0 {
			forecasts = append(forecasts, fmt.Sprintf("استمرار نمو الإيرادات المتوقع بناء على نمو %.1f%% في آخر سنة", *r.Value.Number))
		} else {
			forecasts = append(forecasts, "يتوقع ضغط على الإيرادات ما لم تعالج أسباب التراجع الأخير")
		}
	}
	return forecasts
}

func buildRecommendations(summary models.ExecutiveSummary, results []models.AnalysisResult) models.Recommendations {
	rec := models.Recommendations{}
	weakCount := summary.RatingDistribution[models.RatingWeak]

	if weakCount > 0 {
		rec.ForOwners = append(rec.ForOwners, fmt.Sprintf("معالجة %d مؤشرا بتقييم ضعيف قبل أي خطط توسع", weakCount))
	} else {
		rec.ForOwners = append(rec.ForOwners, "الوضع المالي العام مستقر، التركيز على تحسين الكفاءة التشغيلية")
	}

	for _, r := range results {
		if r.Category == models.CategoryLeverage && r.Rating == models.RatingWeak {
			rec.ForBanks = append(rec.ForBanks, fmt.Sprintf("مؤشر %s ضعيف، يوصى بضمانات إضافية عند التمويل", r.Name))
		}
	}
	if len(rec.ForBanks) == 0 {
		rec.ForBanks = append(rec.ForBanks, "مؤشرات المديونية ضمن الحدود المقبولة للإقراض")
	}

	switch summary.OverallRating {
	case models.RatingExcellent, models.RatingVeryGood:
		rec.ForInvestors = append(rec.ForInvestors, "الأداء العام قوي ويدعم قرار الاستثمار")
	case models.RatingGood, models.RatingAcceptable:
		rec.ForInvestors = append(rec.ForInvestors, "الأداء العام متوسط، يوصى بدراسة اتجاه المؤشرات قبل الاستثمار")
	default:
		rec.ForInvestors = append(rec.ForInvestors, "الأداء العام ضعيف، الاستثمار محفوف بمخاطر مرتفعة")
	}

	rec.ForValuators = append(rec.ForValuators, fmt.Sprintf("متوسط التقييم العام %.0f من 100، يؤخذ في الاعتبار عند اختيار مضاعفات التقييم", summary.AverageScore))
	rec.ForOthers = append(rec.ForOthers, "مراجعة قائمة الملاحظات المرفقة مع التحليل لفهم جودة البيانات")

	return rec
}

func buildSummaryTable(results []models.AnalysisResult) []models.SummaryTableRow {
	rows := make([]models.SummaryTableRow, 0, len(results))
	for _, r := range results {
		row := models.SummaryTableRow{
			Metric:   r.Name,
			MetricEn: r.NameEn,
			Value:    FormatValue(r.Value),
			Rating:   r.Rating,
		}
		if r.IndustryAverage != nil {
			row.IndustryAverage = fmt.Sprintf("%.2f", *r.IndustryAverage)
		} else {
			row.IndustryAverage = "—"
		}
		if r.Value.Undefined {
			row.Note = r.Value.UndefinedReason
		}
		rows = append(rows, row)
	}
	return rows
}
