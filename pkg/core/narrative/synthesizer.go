// Package narrative turns computed analysis results into Arabic
// executive commentary via a text-generation provider. The provider is
// optional: any failure degrades to empty insights so the analysis run
// itself never fails on a model outage.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"finsight/pkg/core/llm"
	"finsight/pkg/core/metrics"
	"finsight/pkg/core/utils"
	"finsight/pkg/models"
)

// Insights is the structured commentary the model returns.
type Insights struct {
	KeyInsights []string `json:"keyInsights"`
	Risks       []string `json:"risks"`
	Forecasts   []string `json:"forecasts"`
}

// maxItems caps each insight list so a rambling model cannot flood the
// executive summary.
const maxItems = 8

const systemPrompt = `أنت محلل مالي خبير. تستلم نتائج تحليل مالي لشركة وتكتب ملاحظات تنفيذية موجزة باللغة العربية.
أجب بصيغة JSON فقط بالمفاتيح التالية: keyInsights (قائمة نصوص)، risks (قائمة نصوص)، forecasts (قائمة نصوص).
لا تكتب أي نص خارج كائن JSON.`

// Synthesizer asks a provider for commentary over a metric result set.
type Synthesizer struct {
	provider llm.Provider
	logger   zerolog.Logger
}

func NewSynthesizer(provider llm.Provider, logger zerolog.Logger) *Synthesizer {
	return &Synthesizer{provider: provider, logger: logger}
}

// Synthesize returns model-written insights for the results, or empty
// Insights when no provider is configured or the call fails.
func (s *Synthesizer) Synthesize(ctx context.Context, company models.Company, results []models.AnalysisResult) Insights {
	if s == nil || s.provider == nil {
		return Insights{}
	}

	prompt := buildPrompt(company, results)
	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}

	raw, err := s.provider.GenerateResponse(ctx, prompt, s.provider.AdaptInstructions(systemPrompt), options)
	if err != nil {
		s.logger.Warn().Err(err).Msg("narrative synthesis failed, continuing without AI insights")
		return Insights{}
	}

	var doc Insights
	if _, err := utils.SmartParse(utils.CleanMarkdown(raw), &doc); err != nil {
		s.logger.Warn().Err(err).Msg("narrative output unparseable, continuing without AI insights")
		return Insights{}
	}

	doc.KeyInsights = tidy(doc.KeyInsights)
	doc.Risks = tidy(doc.Risks)
	doc.Forecasts = tidy(doc.Forecasts)
	return doc
}

// buildPrompt renders the results as a compact metric table the model
// can reason over without the full statements.
func buildPrompt(company models.Company, results []models.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("نتائج التحليل المالي للشركة: ")
	if company.Name != "" {
		b.WriteString(company.Name)
	} else {
		b.WriteString("غير مسماة")
	}
	b.WriteString("\n")
	if company.Sector != "" {
		fmt.Fprintf(&b, "القطاع: %s\n", company.Sector)
	}
	b.WriteString("\nالمؤشرات:\n")
	for _, r := range results {
		fmt.Fprintf(&b, "- %s (%s): %s | التقييم: %s | النقاط: %.0f\n",
			r.Name, r.ID, metrics.FormatValue(r.Value), r.Rating, r.Score)
	}
	b.WriteString("\nاكتب keyInsights و risks و forecasts بناء على هذه النتائج.")
	return b.String()
}

// tidy cleans each insight for rendering: markdown fences the model
// wrapped around individual items are stripped, items that cannot be
// rendered as markdown are dropped, and the list is capped.
func tidy(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = utils.CleanMarkdown(item)
		if item == "" || !utils.ValidateMarkdown(item) {
			continue
		}
		out = append(out, item)
		if len(out) == maxItems {
			break
		}
	}
	return out
}
