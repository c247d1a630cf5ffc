package narrative

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"finsight/pkg/models"
)

type fakeProvider struct {
	response string
	err      error
	prompt   string
}

func (f *fakeProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeProvider) AdaptInstructions(raw string) string { return raw }

func sampleResults() []models.AnalysisResult {
	v := 2.0
	return []models.AnalysisResult{
		{ID: "currentRatio", Name: "نسبة التداول", Rating: models.RatingVeryGood, Score: 80, Value: models.MetricValue{Number: &v}},
	}
}

func TestSynthesizeParsesModelJSON(t *testing.T) {
	fake := &fakeProvider{response: `{"keyInsights": ["سيولة جيدة"], "risks": ["اعتماد على منتج واحد"], "forecasts": []}`}
	s := NewSynthesizer(fake, zerolog.Nop())

	got := s.Synthesize(context.Background(), models.Company{Name: "شركة"}, sampleResults())
	if len(got.KeyInsights) != 1 || got.KeyInsights[0] != "سيولة جيدة" {
		t.Errorf("keyInsights = %v", got.KeyInsights)
	}
	if len(got.Risks) != 1 {
		t.Errorf("risks = %v", got.Risks)
	}
	if !strings.Contains(fake.prompt, "currentRatio") {
		t.Error("prompt must include the metric ids")
	}
}

func TestSynthesizeRepairsFencedOutput(t *testing.T) {
	fake := &fakeProvider{response: "```json\n{\"keyInsights\": [\"ملاحظة\",]}\n```"}
	s := NewSynthesizer(fake, zerolog.Nop())

	got := s.Synthesize(context.Background(), models.Company{}, sampleResults())
	if len(got.KeyInsights) != 1 {
		t.Errorf("fenced output not recovered: %+v", got)
	}
}

func TestSynthesizeProviderFailureDegrades(t *testing.T) {
	fake := &fakeProvider{err: fmt.Errorf("quota exceeded")}
	s := NewSynthesizer(fake, zerolog.Nop())

	got := s.Synthesize(context.Background(), models.Company{}, sampleResults())
	if len(got.KeyInsights) != 0 || len(got.Risks) != 0 {
		t.Errorf("provider failure must yield empty insights, got %+v", got)
	}
}

func TestSynthesizeNilProvider(t *testing.T) {
	s := NewSynthesizer(nil, zerolog.Nop())
	got := s.Synthesize(context.Background(), models.Company{}, nil)
	if len(got.KeyInsights) != 0 {
		t.Errorf("nil provider must yield empty insights, got %+v", got)
	}
}

func TestSynthesizeCleansItemMarkdown(t *testing.T) {
	fake := &fakeProvider{response: `{"keyInsights": ["` + "```markdown\\nسيولة جيدة\\n```" + `", "  ", "هامش مستقر"]}`}
	s := NewSynthesizer(fake, zerolog.Nop())

	got := s.Synthesize(context.Background(), models.Company{}, sampleResults())
	want := []string{"سيولة جيدة", "هامش مستقر"}
	if len(got.KeyInsights) != len(want) {
		t.Fatalf("keyInsights = %v, want %v", got.KeyInsights, want)
	}
	for i := range want {
		if got.KeyInsights[i] != want[i] {
			t.Errorf("keyInsights[%d] = %q, want %q", i, got.KeyInsights[i], want[i])
		}
	}
}

func TestSynthesizeCapsListLength(t *testing.T) {
	var items []string
	for i := 0; i < 20; i++ {
		items = append(items, fmt.Sprintf("\"ملاحظة %d\"", i))
	}
	fake := &fakeProvider{response: `{"keyInsights": [` + strings.Join(items, ",") + `]}`}
	s := NewSynthesizer(fake, zerolog.Nop())

	got := s.Synthesize(context.Background(), models.Company{}, sampleResults())
	if len(got.KeyInsights) != maxItems {
		t.Errorf("keyInsights length = %d, want %d", len(got.KeyInsights), maxItems)
	}
}
