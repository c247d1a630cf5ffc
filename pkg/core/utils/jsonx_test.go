package utils

import "testing"

type insightDoc struct {
	Insights []string `json:"insights"`
}

func TestSmartParseStrictJSON(t *testing.T) {
	var doc insightDoc
	if _, err := SmartParse(`{"insights": ["a", "b"]}`, &doc); err != nil {
		t.Fatalf("strict json failed: %v", err)
	}
	if len(doc.Insights) != 2 {
		t.Errorf("insights = %v", doc.Insights)
	}
}

func TestSmartParseRepairsFencedOutput(t *testing.T) {
	raw := "```json\n{\"insights\": [\"a\",]}\n```"
	var doc insightDoc
	if _, err := SmartParse(raw, &doc); err != nil {
		t.Fatalf("fenced json not repaired: %v", err)
	}
	if len(doc.Insights) != 1 || doc.Insights[0] != "a" {
		t.Errorf("insights = %v", doc.Insights)
	}
}

func TestSmartParseHJSONFallback(t *testing.T) {
	raw := `{
  # model commentary
  insights: ["a"]
}`
	var doc insightDoc
	if _, err := SmartParse(raw, &doc); err != nil {
		t.Fatalf("hjson fallback failed: %v", err)
	}
	if len(doc.Insights) != 1 {
		t.Errorf("insights = %v", doc.Insights)
	}
}

func TestSmartParseGarbage(t *testing.T) {
	var doc insightDoc
	if _, err := SmartParse("not even close {{{", &doc); err == nil {
		t.Error("expected an error for unparseable input")
	}
}

func TestCleanMarkdownStripsFence(t *testing.T) {
	got := CleanMarkdown("```markdown\n# عنوان\n```")
	if got != "# عنوان" {
		t.Errorf("CleanMarkdown = %q", got)
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("# heading\n\nbody") {
		t.Error("plain markdown should validate")
	}
}
