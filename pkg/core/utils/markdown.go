package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanMarkdown trims a model response down to bare markdown. Models
// frequently wrap their answer in an outer code fence; the wrapper is
// removed, inner fences are left alone.
func CleanMarkdown(input string) string {
	out := strings.TrimSpace(input)
	for _, fence := range []string{"```markdown", "```"} {
		if strings.HasPrefix(out, fence) && strings.HasSuffix(out, "```") {
			out = strings.TrimSuffix(strings.TrimPrefix(out, fence), "```")
			return strings.TrimSpace(out)
		}
	}
	return out
}

// ValidateMarkdown reports whether goldmark can build a document tree
// from the input. The parser is lenient, so this rejects only text that
// cannot be rendered at all.
func ValidateMarkdown(input string) bool {
	doc := goldmark.DefaultParser().Parse(text.NewReader([]byte(input)))
	return doc != nil
}
