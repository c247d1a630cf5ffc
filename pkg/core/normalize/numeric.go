package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks (Arabic tashkeel, Latin accents)
// after NFD decomposition.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeLabel lowers, de-accents and canonicalizes a free-form label
// so synonym matching sees one spelling per word. Alef variants fold to
// bare alef and tatweel/punctuation are dropped, which is what makes
// "الإيرادات" and "الايرادات" the same label.
func normalizeLabel(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(out) {
		switch r {
		case 'أ', 'إ', 'آ', 'ٱ':
			b.WriteRune('ا')
		case 'ى':
			b.WriteRune('ي')
		case 'ـ': // tatweel
		case '.', ',', ':', ';', '(', ')', '[', ']', '"', '\'', '،', '؛', '-', '_', '/':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// squash removes all spaces so "accounts receivable", "accountsReceivable"
// and "Accounts  Receivable" compare equal.
func squash(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// currency tokens stripped before numeric parsing.
var currencyTokens = []string{
	"ر.س", "ر س", "ريال سعودي", "ريال", "درهم", "دينار", "جنيه",
	"sar", "aed", "usd", "eur", "egp", "kwd",
	"$", "€", "£", "¥", "﷼",
}

// parseAmount coerces a raw cell value to a float64. Strings go through
// decimal parsing after stripping currency symbols, thousands
// separators and percent signs; parenthesized values come back
// negative; Arabic-Indic digits are folded to ASCII.
func parseAmount(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return parseAmountString(n)
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

func parseAmountString(s string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ToLower(s))
	if cleaned == "" {
		return 0, fmt.Errorf("empty value")
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
	}

	for _, tok := range currencyTokens {
		cleaned = strings.ReplaceAll(cleaned, tok, "")
	}

	var b strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= '٠' && r <= '٩': // Arabic-Indic digits
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹': // Eastern Arabic-Indic digits
			b.WriteRune('0' + (r - '۰'))
		case r == '٫': // Arabic decimal separator
			b.WriteRune('.')
		case r == ',' || r == '٬' || r == '%' || unicode.IsSpace(r):
			// thousands separators and percent signs dropped
		default:
			b.WriteRune(r)
		}
	}
	cleaned = b.String()
	if cleaned == "" || cleaned == "-" {
		return 0, fmt.Errorf("no numeric content in %q", s)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	f, _ := d.Float64()
	return f, nil
}
