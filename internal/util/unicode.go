package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Arabic covers the Arabic block and its supplement, extended-A and both
// presentation-form blocks.
var Arabic = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06FF, Stride: 1}}},
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0750, Hi: 0x077F, Stride: 1}}},
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x08A0, Hi: 0x08FF, Stride: 1}}},
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0xFB50, Hi: 0xFDFF, Stride: 1}}},
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1}}},
)

// IsArabic reports whether r falls in one of the Arabic ranges.
func IsArabic(r rune) bool {
	return unicode.Is(Arabic, r)
}

// ContainsArabic reports whether any rune of s is Arabic.
func ContainsArabic(s string) bool {
	return strings.IndexFunc(s, IsArabic) >= 0
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces the five HTML-reserved characters. Single quotes become
// &#039; rather than the &#39; produced by html.EscapeString.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// IsSpace reports whether r separates tokens.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// CollapseSpace replaces every whitespace run with a single space and trims
// both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank reports whether s has no visible content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NonBlankLines splits s on newlines and drops lines that are blank.
func NonBlankLines(s string) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !IsBlank(line) {
			out = append(out, line)
		}
	}
	return out
}
