package generator

import (
	"strings"

	"github.com/riverfjs/arabify-go/internal/util"
)

// Additional keeps only the Arabic from pasted HTML or text: first the
// Arabic inside font-arabic spans, then Arabic found outside any span, joined
// with single spaces into one span. Input without Arabic renders as "".
func (g *Generator) Additional(input string) string {
	if input == "" {
		return ""
	}

	content := util.CollapseSpace(input)
	ex := extractSpans(parseFragment(content))

	texts := make([]string, 0)
	for _, s := range ex.spans {
		texts = append(texts, arabicRuns(s)...)
	}
	for _, s := range ex.outside {
		texts = append(texts, arabicRuns(s)...)
	}
	if len(texts) == 0 {
		return ""
	}

	return g.paragraph(g.arabicSpan(strings.Join(texts, " ")))
}
