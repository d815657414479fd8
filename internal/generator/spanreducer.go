package generator

import "strings"

// SpanReducer merges the text of every font-arabic span in content into a
// single span, joined by spaces. Content without such spans is returned
// unchanged.
func (g *Generator) SpanReducer(content string) string {
	if content == "" {
		return ""
	}

	ex := extractSpans(parseFragment(content))
	if len(ex.spans) == 0 {
		return content
	}
	return g.arabicSpan(strings.Join(ex.spans, " "))
}
