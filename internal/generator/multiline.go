package generator

import (
	"strings"

	"github.com/riverfjs/arabify-go/internal/converter"
	"github.com/riverfjs/arabify-go/internal/util"
)

// ArabicMultiLines renders a reference list. A line containing Arabic is
// wrapped whole in one right-aligned span; other lines go through the
// segmenter.
func (g *Generator) ArabicMultiLines(content string) string {
	if content == "" {
		return ""
	}

	rightClass := strings.TrimSpace(g.config.ParagraphClass + " text-right")

	html := make([]string, 0, 8)
	html = append(html, `<div class="content">`)
	html = append(html, `  <div id="hadith-reference" class="mt-4 text-sm tracking-normal">`)
	html = append(html, `    <h3 class="text-md font-semibold mb-2">Referensi</h3>`)

	for _, line := range util.NonBlankLines(content) {
		if util.ContainsArabic(line) {
			arabic := converter.StripMarkers(line, g.config.UnmatchedMarker)
			html = append(html, `    `+converter.OpenParagraph(rightClass)+g.arabicSpan(arabic)+`</p>`)
		} else {
			html = append(html, `    `+g.paragraph(g.processText(line)))
		}
	}

	html = append(html, `  </div>`)
	html = append(html, `</div>`)
	return strings.Join(html, "\n")
}
