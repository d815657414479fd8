package generator

import (
	"strings"

	"github.com/riverfjs/arabify-go/internal/converter"
	"github.com/riverfjs/arabify-go/internal/types"
	"github.com/riverfjs/arabify-go/internal/util"
)

// Doa renders a supplication page. Empty fields are omitted.
func (g *Generator) Doa(form types.DoaForm) string {
	html := make([]string, 0, 32)

	html = append(html, `<div class="content">`)

	if form.Title != "" {
		html = append(html, `  <h1 id="title" class="text-xl font-bold text-center">`+g.processText(form.Title)+`</h1>`)
	}

	if form.Subtitle != "" {
		html = append(html, `  <h2 id="repeat-instruction" class="text-xs text-center">`+g.processText(form.Subtitle)+`</h2>`)
	}

	if form.ArabicDoa != "" {
		// 整个字段都是阿拉伯文，标记多余，直接去掉
		arabic := converter.StripMarkers(form.ArabicDoa, g.config.UnmatchedMarker)
		html = append(html, `  <p id="arabic-text" class="text-4xl font-arabic mt-3 text-right" dir="rtl" lang="ar">`+util.EscapeHTML(arabic)+`</p>`)
	}

	if form.Latin != "" {
		html = append(html, `  <p id="latin-text" class="italic mt-2 text-sm tracking-normal"><i>`+g.processText(form.Latin)+`</i></p>`)
	}

	if form.Meaning != "" {
		html = append(html, `  <p id="translation" class="mt-2 text-sm tracking-normal">`+g.processText(form.Meaning)+`</p>`)
	}

	if form.Kandungan != "" || form.Benefit != "" {
		html = append(html, `  <div id="explanation-section" class="mt-4">`)
		html = append(html, `    <h2 class="text-md font-bold mb-2 border-b border-slate-400 pb-2">Penjelasan</h2>`)

		if form.Kandungan != "" {
			html = append(html, `    <div id="explanation" class="mt-2 text-sm tracking-normal">`)
			html = append(html, `      <h3 class="text-md font-semibold mb-2">Kandungan</h3>`)
			html = append(html, indent("      ", g.paragraphs(form.Kandungan))...)
			html = append(html, `    </div>`)
		}

		if form.Benefit != "" {
			html = append(html, `    <div id="benefit" class="mt-4 text-sm tracking-normal">`)
			html = append(html, `      <h3 class="text-md font-semibold mb-2">Keutamaan</h3>`)
			html = append(html, indent("      ", g.paragraphs(form.Benefit))...)
			html = append(html, `    </div>`)
		}
		html = append(html, `  </div>`)
	}

	if form.Footnote != "" {
		html = append(html, `  <div id="hadith-reference" class="mt-4 text-sm tracking-normal">`)
		html = append(html, `    <h3 class="text-md font-semibold mb-2">Referensi</h3>`)
		for _, line := range util.NonBlankLines(form.Footnote) {
			html = append(html, `    `+g.paragraph(g.processText(line)))
		}
		html = append(html, `  </div>`)
	}

	html = append(html, `</div>`)
	return strings.Join(html, "\n")
}
