package generator

import (
	"strings"

	"github.com/riverfjs/arabify-go/internal/types"
)

// Fatwa renders a question-and-answer page. Answer and reference paragraphs
// are trimmed and emitted without a wrapper element.
func (g *Generator) Fatwa(form types.FatwaForm) string {
	html := make([]string, 0, 16)

	html = append(html, `<div class="content">`)

	if form.Question != "" {
		html = append(html, `  <div id="question" class="mb-4">`)
		html = append(html, `    <h2 class="text-md font-bold mb-2">Pertanyaan:</h2>`)
		html = append(html, `    `+g.processText(form.Question))
		html = append(html, `  </div>`)
	}

	if form.Answer != "" {
		html = append(html, `  <div id="answer" class="mb-4">`)
		html = append(html, `    <h2 class="text-md font-bold mb-2">Jawaban:</h2>`)
		html = append(html, indent("    ", g.trimmedLines(form.Answer))...)
		html = append(html, `  </div>`)
	}

	if form.Reference != "" {
		html = append(html, `  <div id="reference" class="mt-4 text-sm text-gray-600">`)
		html = append(html, `    <h3 class="text-md font-semibold mb-2">Referensi</h3>`)
		// 参考文献不走 Markdown
		for _, line := range nonBlankTrimmed(form.Reference) {
			html = append(html, `    `+g.processText(line))
		}
		html = append(html, `  </div>`)
	}

	html = append(html, `</div>`)
	return strings.Join(html, "\n")
}

func nonBlankTrimmed(field string) []string {
	lines := strings.Split(field, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
