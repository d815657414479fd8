// Package generator assembles the HTML snippets for each form type. Field
// values go through the configured Segmenter; the surrounding markup is
// fixed.
package generator

import (
	"github.com/riverfjs/arabify-go/internal/converter"
	"github.com/riverfjs/arabify-go/internal/parser"
	"github.com/riverfjs/arabify-go/internal/types"
	"github.com/riverfjs/arabify-go/internal/util"
)

// Generator renders form records with one configuration.
type Generator struct {
	config    *types.RenderConfig
	segmenter *converter.Segmenter
}

// New creates a Generator. A nil config uses the defaults.
func New(config *types.RenderConfig) *Generator {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &Generator{
		config:    config,
		segmenter: converter.NewSegmenter(config),
	}
}

func (g *Generator) processText(text string) string {
	return g.segmenter.Segment(text)
}

func (g *Generator) arabicSpan(text string) string {
	return converter.ArabicSpan(text, g.config)
}

// paragraphs renders a multi-line field as one HTML line per paragraph.
// Markdown fields go through goldmark; otherwise every non-blank line
// becomes its own paragraph.
func (g *Generator) paragraphs(field string) []string {
	if g.config.Markdown {
		return parser.Parse(field, g.config)
	}
	lines := util.NonBlankLines(field)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, g.paragraph(g.processText(line)))
	}
	return out
}

// paragraph wraps already rendered html in the configured paragraph class.
func (g *Generator) paragraph(html string) string {
	return converter.OpenParagraph(g.config.ParagraphClass) + html + "</p>"
}

// trimmedLines processes each non-blank line after trimming it, without a
// wrapper element. Markdown fields go through goldmark.
func (g *Generator) trimmedLines(field string) []string {
	if g.config.Markdown {
		return parser.Parse(field, g.config)
	}
	lines := nonBlankTrimmed(field)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, g.processText(line))
	}
	return out
}

func indent(prefix string, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = prefix + line
	}
	return out
}
