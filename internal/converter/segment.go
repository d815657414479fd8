package converter

import (
	"strings"

	"github.com/riverfjs/arabify-go/internal/types"
	"github.com/riverfjs/arabify-go/internal/util"
)

// scanner turns marker-split pieces into fragments under one boundary policy.
type scanner interface {
	scan(pieces []Piece) []types.Fragment
}

// Segmenter 是 TextSegmenter 的实现，按配置选择扫描策略
type Segmenter struct {
	config  *types.RenderConfig
	scanner scanner
}

// NewSegmenter creates a Segmenter for config. A nil config uses the defaults.
func NewSegmenter(config *types.RenderConfig) *Segmenter {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &Segmenter{
		config:  config,
		scanner: scannerFor(config.Strategy),
	}
}

func scannerFor(strategy types.Strategy) scanner {
	switch strategy {
	case types.TokenScan:
		return tokenScan{}
	case types.SentenceScan:
		return sentenceScan{}
	default:
		return characterScan{}
	}
}

// Fragments splits text into plain, Arabic and forced fragments (and, for
// SentenceScan, paragraphs). Fragment text is raw input.
func (s *Segmenter) Fragments(text string) []types.Fragment {
	if text == "" {
		return nil
	}
	return s.scanner.scan(SplitMarkers(text, s.config.UnmatchedMarker))
}

// Segment renders text as an HTML fragment.
func (s *Segmenter) Segment(text string) string {
	return RenderFragments(s.Fragments(text), s.config)
}

// RenderFragments 将片段渲染为 HTML，先转义再包裹
func RenderFragments(fragments []types.Fragment, config *types.RenderConfig) string {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	var result strings.Builder
	writeFragments(&result, fragments, config)
	return result.String()
}

func writeFragments(w *strings.Builder, fragments []types.Fragment, config *types.RenderConfig) {
	for _, f := range fragments {
		switch f.Kind {
		case types.FragmentPlain:
			w.WriteString(util.EscapeHTML(f.Text))
		case types.FragmentArabic, types.FragmentForced:
			w.WriteString(ArabicSpan(f.Text, config))
		case types.FragmentParagraph:
			w.WriteString(OpenParagraph(config.ParagraphClass))
			writeFragments(w, f.Children, config)
			w.WriteString("</p>")
		}
	}
}

// ArabicSpan escapes text and wraps it in the right-to-left span.
func ArabicSpan(text string, config *types.RenderConfig) string {
	return OpenSpan(config.ArabicClass) + util.EscapeHTML(text) + "</span>"
}

// OpenSpan returns the opening tag of an Arabic span.
func OpenSpan(class string) string {
	return `<span class="` + util.EscapeHTML(class) + `" dir="rtl" lang="ar">`
}

// OpenParagraph returns a <p> opening tag, without a class attribute when
// class is empty.
func OpenParagraph(class string) string {
	if class == "" {
		return "<p>"
	}
	return `<p class="` + util.EscapeHTML(class) + `">`
}
