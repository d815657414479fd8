package converter

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/arabify-go/internal/types"
	arabutil "github.com/riverfjs/arabify-go/internal/util"
)

// EventWalker 遍历 goldmark AST 并生成 HTML 行
//
// 每个顶层块输出一行；文本节点交给 Segmenter 处理阿拉伯文。
type EventWalker struct {
	source    []byte
	config    *types.RenderConfig
	segmenter *Segmenter

	cur   strings.Builder
	lines []string

	// <ar-forced> 内的文本不做检测
	forced bool
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker(source []byte, config *types.RenderConfig) *EventWalker {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	inline := *config
	// 段落由 Markdown 决定，行内文本不再按句子包 <p>
	if inline.Strategy == types.SentenceScan {
		inline.Strategy = types.TokenScan
	}
	return &EventWalker{
		source:    source,
		config:    config,
		segmenter: NewSegmenter(&inline),
		lines:     make([]string, 0),
	}
}

// Walk 遍历 AST 节点
func (w *EventWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Document:
		// nothing

	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.writeText(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.cur.WriteString("<code>")
			w.cur.WriteString(arabutil.EscapeHTML(extractCodeSpanText(n, w.source)))
			w.cur.WriteString("</code>")
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		tag := "em"
		if n.Level == 2 {
			tag = "strong"
		}
		w.tag(tag, entering)

	case *east.Strikethrough:
		w.tag("del", entering)

	case *ast.Link:
		if entering {
			fmt.Fprintf(&w.cur, `<a href="%s">`, arabutil.EscapeHTML(string(n.Destination)))
		} else {
			w.cur.WriteString("</a>")
		}

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			fmt.Fprintf(&w.cur, `<a href="%s">%s</a>`, arabutil.EscapeHTML(url), arabutil.EscapeHTML(url))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Image:
		// 只保留 alt 文本
		return ast.WalkContinue, nil

	case *ast.RawHTML:
		if entering {
			w.onInlineHTML(n)
		}

	// --- Block elements ---
	case *ast.Paragraph:
		if entering {
			w.cur.WriteString(OpenParagraph(w.config.ParagraphClass))
		} else {
			w.cur.WriteString("</p>")
		}

	case *ast.TextBlock:
		// tight list item, no wrapper

	case *ast.Heading:
		w.tag(fmt.Sprintf("h%d", n.Level), entering)

	case *ast.Blockquote:
		w.tag("blockquote", entering)

	case *ast.List:
		if n.IsOrdered() {
			w.tag("ol", entering)
		} else {
			w.tag("ul", entering)
		}

	case *ast.ListItem:
		w.tag("li", entering)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.cur.WriteString("<hr>")
		}

	case *ast.HTMLBlock:
		// 块级 HTML 不透传，按普通段落转义
		if entering {
			w.onHTMLBlock(n)
			return ast.WalkSkipChildren, nil
		}
	}

	if !entering && node.Parent() != nil && node.Parent().Kind() == ast.KindDocument {
		w.flushLine()
	}
	return ast.WalkContinue, nil
}

// Result 返回转换结果，每个顶层块一行
func (w *EventWalker) Result() []string {
	w.flushLine()
	return w.lines
}

func (w *EventWalker) tag(name string, entering bool) {
	if entering {
		w.cur.WriteString("<" + name + ">")
	} else {
		w.cur.WriteString("</" + name + ">")
	}
}

func (w *EventWalker) flushLine() {
	line := strings.TrimSpace(w.cur.String())
	w.cur.Reset()
	if line != "" {
		w.lines = append(w.lines, line)
	}
}

// --- Text handling ---

func (w *EventWalker) onText(n *ast.Text) {
	value := n.Segment.Value(w.source)
	if !n.IsRaw() {
		value = util.UnescapePunctuations(value)
		value = util.ResolveNumericReferences(value)
		value = util.ResolveEntityNames(value)
	}
	w.writeText(string(value))

	if n.HardLineBreak() {
		w.cur.WriteString("<br>\n")
	} else if n.SoftLineBreak() {
		w.cur.WriteString("\n")
	}
}

func (w *EventWalker) writeText(text string) {
	if text == "" {
		return
	}
	if w.forced {
		w.cur.WriteString(ArabicSpan(text, w.config))
		return
	}
	w.cur.WriteString(w.segmenter.Segment(text))
}

func (w *EventWalker) onInlineHTML(n *ast.RawHTML) {
	raw := string(n.Segments.Value(w.source))
	tag := strings.TrimSpace(strings.ToLower(raw))

	switch tag {
	case "<" + forcedTag + ">":
		w.forced = true
	case "</" + forcedTag + ">":
		w.forced = false
	default:
		// 其他 inline HTML 作为文本转义
		w.cur.WriteString(arabutil.EscapeHTML(raw))
	}
}

func (w *EventWalker) onCodeBlock(n ast.Node) {
	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(w.source))
	}
	w.cur.WriteString("<pre><code>")
	w.cur.WriteString(arabutil.EscapeHTML(restoreMarkers(code.String())))
	w.cur.WriteString("</code></pre>")
}

func (w *EventWalker) onHTMLBlock(n *ast.HTMLBlock) {
	var raw strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw.Write(seg.Value(w.source))
	}
	if n.HasClosure() {
		raw.Write(n.ClosureLine.Value(w.source))
	}
	text := strings.TrimRight(raw.String(), "\n")
	w.cur.WriteString(OpenParagraph(w.config.ParagraphClass))
	if strings.Contains(text, "<"+forcedTag+">") {
		// 标记独占一行时 goldmark 会把 <ar-forced> 当成 HTML 块
		w.cur.WriteString(w.segmenter.Segment(blockMarkers.Replace(text)))
	} else {
		w.cur.WriteString(arabutil.EscapeHTML(text))
	}
	w.cur.WriteString("</p>")
}

// extractCodeSpanText collects the raw text of a code span's children, with
// forced markers shown literally.
func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var code strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			code.Write(t.Segment.Value(source))
		}
	}
	return restoreMarkers(code.String())
}
