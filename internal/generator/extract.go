package generator

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/arabify-go/internal/util"
)

// arabicClassMarker identifies spans produced by this package or pasted
// from earlier output.
const arabicClassMarker = "font-arabic"

// parseFragment parses content as the body of an HTML document.
func parseFragment(content string) []*html.Node {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		// 解析失败时按纯文本处理
		return []*html.Node{{Type: html.TextNode, Data: content}}
	}
	return nodes
}

// isArabicSpan reports whether n is a <span> with font-arabic in any
// attribute whose children are all text.
func isArabicSpan(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Span {
		return false
	}
	marked := false
	for _, attr := range n.Attr {
		if strings.Contains(attr.Val, arabicClassMarker) {
			marked = true
			break
		}
	}
	if !marked || n.FirstChild == nil {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			return false
		}
	}
	return true
}

func nodeText(n *html.Node) string {
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(c.Data)
	}
	return text.String()
}

// spanExtraction holds the text of Arabic spans and the text found outside
// any span, each in document order.
type spanExtraction struct {
	spans   []string
	outside []string
}

func extractSpans(nodes []*html.Node) spanExtraction {
	var ex spanExtraction
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case isArabicSpan(n):
			ex.spans = append(ex.spans, nodeText(n))
			return
		case n.Type == html.ElementNode && n.DataAtom == atom.Span:
			// 其他 span 的内容整体忽略
			return
		case n.Type == html.TextNode:
			ex.outside = append(ex.outside, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return ex
}

// arabicRuns returns the maximal runs of Arabic code points in s.
func arabicRuns(s string) []string {
	runs := make([]string, 0)
	start := -1
	for i, r := range s {
		if util.IsArabic(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}
