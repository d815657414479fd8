package converter

import (
	"strings"

	"github.com/riverfjs/arabify-go/internal/types"
)

const (
	// MarkerOpen 强制阿拉伯文的起始标记
	MarkerOpen = `[lang="ar"]`
	// MarkerClose 强制阿拉伯文的结束标记
	MarkerClose = `[/lang="ar"]`

	// forcedTag 在 Markdown 预处理中代替标记，goldmark 会把它解析为 inline HTML
	forcedTag = "ar-forced"
)

// Piece is a stretch of input either inside a matched marker pair (Forced)
// or outside of one.
type Piece struct {
	Text   string
	Forced bool
}

// SplitMarkers 按 [lang="ar"]...[/lang="ar"] 切分文本
//
// 每个起始标记与其后最近的结束标记配对。未闭合的起始标记按 policy 处理：
// MarkerLiteral 保留为普通文本，MarkerSwallow 把剩余内容全部视为强制阿拉伯文。
// 孤立的结束标记始终是普通文本。内容为空的标记对不产生 Piece。
func SplitMarkers(text string, policy types.MarkerPolicy) []Piece {
	pieces := make([]Piece, 0, 1)
	rest := text
	for {
		start := strings.Index(rest, MarkerOpen)
		if start < 0 {
			break
		}
		body := rest[start+len(MarkerOpen):]
		end := strings.Index(body, MarkerClose)
		if end < 0 {
			if policy == types.MarkerSwallow {
				pieces = appendPiece(pieces, rest[:start], false)
				return appendPiece(pieces, body, true)
			}
			break
		}
		pieces = appendPiece(pieces, rest[:start], false)
		pieces = appendPiece(pieces, body[:end], true)
		rest = body[end+len(MarkerClose):]
	}
	return appendPiece(pieces, rest, false)
}

func appendPiece(pieces []Piece, text string, forced bool) []Piece {
	if text == "" {
		return pieces
	}
	// 相邻的普通文本合并
	if !forced && len(pieces) > 0 && !pieces[len(pieces)-1].Forced {
		pieces[len(pieces)-1].Text += text
		return pieces
	}
	return append(pieces, Piece{Text: text, Forced: forced})
}

// HasUnmatchedMarker reports whether text contains a start marker with no
// closing marker after it.
func HasUnmatchedMarker(text string) bool {
	rest := text
	for {
		start := strings.Index(rest, MarkerOpen)
		if start < 0 {
			return false
		}
		body := rest[start+len(MarkerOpen):]
		end := strings.Index(body, MarkerClose)
		if end < 0 {
			return true
		}
		rest = body[end+len(MarkerClose):]
	}
}

// StripMarkers 去掉配对标记，只保留内容
func StripMarkers(text string, policy types.MarkerPolicy) string {
	var result strings.Builder
	for _, p := range SplitMarkers(text, policy) {
		result.WriteString(p.Text)
	}
	return result.String()
}

// PreprocessMarkers 将配对标记替换为 <ar-forced>...</ar-forced>
//
// goldmark 会把 "[" 当作链接起点拆开文本节点，所以在解析前先换成 inline HTML，
// 由 walker 在遇到该标签时切换到强制模式。
func PreprocessMarkers(markdown string, policy types.MarkerPolicy) string {
	var result strings.Builder
	for _, p := range SplitMarkers(markdown, policy) {
		if p.Forced {
			result.WriteString("<" + forcedTag + ">")
			result.WriteString(p.Text)
			result.WriteString("</" + forcedTag + ">")
			continue
		}
		result.WriteString(p.Text)
	}
	return result.String()
}

var (
	// 代码里的标签还原成原始标记
	literalMarkers = strings.NewReplacer(
		"<"+forcedTag+">", MarkerOpen,
		"</"+forcedTag+">", MarkerClose,
	)
	// 独占一行的标签连同相邻换行一起还原
	blockMarkers = strings.NewReplacer(
		"<"+forcedTag+">\n", MarkerOpen,
		"\n</"+forcedTag+">", MarkerClose,
		"<"+forcedTag+">", MarkerOpen,
		"</"+forcedTag+">", MarkerClose,
	)
)

// restoreMarkers undoes PreprocessMarkers for source text goldmark did not
// parse as inline HTML (code and HTML blocks).
func restoreMarkers(text string) string {
	return literalMarkers.Replace(text)
}
