// Package arabify 将表单文本转换为可嵌入 CMS 的 HTML 片段
//
// 输入是混合拉丁文和阿拉伯文的文本。阿拉伯文 run 被包裹在
// dir="rtl" lang="ar" 的 span 中，其余文本做 HTML 转义。
// [lang="ar"]...[/lang="ar"] 标记强制其内容按阿拉伯文处理。
//
// 核心功能：
//   - 三种边界策略：CharacterScan、TokenScan、SentenceScan
//   - doa / fatwa / additional / arabic-multi-lines / span-reducer 模板
//   - 可选的 Markdown 字段（goldmark）
//
// 主要 API：
//   - ProcessText(): 单个字符串 → HTML 片段
//   - Render(): 表单记录 → 完整 HTML
//
// 示例：
//
//	html := arabify.ProcessText("hello مرحبا world", nil)
//
//	page, err := arabify.Render(arabify.DoaForm{Title: "Doa"}, arabify.WithStrategy(arabify.TokenScan))
package arabify

import (
	"github.com/riverfjs/arabify-go/internal/converter"
	"github.com/riverfjs/arabify-go/internal/types"
	"github.com/riverfjs/arabify-go/internal/util"
)

// Fragment is one node of a segmented text; see Fragments.
type Fragment = types.Fragment
type FragmentKind = types.FragmentKind

const (
	FragmentPlain     = types.FragmentPlain
	FragmentArabic    = types.FragmentArabic
	FragmentForced    = types.FragmentForced
	FragmentParagraph = types.FragmentParagraph
)

// TextSegmenter turns raw text into an HTML fragment.
type TextSegmenter interface {
	Segment(text string) string
	Fragments(text string) []Fragment
}

// Segmenter is the TextSegmenter implementation selected by RenderConfig.
type Segmenter = converter.Segmenter

var _ TextSegmenter = (*Segmenter)(nil)

// NewSegmenter creates a Segmenter from options.
func NewSegmenter(opts ...Option) *Segmenter {
	return converter.NewSegmenter(applyOptions(opts...).Config)
}

// ProcessText 将文本转换为 HTML 片段
//
// 参数:
//   - text: 原始（未转义）文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: HTML 片段；不可重复调用，否则会二次转义
func ProcessText(text string, config *RenderConfig) string {
	if config == nil {
		config = DefaultConfig()
	}
	return converter.NewSegmenter(config).Segment(text)
}

// Fragments 返回 ProcessText 使用的片段序列，Text 为原始文本
func Fragments(text string, config *RenderConfig) []Fragment {
	if config == nil {
		config = DefaultConfig()
	}
	return converter.NewSegmenter(config).Fragments(text)
}

// EscapeHTML replaces &, <, >, " and ' with their entities.
func EscapeHTML(text string) string {
	return util.EscapeHTML(text)
}

// IsArabicText reports whether text contains any Arabic code point.
func IsArabicText(text string) bool {
	return util.ContainsArabic(text)
}
