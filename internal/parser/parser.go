package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/arabify-go/internal/converter"
	"github.com/riverfjs/arabify-go/internal/types"
)

// StandardOptions goldmark 扩展配置
//
// 表单字段只需要段落级 Markdown，不启用表格和脚注。
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Linkify,
	),
}

// Parse 解析 Markdown 并遍历 AST，每个顶层块返回一行 HTML
func Parse(markdown string, config *types.RenderConfig) []string {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	preprocessed := converter.PreprocessMarkers(markdown, config.UnmatchedMarker)

	source := []byte(preprocessed)
	node := ParseAST(source)

	walker := converter.NewEventWalker(source, config)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	return walker.Result()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	reader := text.NewReader(source)
	return md.Parser().Parse(reader)
}
