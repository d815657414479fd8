package arabify

import (
	"fmt"
	"os"

	"github.com/riverfjs/arabify-go/internal/converter"
	"github.com/riverfjs/arabify-go/internal/generator"
)

// Render 将表单记录渲染为 HTML
//
// 参数:
//   - form: DoaForm、FatwaForm、AdditionalForm、ArabicMultiLinesForm 或
//     SpanReducerForm（值或指针）
//   - opts: 渲染选项
//
// 返回:
//   - string: HTML；additional 没有阿拉伯文时为空
//   - error: 未知的表单类型
func Render(form Form, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	gen := generator.New(options.Config)

	for _, field := range formFields(form) {
		if converter.HasUnmatchedMarker(field) {
			Logger.Printf("%s: unmatched %s marker, policy %s", form.GetContentType(), converter.MarkerOpen, options.Config.UnmatchedMarker)
			break
		}
	}

	switch f := form.(type) {
	case DoaForm:
		return gen.Doa(f), nil
	case *DoaForm:
		return gen.Doa(*f), nil
	case FatwaForm:
		return gen.Fatwa(f), nil
	case *FatwaForm:
		return gen.Fatwa(*f), nil
	case AdditionalForm:
		return renderAdditional(gen, f.Content), nil
	case *AdditionalForm:
		return renderAdditional(gen, f.Content), nil
	case ArabicMultiLinesForm:
		return gen.ArabicMultiLines(f.Content), nil
	case *ArabicMultiLinesForm:
		return gen.ArabicMultiLines(f.Content), nil
	case SpanReducerForm:
		return gen.SpanReducer(f.Content), nil
	case *SpanReducerForm:
		return gen.SpanReducer(f.Content), nil
	default:
		return "", fmt.Errorf("render: unsupported form type %T", form)
	}
}

func renderAdditional(gen *generator.Generator, content string) string {
	html := gen.Additional(content)
	if html == "" && content != "" {
		Logger.Printf("additional: no Arabic text found")
	}
	return html
}

// RenderFile 渲染表单并写入文件（对应页面上的 "Download HTML"）
func RenderFile(path string, form Form, opts ...Option) error {
	html, err := Render(form, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// formFields lists the text fields of a form.
func formFields(form Form) []string {
	switch f := form.(type) {
	case DoaForm:
		return []string{f.Title, f.Subtitle, f.ArabicDoa, f.Latin, f.Meaning, f.Kandungan, f.Benefit, f.Footnote}
	case *DoaForm:
		return formFields(*f)
	case FatwaForm:
		return []string{f.Question, f.Answer, f.Reference}
	case *FatwaForm:
		return formFields(*f)
	case AdditionalForm:
		return []string{f.Content}
	case *AdditionalForm:
		return []string{f.Content}
	case ArabicMultiLinesForm:
		return []string{f.Content}
	case *ArabicMultiLinesForm:
		return []string{f.Content}
	case SpanReducerForm:
		return []string{f.Content}
	case *SpanReducerForm:
		return []string{f.Content}
	}
	return nil
}
