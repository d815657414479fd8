package arabify

import "github.com/riverfjs/arabify-go/internal/types"

// ContentType represents the kind of form being rendered.
type ContentType = types.ContentType

const (
	ContentTypeDoa              = types.ContentTypeDoa
	ContentTypeFatwa            = types.ContentTypeFatwa
	ContentTypeAdditional       = types.ContentTypeAdditional
	ContentTypeArabicMultiLines = types.ContentTypeArabicMultiLines
	ContentTypeSpanReducer      = types.ContentTypeSpanReducer
)

// ParseContentType maps a form name such as "doa" or "span-reducer" to its
// ContentType.
func ParseContentType(name string) (ContentType, bool) {
	return types.ParseContentType(name)
}

// Form is a form record ready to be rendered.
type Form interface {
	GetContentType() ContentType
}

// 表单类型别名
type DoaForm = types.DoaForm
type FatwaForm = types.FatwaForm
type AdditionalForm = types.AdditionalForm
type ArabicMultiLinesForm = types.ArabicMultiLinesForm
type SpanReducerForm = types.SpanReducerForm

// NewForm returns an empty form record for ct.
func NewForm(ct ContentType) Form {
	switch ct {
	case ContentTypeFatwa:
		return &FatwaForm{}
	case ContentTypeAdditional:
		return &AdditionalForm{}
	case ContentTypeArabicMultiLines:
		return &ArabicMultiLinesForm{}
	case ContentTypeSpanReducer:
		return &SpanReducerForm{}
	default:
		return &DoaForm{}
	}
}

// DefaultFileName returns the download file name for ct.
func DefaultFileName(ct ContentType) string {
	return ct.String() + "-content.html"
}
