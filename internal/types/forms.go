package types

// ContentType 表示表单（生成器）的类型
type ContentType int

const (
	ContentTypeDoa ContentType = iota
	ContentTypeFatwa
	ContentTypeAdditional
	ContentTypeArabicMultiLines
	ContentTypeSpanReducer
)

// String returns the tab name of the content type.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeDoa:
		return "doa"
	case ContentTypeFatwa:
		return "fatwa"
	case ContentTypeAdditional:
		return "additional"
	case ContentTypeArabicMultiLines:
		return "arabic-multi-lines"
	case ContentTypeSpanReducer:
		return "span-reducer"
	default:
		return "unknown"
	}
}

// ParseContentType maps a tab name back to its ContentType.
func ParseContentType(name string) (ContentType, bool) {
	for ct := ContentTypeDoa; ct <= ContentTypeSpanReducer; ct++ {
		if ct.String() == name {
			return ct, true
		}
	}
	return ContentTypeDoa, false
}

// DoaForm holds the fields of a supplication page.
type DoaForm struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	ArabicDoa string `yaml:"arabicDoa"`
	Latin     string `yaml:"latin"`
	Meaning   string `yaml:"meaning"`
	Kandungan string `yaml:"kandungan"`
	Benefit   string `yaml:"benefit"`
	Footnote  string `yaml:"footnote"`
}

// GetContentType returns ContentTypeDoa.
func (DoaForm) GetContentType() ContentType { return ContentTypeDoa }

// FatwaForm holds the fields of a question-and-answer page.
type FatwaForm struct {
	Question  string `yaml:"question"`
	Answer    string `yaml:"answer"`
	Reference string `yaml:"reference"`
}

// GetContentType returns ContentTypeFatwa.
func (FatwaForm) GetContentType() ContentType { return ContentTypeFatwa }

// AdditionalForm is HTML or text from which only the Arabic is kept.
type AdditionalForm struct {
	Content string `yaml:"content"`
}

// GetContentType returns ContentTypeAdditional.
func (AdditionalForm) GetContentType() ContentType { return ContentTypeAdditional }

// ArabicMultiLinesForm is a reference list, one entry per line.
type ArabicMultiLinesForm struct {
	Content string `yaml:"content"`
}

// GetContentType returns ContentTypeArabicMultiLines.
func (ArabicMultiLinesForm) GetContentType() ContentType { return ContentTypeArabicMultiLines }

// SpanReducerForm is HTML whose Arabic spans are merged into one.
type SpanReducerForm struct {
	Content string `yaml:"content"`
}

// GetContentType returns ContentTypeSpanReducer.
func (SpanReducerForm) GetContentType() ContentType { return ContentTypeSpanReducer }
