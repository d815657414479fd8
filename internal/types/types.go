package types

// Strategy 选择 Arabic run 的边界策略
type Strategy int

const (
	// CharacterScan 逐字符扫描，括号吸附到相邻的阿拉伯文
	CharacterScan Strategy = iota
	// TokenScan 按空白切分 token，整词判断
	TokenScan
	// SentenceScan 按句子切分，每个句子输出一个 <p>
	SentenceScan
)

// String returns the name used in flags and YAML.
func (s Strategy) String() string {
	switch s {
	case CharacterScan:
		return "character"
	case TokenScan:
		return "token"
	case SentenceScan:
		return "sentence"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "character", "char", "":
		return CharacterScan, true
	case "token":
		return TokenScan, true
	case "sentence":
		return SentenceScan, true
	default:
		return CharacterScan, false
	}
}

// MarkerPolicy 决定未闭合的 [lang="ar"] 标记如何处理
type MarkerPolicy int

const (
	// MarkerLiteral 未闭合标记按普通文本转义输出
	MarkerLiteral MarkerPolicy = iota
	// MarkerSwallow 未闭合标记之后的全部内容强制为阿拉伯文
	MarkerSwallow
)

// String returns the name used in flags and log output.
func (p MarkerPolicy) String() string {
	switch p {
	case MarkerLiteral:
		return "literal"
	case MarkerSwallow:
		return "swallow"
	default:
		return "unknown"
	}
}

// FragmentKind 表示输出片段的类型
type FragmentKind int

const (
	FragmentPlain FragmentKind = iota
	FragmentArabic
	FragmentForced
	FragmentParagraph
)

// String returns the string representation of FragmentKind.
func (k FragmentKind) String() string {
	switch k {
	case FragmentPlain:
		return "plain"
	case FragmentArabic:
		return "arabic"
	case FragmentForced:
		return "forced"
	case FragmentParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Fragment is one node of the rendered output. Text holds raw, unescaped
// input; only paragraphs carry children.
type Fragment struct {
	Kind     FragmentKind
	Text     string
	Children []Fragment
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Strategy        Strategy
	UnmatchedMarker MarkerPolicy
	// ArabicClass 是阿拉伯文 span 的 class（字体 + 字号）
	ArabicClass string
	// ParagraphClass 用于 SentenceScan 输出的 <p>
	ParagraphClass string
	// Markdown 为 true 时多段落字段按 Markdown 解析
	Markdown bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Strategy:        CharacterScan,
		UnmatchedMarker: MarkerLiteral,
		ArabicClass:     "text-2xl font-arabic",
		ParagraphClass:  "mt-0",
		Markdown:        false,
	}
}
