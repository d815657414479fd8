package converter

import (
	"github.com/riverfjs/arabify-go/internal/buffer"
	"github.com/riverfjs/arabify-go/internal/types"
	"github.com/riverfjs/arabify-go/internal/util"
)

// --- CharacterScan ---

type characterScan struct{}

func (characterScan) scan(pieces []Piece) []types.Fragment {
	rb := buffer.New()
	for _, p := range pieces {
		if p.Forced {
			rb.Emit(types.Fragment{Kind: types.FragmentForced, Text: p.Text})
			continue
		}
		runes := []rune(p.Text)
		for i, r := range runes {
			if arabicAt(runes, i) {
				rb.WriteArabic(string(r))
			} else {
				rb.WritePlain(string(r))
			}
		}
	}
	return rb.Fragments()
}

// arabicAt 判断 runes[i] 是否属于阿拉伯文 run
//
// 除了阿拉伯文字符本身，紧贴阿拉伯文的括号也算在内：
// "(" 后面是阿拉伯文，或 ")" 前面是阿拉伯文。
func arabicAt(runes []rune, i int) bool {
	r := runes[i]
	if util.IsArabic(r) {
		return true
	}
	switch r {
	case '(':
		return i+1 < len(runes) && util.IsArabic(runes[i+1])
	case ')':
		return i > 0 && util.IsArabic(runes[i-1])
	}
	return false
}

// --- Tokenizer ---

type tokenKind int

const (
	tokenSpace tokenKind = iota
	tokenWord
	tokenTerminator
	tokenColon
	tokenForced
)

type token struct {
	kind tokenKind
	text string
}

// arabic reports whether the token joins an Arabic run. Forced tokens count
// without looking at their content.
func (t token) arabic() bool {
	switch t.kind {
	case tokenForced:
		return true
	case tokenWord:
		return util.ContainsArabic(t.text)
	}
	return false
}

func isTerminator(r rune) bool {
	return r == '.' || r == ';' || r == '؛'
}

// tokenize 把文本切成空白和非空白 token
//
// punctuation 为 true 时，句末符号（. ; ؛）和冒号单独成 token，
// 连续的句末符号合并为一个 token。
func tokenize(text string, punctuation bool) []token {
	tokens := make([]token, 0)
	kindOf := func(r rune) tokenKind {
		switch {
		case util.IsSpace(r):
			return tokenSpace
		case punctuation && isTerminator(r):
			return tokenTerminator
		case punctuation && r == ':':
			return tokenColon
		default:
			return tokenWord
		}
	}

	start := 0
	var current tokenKind
	for i, r := range text {
		kind := kindOf(r)
		if i == 0 {
			current = kind
			continue
		}
		// 冒号每个单独成 token
		if kind != current || kind == tokenColon {
			tokens = append(tokens, token{kind: current, text: text[start:i]})
			start = i
			current = kind
		}
	}
	if start < len(text) {
		tokens = append(tokens, token{kind: current, text: text[start:]})
	}
	return tokens
}

// --- TokenScan ---

type tokenScan struct{}

func (tokenScan) scan(pieces []Piece) []types.Fragment {
	rb := buffer.New()
	for _, p := range pieces {
		if p.Forced {
			rb.Emit(types.Fragment{Kind: types.FragmentForced, Text: p.Text})
			continue
		}
		writeRuns(rb, tokenize(p.Text, false), false)
	}
	return rb.Fragments()
}

// writeRuns groups Arabic tokens and the whitespace between them into runs.
// Whitespace after the last Arabic token of a run stays plain. With
// colonSpacing set, a colon directly followed by an Arabic token gets a
// single space written after it.
func writeRuns(rb *buffer.RunBuffer, tokens []token, colonSpacing bool) {
	inRun := false
	pending := ""
	for i, tok := range tokens {
		switch {
		case tok.kind == tokenSpace:
			if inRun {
				pending += tok.text
			} else {
				rb.WritePlain(tok.text)
			}
		case tok.arabic():
			rb.WriteArabic(pending + tok.text)
			inRun = true
			pending = ""
		default:
			rb.WritePlain(pending + tok.text)
			inRun = false
			pending = ""
			if colonSpacing && tok.kind == tokenColon && i+1 < len(tokens) && tokens[i+1].arabic() {
				rb.WritePlain(" ")
			}
		}
	}
	rb.WritePlain(pending)
}

// --- SentenceScan ---

type sentenceScan struct{}

func (sentenceScan) scan(pieces []Piece) []types.Fragment {
	tokens := make([]token, 0)
	for _, p := range pieces {
		if p.Forced {
			tokens = append(tokens, token{kind: tokenForced, text: p.Text})
			continue
		}
		tokens = append(tokens, tokenize(p.Text, true)...)
	}

	fragments := make([]types.Fragment, 0)
	for _, sentence := range splitSentences(tokens) {
		sentence = trimSpaceTokens(sentence)
		if len(sentence) == 0 {
			continue
		}
		hasArabic := false
		for _, tok := range sentence {
			if tok.arabic() {
				hasArabic = true
				break
			}
		}
		rb := buffer.New()
		writeRuns(rb, sentence, hasArabic)
		fragments = append(fragments, types.Fragment{
			Kind:     types.FragmentParagraph,
			Children: rb.Fragments(),
		})
	}
	return fragments
}

// splitSentences 在句末符号之后切分
//
// 只有后面紧跟空白或到达结尾的句末符号才结束句子，这样 "example.com" 之类
// 不会被拆开。
func splitSentences(tokens []token) [][]token {
	sentences := make([][]token, 0)
	start := 0
	for i, tok := range tokens {
		if tok.kind != tokenTerminator {
			continue
		}
		if i+1 == len(tokens) || tokens[i+1].kind == tokenSpace {
			sentences = append(sentences, tokens[start:i+1])
			start = i + 1
		}
	}
	if start < len(tokens) {
		sentences = append(sentences, tokens[start:])
	}
	return sentences
}

func trimSpaceTokens(tokens []token) []token {
	for len(tokens) > 0 && tokens[0].kind == tokenSpace {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].kind == tokenSpace {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
