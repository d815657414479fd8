package buffer

import (
	"strings"

	"github.com/riverfjs/arabify-go/internal/types"
)

// RunBuffer accumulates pending text for exactly one active fragment kind
// (plain or Arabic) and flushes it into an ordered fragment list whenever the
// kind changes.
type RunBuffer struct {
	parts     []string
	active    types.FragmentKind
	fragments []types.Fragment
}

// New creates a new RunBuffer with the plain buffer active.
func New() *RunBuffer {
	return &RunBuffer{
		parts:     make([]string, 0),
		active:    types.FragmentPlain,
		fragments: make([]types.Fragment, 0),
	}
}

// Write appends text to the buffer of the given kind, flushing the other
// buffer first if it is active.
func (rb *RunBuffer) Write(kind types.FragmentKind, text string) {
	if text == "" {
		return
	}
	if kind != rb.active {
		rb.Flush()
		rb.active = kind
	}
	rb.parts = append(rb.parts, text)
}

// WritePlain appends text to the plain buffer.
func (rb *RunBuffer) WritePlain(text string) {
	rb.Write(types.FragmentPlain, text)
}

// WriteArabic appends text to the Arabic buffer.
func (rb *RunBuffer) WriteArabic(text string) {
	rb.Write(types.FragmentArabic, text)
}

// Emit flushes pending text and appends a finished fragment as is.
func (rb *RunBuffer) Emit(f types.Fragment) {
	rb.Flush()
	rb.fragments = append(rb.fragments, f)
}

// Flush moves pending text into the fragment list. Empty buffers produce
// nothing.
func (rb *RunBuffer) Flush() {
	if len(rb.parts) == 0 {
		return
	}
	rb.fragments = append(rb.fragments, types.Fragment{
		Kind: rb.active,
		Text: strings.Join(rb.parts, ""),
	})
	rb.parts = rb.parts[:0]
}

// Fragments flushes and returns every fragment written so far.
func (rb *RunBuffer) Fragments() []types.Fragment {
	rb.Flush()
	return rb.fragments
}
