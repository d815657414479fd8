package converter

import (
	"strings"
	"testing"

	"github.com/riverfjs/arabify-go/internal/types"
)

const span = `<span class="text-2xl font-arabic" dir="rtl" lang="ar">`

func segmentWith(strategy types.Strategy, text string) string {
	config := types.DefaultRenderConfig()
	config.Strategy = strategy
	return NewSegmenter(config).Segment(text)
}

var allStrategies = []types.Strategy{types.CharacterScan, types.TokenScan, types.SentenceScan}

func TestCharacterScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"escape only", "a & b", "a &amp; b"},
		{"no arabic", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"quotes", `"it's"`, "&quot;it&#039;s&quot;"},
		{"single run", "hello مرحبا world", "hello " + span + "مرحبا</span> world"},
		{"parentheses", "(مرحبا)", span + "(مرحبا)</span>"},
		{"parentheses inline", "lihat (فلان) ya", "lihat " + span + "(فلان)</span> ya"},
		{"double open paren stays plain", "((م", "(" + span + "(م</span>"},
		{"disjoint runs", "A مرحبا B سلام C", "A " + span + "مرحبا</span> B " + span + "سلام</span> C"},
		// 字符级扫描不吸收空格
		{"space splits runs", "بسم الله", span + "بسم</span> " + span + "الله</span>"},
		{"escape inside run", "م<ا", span + "م</span>&lt;" + span + "ا</span>"},
		{"empty", "", ""},
		{"whitespace only", "  ", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentWith(types.CharacterScan, tt.text); got != tt.want {
				t.Errorf("Segment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"escape only", "a & b", "a &amp; b"},
		{"single run", "hello مرحبا world", "hello " + span + "مرحبا</span> world"},
		{"space absorbed", "بسم الله الرحمن", span + "بسم الله الرحمن</span>"},
		{"trailing space plain", "بسم الله  end", span + "بسم الله</span>  end"},
		{"whole token wrapped", "(مرحبا),", span + "(مرحبا),</span>"},
		{"mixed token", "abcم", span + "abcم</span>"},
		{"disjoint runs", "A مرحبا B سلام C", "A " + span + "مرحبا</span> B " + span + "سلام</span> C"},
		{"escape inside run", "م & ا", span + "م &amp; ا</span>"},
		{"newline absorbed", "بسم\nالله", span + "بسم\nالله</span>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentWith(types.TokenScan, tt.text); got != tt.want {
				t.Errorf("Segment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentenceScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"two sentences",
			"مرحبا. Hello.",
			`<p class="mt-0">` + span + `مرحبا</span>.</p><p class="mt-0">Hello.</p>`,
		},
		{
			"semicolons",
			"أ؛ ب; c",
			`<p class="mt-0">` + span + `أ</span>؛</p><p class="mt-0">` + span + `ب</span>;</p><p class="mt-0">c</p>`,
		},
		{
			"colon spacing",
			"قال:الله",
			`<p class="mt-0">` + span + `قال</span>: ` + span + `الله</span></p>`,
		},
		{
			"colon with space kept",
			"قال: الله",
			`<p class="mt-0">` + span + `قال</span>: ` + span + `الله</span></p>`,
		},
		{
			"colon without arabic",
			"jam 10:30.",
			`<p class="mt-0">jam 10:30.</p>`,
		},
		{
			"dot inside word does not split",
			"lihat example.com ya.",
			`<p class="mt-0">lihat example.com ya.</p>`,
		},
		{
			"ellipsis stays with sentence",
			"tunggu... ya",
			`<p class="mt-0">tunggu...</p><p class="mt-0">ya</p>`,
		},
		{"whitespace only", "  \n ", ""},
		{"escape", "a & b", `<p class="mt-0">a &amp; b</p>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentWith(types.SentenceScan, tt.text); got != tt.want {
				t.Errorf("Segment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestForcedMarker_AllStrategies(t *testing.T) {
	text := `plain [lang="ar"]text[/lang="ar"] plain`
	for _, s := range allStrategies {
		t.Run(s.String(), func(t *testing.T) {
			got := segmentWith(s, text)
			if !strings.Contains(got, span+"text</span>") {
				t.Errorf("Segment(%q) = %q, should wrap exactly \"text\"", text, got)
			}
			if strings.Contains(got, "lang=&quot;") {
				t.Errorf("Segment(%q) = %q, marker should not be emitted", text, got)
			}
		})
	}
}

func TestForcedMarker_NoDetection(t *testing.T) {
	got := segmentWith(types.CharacterScan, `[lang="ar"]a <b> م[/lang="ar"]`)
	want := span + "a &lt;b&gt; م</span>"
	if got != want {
		t.Errorf("Segment() = %q, want %q", got, want)
	}
}

func TestForcedMarker_Unmatched(t *testing.T) {
	text := `x [lang="ar"]abc`
	if got, want := segmentWith(types.CharacterScan, text), "x [lang=&quot;ar&quot;]abc"; got != want {
		t.Errorf("literal policy: Segment(%q) = %q, want %q", text, got, want)
	}

	config := types.DefaultRenderConfig()
	config.UnmatchedMarker = types.MarkerSwallow
	if got, want := NewSegmenter(config).Segment(text), "x "+span+"abc</span>"; got != want {
		t.Errorf("swallow policy: Segment(%q) = %q, want %q", text, got, want)
	}
}

func TestSentenceScan_ForcedJoinsRun(t *testing.T) {
	got := segmentWith(types.SentenceScan, `مرحبا [lang="ar"]x[/lang="ar"].`)
	want := `<p class="mt-0">` + span + `مرحبا x</span>.</p>`
	if got != want {
		t.Errorf("Segment() = %q, want %q", got, want)
	}
}

func TestSegmenter_Fragments(t *testing.T) {
	frags := NewSegmenter(nil).Fragments(`a [lang="ar"]b[/lang="ar"] مرحبا`)
	kinds := []types.FragmentKind{types.FragmentPlain, types.FragmentForced, types.FragmentPlain, types.FragmentArabic}
	if len(frags) != len(kinds) {
		t.Fatalf("Fragments() len = %d, want %d: %+v", len(frags), len(kinds), frags)
	}
	for i, k := range kinds {
		if frags[i].Kind != k {
			t.Errorf("Fragments()[%d].Kind = %v, want %v", i, frags[i].Kind, k)
		}
	}
	if frags[3].Text != "مرحبا" {
		t.Errorf("Fragments()[3].Text = %q, want raw text", frags[3].Text)
	}
}

func TestSegment_NotIdempotent(t *testing.T) {
	s := NewSegmenter(nil)
	once := s.Segment("a & b")
	if once != "a &amp; b" {
		t.Fatalf("Segment() = %q", once)
	}
	if twice := s.Segment(once); twice != "a &amp;amp; b" {
		t.Errorf("Segment(Segment()) = %q, want double escape", twice)
	}
}

func TestRenderFragments_CustomClasses(t *testing.T) {
	config := types.DefaultRenderConfig()
	config.ArabicClass = "font-naskh"
	config.ParagraphClass = ""
	config.Strategy = types.SentenceScan
	got := NewSegmenter(config).Segment("م.")
	want := `<p><span class="font-naskh" dir="rtl" lang="ar">م</span>.</p>`
	if got != want {
		t.Errorf("Segment() = %q, want %q", got, want)
	}
}
