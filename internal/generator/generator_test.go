package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/arabify-go/internal/types"
)

const span = `<span class="text-2xl font-arabic" dir="rtl" lang="ar">`

func TestDoa_Full(t *testing.T) {
	g := New(nil)
	got := g.Doa(types.DoaForm{
		Title:     "Doa Pagi",
		Subtitle:  "Dibaca 3x",
		ArabicDoa: "اللهم",
		Latin:     "Allahumma",
		Meaning:   "Ya Allah",
		Kandungan: "baris satu\n\nbaris (الله)",
		Benefit:   "manfaat",
		Footnote:  "HR. Muslim\n",
	})

	want := strings.Join([]string{
		`<div class="content">`,
		`  <h1 id="title" class="text-xl font-bold text-center">Doa Pagi</h1>`,
		`  <h2 id="repeat-instruction" class="text-xs text-center">Dibaca 3x</h2>`,
		`  <p id="arabic-text" class="text-4xl font-arabic mt-3 text-right" dir="rtl" lang="ar">اللهم</p>`,
		`  <p id="latin-text" class="italic mt-2 text-sm tracking-normal"><i>Allahumma</i></p>`,
		`  <p id="translation" class="mt-2 text-sm tracking-normal">Ya Allah</p>`,
		`  <div id="explanation-section" class="mt-4">`,
		`    <h2 class="text-md font-bold mb-2 border-b border-slate-400 pb-2">Penjelasan</h2>`,
		`    <div id="explanation" class="mt-2 text-sm tracking-normal">`,
		`      <h3 class="text-md font-semibold mb-2">Kandungan</h3>`,
		`      <p class="mt-0">baris satu</p>`,
		`      <p class="mt-0">baris ` + span + `(الله)</span></p>`,
		`    </div>`,
		`    <div id="benefit" class="mt-4 text-sm tracking-normal">`,
		`      <h3 class="text-md font-semibold mb-2">Keutamaan</h3>`,
		`      <p class="mt-0">manfaat</p>`,
		`    </div>`,
		`  </div>`,
		`  <div id="hadith-reference" class="mt-4 text-sm tracking-normal">`,
		`    <h3 class="text-md font-semibold mb-2">Referensi</h3>`,
		`    <p class="mt-0">HR. Muslim</p>`,
		`  </div>`,
		`</div>`,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDoa_EmptyFieldsOmitted(t *testing.T) {
	got := New(nil).Doa(types.DoaForm{Title: "T"})
	assert.Equal(t, "<div class=\"content\">\n  <h1 id=\"title\" class=\"text-xl font-bold text-center\">T</h1>\n</div>", got)
}

func TestDoa_ArabicFieldEscapedAndStripped(t *testing.T) {
	got := New(nil).Doa(types.DoaForm{ArabicDoa: `[lang="ar"]اللهم[/lang="ar"] <`})
	assert.Contains(t, got, `lang="ar">اللهم &lt;</p>`)
	assert.NotContains(t, got, "[lang=")
}

func TestDoa_BenefitOnly(t *testing.T) {
	got := New(nil).Doa(types.DoaForm{Benefit: "x"})
	assert.Contains(t, got, `id="explanation-section"`)
	assert.NotContains(t, got, `id="explanation"`)
	assert.Contains(t, got, `id="benefit"`)
}

func TestDoa_Markdown(t *testing.T) {
	config := types.DefaultRenderConfig()
	config.Markdown = true
	got := New(config).Doa(types.DoaForm{Kandungan: "**penting** مرحبا\n\nkedua"})
	assert.Contains(t, got, `      <p class="mt-0"><strong>penting</strong> `+span+`مرحبا</span></p>`)
	assert.Contains(t, got, `      <p class="mt-0">kedua</p>`)
}

func TestFatwa(t *testing.T) {
	got := New(nil).Fatwa(types.FatwaForm{
		Question:  "Apa hukum & dalil?",
		Answer:    "  Jawab satu  \n\n قال الله ",
		Reference: "Kitab A\n",
	})
	want := strings.Join([]string{
		`<div class="content">`,
		`  <div id="question" class="mb-4">`,
		`    <h2 class="text-md font-bold mb-2">Pertanyaan:</h2>`,
		`    Apa hukum &amp; dalil?`,
		`  </div>`,
		`  <div id="answer" class="mb-4">`,
		`    <h2 class="text-md font-bold mb-2">Jawaban:</h2>`,
		`    Jawab satu`,
		`    ` + span + `قال</span> ` + span + `الله</span>`,
		`  </div>`,
		`  <div id="reference" class="mt-4 text-sm text-gray-600">`,
		`    <h3 class="text-md font-semibold mb-2">Referensi</h3>`,
		`    Kitab A`,
		`  </div>`,
		`</div>`,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFatwa_SentenceScan(t *testing.T) {
	config := types.DefaultRenderConfig()
	config.Strategy = types.SentenceScan
	got := New(config).Fatwa(types.FatwaForm{Answer: "مرحبا. Hello."})
	assert.Contains(t, got, `    <p class="mt-0">`+span+`مرحبا</span>.</p><p class="mt-0">Hello.</p>`)
}

func TestAdditional(t *testing.T) {
	g := New(nil)
	input := `<p>teks <span class="text-2xl font-arabic" dir="rtl" lang="ar">بسم الله</span> lalu</p>
	<span class="other">مخفي</span> الرحمن`
	got := g.Additional(input)
	assert.Equal(t, `<p class="mt-0">`+span+`بسم الله الرحمن</span></p>`, got)
}

func TestAdditional_NoArabic(t *testing.T) {
	g := New(nil)
	assert.Equal(t, "", g.Additional("hello <b>world</b>"))
	assert.Equal(t, "", g.Additional(""))
}

func TestAdditional_SpansBeforeStandalone(t *testing.T) {
	got := New(nil).Additional(`أ <span class="font-arabic">ب</span>`)
	assert.Equal(t, `<p class="mt-0">`+span+`ب أ</span></p>`, got)
}

func TestArabicMultiLines(t *testing.T) {
	got := New(nil).ArabicMultiLines("رواه مسلم <1>\n\nHR. Muslim & Bukhari\n")
	want := strings.Join([]string{
		`<div class="content">`,
		`  <div id="hadith-reference" class="mt-4 text-sm tracking-normal">`,
		`    <h3 class="text-md font-semibold mb-2">Referensi</h3>`,
		`    <p class="mt-0 text-right">` + span + `رواه مسلم &lt;1&gt;</span></p>`,
		`    <p class="mt-0">HR. Muslim &amp; Bukhari</p>`,
		`  </div>`,
		`</div>`,
	}, "\n")
	assert.Equal(t, want, got)
	assert.Equal(t, "", New(nil).ArabicMultiLines(""))
}

func TestSpanReducer(t *testing.T) {
	g := New(nil)
	input := span + `بسم</span> ` + span + `الله &amp;</span>`
	assert.Equal(t, span+`بسم الله &amp;</span>`, g.SpanReducer(input))
}

func TestSpanReducer_NoSpans(t *testing.T) {
	g := New(nil)
	assert.Equal(t, "<p>plain</p>", g.SpanReducer("<p>plain</p>"))
	assert.Equal(t, "", g.SpanReducer(""))
}

func TestArabicRuns(t *testing.T) {
	runs := arabicRuns("a بسم الله, b")
	require.Len(t, runs, 2)
	assert.Equal(t, "بسم", runs[0])
	assert.Equal(t, "الله", runs[1])
}

func TestGenerator_ParagraphClass(t *testing.T) {
	config := types.DefaultRenderConfig()
	config.ParagraphClass = "lead"
	g := New(config)

	doa := g.Doa(types.DoaForm{Footnote: "HR. Muslim"})
	assert.Contains(t, doa, `    <p class="lead">HR. Muslim</p>`)
	assert.NotContains(t, doa, "mt-0")

	lines := g.ArabicMultiLines("Kitab A\nقال الله")
	assert.Contains(t, lines, `    <p class="lead">Kitab A</p>`)
	assert.Contains(t, lines, `    <p class="lead text-right">`+span+`قال الله</span></p>`)

	assert.Equal(t, `<p class="lead">`+span+`بسم</span></p>`, g.Additional("بسم"))

	config.ParagraphClass = ""
	assert.Equal(t, `<p>`+span+`بسم</span></p>`, New(config).Additional("بسم"))
}
