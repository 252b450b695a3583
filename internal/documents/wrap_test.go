package documents

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeWidth makes every rune 1mm wide.
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  float64
		want []string
	}{
		{"fits", "short text", 20, []string{"short text"}},
		{"breaks on words", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"collapses spaces", "aaa    bbb", 20, []string{"aaa bbb"}},
		{"splits long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "xy abcdefgh", 4, []string{"xy", "abcd", "efgh"}},
		{"keeps newlines", "one\n\ntwo", 20, []string{"one", "", "two"}},
		{"empty", "", 10, []string{""}},
		{"multibyte runes", "नमस्ते दुनिया", 6, []string{"नमस्ते", "दुनिया"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.max, runeWidth))
		})
	}
}

func TestWrap_GlyphWiderThanLine(t *testing.T) {
	wide := func(s string) float64 { return 10 * runeWidth(s) }
	assert.Equal(t, []string{"a", "b"}, Wrap("ab", 5, wide))
}

// Core fonts only cover Windows-1252, so the measurer encodes each candidate
// line before asking fpdf for its width. Rupee signs and blank lines must
// survive wrapping unchanged.
func TestWrap_CoreFontMeasurer(t *testing.T) {
	m, err := newPDFMeasurer(Fonts{})
	require.NoError(t, err)
	font := Font{Size: 10}
	width := func(s string) float64 { return m.Width(s, font) }

	var lines []string
	require.NotPanics(t, func() {
		lines = Wrap("Donation of ₹ 2500 received with thanks\n\nनमस्ते", 40, width)
	})

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "नमस्ते", lines[len(lines)-1])
	assert.Equal(t, "", lines[len(lines)-2])
	assert.Contains(t, strings.Join(lines, " "), "₹ 2500")
	for _, l := range lines {
		assert.LessOrEqual(t, width(l), 40.0, l)
	}
}

func TestWrap_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 300
	properties := gopter.NewProperties(params)

	genText := gen.SliceOf(gen.AlphaString()).Map(func(words []string) string {
		return strings.Join(words, " ")
	})

	properties.Property("no line exceeds the width", prop.ForAll(
		func(text string, max float64) bool {
			for _, line := range Wrap(text, max, runeWidth) {
				if runeWidth(line) > max {
					return false
				}
			}
			return true
		},
		genText,
		gen.Float64Range(1, 120),
	))

	properties.Property("no content is dropped", prop.ForAll(
		func(text string, max float64) bool {
			lines := Wrap(text, max, runeWidth)
			return len(lines) > 0 && squash(strings.Join(lines, " ")) == squash(text)
		},
		genText,
		gen.Float64Range(1, 120),
	))

	properties.TestingRun(t)
}
