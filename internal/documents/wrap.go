package documents

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks text into lines no wider than maxWidth, greedily by word.
// Newlines in text start a new line. A word wider than maxWidth on its own is
// split between runes. Nothing is dropped: every non-space rune of text
// appears, in order, in the result. At least one line is always returned.
func Wrap(text string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth, width)...)
	}
	return lines
}

func wrapParagraph(para string, maxWidth float64, width func(string) float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   string
	)
	for _, w := range words {
		if cur != "" {
			if candidate := cur + " " + w; width(candidate) <= maxWidth {
				cur = candidate
				continue
			}
			lines = append(lines, cur)
			cur = ""
		}
		for width(w) > maxWidth {
			head, tail := splitToFit(w, maxWidth, width)
			if tail == "" {
				// a single glyph wider than maxWidth
				break
			}
			lines = append(lines, head)
			w = tail
		}
		cur = w
	}
	return append(lines, cur)
}

// splitToFit returns the longest rune prefix of w that fits maxWidth, and
// the rest. The prefix holds at least one rune so the caller always advances.
func splitToFit(w string, maxWidth float64, width func(string) float64) (string, string) {
	_, cut := utf8.DecodeRuneInString(w)
	for cut < len(w) {
		_, size := utf8.DecodeRuneInString(w[cut:])
		if width(w[:cut+size]) > maxWidth {
			break
		}
		cut += size
	}
	return w[:cut], w[cut:]
}
