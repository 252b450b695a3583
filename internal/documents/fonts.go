package documents

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Fonts selects the typeface. Without a Regular path the built-in Helvetica
// is used and text is limited to Windows-1252; see encode.
type Fonts struct {
	Regular string // UTF-8 TrueType font file
	Bold    string // optional; Regular is reused when empty
}

const (
	coreFamily = "Helvetica"
	ttfFamily  = "PortalSans"
)

// Unicode reports whether a TrueType font is configured.
func (f Fonts) Unicode() bool {
	return f.Regular != ""
}

func (f Fonts) validate() error {
	for _, p := range []string{f.Regular, f.Bold} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("font %s: %w", p, err)
		}
	}
	if f.Bold != "" && f.Regular == "" {
		return fmt.Errorf("bold font %s set without a regular font", f.Bold)
	}
	return nil
}

func (f Fonts) family() string {
	if f.Unicode() {
		return ttfFamily
	}
	return coreFamily
}

func (f Fonts) register(pdf *fpdf.Fpdf) {
	if !f.Unicode() {
		return
	}
	bold := f.Bold
	if bold == "" {
		bold = f.Regular
	}
	pdf.AddUTF8Font(ttfFamily, "", f.Regular)
	pdf.AddUTF8Font(ttfFamily, "B", bold)
}

func style(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}

// coreSubstitutes replaces runes the built-in fonts cannot show.
var coreSubstitutes = map[rune]string{
	'\u20b9': "Rs.", // rupee sign
	'\u2009': " ",   // thin space
	'\u202f': " ",   // narrow no-break space
}

// encode turns logical text into what the font expects: NFC UTF-8 for a
// TrueType font, Windows-1252 bytes for the built-in one.
func (f Fonts) encode(s string) string {
	s = norm.NFC.String(s)
	if f.Unicode() {
		return s
	}
	return toWindows1252(s)
}

func toWindows1252(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sub, ok := coreSubstitutes[r]; ok {
			b.WriteString(sub)
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

// Measurer reports the drawn width of text in millimetres.
type Measurer interface {
	Width(s string, f Font) float64
}

// pdfMeasurer measures with the same fpdf font metrics Draw uses.
type pdfMeasurer struct {
	mu    sync.Mutex
	pdf   *fpdf.Fpdf
	fonts Fonts
}

func newPDFMeasurer(fonts Fonts) (*pdfMeasurer, error) {
	pdf := fpdf.New(string(Portrait), "mm", "A4", "")
	fonts.register(pdf)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	return &pdfMeasurer{pdf: pdf, fonts: fonts}, nil
}

func (m *pdfMeasurer) Width(s string, f Font) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(m.fonts.family(), style(f.Bold), f.Size)
	return m.pdf.GetStringWidth(m.fonts.encode(s))
}
