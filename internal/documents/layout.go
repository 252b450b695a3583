// Package documents lays out and draws the foundation's two printable
// documents: the landscape certificate and the portrait payment receipt.
//
// Rendering happens in two steps. A template function turns a record into a
// Layout, an ordered list of positioned elements in millimetres on an A4
// page, each tagged with a Role. Draw then turns a Layout into PDF bytes.
// Layouts carry logical text (for example "₹ 2500"); glyph substitution for
// the built-in PDF fonts happens only while measuring and drawing.
package documents

import "strings"

type Orientation string

const (
	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

// A4 page sizes in millimetres.
const (
	a4Short = 210.0
	a4Long  = 297.0
)

type Kind int

const (
	KindText Kind = iota
	KindRect
	KindLine
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

type RGB struct {
	R, G, B uint8
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
	gray  = RGB{128, 128, 128}
)

type Font struct {
	Size float64 // points
	Bold bool
}

// Role names what an element is, independent of where it sits.
type Role string

const (
	RoleBorderOuter      Role = "border.outer"
	RoleBorderInner      Role = "border.inner"
	RoleTitle            Role = "title"
	RoleSubtitle         Role = "subtitle"
	RoleDivider          Role = "divider"
	RoleCertifyPhrase    Role = "certify.phrase"
	RoleRecipient        Role = "recipient"
	RoleAward            Role = "award"
	RoleNumber           Role = "number"
	RoleIssueDate        Role = "issue.date"
	RoleOrgName          Role = "org.name"
	RoleOrgAddress       Role = "org.address"
	RoleContact          Role = "contact"
	RoleSignatureLine    Role = "signature.line"
	RoleSignatureCaption Role = "signature.caption"
	RoleDisclaimer       Role = "disclaimer"

	RoleHeaderBand   Role = "header.band"
	RoleDetailsBox   Role = "details.box"
	RoleNumberStrip  Role = "number.strip"
	RoleLabel        Role = "label"
	RoleType         Role = "value.type"
	RoleAmount       Role = "value.amount"
	RoleDate         Role = "value.date"
	RoleDescription  Role = "value.description"
	RoleTaxBanner    Role = "tax.banner"
	RoleTaxEligible  Role = "tax.eligible"
	RoleTaxRetain    Role = "tax.retain"
	RoleSupport      Role = "support"
	RoleVerification Role = "verification"
)

// Element is one drawing instruction.
//
// Text elements anchor their first baseline at (X, Y); with AlignCenter, X
// is the horizontal centre. Further Lines follow Leading millimetres apart.
// Rect elements use X, Y, W, H and are filled when Fill is set, stroked
// otherwise. Line elements run from (X, Y) to (X2, Y2).
type Element struct {
	Kind Kind
	Role Role

	X, Y   float64
	W, H   float64
	X2, Y2 float64

	Lines   []string
	Font    Font
	Align   Align
	Leading float64

	Color     RGB
	Fill      *RGB
	LineWidth float64
}

// Text returns the element's lines joined by newlines.
func (e Element) Text() string {
	return strings.Join(e.Lines, "\n")
}

// Layout is a single A4 page.
type Layout struct {
	Orientation Orientation
	Width       float64
	Height      float64
	Elements    []Element
}

func newLayout(o Orientation) *Layout {
	l := &Layout{Orientation: o, Width: a4Short, Height: a4Long}
	if o == Landscape {
		l.Width, l.Height = a4Long, a4Short
	}
	return l
}

// Find returns the first element with role r.
func (l Layout) Find(r Role) (Element, bool) {
	for _, e := range l.Elements {
		if e.Role == r {
			return e, true
		}
	}
	return Element{}, false
}

// FindAll returns every element with role r in drawing order.
func (l Layout) FindAll(r Role) []Element {
	var out []Element
	for _, e := range l.Elements {
		if e.Role == r {
			out = append(out, e)
		}
	}
	return out
}

func (l *Layout) text(r Role, x, y float64, f Font, a Align, c RGB, lines ...string) {
	l.Elements = append(l.Elements, Element{
		Kind: KindText, Role: r, X: x, Y: y, Font: f, Align: a, Color: c, Lines: lines,
		Leading: leading(f.Size),
	})
}

func (l *Layout) centered(r Role, x, y float64, f Font, c RGB, s string) {
	l.text(r, x, y, f, AlignCenter, c, s)
}

func (l *Layout) rect(r Role, x, y, w, h, lw float64) {
	l.Elements = append(l.Elements, Element{Kind: KindRect, Role: r, X: x, Y: y, W: w, H: h, LineWidth: lw, Color: black})
}

func (l *Layout) filled(r Role, x, y, w, h float64, fill RGB) {
	l.Elements = append(l.Elements, Element{Kind: KindRect, Role: r, X: x, Y: y, W: w, H: h, Fill: &fill})
}

func (l *Layout) line(r Role, x1, y1, x2, y2, lw float64) {
	l.Elements = append(l.Elements, Element{Kind: KindLine, Role: r, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: lw, Color: black})
}

// leading is the baseline distance for a font size: 1.15 line height,
// converted from points to millimetres.
func leading(size float64) float64 {
	return size * 1.15 * 25.4 / 72
}
