package documents

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Draw turns l into a single-page PDF.
func (r *Renderer) Draw(l Layout, title string) ([]byte, error) {
	pdf := fpdf.New(string(l.Orientation), "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCompression(r.compress)
	pdf.SetCreationDate(r.now())
	pdf.SetCreator("nvpwelfare portal", true)
	pdf.SetAuthor(r.org.Name, true)
	pdf.SetTitle(title, true)
	r.fonts.register(pdf)
	pdf.AddPage()

	for _, e := range l.Elements {
		switch e.Kind {
		case KindRect:
			if e.Fill != nil {
				pdf.SetFillColor(int(e.Fill.R), int(e.Fill.G), int(e.Fill.B))
				pdf.Rect(e.X, e.Y, e.W, e.H, "F")
				continue
			}
			pdf.SetLineWidth(e.LineWidth)
			pdf.SetDrawColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
			pdf.Rect(e.X, e.Y, e.W, e.H, "D")
		case KindLine:
			pdf.SetLineWidth(e.LineWidth)
			pdf.SetDrawColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
			pdf.Line(e.X, e.Y, e.X2, e.Y2)
		case KindText:
			pdf.SetFont(r.fonts.family(), style(e.Font.Bold), e.Font.Size)
			pdf.SetTextColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
			for i, line := range e.Lines {
				txt := r.fonts.encode(line)
				x := e.X
				if e.Align == AlignCenter {
					x -= pdf.GetStringWidth(txt) / 2
				}
				pdf.Text(x, e.Y+float64(i)*e.Leading, txt)
			}
		default:
			return nil, fmt.Errorf("unknown element kind %d", e.Kind)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
