package pdfdoc

// Align is the horizontal alignment of text inside its box.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font styles accepted by Canvas.SetFont.
const (
	Regular = ""
	Bold    = "B"
)

// Shape styles: fill only, stroke only, or both.
const (
	Fill       = "F"
	Stroke     = "D"
	FillStroke = "FD"
)

// Canvas is the set of drawing primitives sections are written against.
// Coordinates are in millimetres from the top-left corner of the page.
type Canvas interface {
	PageSize() (w, h float64)

	SetFillColor(c Color)
	SetDrawColor(c Color)
	SetTextColor(c Color)
	SetLineWidth(w float64)
	SetAlpha(a float64)
	SetFont(style string, size float64)

	Rect(x, y, w, h float64, style string)
	RoundedRect(x, y, w, h, r float64, style string)
	Circle(x, y, r float64, style string)
	Line(x1, y1, x2, y2 float64)

	// Text draws txt on baseline y. For AlignCenter x is the centre of the
	// text and for AlignRight its right edge.
	Text(x, y float64, txt string, align Align)

	// Cell draws txt inside a w×h box, optionally filled with the fill colour.
	Cell(x, y, w, h float64, txt string, align Align, fill bool)
}
