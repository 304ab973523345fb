package pdfdoc

import "math"

// Page is the fixed geometry of a document page.
type Page struct {
	Width  float64
	Height float64
	Margin float64
}

// A4 is the portrait A4 page in millimetres used by every document.
var A4 = Page{Width: 210, Height: 297, Margin: 15}

// ContentWidth is the printable width between the side margins.
func (p Page) ContentWidth() float64 {
	return p.Width - 2*p.Margin
}

// Cursor is the running vertical write position. It is a value: sections
// receive one and return the advanced copy.
type Cursor struct {
	Y    float64
	Page Page
}

// NewCursor starts at the top edge of page.
func NewCursor(page Page) Cursor {
	return Cursor{Page: page}
}

// Advance moves the cursor down by delta. Nothing checks the page bottom.
func (c Cursor) Advance(delta float64) Cursor {
	c.Y += delta
	return c
}

// Floor is the position footerHeight above the bottom edge.
func (c Cursor) Floor(footerHeight float64) float64 {
	return c.Page.Height - footerHeight
}

// AnchorAbove moves the cursor to max(Y, Floor(footerHeight)).
func (c Cursor) AnchorAbove(footerHeight float64) Cursor {
	c.Y = math.Max(c.Y, c.Floor(footerHeight))
	return c
}
