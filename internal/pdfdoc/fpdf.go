package pdfdoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	coreFamily = "Helvetica"
	utf8Family = "DejaVu"

	utf8Regular = "DejaVuSans.ttf"
	utf8Bold    = "DejaVuSans-Bold.ttf"
)

// Options configures a new Document.
type Options struct {
	// FontDir may hold DejaVuSans.ttf and DejaVuSans-Bold.ttf. Without them
	// the core Helvetica font is used and the rupee sign prints as "Rs.".
	FontDir   string
	Title     string
	Author    string
	CreatedAt time.Time
}

// Document is a single-page gofpdf document.
type Document struct {
	pdf    *gofpdf.Fpdf
	canvas *fpdfCanvas
	page   Page
}

// NewDocument creates an A4 portrait document with one empty page.
func NewDocument(opts Options) *Document {
	pdf := gofpdf.New("P", "mm", "A4", opts.FontDir)
	pdf.SetMargins(A4.Margin, A4.Margin, A4.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("temple-donation-docs", false)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	if !opts.CreatedAt.IsZero() {
		pdf.SetCreationDate(opts.CreatedAt)
	}

	cv := &fpdfCanvas{pdf: pdf, family: coreFamily}
	if hasUTF8Fonts(opts.FontDir) {
		pdf.AddUTF8Font(utf8Family, "", utf8Regular)
		pdf.AddUTF8Font(utf8Family, "B", utf8Bold)
		cv.family = utf8Family
		cv.tr = func(s string) string { return s }
	} else {
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		cv.tr = func(s string) string {
			return tr(strings.ReplaceAll(s, "₹", "Rs."))
		}
	}

	pdf.AddPage()
	cv.SetFont(Regular, 10)
	return &Document{pdf: pdf, canvas: cv, page: A4}
}

func hasUTF8Fonts(dir string) bool {
	if dir == "" {
		return false
	}
	for _, name := range []string{utf8Regular, utf8Bold} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

// Canvas exposes the drawing surface of the document's page.
func (d *Document) Canvas() Canvas { return d.canvas }

// Page returns the page geometry.
func (d *Document) Page() Page { return d.page }

// Draw renders sections on the page and returns the final cursor.
func (d *Document) Draw(sections []Section) Cursor {
	return Render(d.canvas, d.page, sections)
}

// Bytes serialises the document. Any error recorded by gofpdf while drawing
// is returned here.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

type fpdfCanvas struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

func (c *fpdfCanvas) PageSize() (float64, float64) { return c.pdf.GetPageSize() }

func (c *fpdfCanvas) SetFillColor(col Color) { c.pdf.SetFillColor(col.R, col.G, col.B) }
func (c *fpdfCanvas) SetDrawColor(col Color) { c.pdf.SetDrawColor(col.R, col.G, col.B) }
func (c *fpdfCanvas) SetTextColor(col Color) { c.pdf.SetTextColor(col.R, col.G, col.B) }
func (c *fpdfCanvas) SetLineWidth(w float64) { c.pdf.SetLineWidth(w) }
func (c *fpdfCanvas) SetAlpha(a float64)     { c.pdf.SetAlpha(a, "Normal") }

func (c *fpdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont(c.family, style, size)
}

func (c *fpdfCanvas) Rect(x, y, w, h float64, style string) {
	c.pdf.Rect(x, y, w, h, style)
}

func (c *fpdfCanvas) RoundedRect(x, y, w, h, r float64, style string) {
	c.pdf.RoundedRect(x, y, w, h, r, "1234", style)
}

func (c *fpdfCanvas) Circle(x, y, r float64, style string) {
	c.pdf.Circle(x, y, r, style)
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *fpdfCanvas) Text(x, y float64, txt string, align Align) {
	s := c.tr(txt)
	switch align {
	case AlignCenter:
		x -= c.pdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= c.pdf.GetStringWidth(s)
	}
	c.pdf.Text(x, y, s)
}

func (c *fpdfCanvas) Cell(x, y, w, h float64, txt string, align Align, fill bool) {
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, c.tr(txt), "", 0, string(align)+"M", fill, 0, "")
}
