package pdfdoc

// Column describes one DataTable column.
type Column struct {
	Header string
	Width  float64
	Align  Align
	Bold   bool
}

// CellStyle overrides the default look of a single body cell.
type CellStyle struct {
	Color Color
	Bold  bool
}

// CellStyleFunc is consulted for every body cell; returning false keeps the
// column defaults.
type CellStyleFunc func(row, col int, value string) (CellStyle, bool)

// DataTable renders rows under a striped header. Row height is fixed: long
// values are not wrapped and may run into the neighbouring cell.
type DataTable struct {
	Title        string
	Columns      []Column
	Rows         [][]string
	RowHeight    float64
	HeaderHeight float64
	CellStyle    CellStyleFunc
}

func (t DataTable) rowHeight() float64 {
	if t.RowHeight > 0 {
		return t.RowHeight
	}
	return DefaultTableRowH
}

func (t DataTable) headerHeight() float64 {
	if t.HeaderHeight > 0 {
		return t.HeaderHeight
	}
	return DefaultHeaderRowH
}

func (t DataTable) Height() float64 {
	h := t.headerHeight() + float64(len(t.Rows))*t.rowHeight() + sectionGap
	if t.Title != "" {
		h += headingHeight
	}
	return h
}

func (t DataTable) Draw(c Canvas, cur Cursor) Cursor {
	p := cur.Page
	y := cur.Y
	if t.Title != "" {
		drawHeading(c, p, y, t.Title)
		y += headingHeight
	}

	hh := t.headerHeight()
	c.SetFillColor(Primary)
	c.SetTextColor(White)
	c.SetFont(Bold, 9)
	x := p.Margin
	for _, col := range t.Columns {
		c.Cell(x, y, col.Width, hh, col.Header, AlignCenter, true)
		x += col.Width
	}
	y += hh

	rh := t.rowHeight()
	for r, row := range t.Rows {
		c.SetFillColor(Stripe)
		striped := r%2 == 1
		x = p.Margin
		for i, col := range t.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}

			color, bold := Ink, col.Bold
			if t.CellStyle != nil {
				if s, ok := t.CellStyle(r, i, value); ok {
					color, bold = s.Color, s.Bold
				}
			}
			style := Regular
			if bold {
				style = Bold
			}

			c.SetTextColor(color)
			c.SetFont(style, 8.5)
			c.Cell(x, y, col.Width, rh, value, col.Align, striped)
			x += col.Width
		}
		y += rh
	}

	return cur.Advance(t.Height())
}
