package pdfdoc

// Section is one visually distinct block of a document. Draw emits the
// block at cur and returns the cursor below it.
type Section interface {
	Draw(c Canvas, cur Cursor) Cursor
	Height() float64
}

// Render draws sections in order, threading the cursor through each one.
func Render(c Canvas, page Page, sections []Section) Cursor {
	cur := NewCursor(page)
	for _, s := range sections {
		cur = s.Draw(c, cur)
	}
	return cur
}

const (
	bannerHeight   = 40
	bannerGap      = 10
	titleBandH     = 12
	titleBandGap   = 8
	headingHeight  = 8
	sectionGap     = 6
	amountTileH    = 25
	tileGap        = 8
	thankYouH      = 18
	thankYouGap    = 4
	footerLineStep = 5

	// ThankYouFooterHeight keeps the thank-you band this far above the page bottom.
	ThankYouFooterHeight = 65

	DefaultRowHeight   = 8
	DefaultLabelWidth  = 60
	DefaultTableRowH   = 7
	DefaultHeaderRowH  = 8
	DefaultTileHeight  = 25
	DefaultTileGutter  = 6
	DefaultGridColumns = 2
)

// Banner is the coloured header band with two translucent accents.
type Banner struct {
	Title    string
	Subtitle string
	Color    Color
}

func (b Banner) Height() float64 { return bannerHeight + bannerGap }

func (b Banner) Draw(c Canvas, cur Cursor) Cursor {
	w := cur.Page.Width
	y := cur.Y

	c.SetFillColor(b.Color)
	c.Rect(0, y, w, bannerHeight, Fill)

	c.SetAlpha(0.1)
	c.SetFillColor(White)
	c.Circle(w-20, y+10, 20, Fill)
	c.Circle(20, y+35, 15, Fill)
	c.SetAlpha(1)

	c.SetTextColor(White)
	c.SetFont(Bold, 22)
	c.Text(w/2, y+18, b.Title, AlignCenter)
	c.SetFont(Regular, 11)
	c.Text(w/2, y+28, b.Subtitle, AlignCenter)

	return cur.Advance(b.Height())
}

// TitleBand is a rounded highlight box holding a centred bold title.
type TitleBand struct {
	Title string
}

func (t TitleBand) Height() float64 { return titleBandH + titleBandGap }

func (t TitleBand) Draw(c Canvas, cur Cursor) Cursor {
	p := cur.Page
	x := p.Margin + 30
	w := p.ContentWidth() - 60

	c.SetFillColor(PrimaryBg)
	c.SetDrawColor(Accent)
	c.RoundedRect(x, cur.Y, w, titleBandH, 3, FillStroke)

	c.SetTextColor(Primary)
	c.SetFont(Bold, 14)
	c.Text(p.Width/2, cur.Y+8, t.Title, AlignCenter)

	return cur.Advance(t.Height())
}

// Row is one label/value pair of a KeyValueTable. Color overrides the value
// colour when set.
type Row struct {
	Label string
	Value string
	Color *Color
}

// KeyValueTable renders rows as a two-column table with a fixed label column.
type KeyValueTable struct {
	Title      string
	Rows       []Row
	RowHeight  float64
	LabelWidth float64
}

func (t KeyValueTable) rowHeight() float64 {
	if t.RowHeight > 0 {
		return t.RowHeight
	}
	return DefaultRowHeight
}

func (t KeyValueTable) labelWidth() float64 {
	if t.LabelWidth > 0 {
		return t.LabelWidth
	}
	return DefaultLabelWidth
}

func (t KeyValueTable) Height() float64 {
	h := float64(len(t.Rows))*t.rowHeight() + sectionGap
	if t.Title != "" {
		h += headingHeight
	}
	return h
}

func (t KeyValueTable) Draw(c Canvas, cur Cursor) Cursor {
	p := cur.Page
	y := cur.Y
	if t.Title != "" {
		drawHeading(c, p, y, t.Title)
		y += headingHeight
	}

	rh, lw := t.rowHeight(), t.labelWidth()
	for i, r := range t.Rows {
		c.SetFillColor(Stripe)
		striped := i%2 == 0

		c.SetTextColor(Label)
		c.SetFont(Bold, 10)
		c.Cell(p.Margin, y, lw, rh, r.Label, AlignLeft, striped)

		valueColor := Ink
		if r.Color != nil {
			valueColor = *r.Color
		}
		c.SetTextColor(valueColor)
		c.SetFont(Regular, 10)
		c.Cell(p.Margin+lw, y, p.ContentWidth()-lw, rh, r.Value, AlignLeft, striped)

		y += rh
	}

	return cur.Advance(t.Height())
}

func drawHeading(c Canvas, p Page, y float64, title string) {
	c.SetTextColor(Primary)
	c.SetFont(Bold, 12)
	c.Text(p.Margin, y+5, title, AlignLeft)
}

// AmountTile is the prominent total-amount box of a receipt.
type AmountTile struct {
	Label string
	Value string
}

func (a AmountTile) Height() float64 { return amountTileH + tileGap }

func (a AmountTile) Draw(c Canvas, cur Cursor) Cursor {
	p := cur.Page

	c.SetFillColor(PrimaryBg)
	c.SetDrawColor(Primary)
	c.SetLineWidth(0.6)
	c.RoundedRect(p.Margin, cur.Y, p.ContentWidth(), amountTileH, 4, FillStroke)
	c.SetLineWidth(0.2)

	c.SetTextColor(Label)
	c.SetFont(Regular, 11)
	c.Text(p.Width/2, cur.Y+9, a.Label, AlignCenter)
	c.SetTextColor(Primary)
	c.SetFont(Bold, 20)
	c.Text(p.Width/2, cur.Y+19, a.Value, AlignCenter)

	return cur.Advance(a.Height())
}

// StatTile is one labelled statistic with its own colours.
type StatTile struct {
	Label  string
	Value  string
	Border Color
	Fill   Color
}

// StatGrid lays tiles out left to right in Columns columns.
type StatGrid struct {
	Tiles      []StatTile
	Columns    int
	TileHeight float64
	Gutter     float64
}

func (g StatGrid) columns() int {
	if g.Columns > 0 {
		return g.Columns
	}
	return DefaultGridColumns
}

func (g StatGrid) tileHeight() float64 {
	if g.TileHeight > 0 {
		return g.TileHeight
	}
	return DefaultTileHeight
}

func (g StatGrid) gutter() float64 {
	if g.Gutter > 0 {
		return g.Gutter
	}
	return DefaultTileGutter
}

func (g StatGrid) rows() int {
	cols := g.columns()
	return (len(g.Tiles) + cols - 1) / cols
}

func (g StatGrid) Height() float64 {
	rows := g.rows()
	if rows == 0 {
		return 0
	}
	return float64(rows)*g.tileHeight() + float64(rows-1)*g.gutter() + tileGap
}

func (g StatGrid) Draw(c Canvas, cur Cursor) Cursor {
	p := cur.Page
	cols := g.columns()
	th, gut := g.tileHeight(), g.gutter()
	tw := (p.ContentWidth() - gut*float64(cols-1)) / float64(cols)

	for i, t := range g.Tiles {
		x := p.Margin + float64(i%cols)*(tw+gut)
		y := cur.Y + float64(i/cols)*(th+gut)

		c.SetFillColor(t.Fill)
		c.SetDrawColor(t.Border)
		c.SetLineWidth(0.5)
		c.RoundedRect(x, y, tw, th, 3, FillStroke)
		c.SetLineWidth(0.2)

		c.SetTextColor(Muted)
		c.SetFont(Regular, 9)
		c.Text(x+tw/2, y+9, t.Label, AlignCenter)
		c.SetTextColor(t.Border)
		c.SetFont(Bold, 16)
		c.Text(x+tw/2, y+19, t.Value, AlignCenter)
	}

	return cur.Advance(g.Height())
}

// ThankYou is the closing band, pushed down to sit just above the footer area.
type ThankYou struct {
	Title   string
	Message string
}

func (t ThankYou) Height() float64 { return thankYouH + thankYouGap }

func (t ThankYou) Draw(c Canvas, cur Cursor) Cursor {
	cur = cur.AnchorAbove(ThankYouFooterHeight)
	p := cur.Page

	c.SetFillColor(PrimaryBg)
	c.RoundedRect(p.Margin, cur.Y, p.ContentWidth(), thankYouH, 3, Fill)

	c.SetTextColor(Primary)
	c.SetFont(Bold, 12)
	c.Text(p.Width/2, cur.Y+7, t.Title, AlignCenter)
	c.SetTextColor(Label)
	c.SetFont(Regular, 9)
	c.Text(p.Width/2, cur.Y+13, t.Message, AlignCenter)

	return cur.Advance(t.Height())
}

// Footer is a horizontal rule followed by centred text lines.
type Footer struct {
	Lines []string
}

func (f Footer) Height() float64 {
	return footerLineStep*float64(len(f.Lines)) + 2*footerLineStep
}

func (f Footer) Draw(c Canvas, cur Cursor) Cursor {
	p := cur.Page

	c.SetDrawColor(Rule)
	c.Line(p.Margin, cur.Y, p.Width-p.Margin, cur.Y)

	c.SetTextColor(Muted)
	c.SetFont(Regular, 8)
	for i, l := range f.Lines {
		c.Text(p.Width/2, cur.Y+6+float64(i)*footerLineStep, l, AlignCenter)
	}

	return cur.Advance(f.Height())
}

// PageBorder is the decorative rounded frame around the page. It is drawn
// last and leaves the cursor where it was.
type PageBorder struct {
	Color Color
}

func (b PageBorder) Height() float64 { return 0 }

func (b PageBorder) Draw(c Canvas, cur Cursor) Cursor {
	p := cur.Page

	c.SetDrawColor(b.Color)
	c.SetLineWidth(0.5)
	c.RoundedRect(5, 5, p.Width-10, p.Height-10, 5, Stroke)
	c.SetLineWidth(0.2)

	return cur
}
