package pdfdoc

// Op is one recorded drawing call together with the pen state at the time.
type Op struct {
	Kind      string
	X, Y      float64
	W, H      float64
	Text      string
	Align     Align
	Filled    bool
	Style     string
	FillColor Color
	DrawColor Color
	TextColor Color
	FontStyle string
	FontSize  float64
	Alpha     float64
}

// Recorder is a Canvas that keeps every call instead of producing a PDF.
// It backs previews and draw-level assertions.
type Recorder struct {
	Page Page
	Ops  []Op

	fill, draw, text Color
	fontStyle        string
	fontSize         float64
	lineWidth        float64
	alpha            float64
}

// NewRecorder returns an empty recorder for page.
func NewRecorder(page Page) *Recorder {
	return &Recorder{Page: page, alpha: 1}
}

func (r *Recorder) PageSize() (float64, float64) { return r.Page.Width, r.Page.Height }

func (r *Recorder) SetFillColor(c Color)   { r.fill = c }
func (r *Recorder) SetDrawColor(c Color)   { r.draw = c }
func (r *Recorder) SetTextColor(c Color)   { r.text = c }
func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }
func (r *Recorder) SetAlpha(a float64)     { r.alpha = a }
func (r *Recorder) SetFont(style string, size float64) {
	r.fontStyle, r.fontSize = style, size
}

func (r *Recorder) Rect(x, y, w, h float64, style string) {
	r.add(Op{Kind: "rect", X: x, Y: y, W: w, H: h, Style: style})
}

func (r *Recorder) RoundedRect(x, y, w, h, _ float64, style string) {
	r.add(Op{Kind: "rounded", X: x, Y: y, W: w, H: h, Style: style})
}

func (r *Recorder) Circle(x, y, radius float64, style string) {
	r.add(Op{Kind: "circle", X: x, Y: y, W: radius, Style: style})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.add(Op{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) Text(x, y float64, txt string, align Align) {
	r.add(Op{Kind: "text", X: x, Y: y, Text: txt, Align: align})
}

func (r *Recorder) Cell(x, y, w, h float64, txt string, align Align, fill bool) {
	r.add(Op{Kind: "cell", X: x, Y: y, W: w, H: h, Text: txt, Align: align, Filled: fill})
}

func (r *Recorder) add(op Op) {
	op.FillColor, op.DrawColor, op.TextColor = r.fill, r.draw, r.text
	op.FontStyle, op.FontSize, op.Alpha = r.fontStyle, r.fontSize, r.alpha
	r.Ops = append(r.Ops, op)
}

// Texts returns every string drawn, in drawing order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Text != "" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Find returns the first op that drew txt.
func (r *Recorder) Find(txt string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Text == txt {
			return op, true
		}
	}
	return Op{}, false
}
