package cli

import (
	"fmt"
	"strings"

	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

// describe names a section and summarises its content for the outline.
func describe(s pdfdoc.Section) (kind, detail string) {
	switch s := s.(type) {
	case pdfdoc.Banner:
		return "banner", s.Title
	case pdfdoc.TitleBand:
		return "title", s.Title
	case pdfdoc.KeyValueTable:
		return "table", fmt.Sprintf("%s (%d rows)", s.Title, len(s.Rows))
	case pdfdoc.AmountTile:
		return "amount", s.Label + " " + s.Value
	case pdfdoc.StatGrid:
		labels := make([]string, len(s.Tiles))
		for i, t := range s.Tiles {
			labels[i] = t.Label + " " + t.Value
		}
		return "stats", strings.Join(labels, " | ")
	case pdfdoc.DataTable:
		return "data table", fmt.Sprintf("%s (%d rows)", s.Title, len(s.Rows))
	case pdfdoc.ThankYou:
		return "thank you", s.Title
	case pdfdoc.Footer:
		return "footer", fmt.Sprintf("%d lines", len(s.Lines))
	case pdfdoc.PageBorder:
		return "border", ""
	default:
		return fmt.Sprintf("%T", s), ""
	}
}

// outline lays the sections out on a recorder and lists where each one
// starts and ends on the page.
func outline(title string, sections []pdfdoc.Section) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n\n")

	rec := pdfdoc.NewRecorder(pdfdoc.A4)
	cur := pdfdoc.NewCursor(pdfdoc.A4)
	for i, s := range sections {
		next := s.Draw(rec, cur)
		kind, detail := describe(s)
		fmt.Fprintf(&b, "%s %2d %-10s %s %s\n",
			styleDim.Render(iconInfo), i+1, kind, detail,
			styleLabel.Render(fmt.Sprintf("[%.0f-%.0f mm]", cur.Y, next.Y)))
		cur = next
	}

	fmt.Fprintf(&b, "\n%s\n", styleDim.Render(fmt.Sprintf("%d drawing operations, content ends at %.0f mm of %.0f", len(rec.Ops), cur.Y, pdfdoc.A4.Height)))
	return b.String()
}
