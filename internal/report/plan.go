// Package report renders one donor's donation history as a summary report.
package report

import (
	"strconv"
	"time"

	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/format"
	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

const (
	Title = "DONATION SUMMARY REPORT"

	DonorSection   = "Donor Information"
	HistorySection = "Donation History"
	StatusColumn   = 6
)

// Columns of the history table. Widths add up to the A4 content width.
var Columns = []pdfdoc.Column{
	{Header: "#", Width: 10, Align: pdfdoc.AlignCenter},
	{Header: "Date", Width: 25, Align: pdfdoc.AlignCenter},
	{Header: "Category", Width: 35, Align: pdfdoc.AlignLeft},
	{Header: "Item", Width: 43, Align: pdfdoc.AlignLeft},
	{Header: "Qty", Width: 12, Align: pdfdoc.AlignCenter},
	{Header: "Amount", Width: 30, Align: pdfdoc.AlignRight},
	{Header: "Status", Width: 25, Align: pdfdoc.AlignCenter, Bold: true},
}

// Plan lists the sections of the report for g, dated now.
func Plan(g donation.DonorGroup, now time.Time, theme pdfdoc.Theme) []pdfdoc.Section {
	return []pdfdoc.Section{
		pdfdoc.Banner{Title: theme.Title, Subtitle: theme.Subtitle, Color: theme.Banner},
		pdfdoc.TitleBand{Title: Title},
		pdfdoc.KeyValueTable{Title: DonorSection, Rows: []pdfdoc.Row{
			{Label: "Name", Value: format.Or(g.UserInfo.Name)},
			{Label: "Email", Value: format.Or(g.UserInfo.Email)},
			{Label: "Donor Type", Value: format.Or(g.UserInfo.Type)},
			{Label: "Report Generated", Value: format.Date(now, format.LongDate)},
		}},
		Statistics(g),
		History(g.Donations),
		pdfdoc.Footer{Lines: []string{theme.Disclaimer, theme.Contact}},
		pdfdoc.PageBorder{Color: pdfdoc.Accent},
	}
}

// Statistics is the 2×2 grid of the group's pre-computed totals.
func Statistics(g donation.DonorGroup) pdfdoc.StatGrid {
	return pdfdoc.StatGrid{
		Columns: 2,
		Tiles: []pdfdoc.StatTile{
			{Label: "Total Donations", Value: format.Count(g.TotalDonations), Border: pdfdoc.Blue, Fill: pdfdoc.BlueBg},
			{Label: "Total Amount", Value: format.Currency(g.TotalAmount), Border: pdfdoc.Purple, Fill: pdfdoc.PurpleBg},
			{Label: "Paid Amount", Value: format.Currency(g.PaidAmount), Border: pdfdoc.Green, Fill: pdfdoc.GreenBg},
			{Label: "Pending Amount", Value: format.Currency(g.PendingAmount), Border: pdfdoc.Amber, Fill: pdfdoc.AmberBg},
		},
	}
}

// History is the table with one row per donation, status colour coded.
func History(records []donation.Record) pdfdoc.DataTable {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, Row(i, r))
	}

	return pdfdoc.DataTable{
		Title:   HistorySection,
		Columns: Columns,
		Rows:    rows,
		CellStyle: func(_, col int, value string) (pdfdoc.CellStyle, bool) {
			if col != StatusColumn {
				return pdfdoc.CellStyle{}, false
			}
			return pdfdoc.CellStyle{Color: pdfdoc.StatusColor(value), Bold: true}, true
		},
	}
}

// Row formats record i of the history.
func Row(i int, r donation.Record) []string {
	return []string{
		strconv.Itoa(i + 1),
		format.Date(r.Date, format.ShortDate),
		format.Or(r.CategoryName()),
		format.Or(r.Item, r.CategoryName()),
		strconv.Itoa(r.Units()),
		format.Currency(r.Amount),
		format.Or(r.PaymentStatus),
	}
}
