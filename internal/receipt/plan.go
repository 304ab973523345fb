// Package receipt renders a single donation as a one-page receipt.
package receipt

import (
	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/format"
	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

const (
	Title = "DONATION RECEIPT"

	DonorSection     = "Donor Information"
	DetailsSection   = "Donation Details"
	BreakdownSection = "Amount Breakdown"
	PaymentSection   = "Payment Information"
	TotalLabel       = "Total Amount"
)

// Plan lists the sections of a receipt for rec. Optional sections are left
// out of the list entirely, so they take no vertical space.
func Plan(rec donation.Record, theme pdfdoc.Theme) []pdfdoc.Section {
	date := format.Date(rec.Date, format.LongDate)

	sections := []pdfdoc.Section{
		pdfdoc.Banner{Title: theme.Title, Subtitle: theme.Subtitle, Color: theme.Banner},
		pdfdoc.TitleBand{Title: Title},
		pdfdoc.KeyValueTable{Rows: []pdfdoc.Row{
			{Label: "Receipt No.", Value: format.Or(rec.TransactionID)},
			{Label: "Receipt Date", Value: date},
		}},
		pdfdoc.KeyValueTable{Title: DonorSection, Rows: []pdfdoc.Row{
			{Label: "Name", Value: format.Or(rec.Name())},
			{Label: "Email", Value: format.Or(rec.Email())},
			{Label: "Phone", Value: format.Or(rec.DonorPhone)},
			{Label: "Donor Type", Value: rec.DonorType()},
		}},
		pdfdoc.KeyValueTable{Title: DetailsSection, Rows: []pdfdoc.Row{
			{Label: "Category", Value: format.Or(rec.CategoryName())},
			{Label: "Item", Value: format.Or(rec.Item, rec.CategoryName())},
			{Label: "Quantity", Value: format.Count(rec.Units())},
			{Label: "Donation Date", Value: date},
		}},
	}

	if b, ok := breakdown(rec); ok {
		sections = append(sections, b)
	}

	sections = append(sections, pdfdoc.AmountTile{Label: TotalLabel, Value: format.Currency(rec.Amount)})

	if p, ok := payment(rec); ok {
		sections = append(sections, p)
	}

	return append(sections,
		pdfdoc.ThankYou{Title: theme.ThankYou, Message: theme.Blessing},
		pdfdoc.Footer{Lines: []string{theme.Disclaimer, theme.Contact}},
		pdfdoc.PageBorder{Color: pdfdoc.Accent},
	)
}

// breakdown is present when either component carries a non-zero amount.
func breakdown(rec donation.Record) (pdfdoc.KeyValueTable, bool) {
	if !nonZero(rec.BaseAmount) && !nonZero(rec.ExtraAmount) {
		return pdfdoc.KeyValueTable{}, false
	}
	return pdfdoc.KeyValueTable{Title: BreakdownSection, Rows: []pdfdoc.Row{
		{Label: "Base Amount", Value: format.CurrencyPtr(rec.BaseAmount)},
		{Label: "Additional Amount", Value: format.CurrencyPtr(rec.ExtraAmount)},
	}}, true
}

func nonZero(v *float64) bool {
	return v != nil && *v != 0
}

// payment is present whenever a status is recorded. Gateway detail rows are
// only shown for paid donations.
func payment(rec donation.Record) (pdfdoc.KeyValueTable, bool) {
	if rec.PaymentStatus == "" {
		return pdfdoc.KeyValueTable{}, false
	}

	statusColor := pdfdoc.Amber
	if rec.PaymentStatus == donation.StatusPaid {
		statusColor = pdfdoc.Green
	}
	rows := []pdfdoc.Row{{Label: "Payment Status", Value: rec.PaymentStatus, Color: &statusColor}}

	if rec.PaymentStatus == donation.StatusPaid && rec.PaymentDetails != nil {
		pd := rec.PaymentDetails
		if pd.MihPayID != "" {
			rows = append(rows, pdfdoc.Row{Label: "Payment ID", Value: pd.MihPayID})
		}
		if pd.Mode != "" {
			rows = append(rows, pdfdoc.Row{Label: "Payment Mode", Value: pd.Mode})
		}
		if pd.BankRefNum != "" {
			rows = append(rows, pdfdoc.Row{Label: "Bank Reference", Value: pd.BankRefNum})
		}
	}

	return pdfdoc.KeyValueTable{Title: PaymentSection, Rows: rows}, true
}
