package donation

import "github.com/shopspring/decimal"

// Aggregate builds the donor group a report is rendered from. Paid donations
// count towards PaidAmount, failed ones towards neither bucket, everything
// else is pending. TotalAmount covers every record. Sums are taken in
// decimal so that paise add up exactly.
func Aggregate(records []Record) DonorGroup {
	g := DonorGroup{
		TotalDonations: len(records),
		Donations:      records,
	}

	var total, paid, pending decimal.Decimal
	for _, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		total = total.Add(amount)
		switch r.PaymentStatus {
		case StatusPaid:
			paid = paid.Add(amount)
		case StatusFailed:
		default:
			pending = pending.Add(amount)
		}

		if g.UserInfo.Name == "" {
			g.UserInfo.Name = r.Name()
		}
		if g.UserInfo.Email == "" {
			g.UserInfo.Email = r.Email()
		}
		if r.User != nil || g.UserInfo.Type == "" {
			g.UserInfo.Type = r.DonorType()
		}
	}

	g.TotalAmount = total.InexactFloat64()
	g.PaidAmount = paid.InexactFloat64()
	g.PendingAmount = pending.InexactFloat64()
	return g
}
