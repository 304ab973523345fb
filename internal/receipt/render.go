package receipt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

// Render draws the receipt for rec and returns the PDF bytes.
func Render(rec donation.Record, s pdfdoc.Settings) ([]byte, error) {
	doc := pdfdoc.NewDocument(pdfdoc.Options{
		FontDir: s.FontDir,
		Title:   "Donation Receipt",
		Author:  s.Theme.Title,
	})
	doc.Draw(Plan(rec, s.Theme))
	return doc.Bytes()
}

// FileName is Donation_Receipt_<transaction id>.pdf, using the millisecond
// timestamp when the donation has no transaction id. Path separators in the
// id become underscores.
func FileName(rec donation.Record, now time.Time) string {
	id := rec.TransactionID
	if id == "" {
		id = strconv.FormatInt(now.UnixMilli(), 10)
	}
	return fmt.Sprintf("Donation_Receipt_%s.pdf", pdfdoc.NamePart(id))
}

// Generate renders the receipt and hands it to saver. Saving is the last
// step, so a failed render leaves nothing behind.
func Generate(rec donation.Record, saver pdfdoc.Saver, s pdfdoc.Settings) (string, error) {
	data, err := Render(rec, s)
	if err != nil {
		return "", err
	}
	name := FileName(rec, s.Clock())
	if err := saver.Save(name, data); err != nil {
		return "", err
	}
	return name, nil
}
