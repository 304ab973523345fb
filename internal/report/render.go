package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

// Render draws the report for g and returns the PDF bytes.
func Render(g donation.DonorGroup, s pdfdoc.Settings) ([]byte, error) {
	doc := pdfdoc.NewDocument(pdfdoc.Options{
		FontDir: s.FontDir,
		Title:   "Donation Summary Report",
		Author:  s.Theme.Title,
	})
	doc.Draw(Plan(g, s.Clock(), s.Theme))
	return doc.Bytes()
}

// FileName is Donation_Report_<donor name>_<unix millis>.pdf with whitespace
// runs and path separators in the name replaced by underscores.
func FileName(g donation.DonorGroup, now time.Time) string {
	name := g.UserInfo.Name
	if name == "" {
		name = "Donor"
	}
	return fmt.Sprintf("Donation_Report_%s_%s.pdf",
		pdfdoc.NamePart(name), strconv.FormatInt(now.UnixMilli(), 10))
}

// Generate renders the report and hands it to saver as the final step.
func Generate(g donation.DonorGroup, saver pdfdoc.Saver, s pdfdoc.Settings) (string, error) {
	now := s.Clock()
	s.Now = func() time.Time { return now }

	data, err := Render(g, s)
	if err != nil {
		return "", err
	}
	name := FileName(g, now)
	if err := saver.Save(name, data); err != nil {
		return "", err
	}
	return name, nil
}
