package donation

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestRecordFallbacks(t *testing.T) {
	guest := Record{DonorName: "Asha", DonorEmail: "asha@example.com"}
	if guest.Name() != "Asha" || guest.Email() != "asha@example.com" {
		t.Errorf("guest name/email = %q/%q", guest.Name(), guest.Email())
	}
	if guest.DonorType() != DonorGuest {
		t.Errorf("DonorType() = %q, want %q", guest.DonorType(), DonorGuest)
	}
	if guest.Units() != 1 {
		t.Errorf("Units() = %d, want default 1", guest.Units())
	}
	if guest.CategoryName() != "" {
		t.Errorf("CategoryName() = %q", guest.CategoryName())
	}

	linked := guest
	linked.User = &UserRef{Name: "Asha R", Email: "asha.r@example.com"}
	linked.Quantity = 3
	if linked.Name() != "Asha R" || linked.Email() != "asha.r@example.com" {
		t.Errorf("linked name/email = %q/%q", linked.Name(), linked.Email())
	}
	if linked.DonorType() != DonorRegistered {
		t.Errorf("DonorType() = %q, want %q", linked.DonorType(), DonorRegistered)
	}
	if linked.Units() != 3 {
		t.Errorf("Units() = %d", linked.Units())
	}

	// A linked user without a name still falls back to the checkout name.
	linked.User = &UserRef{}
	if linked.Name() != "Asha" {
		t.Errorf("Name() = %q", linked.Name())
	}
}

func TestDonationRecord(t *testing.T) {
	uid := uint(7)
	base := 100.0
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	row := Donation{
		TransactionID:  "TXN1",
		UserID:         &uid,
		UserName:       "Ravi",
		UserEmail:      "ravi@example.com",
		CategoryName:   "Annadanam",
		Quantity:       2,
		BaseAmount:     &base,
		Amount:         120,
		PaymentStatus:  StatusPaid,
		PaymentDetails: datatypes.NewJSONType(PaymentDetails{MihPayID: "P1", Mode: "UPI"}),
		DonatedAt:      when,
	}

	r := row.Record()
	if r.User == nil || r.User.Name != "Ravi" {
		t.Errorf("User = %+v", r.User)
	}
	if r.CategoryName() != "Annadanam" {
		t.Errorf("Category = %+v", r.Category)
	}
	if r.PaymentDetails == nil || r.PaymentDetails.MihPayID != "P1" {
		t.Errorf("PaymentDetails = %+v", r.PaymentDetails)
	}
	if !r.Date.Equal(when) || r.BaseAmount != &base {
		t.Errorf("record = %+v", r)
	}

	bare := Donation{Amount: 10}.Record()
	if bare.User != nil || bare.Category != nil || bare.PaymentDetails != nil {
		t.Errorf("bare record has nested values: %+v", bare)
	}
}

func TestAggregate(t *testing.T) {
	records := []Record{
		{DonorName: "Meera", DonorEmail: "m@example.com", Amount: 100, PaymentStatus: StatusPaid},
		{DonorName: "Meera", Amount: 50, PaymentStatus: StatusPending},
		{DonorName: "Meera", Amount: 25, PaymentStatus: StatusFailed},
		{User: &UserRef{Name: "Meera K"}, Amount: 10},
	}

	g := Aggregate(records)
	if g.TotalDonations != 4 {
		t.Errorf("TotalDonations = %d", g.TotalDonations)
	}
	if g.TotalAmount != 185 || g.PaidAmount != 100 || g.PendingAmount != 60 {
		t.Errorf("amounts total=%v paid=%v pending=%v", g.TotalAmount, g.PaidAmount, g.PendingAmount)
	}
	if g.UserInfo.Name != "Meera" || g.UserInfo.Email != "m@example.com" {
		t.Errorf("UserInfo = %+v", g.UserInfo)
	}
	if g.UserInfo.Type != DonorRegistered {
		t.Errorf("Type = %q, want %q", g.UserInfo.Type, DonorRegistered)
	}
	if len(g.Donations) != 4 {
		t.Errorf("Donations = %d", len(g.Donations))
	}
}

func TestAggregateEmpty(t *testing.T) {
	g := Aggregate(nil)
	if g.TotalDonations != 0 || g.TotalAmount != 0 || len(g.Donations) != 0 {
		t.Errorf("empty group = %+v", g)
	}
}

func TestAggregateSumsExactly(t *testing.T) {
	g := Aggregate([]Record{
		{Amount: 0.1, PaymentStatus: StatusPaid},
		{Amount: 0.2, PaymentStatus: StatusPaid},
	})
	if g.PaidAmount != 0.3 || g.TotalAmount != 0.3 {
		t.Errorf("paid = %v total = %v, want 0.3", g.PaidAmount, g.TotalAmount)
	}
}
