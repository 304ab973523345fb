package cli

import (
	"strings"
	"testing"
)

func TestDecodeGroup(t *testing.T) {
	list := `[
		{"donorName": "Asha", "amount": 100, "paymentStatus": "Paid"},
		{"donorName": "Asha", "amount": 50, "paymentStatus": "Pending"},
		{"donorName": "Asha", "amount": 25, "paymentStatus": "Failed"}
	]`

	g, err := decodeGroup([]byte(list), true)
	if err != nil {
		t.Fatalf("decodeGroup() error: %v", err)
	}
	if g.TotalDonations != 3 || g.TotalAmount != 175 || g.PaidAmount != 100 || g.PendingAmount != 50 {
		t.Errorf("group = %+v", g)
	}

	if _, err := decodeGroup([]byte(list), false); err == nil {
		t.Error("a list is not a donor group")
	}

	g, err = decodeGroup([]byte(`{"userInfo": {"name": "Ravi"}, "totalAmount": 999}`), false)
	if err != nil || g.UserInfo.Name != "Ravi" || g.TotalAmount != 999 {
		t.Errorf("group = %+v err = %v", g, err)
	}
}

func TestReadInputStdin(t *testing.T) {
	data, err := readInput("-", strings.NewReader(`{"amount": 1}`))
	if err != nil || string(data) != `{"amount": 1}` {
		t.Errorf("data = %q err = %v", data, err)
	}
	if _, err := readInput("/nonexistent/donation.json", nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeRecord(t *testing.T) {
	rec, err := decodeRecord([]byte(`{"transactionId": "T1", "userId": {"name": "Asha"}, "paymentDetails": {"bank_ref_num": "B1"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if rec.TransactionID != "T1" || rec.User == nil || rec.PaymentDetails.BankRefNum != "B1" {
		t.Errorf("record = %+v", rec)
	}
	if _, err := decodeRecord([]byte(`nope`)); err == nil {
		t.Error("expected decode error")
	}
}
