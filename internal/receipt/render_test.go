package receipt

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func settings() pdfdoc.Settings {
	s := pdfdoc.DefaultSettings()
	s.Now = func() time.Time { return fixedNow }
	return s
}

func TestFileName(t *testing.T) {
	rec := sampleRecord()
	if got := FileName(rec, fixedNow); got != "Donation_Receipt_TXN-1001.pdf" {
		t.Errorf("FileName() = %q", got)
	}

	rec.TransactionID = `TXN/2024\7`
	if got := FileName(rec, fixedNow); got != "Donation_Receipt_TXN_2024_7.pdf" {
		t.Errorf("FileName() with separators = %q", got)
	}

	rec.TransactionID = ""
	want := "Donation_Receipt_1717243200000.pdf"
	if got := FileName(rec, fixedNow); got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestGenerate(t *testing.T) {
	var saved []string
	var data []byte
	saver := pdfdoc.SaverFunc(func(name string, b []byte) error {
		saved = append(saved, name)
		data = b
		return nil
	})

	name, err := Generate(sampleRecord(), saver, settings())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if name != "Donation_Receipt_TXN-1001.pdf" || len(saved) != 1 || saved[0] != name {
		t.Errorf("saved %v as %q", saved, name)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("saved data is not a PDF")
	}
}

func TestGenerateSaverError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := Generate(sampleRecord(), pdfdoc.SaverFunc(func(string, []byte) error { return boom }), settings())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
