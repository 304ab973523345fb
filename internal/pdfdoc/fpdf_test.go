package pdfdoc

import (
	"bytes"
	"testing"
	"time"
)

func TestDocumentBytes(t *testing.T) {
	doc := NewDocument(Options{
		Title:     "Receipt",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	cur := doc.Draw([]Section{
		Banner{Title: "Temple", Subtitle: "Sub", Color: Primary},
		AmountTile{Label: "Total Amount", Value: "₹ 1,234.50"},
		PageBorder{Color: Accent},
	})
	if cur.Y == 0 {
		t.Error("cursor did not move")
	}

	b, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", b[:8])
	}
}

func TestHasUTF8Fonts(t *testing.T) {
	if hasUTF8Fonts("") {
		t.Error("empty dir reported fonts")
	}
	if hasUTF8Fonts(t.TempDir()) {
		t.Error("empty temp dir reported fonts")
	}
}
