package notification

import "time"

// EventDocumentGenerated is the type carried by every document event.
const EventDocumentGenerated = "document.generated"

// Document kinds.
const (
	KindReceipt     = "receipt"
	KindReport      = "report"
	KindReportExcel = "report_xlsx"
)

// DocumentEvent announces that a document was rendered and handed to a saver.
type DocumentEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Kind          string    `json:"kind"`
	FileName      string    `json:"file_name"`
	TransactionID string    `json:"transaction_id,omitempty"`
	DonorEmail    string    `json:"donor_email,omitempty"`
	Size          int       `json:"size"`
	Cached        bool      `json:"cached,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Key partitions events so that one donor's documents stay ordered.
func (e DocumentEvent) Key() string {
	if e.DonorEmail != "" {
		return e.DonorEmail
	}
	if e.TransactionID != "" {
		return e.TransactionID
	}
	return e.ID
}
