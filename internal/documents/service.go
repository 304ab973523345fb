package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sharath018/temple-donation-docs/internal/auditlog"
	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/notification"
	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
	"github.com/sharath018/temple-donation-docs/internal/receipt"
	"github.com/sharath018/temple-donation-docs/internal/report"
)

// Output formats for reports.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"

	ContentTypePDF = "application/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrForbidden         = errors.New("not allowed to view this donation")
)

// Actor describes who asked for a document.
type Actor struct {
	UserID    *uint
	IP        string
	RequestID string
	// OnlyDonor restricts stored-record lookups to this donor email when set.
	OnlyDonor string
}

func (a Actor) canView(rec donation.Record) bool {
	if a.OnlyDonor == "" {
		return true
	}
	if rec.User != nil && strings.EqualFold(a.OnlyDonor, rec.User.Email) {
		return true
	}
	return strings.EqualFold(a.OnlyDonor, rec.DonorEmail)
}

// Document is a rendered file ready to be returned or stored.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
	Cached      bool
}

type Service struct {
	repo      donation.Repository
	cache     ReceiptCache
	publisher notification.Publisher
	audit     auditlog.Service
	settings  pdfdoc.Settings
	archive   pdfdoc.Saver
}

// NewService wires the renderers to storage and side channels. repo and
// audit may be nil for callers that only render payloads.
func NewService(repo donation.Repository, cache ReceiptCache, publisher notification.Publisher, audit auditlog.Service, settings pdfdoc.Settings) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	if publisher == nil {
		publisher = notification.Noop{}
	}
	return &Service{repo: repo, cache: cache, publisher: publisher, audit: audit, settings: settings}
}

// WithArchive keeps a copy of every freshly rendered document in saver.
func (s *Service) WithArchive(saver pdfdoc.Saver) *Service {
	s.archive = saver
	return s
}

// capture is the saver used by the service: it keeps the finished document
// in memory for the caller to return or store.
func capture(doc *Document, contentType string) pdfdoc.Saver {
	return pdfdoc.SaverFunc(func(name string, data []byte) error {
		doc.Name = name
		doc.Data = data
		doc.ContentType = contentType
		return nil
	})
}

// Receipt renders a receipt for a record supplied by the caller.
func (s *Service) Receipt(ctx context.Context, rec donation.Record, actor Actor) (Document, error) {
	var doc Document
	if _, err := receipt.Generate(rec, capture(&doc, ContentTypePDF), s.settings); err != nil {
		s.logFailure(ctx, auditlog.ActionReceiptGenerated, actor, err)
		return Document{}, fmt.Errorf("render receipt: %w", err)
	}

	s.announce(ctx, doc, notification.KindReceipt, auditlog.ActionReceiptGenerated, rec.TransactionID, rec.Email(), actor)
	return doc, nil
}

// ReceiptByTransaction renders the receipt of a stored donation, serving
// cached bytes when the receipt was rendered before.
func (s *Service) ReceiptByTransaction(ctx context.Context, transactionID string, actor Actor) (Document, error) {
	if s.repo == nil {
		return Document{}, donation.ErrNotFound
	}

	row, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return Document{}, err
	}
	rec := row.Record()
	if !actor.canView(rec) {
		return Document{}, ErrForbidden
	}

	data, found, err := s.cache.Get(ctx, transactionID)
	if err != nil {
		log.Warn("⚠️ Receipt cache read failed", "transaction_id", transactionID, "err", err)
	}
	if found {
		doc := Document{
			Name:        receipt.FileName(rec, s.settings.Clock()),
			ContentType: ContentTypePDF,
			Data:        data,
			Cached:      true,
		}
		s.announce(ctx, doc, notification.KindReceipt, auditlog.ActionReceiptGenerated, rec.TransactionID, rec.Email(), actor)
		return doc, nil
	}

	doc, err := s.Receipt(ctx, rec, actor)
	if err != nil {
		return Document{}, err
	}
	if err := s.cache.Set(ctx, transactionID, doc.Data); err != nil {
		log.Warn("⚠️ Receipt cache write failed", "transaction_id", transactionID, "err", err)
	}
	return doc, nil
}

// Report renders a donor summary from caller-supplied totals, as a PDF or
// as an Excel workbook.
func (s *Service) Report(ctx context.Context, g donation.DonorGroup, format string, actor Actor) (Document, error) {
	var (
		doc    Document
		kind   string
		action string
	)

	switch normalizeFormat(format) {
	case FormatPDF:
		kind, action = notification.KindReport, auditlog.ActionReportGenerated
		if _, err := report.Generate(g, capture(&doc, ContentTypePDF), s.settings); err != nil {
			s.logFailure(ctx, action, actor, err)
			return Document{}, fmt.Errorf("render report: %w", err)
		}
	case FormatXLSX:
		kind, action = notification.KindReportExcel, auditlog.ActionExportGenerated
		now := s.settings.Clock()
		data, err := report.ExportExcel(g, now)
		if err != nil {
			s.logFailure(ctx, action, actor, err)
			return Document{}, fmt.Errorf("export report: %w", err)
		}
		doc = Document{Name: report.ExcelFileName(g, now), ContentType: report.ExcelContentType, Data: data}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	s.announce(ctx, doc, kind, action, "", g.UserInfo.Email, actor)
	return doc, nil
}

// ReportForDonor aggregates a donor's stored donations and renders the report.
func (s *Service) ReportForDonor(ctx context.Context, filters donation.HistoryFilters, format string, actor Actor) (Document, error) {
	if s.repo == nil {
		return Document{}, donation.ErrNotFound
	}

	rows, err := s.repo.ListByDonor(ctx, filters)
	if err != nil {
		return Document{}, fmt.Errorf("list donations: %w", err)
	}
	if len(rows) == 0 {
		return Document{}, donation.ErrNotFound
	}

	return s.Report(ctx, donation.Aggregate(donation.Records(rows)), format, actor)
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		return FormatPDF
	}
	return f
}

// announce archives the document, publishes the document event and records
// the audit entry. None of these failures reaches the caller.
func (s *Service) announce(ctx context.Context, doc Document, kind, action, transactionID, email string, actor Actor) {
	event := notification.DocumentEvent{
		Kind:          kind,
		FileName:      doc.Name,
		TransactionID: transactionID,
		DonorEmail:    email,
		Size:          len(doc.Data),
		Cached:        doc.Cached,
		GeneratedAt:   s.settings.Clock().UTC(),
	}
	if s.archive != nil && !doc.Cached {
		if err := s.archive.Save(doc.Name, doc.Data); err != nil {
			log.Warn("⚠️ Document not archived", "file", doc.Name, "err", err)
		}
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn("⚠️ Document event not published", "file", doc.Name, "err", err)
	}

	if s.audit == nil {
		return
	}
	details := map[string]interface{}{
		"file_name": doc.Name,
		"size":      len(doc.Data),
		"cached":    doc.Cached,
	}
	if transactionID != "" {
		details["transaction_id"] = transactionID
	}
	if email != "" {
		details["donor_email"] = email
	}
	s.record(ctx, action, actor, details, auditlog.StatusSuccess)
}

func (s *Service) logFailure(ctx context.Context, action string, actor Actor, cause error) {
	log.Error("❌ Document generation failed", "action", action, "err", cause)
	if s.audit == nil {
		return
	}
	s.record(ctx, action, actor, map[string]interface{}{"error": cause.Error()}, auditlog.StatusFailure)
}

func (s *Service) record(ctx context.Context, action string, actor Actor, details map[string]interface{}, status string) {
	err := s.audit.LogAction(ctx, auditlog.Entry{
		UserID:    actor.UserID,
		Action:    action,
		Details:   details,
		IP:        actor.IP,
		RequestID: actor.RequestID,
		Status:    status,
	})
	if err != nil {
		log.Warn("⚠️ Audit log write failed", "action", action, "err", err)
	}
}
