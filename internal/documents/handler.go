package documents

import (
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// actorFrom collects the caller identity set by the auth and audit
// middleware. Callers who are not staff only see their own donations.
func actorFrom(c *gin.Context) Actor {
	actor := Actor{
		IP:        middleware.GetIPFromContext(c),
		RequestID: middleware.GetRequestID(c),
	}
	if p, ok := middleware.GetPrincipal(c); ok {
		id := p.UserID
		actor.UserID = &id
		if !p.IsStaff() {
			actor.OnlyDonor = p.Email
			if actor.OnlyDonor == "" {
				// without an email claim nothing can match
				actor.OnlyDonor = "-"
			}
		}
	}
	return actor
}

// RenderReceipt handles POST /api/v1/documents/receipt
func (h *Handler) RenderReceipt(c *gin.Context) {
	var rec donation.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation payload"})
		return
	}

	doc, err := h.service.Receipt(c.Request.Context(), rec, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	attach(c, doc)
}

// GetReceipt handles GET /api/v1/donations/:transaction_id/receipt
func (h *Handler) GetReceipt(c *gin.Context) {
	transactionID := strings.TrimSpace(c.Param("transaction_id"))
	if transactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction_id is required"})
		return
	}

	doc, err := h.service.ReceiptByTransaction(c.Request.Context(), transactionID, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if doc.Cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	attach(c, doc)
}

// RenderReport handles POST /api/v1/documents/report?format=pdf|xlsx
func (h *Handler) RenderReport(c *gin.Context) {
	var group donation.DonorGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report payload"})
		return
	}

	doc, err := h.service.Report(c.Request.Context(), group, c.Query("format"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	attach(c, doc)
}

// GetDonorReport handles GET /api/v1/donors/:email/report
// Query: format=pdf|xlsx, status, from_date, to_date (YYYY-MM-DD)
func (h *Handler) GetDonorReport(c *gin.Context) {
	filters := donation.HistoryFilters{
		Email:  c.Param("email"),
		Status: c.Query("status"),
	}

	if fromDateStr := c.Query("from_date"); fromDateStr != "" {
		fromDate, err := time.Parse("2006-01-02", fromDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from_date format. Use YYYY-MM-DD"})
			return
		}
		filters.From = &fromDate
	}
	if toDateStr := c.Query("to_date"); toDateStr != "" {
		toDate, err := time.Parse("2006-01-02", toDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to_date format. Use YYYY-MM-DD"})
			return
		}
		endOfDay := toDate.Add(24*time.Hour - time.Second)
		filters.To = &endOfDay
	}

	doc, err := h.service.ReportForDonor(c.Request.Context(), filters, c.Query("format"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	attach(c, doc)
}

func attach(c *gin.Context, doc Document) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Name}))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, donation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate document"})
	}
}
