package documents

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/middleware"
)

const testSecret = "handler-secret"

func newTestRouter(f *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(f.svc)

	r := gin.New()
	r.Use(middleware.AuditMiddleware())
	api := r.Group("/api/v1", middleware.AuthMiddleware(testSecret))
	api.POST("/documents/receipt", h.RenderReceipt)
	api.POST("/documents/report", h.RenderReport)
	api.GET("/donations/:transaction_id/receipt", h.GetReceipt)
	api.GET("/donors/:email/report", middleware.RequireDonorAccess("email"), h.GetDonorReport)
	return r
}

func bearer(t *testing.T, role, email string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(42),
		"email":   email,
		"role":    role,
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + tok
}

func do(r http.Handler, method, url, auth string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRenderReceiptEndpoint(t *testing.T) {
	f := newFixture()
	r := newTestRouter(f)

	payload := `{
		"transactionId": "TXN77",
		"donorName": "Ravi",
		"category": {"name": "General"},
		"amount": 1234.5,
		"date": "2024-05-20T09:00:00Z",
		"paymentStatus": "Paid",
		"paymentDetails": {"mihpayid": "403993715531077182", "mode": "UPI"}
	}`
	w := do(r, http.MethodPost, "/api/v1/documents/receipt", bearer(t, middleware.RoleTempleAdmin, ""), []byte(payload))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=Donation_Receipt_TXN77.pdf" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if w.Header().Get("Content-Type") != ContentTypePDF {
		t.Errorf("Content-Type = %q", w.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
	if f.audit.entries[0].RequestID == "" || *f.audit.entries[0].UserID != 42 {
		t.Errorf("audit = %+v", f.audit.entries[0])
	}
}

func TestRenderReceiptBadPayload(t *testing.T) {
	r := newTestRouter(newFixture())
	w := do(r, http.MethodPost, "/api/v1/documents/receipt", bearer(t, middleware.RoleTempleAdmin, ""), []byte(`{"amount": "lots"`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestGetReceiptEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		auth      func(t *testing.T) string
		id        string
		want      int
		wantCache string
	}{
		{"staff", func(t *testing.T) string { return bearer(t, middleware.RoleSuperAdmin, "") }, "TXN1", http.StatusOK, "MISS"},
		{"own donation", func(t *testing.T) string { return bearer(t, middleware.RoleDevotee, "asha@example.com") }, "TXN1", http.StatusOK, "MISS"},
		{"someone else's", func(t *testing.T) string { return bearer(t, middleware.RoleDevotee, "ravi@example.com") }, "TXN1", http.StatusForbidden, ""},
		{"no email claim", func(t *testing.T) string { return bearer(t, middleware.RoleDevotee, "") }, "TXN1", http.StatusForbidden, ""},
		{"missing", func(t *testing.T) string { return bearer(t, middleware.RoleSuperAdmin, "") }, "NOPE", http.StatusNotFound, ""},
		{"unauthenticated", func(t *testing.T) string { return "" }, "TXN1", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(newFixture())
			w := do(r, http.MethodGet, "/api/v1/donations/"+tt.id+"/receipt", tt.auth(t), nil)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if got := w.Header().Get("X-Cache"); got != tt.wantCache {
				t.Errorf("X-Cache = %q, want %q", got, tt.wantCache)
			}
		})
	}
}

func TestGetReceiptServedFromCache(t *testing.T) {
	r := newTestRouter(newFixture())
	auth := bearer(t, middleware.RoleSuperAdmin, "")

	do(r, http.MethodGet, "/api/v1/donations/TXN1/receipt", auth, nil)
	w := do(r, http.MethodGet, "/api/v1/donations/TXN1/receipt", auth, nil)
	if w.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %q", w.Header().Get("X-Cache"))
	}
}

func TestRenderReportEndpoint(t *testing.T) {
	group := donation.DonorGroup{
		UserInfo:       donation.UserInfo{Name: "Asha  Rao", Email: "asha@example.com", Type: donation.DonorRegistered},
		TotalDonations: 1,
		TotalAmount:    100,
		Donations:      []donation.Record{{Amount: 100, PaymentStatus: donation.StatusPaid}},
	}
	body, _ := json.Marshal(group)

	tests := []struct {
		query    string
		want     int
		wantFile string
	}{
		{"", http.StatusOK, "Donation_Report_Asha_Rao_1717243200000.pdf"},
		{"?format=xlsx", http.StatusOK, "Donation_Report_Asha_Rao_1717243200000.xlsx"},
		{"?format=csv", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := newTestRouter(newFixture())
			w := do(r, http.MethodPost, "/api/v1/documents/report"+tt.query, bearer(t, middleware.RoleTempleAdmin, ""), body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.wantFile != "" && !strings.HasSuffix(w.Header().Get("Content-Disposition"), tt.wantFile) {
				t.Errorf("Content-Disposition = %q", w.Header().Get("Content-Disposition"))
			}
		})
	}
}

func TestGetDonorReportEndpoint(t *testing.T) {
	f := newFixture()
	f.repo.history = []donation.Donation{storedDonation("A", "asha@example.com", donation.StatusPaid)}
	r := newTestRouter(f)

	w := do(r, http.MethodGet, "/api/v1/donors/asha@example.com/report?status=Paid&from_date=2024-01-01&to_date=2024-12-31",
		bearer(t, middleware.RoleDevotee, "asha@example.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if f.repo.filters.Status != "Paid" || f.repo.filters.From == nil || f.repo.filters.To == nil {
		t.Errorf("filters = %+v", f.repo.filters)
	}
	if f.repo.filters.To.Hour() != 23 {
		t.Errorf("to_date should include the whole day, got %v", f.repo.filters.To)
	}

	w = do(r, http.MethodGet, "/api/v1/donors/ravi@example.com/report", bearer(t, middleware.RoleDevotee, "asha@example.com"), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("other donor: status = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/v1/donors/asha@example.com/report?from_date=yesterday", bearer(t, middleware.RoleSuperAdmin, ""), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: status = %d", w.Code)
	}

	f.repo.history = nil
	w = do(r, http.MethodGet, "/api/v1/donors/nobody@example.com/report", bearer(t, middleware.RoleSuperAdmin, ""), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("no donations: status = %d", w.Code)
	}
}

func TestAttachEscapesFileName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	names := []string{
		"Donation_Receipt_TXN77.pdf",
		`Donation_Report_Ravi;_"Jr"_1717243200000.pdf`,
		"Donation_Report_Sité_Devi_1717243200000.pdf",
	}
	for _, name := range names {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		attach(c, Document{Name: name, ContentType: ContentTypePDF, Data: []byte("%PDF-")})

		disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
		if err != nil {
			t.Errorf("%q: ParseMediaType(%q) error: %v", name, w.Header().Get("Content-Disposition"), err)
			continue
		}
		if disposition != "attachment" || params["filename"] != name {
			t.Errorf("%q: got %s filename=%q", name, disposition, params["filename"])
		}
	}
}
