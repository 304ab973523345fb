package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type memRepo struct {
	logs   []AuditLog
	filter AuditLogFilter
	err    error
}

func (m *memRepo) Create(_ context.Context, log *AuditLog) error {
	if m.err != nil {
		return m.err
	}
	m.logs = append(m.logs, *log)
	return nil
}

func (m *memRepo) GetByFilter(_ context.Context, filter AuditLogFilter) ([]AuditLog, int64, error) {
	m.filter = filter
	return m.logs, int64(len(m.logs)), m.err
}

func TestLogAction(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	err := svc.LogAction(context.Background(), Entry{
		Action:    ActionReceiptGenerated,
		Details:   map[string]interface{}{"transaction_id": "TXN1"},
		IP:        "203.0.113.9",
		RequestID: "req-1",
	})
	if err != nil {
		t.Fatalf("LogAction() error: %v", err)
	}

	got := repo.logs[0]
	if got.Status != StatusSuccess {
		t.Errorf("Status = %q, want default %q", got.Status, StatusSuccess)
	}
	var details map[string]string
	if err := json.Unmarshal(got.Details, &details); err != nil || details["transaction_id"] != "TXN1" {
		t.Errorf("Details = %s", got.Details)
	}
	if got.IPAddress != "203.0.113.9" || got.RequestID != "req-1" {
		t.Errorf("got %+v", got)
	}
}

func TestLogActionNilDetails(t *testing.T) {
	repo := &memRepo{}
	if err := NewService(repo).LogAction(context.Background(), Entry{Action: ActionReportGenerated}); err != nil {
		t.Fatal(err)
	}
	if string(repo.logs[0].Details) != "{}" {
		t.Errorf("Details = %s", repo.logs[0].Details)
	}
}

func TestGetAuditLogsPagination(t *testing.T) {
	repo := &memRepo{logs: make([]AuditLog, 45)}
	svc := NewService(repo)

	res, err := svc.GetAuditLogs(context.Background(), AuditLogFilter{Limit: 500})
	if err != nil {
		t.Fatal(err)
	}
	if repo.filter.Limit != defaultLimit || repo.filter.Page != 1 {
		t.Errorf("filter = %+v", repo.filter)
	}
	if res.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", res.TotalPages)
	}
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		err   error
		want  int
	}{
		{"ok", "?action=RECEIPT&page=2&limit=10&from_date=2024-01-01&to_date=2024-01-31", nil, http.StatusOK},
		{"bad from", "?from_date=01-01-2024", nil, http.StatusBadRequest},
		{"bad to", "?to_date=tomorrow", nil, http.StatusBadRequest},
		{"repo error", "", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{err: tt.err}
			r := gin.New()
			r.GET("/auditlogs", NewHandler(NewService(repo)).GetAuditLogs)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auditlogs"+tt.query, nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK && (repo.filter.Page != 2 || repo.filter.Limit != 10 || repo.filter.ToDate == nil) {
				t.Errorf("filter = %+v", repo.filter)
			}
		})
	}
}
