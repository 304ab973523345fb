package auditlog

import (
	"context"
	"encoding/json"
	"math"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service interface {
	LogAction(ctx context.Context, entry Entry) error
	GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction creates a new audit log entry
func (s *service) LogAction(ctx context.Context, entry Entry) error {
	if entry.Details == nil {
		entry.Details = make(map[string]interface{})
	}

	detailsJSON, err := json.Marshal(entry.Details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	status := entry.Status
	if status == "" {
		status = StatusSuccess
	}

	return s.repo.Create(ctx, &AuditLog{
		UserID:    entry.UserID,
		Action:    entry.Action,
		Details:   detailsJSON,
		IPAddress: entry.IP,
		RequestID: entry.RequestID,
		Status:    status,
	})
}

// GetAuditLogs retrieves paginated audit logs with filters
func (s *service) GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	if filter.Limit <= 0 || filter.Limit > maxLimit {
		filter.Limit = defaultLimit
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &PaginatedAuditLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}
