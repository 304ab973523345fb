package donation

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no donation matches a lookup.
var ErrNotFound = errors.New("donation not found")

// HistoryFilters narrows the donations included in a donor report.
type HistoryFilters struct {
	Email  string
	Status string
	From   *time.Time
	To     *time.Time
}

type Repository interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*Donation, error)
	ListByDonor(ctx context.Context, filters HistoryFilters) ([]Donation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByTransactionID(ctx context.Context, transactionID string) (*Donation, error) {
	var donation Donation
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&donation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListByDonor returns a donor's donations oldest first, matching either the
// linked account email or the checkout email.
func (r *repository) ListByDonor(ctx context.Context, filters HistoryFilters) ([]Donation, error) {
	var donations []Donation
	query := r.db.WithContext(ctx).Model(&Donation{})
	query = r.applyFilters(query, filters)

	err := query.Order("donated_at ASC").Find(&donations).Error
	return donations, err
}

func (r *repository) applyFilters(query *gorm.DB, filters HistoryFilters) *gorm.DB {
	email := strings.ToLower(strings.TrimSpace(filters.Email))
	query = query.Where("LOWER(user_email) = ? OR LOWER(donor_email) = ?", email, email)

	if filters.Status != "" && filters.Status != "all" {
		query = query.Where("LOWER(payment_status) = LOWER(?)", filters.Status)
	}
	if filters.From != nil {
		query = query.Where("donated_at >= ?", filters.From)
	}
	if filters.To != nil {
		query = query.Where("donated_at <= ?", filters.To)
	}

	return query
}

// Records converts rows into renderer input, preserving order.
func Records(rows []Donation) []Record {
	out := make([]Record, 0, len(rows))
	for _, d := range rows {
		out = append(out, d.Record())
	}
	return out
}
