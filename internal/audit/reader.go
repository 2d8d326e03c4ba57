package audit

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type Filter struct {
	Action    string
	Reference string
	From      *time.Time
	To        *time.Time

	Page  int
	Limit int
}

// Normalize aplica os limites de paginação (página >= 1, 1..200, padrão 50).
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return f
}

type Reader interface {
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

func (s *GormSink) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	q := s.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Reference != "" {
		q = q.Where("reference = ?", f.Reference)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count audit logs")
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list audit logs")
	}

	return logs, total, nil
}

var _ Reader = (*GormSink)(nil)
