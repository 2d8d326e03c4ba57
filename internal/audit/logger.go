package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

// Sink grava uma linha de auditoria já montada.
type Sink interface {
	Write(ctx context.Context, entry models.AuditLog) error
}

type Logger struct {
	sink Sink
	now  func() time.Time
}

func New(sink Sink) *Logger {
	return &Logger{sink: sink, now: time.Now}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	id := ev.ID
	if id == "" {
		id = uuid.NewString()
	}

	return l.sink.Write(ctx, models.AuditLog{
		EventID:   id,
		Action:    ev.Action,
		Entity:    ev.Entity,
		Reference: ev.Reference,
		Metadata:  metaJSON,
		CreatedAt: l.now(),
	})
}

// ======================================================
// Sinks
// ======================================================

type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, entry models.AuditLog) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(&entry).Error, "insert audit log")
}

// LogSink é usado quando não há banco configurado.
type LogSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Write(ctx context.Context, entry models.AuditLog) error {
	s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"event_id":  entry.EventID,
		"action":    entry.Action,
		"entity":    entry.Entity,
		"reference": entry.Reference,
		"metadata":  entry.Metadata,
	}).Info("audit")
	return nil
}

var (
	_ Sink = (*GormSink)(nil)
	_ Sink = (*LogSink)(nil)
)
