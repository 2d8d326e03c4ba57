package booking

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

// Admission é o que os casos de uso enxergam do Scheduler.
type Admission interface {
	AddSchedule(ctx context.Context, schedule models.Schedule) error
	HasSchedule(schedule models.Schedule) bool
	Schedules() []models.Schedule
}

// Serialized coloca um mutex na frente do Scheduler para o servidor HTTP,
// que atende requisições em paralelo. O Scheduler em si não trava nada.
type Serialized struct {
	mu sync.Mutex
	s  *Scheduler
}

func NewSerialized(s *Scheduler) *Serialized {
	return &Serialized{s: s}
}

func (l *Serialized) AddSchedule(ctx context.Context, schedule models.Schedule) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.AddSchedule(ctx, schedule)
}

func (l *Serialized) HasSchedule(schedule models.Schedule) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.HasSchedule(schedule)
}

func (l *Serialized) Schedules() []models.Schedule {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Schedules()
}

var (
	_ Admission = (*Scheduler)(nil)
	_ Admission = (*Serialized)(nil)
)
