package booking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	"github.com/BruksfildServices01/restaurant-booking/internal/notification"
)

// Clock devolve o instante atual. Testes trocam por um valor fixo.
type Clock func() time.Time

// Scheduler faz o controle de admissão das reservas de um restaurante.
// Não é seguro para uso concorrente.
type Scheduler struct {
	capacityPerHour int
	restDay         time.Weekday
	clock           Clock
	logger          *logrus.Logger

	schedules []models.Schedule

	sms  notification.SMSSender
	mail notification.MailSender
}

type Option func(*Scheduler)

func WithClock(clock Clock) Option {
	return func(s *Scheduler) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithRestDay(day time.Weekday) Option {
	return func(s *Scheduler) {
		s.restDay = day
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithSMSSender(sender notification.SMSSender) Option {
	return func(s *Scheduler) {
		s.sms = sender
	}
}

func WithMailSender(sender notification.MailSender) Option {
	return func(s *Scheduler) {
		s.mail = sender
	}
}

func NewScheduler(capacityPerHour int, opts ...Option) (*Scheduler, error) {
	if capacityPerHour <= 0 {
		return nil, ErrInvalidCapacity
	}

	s := &Scheduler{
		capacityPerHour: capacityPerHour,
		restDay:         DefaultRestDay,
		clock:           time.Now,
		logger:          logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.sms == nil {
		s.sms = notification.NewLogSMSSender(s.logger)
	}
	if s.mail == nil {
		s.mail = notification.NewLogMailSender(s.logger)
	}

	return s, nil
}

// ======================================================
// Configuração
// ======================================================

// SetSMSSender troca o sender; nil volta para o sender de log.
func (s *Scheduler) SetSMSSender(sender notification.SMSSender) {
	if sender == nil {
		sender = notification.NewLogSMSSender(s.logger)
	}
	s.sms = sender
}

func (s *Scheduler) SetMailSender(sender notification.MailSender) {
	if sender == nil {
		sender = notification.NewLogMailSender(s.logger)
	}
	s.mail = sender
}

func (s *Scheduler) SetClock(clock Clock) {
	if clock == nil {
		clock = time.Now
	}
	s.clock = clock
}

func (s *Scheduler) Now() time.Time {
	return s.clock()
}

func (s *Scheduler) CapacityPerHour() int {
	return s.capacityPerHour
}

func (s *Scheduler) RestDay() time.Weekday {
	return s.restDay
}

// ======================================================
// Admissão
// ======================================================

// AddSchedule valida na ordem: dia de descanso, hora cheia, lotação.
// A reserva é gravada antes dos envios; um erro de envio volta como
// *NotificationError com a reserva já registrada.
func (s *Scheduler) AddSchedule(ctx context.Context, schedule models.Schedule) error {
	if schedule.PartySize <= 0 {
		return models.ErrInvalidPartySize
	}

	if IsDayOfRest(s.Now(), s.restDay) {
		return ErrDayOfRest
	}

	if !IsOnTheHour(schedule.Time) {
		return ErrNotOnTheHour
	}

	if s.bookedAt(schedule.Time)+schedule.PartySize > s.capacityPerHour {
		return ErrCapacityExceeded
	}

	s.schedules = append(s.schedules, schedule)

	if err := s.sms.Send(ctx, schedule); err != nil {
		return &NotificationError{Channel: "sms", Err: err}
	}

	if schedule.Customer.HasEmail() {
		if err := s.mail.SendMail(ctx, schedule.Customer.Email, schedule); err != nil {
			return &NotificationError{Channel: "mail", Err: err}
		}
	}

	return nil
}

func (s *Scheduler) HasSchedule(schedule models.Schedule) bool {
	for _, existing := range s.schedules {
		if existing.Equal(schedule) {
			return true
		}
	}
	return false
}

// Schedules devolve uma cópia, na ordem de inserção.
func (s *Scheduler) Schedules() []models.Schedule {
	out := make([]models.Schedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

// bookedAt soma as pessoas no mesmo instante exato (não só a mesma hora do dia).
func (s *Scheduler) bookedAt(at time.Time) int {
	total := 0
	for _, existing := range s.schedules {
		if existing.Time.Equal(at) {
			total += existing.PartySize
		}
	}
	return total
}
