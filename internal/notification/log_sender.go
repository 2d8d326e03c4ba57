package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

// ======================================================
// Senders padrão: só registram no log.
// ======================================================

type LogSMSSender struct {
	logger *logrus.Logger
}

func NewLogSMSSender(logger *logrus.Logger) *LogSMSSender {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogSMSSender{logger: logger}
}

func (s *LogSMSSender) Send(ctx context.Context, schedule models.Schedule) error {
	s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"phone":      schedule.Customer.Phone,
		"time":       schedule.Time,
		"party_size": schedule.PartySize,
	}).Info("sms sent")
	return nil
}

type LogMailSender struct {
	logger *logrus.Logger
}

func NewLogMailSender(logger *logrus.Logger) *LogMailSender {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogMailSender{logger: logger}
}

func (s *LogMailSender) SendMail(ctx context.Context, to string, schedule models.Schedule) error {
	s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"to":   to,
		"time": schedule.Time,
	}).Info("mail sent")
	return nil
}

var (
	_ SMSSender  = (*LogSMSSender)(nil)
	_ MailSender = (*LogMailSender)(nil)
)
