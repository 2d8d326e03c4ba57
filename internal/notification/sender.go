package notification

//go:generate mockgen -source=sender.go -destination=sender_mock.go -package=notification

import (
	"context"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

// SMSSender envia a confirmação por SMS de uma reserva aceita.
type SMSSender interface {
	Send(ctx context.Context, schedule models.Schedule) error
}

// MailSender envia a confirmação por email para o endereço informado.
type MailSender interface {
	SendMail(ctx context.Context, to string, schedule models.Schedule) error
}
