package notification

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

func newBufferLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, &buf
}

func TestLogSendersNeverFail(t *testing.T) {
	logger, buf := newBufferLogger()
	schedule := models.Schedule{
		Time:      time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
		PartySize: 2,
		Customer:  models.NewCustomer("Fake name", "010-1234-5678", "test@example.com"),
	}

	if err := NewLogSMSSender(logger).Send(context.Background(), schedule); err != nil {
		t.Fatalf("sms send: %v", err)
	}
	if err := NewLogMailSender(logger).SendMail(context.Background(), schedule.Customer.Email, schedule); err != nil {
		t.Fatalf("mail send: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"phone":"010-1234-5678"`) {
		t.Errorf("sms log missing phone: %s", out)
	}
	if !strings.Contains(out, `"to":"test@example.com"`) {
		t.Errorf("mail log missing recipient: %s", out)
	}
}

func TestLogSendersDefaultToStandardLogger(t *testing.T) {
	if NewLogSMSSender(nil).logger != logrus.StandardLogger() {
		t.Error("expected sms sender to fall back to the standard logger")
	}
	if NewLogMailSender(nil).logger != logrus.StandardLogger() {
		t.Error("expected mail sender to fall back to the standard logger")
	}
}
