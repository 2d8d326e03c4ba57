package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type fakeReader struct {
	got  audit.Filter
	logs []models.AuditLog
	err  error
}

func (f *fakeReader) List(_ context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	f.got = filter
	return f.logs, int64(len(f.logs)), f.err
}

func serveAudit(reader audit.Reader, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	r := gin.New()
	r.GET("/audit", NewAuditLogsHandler(reader, quiet).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestAuditLogsListFilters(t *testing.T) {
	reader := &fakeReader{logs: []models.AuditLog{{EventID: "e1", Action: "booking_created"}}}

	w := serveAudit(reader, "/audit?action=booking_created&from=2025-08-01&to=2025-08-01&page=2&limit=500")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	f := reader.got
	if f.Action != "booking_created" || f.Page != 2 || f.Limit != 50 {
		t.Errorf("unexpected filter %+v", f)
	}
	if f.From == nil || f.To == nil || f.To.Sub(*f.From) != 24*time.Hour {
		t.Errorf("unexpected range %v..%v", f.From, f.To)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"total":1`)) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAuditLogsListErrors(t *testing.T) {
	if w := serveAudit(&fakeReader{}, "/audit?from=yesterday"); w.Code != http.StatusBadRequest {
		t.Errorf("bad from = %d", w.Code)
	}
	if w := serveAudit(&fakeReader{err: errors.New("db down")}, "/audit"); w.Code != http.StatusInternalServerError {
		t.Errorf("reader error = %d", w.Code)
	}
}
