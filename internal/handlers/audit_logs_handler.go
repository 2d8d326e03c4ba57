package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
	log    *logrus.Logger
}

func NewAuditLogsHandler(reader audit.Reader, log *logrus.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, log: log}
}

// List aceita ?action=&reference=&from=2006-01-02&to=2006-01-02&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action:    c.Query("action"),
		Reference: c.Query("reference"),
		Page:      page,
		Limit:     limit,
	}.Normalize()

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Invalid 'from' date.")
			return
		}
		f.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Invalid 'to' date.")
			return
		}
		// dia inteiro
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		h.log.WithError(err).Error("list audit logs")
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.OK(c, gin.H{
		"data":  logs,
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
	})
}
