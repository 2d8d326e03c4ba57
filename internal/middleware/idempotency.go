package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/idempotency"
)

const IdempotencyHeader = "Idempotency-Key"

// Idempotency barra a repetição de um POST com a mesma chave.
// Sem o header a requisição segue normalmente.
func Idempotency(store idempotency.Store, ttl time.Duration, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ok, err := store.Reserve(c.Request.Context(), key, ttl)
		if err != nil {
			log.WithError(err).Error("idempotency reserve failed")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "idempotency_unavailable"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error_code": "duplicate_request",
				"message":    "This request was already processed.",
			})
			return
		}

		release := func() {
			if err := store.Release(c.Request.Context(), key); err != nil {
				log.WithError(err).Warn("idempotency release failed")
			}
		}

		// panic no handler: libera a chave e deixa o Recovery responder.
		defer func() {
			if r := recover(); r != nil {
				release()
				panic(r)
			}
		}()

		c.Next()

		// 502 = reserva gravada, só o envio falhou: a chave fica.
		status := c.Writer.Status()
		if status >= 300 && status != http.StatusBadGateway {
			release()
		}
	}
}
