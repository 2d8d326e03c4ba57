package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/restaurant-booking/internal/db"
	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/idempotency"
	"github.com/BruksfildServices01/restaurant-booking/internal/logger"
	"github.com/BruksfildServices01/restaurant-booking/internal/notification"
	"github.com/BruksfildServices01/restaurant-booking/internal/routes"
	"github.com/BruksfildServices01/restaurant-booking/internal/timezone"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Error("failed to load configuration")
		return 1
	}

	log := logger.New(cfg.LogLevel)

	// --------------------------------------------------
	// Auditoria: Postgres se configurado, senão log
	// --------------------------------------------------
	var (
		sink   audit.Sink = audit.NewLogSink(log)
		reader audit.Reader
	)
	if cfg.DBUrl != "" {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.WithError(err).Error("failed to open database")
			return 1
		}
		defer func() {
			if err := dbpkg.Close(db); err != nil {
				log.WithError(err).Warn("failed to close database")
			}
		}()
		gormSink := audit.NewGormSink(db)
		sink, reader = gormSink, gormSink
	}

	dispatcher := audit.NewDispatcher(audit.New(sink), log)
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := dispatcher.Close(closeCtx); err != nil {
			log.WithError(err).Warn("audit queue not drained")
		}
	}()

	// --------------------------------------------------
	// Idempotência: Redis se configurado, senão memória
	// --------------------------------------------------
	var store idempotency.Store = idempotency.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rdb, err := idempotency.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.WithError(err).Error("failed to connect redis")
			return 1
		}
		defer rdb.Close()
		store = idempotency.NewRedisStore(rdb)
		log.WithField("addr", cfg.Redis.Addr).Info("redis connected")
	}

	// --------------------------------------------------
	// Scheduler
	// --------------------------------------------------
	scheduler, err := domain.NewScheduler(
		cfg.CapacityPerHour,
		domain.WithRestDay(cfg.RestDay),
		domain.WithClock(timezone.Clock(cfg.Timezone)),
		domain.WithLogger(log),
		domain.WithSMSSender(notification.NewLogSMSSender(log)),
		domain.WithMailSender(notification.NewLogMailSender(log)),
	)
	if err != nil {
		log.WithError(err).Error("failed to create scheduler")
		return 1
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:      cfg,
		Admission:   domain.NewSerialized(scheduler),
		Auditor:     dispatcher,
		Idempotency: store,
		Logger:      log,
		AuditReader: reader,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":              cfg.Addr(),
			"capacity_per_hour": scheduler.CapacityPerHour(),
			"rest_day":          scheduler.RestDay().String(),
			"timezone":          cfg.Timezone,
		}).Info("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("failed to start server")
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("server shutdown error")
		}
	}

	return 0
}
