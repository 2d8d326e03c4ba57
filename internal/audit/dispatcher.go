package audit

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type Event struct {
	ID        string
	Action    string
	Entity    string
	Reference string
	Metadata  any
}

const defaultQueueSize = 100

// Dispatcher grava eventos em segundo plano. Nunca bloqueia quem chama.
type Dispatcher struct {
	logger *Logger
	log    *logrus.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log *logrus.Logger) *Dispatcher {
	return newDispatcher(logger, log, defaultQueueSize)
}

func newDispatcher(logger *Logger, log *logrus.Logger, size int) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}

	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.WithError(err).WithField("action", ev.Action).Error("audit error")
		}
	}
}

// Dispatch devolve false quando o evento foi descartado (fila cheia ou fechada).
func (d *Dispatcher) Dispatch(ev Event) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return false
	}

	select {
	case d.queue <- ev:
		return true
	default:
		// fila cheia → descartamos (nunca quebrar a API)
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
		return false
	}
}

// Close para de aceitar eventos e espera a fila esvaziar.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
