package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/logging"
)

const (
	ActionAppointmentCreated       = "appointment_created"
	ActionAppointmentStatusChanged = "appointment_status_changed"
	ActionAppointmentUpdated       = "appointment_updated"
	ActionAppointmentDeleted       = "appointment_deleted"
	ActionAvailabilitySet          = "availability_set"
	ActionClientCreated            = "client_created"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
	At       time.Time
}

// Sink recebe cada evento. Erros são só logados.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	log   *logging.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(log *logging.Logger, sinks ...Sink) *Dispatcher {
	if log == nil {
		log = logging.Nop()
	}
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, 100), // buffer seguro
		log:   log,
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, sink := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := sink.Write(ctx, ev); err != nil {
				d.log.Warn("audit sink failed", "action", ev.Action, "error", err)
			}
			cancel()
		}
	}
}

// Dispatch nunca bloqueia: fila cheia descarta o evento.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	defer func() {
		// Dispatch depois de Close
		if recover() != nil {
			d.log.Warn("audit dispatcher closed, dropping event", "action", ev.Action)
		}
	}()

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
