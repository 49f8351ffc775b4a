package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// AvailabilityReader resolve a disponibilidade de um dia (com default).
type AvailabilityReader interface {
	Execute(ctx context.Context, date time.Time) (*models.Availability, error)
}

// StatusNotifier avisa o cliente quando o status muda. Não pode bloquear.
type StatusNotifier interface {
	AppointmentStatusChanged(ctx context.Context, ap models.Appointment)
}
