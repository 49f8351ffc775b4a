package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/tracing"
)

// ======================================================
// INPUT
// ======================================================

type ClientInput struct {
	Name  string
	Email string
	Phone string
}

type CreateBookingInput struct {
	ServiceID uint
	Date      time.Time
	Notes     string

	// um dos dois
	ClientID *uint
	Client   *ClientInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	appointments domainAppointment.Repository
	clients      client.Repository
	catalog      catalog.Repository
	availability AvailabilityReader
	audit        *audit.Dispatcher
	metrics      *metrics.Metrics

	enforceDayAvailability bool
}

type CreateBookingOptions struct {
	// nil desliga a checagem de dia bloqueado
	Availability AvailabilityReader
	Metrics      *metrics.Metrics

	EnforceDayAvailability bool
}

func NewCreateBooking(
	appointments domainAppointment.Repository,
	clients client.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
	opts CreateBookingOptions,
) *CreateBooking {
	return &CreateBooking{
		appointments:           appointments,
		clients:                clients,
		catalog:                catalog,
		availability:           opts.Availability,
		audit:                  audit,
		metrics:                opts.Metrics,
		enforceDayAvailability: opts.EnforceDayAvailability && opts.Availability != nil,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (ap *models.Appointment, err error) {

	ctx, span := tracing.Start(ctx, "appointment.CreateBooking", tracing.ID("service.id", in.ServiceID))
	defer func() { tracing.End(span, err) }()

	if in.Client == nil && in.ClientID == nil {
		return nil, httperr.Validation("client", "client or clientId is required")
	}
	if in.Date.IsZero() {
		return nil, httperr.Validation("date", "is required")
	}

	// --------------------------------------------------
	// Serviço
	// --------------------------------------------------
	if _, err := uc.catalog.GetService(ctx, in.ServiceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Dia bloqueado (opcional)
	// --------------------------------------------------
	if uc.enforceDayAvailability {
		av, err := uc.availability.Execute(ctx, in.Date)
		if err != nil {
			return nil, err
		}
		if !av.IsAvailable {
			return nil, httperr.ErrBusiness("day_unavailable")
		}
	}

	// --------------------------------------------------
	// Cliente (reaproveita pelo e-mail)
	// --------------------------------------------------
	clientID, err := uc.resolveClient(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Agendamento (sempre pending)
	// --------------------------------------------------
	ap = domainAppointment.New(clientID, in.ServiceID, in.Date, in.Notes)
	if err := uc.appointments.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"clientId":  ap.ClientID,
			"serviceId": ap.ServiceID,
			"date":      ap.Date,
		},
	})
	uc.metrics.BookingCreated()

	return ap, nil
}

func (uc *CreateBooking) resolveClient(ctx context.Context, in CreateBookingInput) (uint, error) {
	if in.Client == nil {
		c, err := uc.clients.GetClient(ctx, *in.ClientID)
		if errors.Is(err, domain.ErrNotFound) {
			return 0, httperr.ErrBusiness("client_not_found")
		}
		if err != nil {
			return 0, err
		}
		return c.ID, nil
	}

	email := strings.TrimSpace(in.Client.Email)

	existing, err := uc.clients.GetClientByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	c := &models.Client{
		Name:  strings.TrimSpace(in.Client.Name),
		Email: email,
		Phone: strings.TrimSpace(in.Client.Phone),
	}
	if err := uc.clients.CreateClient(ctx, c); err != nil {
		// outra requisição criou o mesmo e-mail no meio do caminho
		if errors.Is(err, client.ErrEmailTaken) {
			existing, lookupErr := uc.clients.GetClientByEmail(ctx, email)
			if lookupErr == nil {
				return existing.ID, nil
			}
		}
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientCreated,
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c.ID, nil
}
