package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/tracing"
)

// Campos nil não são alterados.
type UpdateAppointmentInput struct {
	ServiceID *uint
	Date      *time.Time
	Notes     *string
	Status    *string
}

type UpdateAppointment struct {
	appointments domainAppointment.Repository
	clients      client.Repository
	catalog      catalog.Repository
	audit        *audit.Dispatcher
	notifier     StatusNotifier
	metrics      *metrics.Metrics
	log          *logging.Logger

	trackClientSpend bool
}

type UpdateAppointmentOptions struct {
	Notifier StatusNotifier
	Metrics  *metrics.Metrics
	Log      *logging.Logger

	TrackClientSpend bool
}

func NewUpdateAppointment(
	appointments domainAppointment.Repository,
	clients client.Repository,
	catalog catalog.Repository,
	audit *audit.Dispatcher,
	opts UpdateAppointmentOptions,
) *UpdateAppointment {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	return &UpdateAppointment{
		appointments:     appointments,
		clients:          clients,
		catalog:          catalog,
		audit:            audit,
		notifier:         opts.Notifier,
		metrics:          opts.Metrics,
		log:              log,
		trackClientSpend: opts.TrackClientSpend,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
	actorID *uint,
) (ap *models.Appointment, err error) {

	ctx, span := tracing.Start(ctx, "appointment.Update", tracing.ID("appointment.id", id))
	defer func() { tracing.End(span, err) }()

	ap, err = uc.appointments.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ServiceID != nil {
		if _, err := uc.catalog.GetService(ctx, *in.ServiceID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, httperr.ErrBusiness("service_not_found")
			}
			return nil, err
		}
		ap.ServiceID = *in.ServiceID
	}
	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	from := domainAppointment.Status(ap.Status)
	if in.Status != nil {
		to, err := domainAppointment.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if _, err := domainAppointment.Transition(ap, to); err != nil {
			return nil, err
		}
	}

	if err := uc.appointments.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	to := domainAppointment.Status(ap.Status)
	if from == to {
		uc.audit.Dispatch(audit.Event{
			UserID:   actorID,
			Action:   audit.ActionAppointmentUpdated,
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
		return ap, nil
	}

	// --------------------------------------------------
	// Efeitos da mudança de status
	// --------------------------------------------------
	if uc.trackClientSpend {
		if err := uc.applyLedger(ctx, ap, from, to); err != nil {
			uc.log.Warn("client ledger not updated", "appointment_id", ap.ID, "error", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   audit.ActionAppointmentStatusChanged,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})
	uc.metrics.StatusTransition(string(from), string(to))

	if uc.notifier != nil {
		uc.notifier.AppointmentStatusChanged(ctx, *ap)
	}

	return ap, nil
}

// UpdateStatus é o atalho usado pelo painel administrativo.
func (uc *UpdateAppointment) UpdateStatus(
	ctx context.Context,
	id uint,
	status domainAppointment.Status,
) (*models.Appointment, error) {
	s := string(status)
	return uc.Execute(ctx, id, UpdateAppointmentInput{Status: &s}, nil)
}

func (uc *UpdateAppointment) applyLedger(
	ctx context.Context,
	ap *models.Appointment,
	from, to domainAppointment.Status,
) error {

	entering := to == domainAppointment.StatusConfirmed
	leaving := from == domainAppointment.StatusConfirmed
	if !entering && !leaving {
		return nil
	}

	svc, err := uc.catalog.GetService(ctx, ap.ServiceID)
	if err != nil {
		return err
	}
	c, err := uc.clients.GetClient(ctx, ap.ClientID)
	if err != nil {
		return err
	}

	if entering {
		client.ApplyVisit(c, svc.Price, ap.Date)
	} else {
		client.RevertVisit(c, svc.Price)
	}
	return uc.clients.UpdateClient(ctx, c)
}
