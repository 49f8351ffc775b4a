package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domainAppointment.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domainAppointment.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	actorID *uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
