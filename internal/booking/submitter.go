package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	appointmentUC "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
)

type bookingCreator interface {
	Execute(ctx context.Context, in appointmentUC.CreateBookingInput) (*models.Appointment, error)
}

// UseCaseSubmitter envia o payload direto para o caso de uso, sem HTTP.
type UseCaseSubmitter struct {
	create bookingCreator
}

func NewUseCaseSubmitter(create bookingCreator) *UseCaseSubmitter {
	return &UseCaseSubmitter{create: create}
}

func (s *UseCaseSubmitter) SubmitBooking(ctx context.Context, p Payload) (*models.Appointment, error) {
	return s.create.Execute(ctx, appointmentUC.CreateBookingInput{
		ServiceID: p.ServiceID,
		Date:      p.Date,
		Notes:     p.Notes,
		Client: &appointmentUC.ClientInput{
			Name:  p.Client.Name,
			Email: p.Client.Email,
			Phone: p.Client.Phone,
		},
	})
}
