package payments

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
)

// CreatePaymentLink monta o checkout com o preço atual do serviço.
type CreatePaymentLink struct {
	appointments appointment.Repository
	clients      client.Repository
	catalog      catalog.Repository
	gateway      Gateway
}

func NewCreatePaymentLink(
	appointments appointment.Repository,
	clients client.Repository,
	catalog catalog.Repository,
	gateway Gateway,
) *CreatePaymentLink {
	return &CreatePaymentLink{
		appointments: appointments,
		clients:      clients,
		catalog:      catalog,
		gateway:      gateway,
	}
}

func (uc *CreatePaymentLink) Execute(ctx context.Context, appointmentID uint) (*Link, error) {
	if uc.gateway == nil {
		return nil, ErrNotConfigured
	}

	ap, err := uc.appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.catalog.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, err
	}

	checkout := Checkout{
		AppointmentID: ap.ID,
		Title:         svc.Name,
		UnitPrice:     svc.Price,
	}
	if c, err := uc.clients.GetClient(ctx, ap.ClientID); err == nil {
		checkout.PayerName = c.Name
		checkout.PayerEmail = c.Email
	}

	return uc.gateway.CreateCheckout(ctx, checkout)
}
