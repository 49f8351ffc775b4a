package appointment

import (
	"context"
	"time"

	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type ListAppointments struct {
	repo    domainAppointment.Repository
	clients client.Repository
	catalog catalog.Repository
	loc     *time.Location
}

func NewListAppointments(
	repo domainAppointment.Repository,
	clients client.Repository,
	catalog catalog.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo:    repo,
		clients: clients,
		catalog: catalog,
		loc:     loc,
	}
}

func (uc *ListAppointments) All(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}

func (uc *ListAppointments) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetAppointment(ctx, id)
}

func (uc *ListAppointments) ByStatus(ctx context.Context, raw string) ([]models.Appointment, error) {
	status, err := domainAppointment.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListAppointmentsByStatus(ctx, status)
}

// ByDate lista os agendamentos do dia civil de date no fuso do salão.
func (uc *ListAppointments) ByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	start := domainAppointment.DayKey(date, uc.loc)
	end := start.AddDate(0, 0, 1)
	return uc.repo.ListAppointmentsBetween(ctx, start, end)
}

// WithDetails junta cliente e serviço; referências perdidas viram "Unknown".
func (uc *ListAppointments) WithDetails(ctx context.Context) ([]dto.AppointmentWithDetails, error) {
	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := uc.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	clientByID := make(map[uint]*models.Client, len(clients))
	for i := range clients {
		clientByID[clients[i].ID] = &clients[i]
	}
	serviceByID := make(map[uint]*models.Service, len(services))
	for i := range services {
		serviceByID[services[i].ID] = &services[i]
	}

	out := make([]dto.AppointmentWithDetails, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAppointmentWithDetails(ap, clientByID[ap.ClientID], serviceByID[ap.ServiceID]))
	}
	return out, nil
}
