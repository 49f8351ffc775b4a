package dto

import "github.com/BruksfildServices01/salon-booking/internal/models"

const (
	UnknownClient  = "Unknown Client"
	UnknownService = "Unknown Service"
)

type ClientSummary struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type ServiceSummary struct {
	ID       uint    `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration,omitempty"`
}

// AppointmentWithDetails é o agendamento com cliente e serviço resolvidos.
type AppointmentWithDetails struct {
	models.Appointment
	Client  ClientSummary  `json:"client"`
	Service ServiceSummary `json:"service"`
}

func NewAppointmentWithDetails(ap models.Appointment, c *models.Client, svc *models.Service) AppointmentWithDetails {
	out := AppointmentWithDetails{
		Appointment: ap,
		Client:      ClientSummary{Name: UnknownClient},
		Service:     ServiceSummary{Name: UnknownService},
	}
	if c != nil {
		out.Client = ClientSummary{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
	}
	if svc != nil {
		out.Service = ServiceSummary{ID: svc.ID, Name: svc.Name, Price: svc.Price, Duration: svc.Duration}
	}
	return out
}
