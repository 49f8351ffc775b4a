package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Appointment, error)

	// [start, end)
	ListAppointmentsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
	) ([]models.Availability, error)

	// day já normalizado com DayKey
	GetAvailabilityByDay(
		ctx context.Context,
		day time.Time,
	) (*models.Availability, error)

	// CreateAvailability devolve ErrDayTaken quando o dia já tem registro.
	CreateAvailability(
		ctx context.Context,
		av *models.Availability,
	) error

	UpdateAvailability(
		ctx context.Context,
		av *models.Availability,
	) error
}
