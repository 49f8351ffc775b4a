package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

var _ domainAppointment.Repository = (*AppointmentGormRepository)(nil)

// notFound traduz o ErrRecordNotFound do gorm para o erro de domínio.
func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(entity)
	}
	return fmt.Errorf("%s: %w", entity, err)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var list []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return list, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	status domainAppointment.Status,
) ([]models.Appointment, error) {

	var list []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list appointments by status: %w", err)
	}
	return list, nil
}

func (r *AppointmentGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var list []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list appointments between: %w", err)
	}
	return list, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"service_id": ap.ServiceID,
			"date":       ap.Date,
			"notes":      ap.Notes,
			"status":     ap.Status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("appointment")
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("appointment")
	}
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAvailability(
	ctx context.Context,
) ([]models.Availability, error) {

	var list []models.Availability
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return list, nil
}

func (r *AppointmentGormRepository) GetAvailabilityByDay(
	ctx context.Context,
	day time.Time,
) (*models.Availability, error) {

	var av models.Availability
	if err := r.db.WithContext(ctx).
		Where("date = ?", day).
		First(&av).Error; err != nil {
		return nil, notFound(err, "availability")
	}
	return &av, nil
}

func (r *AppointmentGormRepository) CreateAvailability(
	ctx context.Context,
	av *models.Availability,
) error {
	if err := r.db.WithContext(ctx).Create(av).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domainAppointment.ErrDayTaken
		}
		return fmt.Errorf("create availability: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAvailability(
	ctx context.Context,
	av *models.Availability,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Availability{}).
		Where("id = ?", av.ID).
		Update("is_available", av.IsAvailable)
	if res.Error != nil {
		return fmt.Errorf("update availability: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("availability")
	}
	return nil
}
