package availability

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Cache interface {
	Get(ctx context.Context, day time.Time) (*models.Availability, bool, error)
	Set(ctx context.Context, day time.Time, av models.Availability) error
	Invalidate(ctx context.Context, day time.Time) error
}

type GetAvailability struct {
	repo  domainAppointment.Repository
	cache Cache
	loc   *time.Location
	log   *logging.Logger
}

// cache pode ser nil.
func NewGetAvailability(
	repo domainAppointment.Repository,
	cache Cache,
	loc *time.Location,
	log *logging.Logger,
) *GetAvailability {
	if log == nil {
		log = logging.Nop()
	}
	return &GetAvailability{repo: repo, cache: cache, loc: loc, log: log}
}

// Execute nunca falha por ausência de registro: o default é disponível.
func (uc *GetAvailability) Execute(ctx context.Context, date time.Time) (*models.Availability, error) {
	day := domainAppointment.DayKey(date, uc.loc)

	if uc.cache != nil {
		av, hit, err := uc.cache.Get(ctx, day)
		if err != nil {
			uc.log.Warn("availability cache read failed", "day", day.Format("2006-01-02"), "error", err)
		}
		if hit {
			return av, nil
		}
	}

	av, err := uc.repo.GetAvailabilityByDay(ctx, day)
	if errors.Is(err, domain.ErrNotFound) {
		def := domainAppointment.DefaultAvailability(day)
		av = &def
	} else if err != nil {
		return nil, err
	}
	// o banco devolve timestamptz no fuso do servidor
	av.Date = day

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, day, *av); err != nil {
			uc.log.Warn("availability cache write failed", "day", day.Format("2006-01-02"), "error", err)
		}
	}

	return av, nil
}

func (uc *GetAvailability) List(ctx context.Context) ([]models.Availability, error) {
	return uc.repo.ListAvailability(ctx)
}
