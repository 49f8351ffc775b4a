package availability

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type SetAvailability struct {
	repo    domainAppointment.Repository
	cache   Cache
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	loc     *time.Location
	log     *logging.Logger
}

func NewSetAvailability(
	repo domainAppointment.Repository,
	cache Cache,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	loc *time.Location,
	log *logging.Logger,
) *SetAvailability {
	if log == nil {
		log = logging.Nop()
	}
	return &SetAvailability{
		repo:    repo,
		cache:   cache,
		audit:   audit,
		metrics: metrics,
		loc:     loc,
		log:     log,
	}
}

// Execute grava o dia (um registro por dia, último a escrever vence).
// created indica se o registro foi inserido agora.
func (uc *SetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	isAvailable bool,
	actorID *uint,
) (av *models.Availability, created bool, err error) {

	day := domainAppointment.DayKey(date, uc.loc)

	av, err = uc.repo.GetAvailabilityByDay(ctx, day)
	switch {
	case err == nil:
		if err := uc.update(ctx, av, isAvailable); err != nil {
			return nil, false, err
		}
	case errors.Is(err, domain.ErrNotFound):
		av = &models.Availability{Date: day, IsAvailable: isAvailable}
		err := uc.repo.CreateAvailability(ctx, av)
		switch {
		case err == nil:
			created = true
		case errors.Is(err, domainAppointment.ErrDayTaken):
			// outra escrita criou o dia entre a leitura e o insert
			av, err = uc.repo.GetAvailabilityByDay(ctx, day)
			if err != nil {
				return nil, false, err
			}
			if err := uc.update(ctx, av, isAvailable); err != nil {
				return nil, false, err
			}
		default:
			return nil, false, err
		}
	default:
		return nil, false, err
	}
	av.Date = day

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, day); err != nil {
			uc.log.Warn("availability cache invalidate failed", "day", day.Format("2006-01-02"), "error", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   audit.ActionAvailabilitySet,
		Entity:   "availability",
		EntityID: &av.ID,
		Metadata: map[string]any{"date": day.Format("2006-01-02"), "isAvailable": isAvailable},
	})
	uc.metrics.AvailabilityWritten(isAvailable)

	return av, created, nil
}

func (uc *SetAvailability) update(ctx context.Context, av *models.Availability, isAvailable bool) error {
	av.IsAvailable = isAvailable
	return uc.repo.UpdateAvailability(ctx, av)
}
