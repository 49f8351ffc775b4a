package appointment

import (
	"context"
	"time"

	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type GetTimeSlots struct {
	availability AvailabilityReader
	clock        timezone.Clock
	enforce      bool
}

// availability pode ser nil quando a regra de dia bloqueado está desligada.
func NewGetTimeSlots(
	availability AvailabilityReader,
	clock timezone.Clock,
	enforceDayAvailability bool,
) *GetTimeSlots {
	return &GetTimeSlots{
		availability: availability,
		clock:        clock,
		enforce:      enforceDayAvailability && availability != nil,
	}
}

func (uc *GetTimeSlots) Execute(ctx context.Context, date time.Time) ([]string, error) {
	if uc.enforce {
		av, err := uc.availability.Execute(ctx, date)
		if err != nil {
			return nil, err
		}
		if !av.IsAvailable {
			return []string{}, nil
		}
	}

	return domainAppointment.GenerateSlots(date, uc.clock()), nil
}
