package appointment

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ErrDayTaken: já existe registro de disponibilidade para o dia.
var ErrDayTaken = errors.New("availability already recorded for day")

// DayKey normaliza um instante para meia-noite do mesmo dia civil em loc.
func DayKey(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc).Equal(DayKey(b, loc))
}

// DefaultAvailability: sem registro, o dia está aberto.
func DefaultAvailability(day time.Time) models.Availability {
	return models.Availability{
		Date:        day,
		IsAvailable: true,
	}
}
