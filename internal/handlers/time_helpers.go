package handlers

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// Datas chegam como YYYY-MM-DD ou timestamp ISO; horas sem fuso são do salão.

func parseDay(value string, loc *time.Location) (time.Time, error) {
	return timezone.ParseDate(value, loc)
}

func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	return timezone.ParseTimestamp(value, loc)
}
