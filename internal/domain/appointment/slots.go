package appointment

import (
	"fmt"
	"time"
)

const (
	SlotWindowStart = 9 * time.Hour
	SlotWindowEnd   = 18 * time.Hour
	SlotStep        = 30 * time.Minute
)

// GenerateSlots lists the bookable HH:MM labels for date. When date falls on
// the same calendar day as now, labels at or before the current minute are dropped.
func GenerateSlots(date, now time.Time) []string {
	loc := now.Location()
	today := SameDay(date, now, loc)

	slots := make([]string, 0, int((SlotWindowEnd-SlotWindowStart)/SlotStep))
	for offset := SlotWindowStart; offset < SlotWindowEnd; offset += SlotStep {
		h := int(offset / time.Hour)
		m := int((offset % time.Hour) / time.Minute)

		if today && isPast(h, m, now) {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
	}
	return slots
}

func isPast(h, m int, now time.Time) bool {
	return h < now.Hour() || (h == now.Hour() && m <= now.Minute())
}

// ParseSlot devolve a hora e o minuto de um rótulo HH:MM.
func ParseSlot(label string) (int, int, error) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}
