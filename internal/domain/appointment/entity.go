package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func New(clientID, serviceID uint, date time.Time, notes string) *models.Appointment {
	return &models.Appointment{
		ClientID:  clientID,
		ServiceID: serviceID,
		Date:      date,
		Notes:     notes,
		Status:    string(InitialStatus()),
	}
}

// Transition aplica o novo status e devolve o anterior.
func Transition(ap *models.Appointment, to Status) (Status, error) {
	from := Status(ap.Status)
	if err := CanTransition(from, to); err != nil {
		return from, err
	}

	ap.Status = string(to)
	return from, nil
}
