package appointment

import "github.com/BruksfildServices01/salon-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

var statuses = []Status{StatusPending, StatusConfirmed, StatusCanceled}

func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Valid() bool {
	for _, st := range statuses {
		if s == st {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return s, nil
}

// Toda criação começa em pending, independente do que o cliente enviar.
func InitialStatus() Status {
	return StatusPending
}

// CanTransition: o administrador pode mover entre quaisquer estados válidos.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}
