package messaging

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const (
	TypeConfirmation = "confirmation"
	TypeCancellation = "cancellation"
	TypeReminder     = "reminder"
)

// Vars são os valores dos marcadores {client_name}, {appointment_date},
// {appointment_time} e {service_name}.
type Vars struct {
	ClientName  string
	ServiceName string
	Date        time.Time
}

func (v Vars) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{client_name}", v.ClientName,
		"{appointment_date}", v.Date.Format("02/01/2006"),
		"{appointment_time}", v.Date.Format("15:04"),
		"{service_name}", v.ServiceName,
	)
}

// Render substitui os marcadores no assunto e no corpo. Marcadores
// desconhecidos ficam como estão.
func Render(t models.MessageTemplate, v Vars) (subject, body string) {
	r := v.replacer()
	return r.Replace(t.Subject), r.Replace(t.Body)
}

// TypeForStatus devolve o template ligado a uma transição de status.
func TypeForStatus(status string) (string, bool) {
	switch status {
	case "confirmed":
		return TypeConfirmation, true
	case "canceled":
		return TypeCancellation, true
	}
	return "", false
}
