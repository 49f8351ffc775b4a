package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ======================================================
// STEPS
// ======================================================

type Step int

const (
	StepService Step = iota
	StepDateTime
	StepConfirmation
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepDateTime:
		return "datetime"
	case StepConfirmation:
		return "confirmation"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

var (
	ErrIncompleteSelection = errors.New("select a date and a time to continue")
	ErrPastDay             = errors.New("day is in the past")
	ErrOutsideMonth        = errors.New("day is outside the visible month")
	ErrTimeUnavailable     = errors.New("time is not available")
	ErrWrongStep           = errors.New("action not allowed in the current step")
)

type ClientDetails struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// ======================================================
// WIZARD
// ======================================================

// Wizard guarda o estado do agendamento público entre os passos.
// Pertence a quem chama; nada fica no servidor.
type Wizard struct {
	Step Step

	CategoryID uint
	Service    *models.Service

	// zero = qualquer mês
	VisibleMonth time.Time
	Day          time.Time
	Time         string
	DateTime     time.Time

	Client ClientDetails

	Appointment *models.Appointment
	LastError   error

	loc *time.Location
}

func NewWizard(loc *time.Location) *Wizard {
	if loc == nil {
		loc = time.UTC
	}
	return &Wizard{Step: StepService, loc: loc}
}

// --------------------------------------------------
// Passo 1: serviço
// --------------------------------------------------

func (w *Wizard) SelectCategory(id uint) {
	if w.CategoryID != id && w.Service != nil && w.Service.CategoryID != id {
		w.Service = nil
	}
	w.CategoryID = id
}

// SelectService guarda o serviço e avança para data/hora.
func (w *Wizard) SelectService(svc models.Service) error {
	if w.Step != StepService {
		return ErrWrongStep
	}
	w.Service = &svc
	w.CategoryID = svc.CategoryID
	w.Step = StepDateTime
	return nil
}

// --------------------------------------------------
// Passo 2: data e hora
// --------------------------------------------------

func (w *Wizard) ShowMonth(year int, month time.Month) {
	w.VisibleMonth = time.Date(year, month, 1, 0, 0, 0, 0, w.loc)
}

func (w *Wizard) SelectDate(day, now time.Time) error {
	if w.Step != StepDateTime {
		return ErrWrongStep
	}

	d := domainAppointment.DayKey(day, w.loc)
	if d.Before(domainAppointment.DayKey(now, w.loc)) {
		return ErrPastDay
	}
	if !w.VisibleMonth.IsZero() &&
		(d.Year() != w.VisibleMonth.Year() || d.Month() != w.VisibleMonth.Month()) {
		return ErrOutsideMonth
	}

	if !d.Equal(w.Day) {
		w.Time = ""
		w.DateTime = time.Time{}
	}
	w.Day = d
	return nil
}

func (w *Wizard) AvailableTimes(now time.Time) []string {
	if w.Day.IsZero() {
		return []string{}
	}
	return domainAppointment.GenerateSlots(w.Day, now.In(w.loc))
}

func (w *Wizard) SelectTime(label string, now time.Time) error {
	if w.Step != StepDateTime {
		return ErrWrongStep
	}
	if w.Day.IsZero() {
		return ErrIncompleteSelection
	}

	offered := false
	for _, l := range w.AvailableTimes(now) {
		if l == label {
			offered = true
			break
		}
	}
	if !offered {
		return ErrTimeUnavailable
	}

	h, m, err := domainAppointment.ParseSlot(label)
	if err != nil {
		return err
	}

	w.Time = label
	w.DateTime = time.Date(w.Day.Year(), w.Day.Month(), w.Day.Day(), h, m, 0, 0, w.loc)
	return nil
}

// Continue só avança com data e hora escolhidas.
func (w *Wizard) Continue() error {
	switch w.Step {
	case StepService:
		if w.Service == nil {
			return ErrIncompleteSelection
		}
		w.Step = StepDateTime
	case StepDateTime:
		if w.Day.IsZero() || w.Time == "" {
			return ErrIncompleteSelection
		}
		w.Step = StepConfirmation
	default:
		return ErrWrongStep
	}
	return nil
}

// Back volta um passo mantendo o que já foi preenchido.
func (w *Wizard) Back() {
	switch w.Step {
	case StepDateTime:
		w.Step = StepService
	case StepConfirmation:
		w.Step = StepDateTime
	}
}

// --------------------------------------------------
// Passo 3: confirmação
// --------------------------------------------------

func (w *Wizard) SetClientDetails(name, email, phone, notes string) {
	w.Client = ClientDetails{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
		Notes: strings.TrimSpace(notes),
	}
}

type PayloadClient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Payload é o corpo de POST /api/appointments.
type Payload struct {
	ServiceID uint          `json:"serviceId"`
	Date      time.Time     `json:"date"`
	Notes     string        `json:"notes,omitempty"`
	Client    PayloadClient `json:"client"`
}

func (w *Wizard) Payload() (Payload, error) {
	if w.Service == nil || w.DateTime.IsZero() {
		return Payload{}, ErrIncompleteSelection
	}
	return Payload{
		ServiceID: w.Service.ID,
		Date:      w.DateTime,
		Notes:     w.Client.Notes,
		Client: PayloadClient{
			Name:  w.Client.Name,
			Email: w.Client.Email,
			Phone: w.Client.Phone,
		},
	}, nil
}

type Submitter interface {
	SubmitBooking(ctx context.Context, p Payload) (*models.Appointment, error)
}

// Submit envia uma vez. Em erro o wizard continua na confirmação com
// LastError preenchido; reenviar é decisão de quem chama.
func (w *Wizard) Submit(ctx context.Context, s Submitter) error {
	if w.Step != StepConfirmation {
		return ErrWrongStep
	}

	p, err := w.Payload()
	if err != nil {
		w.LastError = err
		return err
	}

	ap, err := s.SubmitBooking(ctx, p)
	if err != nil {
		w.LastError = err
		return err
	}

	w.Appointment = ap
	w.LastError = nil
	w.Step = StepDone
	return nil
}
