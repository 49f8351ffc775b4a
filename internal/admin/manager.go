package admin

import (
	"context"
	"sync"

	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Source interface {
	WithDetails(ctx context.Context) ([]dto.AppointmentWithDetails, error)
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint, status domainAppointment.Status) (*models.Appointment, error)
}

// Manager é a tela de agendamentos do painel: abas por status e troca de status.
type Manager struct {
	source  Source
	updater StatusUpdater
	log     *logging.Logger

	mu     sync.RWMutex
	cached []dto.AppointmentWithDetails
}

func NewManager(source Source, updater StatusUpdater, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{source: source, updater: updater, log: log}
}

// List busca tudo de novo e filtra pela aba. Sem paginação.
func (m *Manager) List(ctx context.Context, tab string) ([]dto.AppointmentWithDetails, error) {
	status, err := domainAppointment.ParseStatus(tab)
	if err != nil {
		return nil, err
	}
	if err := m.Refresh(ctx); err != nil {
		return nil, err
	}
	return m.Cached(status), nil
}

func (m *Manager) Refresh(ctx context.Context) error {
	all, err := m.source.WithDetails(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cached = all
	m.mu.Unlock()
	return nil
}

// Cached devolve a última listagem carregada, filtrada pelo status.
func (m *Manager) Cached(status domainAppointment.Status) []dto.AppointmentWithDetails {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]dto.AppointmentWithDetails, 0, len(m.cached))
	for _, ap := range m.cached {
		if ap.Status == string(status) {
			out = append(out, ap)
		}
	}
	return out
}

// Transition muda o status e recarrega a listagem. Em erro a listagem
// em memória não é tocada. Falha só no refresh não desfaz a transição:
// a listagem fica velha até o próximo List.
func (m *Manager) Transition(ctx context.Context, id uint, status string) (*models.Appointment, error) {
	to, err := domainAppointment.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := m.updater.UpdateStatus(ctx, id, to)
	if err != nil {
		return nil, err
	}

	if err := m.Refresh(ctx); err != nil {
		m.log.Warn("admin listing refresh failed after transition",
			"appointment_id", id,
			"status", string(to),
			"error", err,
		)
	}
	return ap, nil
}
