package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/reports"
)

// Store guarda tudo em mapas protegidos por mutex. Usado nos testes e com STORE=memory.
type Store struct {
	mu sync.RWMutex

	seq map[string]uint

	users        map[uint]models.User
	clients      map[uint]models.Client
	categories   map[uint]models.ServiceCategory
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	availability map[uint]models.Availability
	templates    map[uint]models.MessageTemplate

	now func() time.Time
}

var (
	_ appointment.Repository = (*Store)(nil)
	_ client.Repository      = (*Store)(nil)
	_ catalog.Repository     = (*Store)(nil)
	_ messaging.Repository   = (*Store)(nil)
	_ user.Repository        = (*Store)(nil)
	_ reports.Repository     = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		seq:          map[string]uint{},
		users:        map[uint]models.User{},
		clients:      map[uint]models.Client{},
		categories:   map[uint]models.ServiceCategory{},
		services:     map[uint]models.Service{},
		appointments: map[uint]models.Appointment{},
		availability: map[uint]models.Availability{},
		templates:    map[uint]models.MessageTemplate{},
		now:          time.Now,
	}
}

// nextID respeita um id já preenchido (seed com ids fixos).
func (s *Store) nextID(kind string, requested uint) uint {
	if requested > s.seq[kind] {
		s.seq[kind] = requested
		return requested
	}
	if requested != 0 {
		return requested
	}
	s.seq[kind]++
	return s.seq[kind]
}

func sortedValues[T any](m map[uint]T, keep func(T) bool) []T {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if keep == nil || keep(m[id]) {
			out = append(out, m[id])
		}
	}
	return out
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *Store) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.NotFound("user")
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.NotFound("user")
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID("user", u.ID)
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	return nil
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (s *Store) ListClients(_ context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.clients, nil), nil
}

func (s *Store) GetClient(_ context.Context, id uint) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, domain.NotFound("client")
	}
	return &c, nil
}

func (s *Store) GetClientByEmail(_ context.Context, email string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if strings.EqualFold(c.Email, email) {
			return &c, nil
		}
	}
	return nil, domain.NotFound("client")
}

func (s *Store) CreateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.clients {
		if strings.EqualFold(existing.Email, c.Email) {
			return client.ErrEmailTaken
		}
	}

	c.ID = s.nextID("client", c.ID)
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.clients[c.ID] = *c
	return nil
}

func (s *Store) UpdateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.ID]; !ok {
		return domain.NotFound("client")
	}
	for _, existing := range s.clients {
		if existing.ID != c.ID && strings.EqualFold(existing.Email, c.Email) {
			return client.ErrEmailTaken
		}
	}

	c.UpdatedAt = s.now()
	s.clients[c.ID] = *c
	return nil
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (s *Store) ListCategories(_ context.Context) ([]models.ServiceCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.categories, nil), nil
}

func (s *Store) GetCategory(_ context.Context, id uint) (*models.ServiceCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cat, ok := s.categories[id]
	if !ok {
		return nil, domain.NotFound("category")
	}
	return &cat, nil
}

func (s *Store) CreateCategory(_ context.Context, cat *models.ServiceCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat.ID = s.nextID("category", cat.ID)
	s.categories[cat.ID] = *cat
	return nil
}

func (s *Store) UpdateCategory(_ context.Context, cat *models.ServiceCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[cat.ID]; !ok {
		return domain.NotFound("category")
	}
	s.categories[cat.ID] = *cat
	return nil
}

func (s *Store) DeleteCategory(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return domain.NotFound("category")
	}
	delete(s.categories, id)
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (s *Store) ListServices(_ context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.services, nil), nil
}

func (s *Store) ListServicesByCategory(_ context.Context, categoryID uint) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.services, func(svc models.Service) bool {
		return svc.CategoryID == categoryID
	}), nil
}

func (s *Store) GetService(_ context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.NotFound("service")
	}
	return &svc, nil
}

func (s *Store) CreateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = s.nextID("service", svc.ID)
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[svc.ID]; !ok {
		return domain.NotFound("service")
	}
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) DeleteService(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return domain.NotFound("service")
	}
	delete(s.services, id)
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.appointments, nil), nil
}

func (s *Store) ListAppointmentsByStatus(_ context.Context, status appointment.Status) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.appointments, func(ap models.Appointment) bool {
		return ap.Status == string(status)
	}), nil
}

func (s *Store) ListAppointmentsBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := sortedValues(s.appointments, func(ap models.Appointment) bool {
		return !ap.Date.Before(start) && ap.Date.Before(end)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *Store) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.NotFound("appointment")
	}
	return &ap, nil
}

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap.ID = s.nextID("appointment", ap.ID)
	now := s.now()
	ap.CreatedAt, ap.UpdatedAt = now, now
	s.appointments[ap.ID] = *ap
	return nil
}

func (s *Store) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[ap.ID]; !ok {
		return domain.NotFound("appointment")
	}
	ap.UpdatedAt = s.now()
	s.appointments[ap.ID] = *ap
	return nil
}

func (s *Store) DeleteAppointment(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return domain.NotFound("appointment")
	}
	delete(s.appointments, id)
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (s *Store) ListAvailability(_ context.Context) ([]models.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.availability, nil), nil
}

func (s *Store) GetAvailabilityByDay(_ context.Context, day time.Time) (*models.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, av := range s.availability {
		if av.Date.Equal(day) {
			return &av, nil
		}
	}
	return nil, domain.NotFound("availability")
}

func (s *Store) CreateAvailability(_ context.Context, av *models.Availability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.availability {
		if existing.Date.Equal(av.Date) {
			return appointment.ErrDayTaken
		}
	}

	av.ID = s.nextID("availability", av.ID)
	s.availability[av.ID] = *av
	return nil
}

func (s *Store) UpdateAvailability(_ context.Context, av *models.Availability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.availability[av.ID]; !ok {
		return domain.NotFound("availability")
	}
	s.availability[av.ID] = *av
	return nil
}

// --------------------------------------------------
// Message templates
// --------------------------------------------------

func (s *Store) ListTemplates(_ context.Context) ([]models.MessageTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.templates, nil), nil
}

func (s *Store) GetTemplate(_ context.Context, id uint) (*models.MessageTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, domain.NotFound("template")
	}
	return &t, nil
}

func (s *Store) GetTemplateByType(_ context.Context, templateType string) (*models.MessageTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := sortedValues(s.templates, func(t models.MessageTemplate) bool {
		return t.Type == templateType
	})
	if len(matches) == 0 {
		return nil, domain.NotFound("template")
	}
	return &matches[0], nil
}

func (s *Store) CreateTemplate(_ context.Context, t *models.MessageTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextID("template", t.ID)
	s.templates[t.ID] = *t
	return nil
}

func (s *Store) UpdateTemplate(_ context.Context, t *models.MessageTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[t.ID]; !ok {
		return domain.NotFound("template")
	}
	s.templates[t.ID] = *t
	return nil
}

// --------------------------------------------------
// Reports
// --------------------------------------------------

func (s *Store) ConfirmedRevenue(_ context.Context, since time.Time) ([]reports.RevenueRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	confirmed := sortedValues(s.appointments, func(ap models.Appointment) bool {
		return ap.Status == string(appointment.StatusConfirmed) && !ap.Date.Before(since)
	})

	rows := make([]reports.RevenueRow, 0, len(confirmed))
	for _, ap := range confirmed {
		row := reports.RevenueRow{
			AppointmentID: ap.ID,
			Date:          ap.Date,
			ServiceID:     ap.ServiceID,
			ServiceName:   "Unknown Service",
		}
		if svc, ok := s.services[ap.ServiceID]; ok {
			row.ServiceName = svc.Name
			row.Price = svc.Price
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}
