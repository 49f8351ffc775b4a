package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type fixture struct {
	store *memory.Store
	sink  *audit.MemorySink
	audit *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	sink := audit.NewMemorySink()
	d := audit.NewDispatcher(logging.Nop(), sink)
	t.Cleanup(d.Close)

	require.NoError(t, store.CreateCategory(ctx, &models.ServiceCategory{ID: 1, Name: "Manicure"}))
	require.NoError(t, store.CreateService(ctx, &models.Service{ID: 1, CategoryID: 1, Name: "Gel Simples", Price: 25, Duration: 45}))
	require.NoError(t, store.CreateService(ctx, &models.Service{ID: 3, CategoryID: 1, Name: "Nail Art", Price: 35, Duration: 60}))

	return &fixture{store: store, sink: sink, audit: d}
}

// flush espera o worker gravar os eventos pendentes.
func (f *fixture) flush() []models.AuditLog {
	f.audit.Close()
	return f.sink.Events()
}

type fakeAvailability struct {
	available bool
}

func (f fakeAvailability) Execute(_ context.Context, date time.Time) (*models.Availability, error) {
	return &models.Availability{Date: date, IsAvailable: f.available}, nil
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []models.Appointment
}

func (n *recordingNotifier) AppointmentStatusChanged(_ context.Context, ap models.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, ap)
}

func (n *recordingNotifier) calls() []models.Appointment {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Appointment(nil), n.got...)
}

func actions(logs []models.AuditLog) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Action)
	}
	return out
}
