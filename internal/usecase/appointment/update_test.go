package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func seedBooking(t *testing.T, f *fixture) *models.Appointment {
	t.Helper()
	uc := NewCreateBooking(f.store, f.store, f.store, nil, CreateBookingOptions{})
	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceID: 3,
		Date:      bookingAt(),
		Client:    &ClientInput{Name: "Ana Silva", Email: "ana@example.com"},
	})
	require.NoError(t, err)
	return ap
}

func TestStatusRoundTripKeepsSingleRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := seedBooking(t, f)
	notifier := &recordingNotifier{}

	uc := NewUpdateAppointment(f.store, f.store, f.store, f.audit, UpdateAppointmentOptions{Notifier: notifier})

	for _, st := range []domainAppointment.Status{
		domainAppointment.StatusConfirmed,
		domainAppointment.StatusCanceled,
		domainAppointment.StatusPending,
	} {
		got, err := uc.UpdateStatus(ctx, ap.ID, st)
		require.NoError(t, err)
		assert.Equal(t, string(st), got.Status)
	}

	all, err := f.store.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "pending", all[0].Status)

	assert.Len(t, notifier.calls(), 3)
	assert.Equal(t, []string{
		audit.ActionAppointmentStatusChanged,
		audit.ActionAppointmentStatusChanged,
		audit.ActionAppointmentStatusChanged,
	}, actions(f.flush()))
}

func TestUpdateWithoutStatusChangeDoesNotNotify(t *testing.T) {
	f := newFixture(t)
	ap := seedBooking(t, f)
	notifier := &recordingNotifier{}
	uc := NewUpdateAppointment(f.store, f.store, f.store, f.audit, UpdateAppointmentOptions{Notifier: notifier})

	notes := "francesinha"
	svc := uint(1)
	got, err := uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{Notes: &notes, ServiceID: &svc}, nil)

	require.NoError(t, err)
	assert.Equal(t, "francesinha", got.Notes)
	assert.Equal(t, uint(1), got.ServiceID)
	assert.Empty(t, notifier.calls())
	assert.Equal(t, []string{audit.ActionAppointmentUpdated}, actions(f.flush()))
}

func TestUpdateErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := seedBooking(t, f)
	uc := NewUpdateAppointment(f.store, f.store, f.store, f.audit, UpdateAppointmentOptions{})

	_, err := uc.UpdateStatus(ctx, 999, domainAppointment.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := "done"
	_, err = uc.Execute(ctx, ap.ID, UpdateAppointmentInput{Status: &bad}, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	missing := uint(77)
	_, err = uc.Execute(ctx, ap.ID, UpdateAppointmentInput{ServiceID: &missing}, nil)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	stored, err := f.store.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)
	assert.Equal(t, uint(3), stored.ServiceID)
}

func TestClientSpendTracking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := seedBooking(t, f)
	uc := NewUpdateAppointment(f.store, f.store, f.store, f.audit, UpdateAppointmentOptions{TrackClientSpend: true})

	_, err := uc.UpdateStatus(ctx, ap.ID, domainAppointment.StatusConfirmed)
	require.NoError(t, err)

	c, err := f.store.GetClient(ctx, ap.ClientID)
	require.NoError(t, err)
	assert.Equal(t, 35.0, c.TotalSpent)
	require.NotNil(t, c.LastVisit)
	assert.True(t, c.LastVisit.Equal(bookingAt()))

	// confirmed -> confirmed não soma de novo
	_, err = uc.UpdateStatus(ctx, ap.ID, domainAppointment.StatusConfirmed)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, ap.ID, domainAppointment.StatusCanceled)
	require.NoError(t, err)

	c, err = f.store.GetClient(ctx, ap.ClientID)
	require.NoError(t, err)
	assert.Zero(t, c.TotalSpent)
}

func TestSpendNotTrackedByDefault(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := seedBooking(t, f)
	uc := NewUpdateAppointment(f.store, f.store, f.store, nil, UpdateAppointmentOptions{})

	_, err := uc.UpdateStatus(ctx, ap.ID, domainAppointment.StatusConfirmed)
	require.NoError(t, err)

	c, err := f.store.GetClient(ctx, ap.ClientID)
	require.NoError(t, err)
	assert.Zero(t, c.TotalSpent)
	assert.Nil(t, c.LastVisit)
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := seedBooking(t, f)
	uc := NewDeleteAppointment(f.store, f.audit)

	require.NoError(t, uc.Execute(ctx, ap.ID, nil))
	assert.ErrorIs(t, uc.Execute(ctx, ap.ID, nil), domain.ErrNotFound)

	_, err := f.store.GetAppointment(ctx, ap.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{audit.ActionAppointmentDeleted}, actions(f.flush()))
}
