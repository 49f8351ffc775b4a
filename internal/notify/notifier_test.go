package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type sentMessage struct {
	to, subject, body string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeSender) SendSMS(_ context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{to: to, body: body})
	return f.err
}

func (f *fakeSender) SendEmail(_ context.Context, to Recipient, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{to: to.Email, subject: subject, body: body})
	return f.err
}

func (f *fakeSender) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

func setup(t *testing.T) (*memory.Store, models.Appointment) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.CreateService(ctx, &models.Service{ID: 3, Name: "Nail Art", Price: 35, Duration: 60}))
	require.NoError(t, store.CreateClient(ctx, &models.Client{Name: "Ana Silva", Email: "ana@example.com", Phone: "912345678"}))
	require.NoError(t, store.CreateTemplate(ctx, &models.MessageTemplate{
		Type:    messaging.TypeConfirmation,
		Subject: "Confirmação de Agendamento",
		Body:    "Olá {client_name}, {service_name} em {appointment_date} às {appointment_time}.",
	}))

	ap := models.Appointment{ID: 1, ClientID: 1, ServiceID: 3, Status: "confirmed", Date: time.Date(2025, 6, 10, 13, 30, 0, 0, time.UTC)}
	return store, ap
}

func TestSendRendersAndUsesBothChannels(t *testing.T) {
	store, ap := setup(t)
	sms, email := &fakeSender{}, &fakeSender{}
	lisbon, _ := time.LoadLocation("Europe/Lisbon")
	n := NewNotifier(store, store, store, Options{SMS: sms, Email: email, Loc: lisbon})

	require.NoError(t, n.Send(context.Background(), messaging.TypeConfirmation, ap))

	require.Len(t, sms.messages(), 1)
	assert.Equal(t, "912345678", sms.messages()[0].to)
	assert.Equal(t, "Olá Ana Silva, Nail Art em 10/06/2025 às 14:30.", sms.messages()[0].body)

	require.Len(t, email.messages(), 1)
	assert.Equal(t, "ana@example.com", email.messages()[0].to)
	assert.Equal(t, "Confirmação de Agendamento", email.messages()[0].subject)
}

func TestSendWithoutTemplateIsNotAnError(t *testing.T) {
	store, ap := setup(t)
	sms := &fakeSender{}
	n := NewNotifier(store, store, store, Options{SMS: sms})

	require.NoError(t, n.Send(context.Background(), messaging.TypeCancellation, ap))
	assert.Empty(t, sms.messages())
}

func TestSendJoinsChannelErrors(t *testing.T) {
	store, ap := setup(t)
	n := NewNotifier(store, store, store, Options{SMS: &fakeSender{err: errors.New("twilio down")}, Email: &fakeSender{}})

	err := n.Send(context.Background(), messaging.TypeConfirmation, ap)
	assert.ErrorContains(t, err, "twilio down")
}

func TestStatusChangedIsAsyncAndIgnoresPending(t *testing.T) {
	store, ap := setup(t)
	sms := &fakeSender{}
	n := NewNotifier(store, store, store, Options{SMS: sms})

	pending := ap
	pending.Status = "pending"
	n.AppointmentStatusChanged(context.Background(), pending)
	n.AppointmentStatusChanged(context.Background(), ap)
	n.Wait()

	assert.Len(t, sms.messages(), 1)
}
