package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type Sender interface {
	Send(ctx context.Context, templateType string, ap models.Appointment) error
}

// Job envia o lembrete de véspera dos agendamentos confirmados.
type Job struct {
	appointments domainAppointment.Repository
	sender       Sender
	clock        timezone.Clock
	log          *logging.Logger

	cron *cron.Cron
}

func NewJob(
	appointments domainAppointment.Repository,
	sender Sender,
	clock timezone.Clock,
	log *logging.Logger,
) *Job {
	if log == nil {
		log = logging.Nop()
	}
	return &Job{
		appointments: appointments,
		sender:       sender,
		clock:        clock,
		log:          log,
	}
}

// Start agenda RunOnce no spec cron informado, no fuso do relógio do salão.
func (j *Job) Start(spec string) error {
	j.cron = cron.New(cron.WithLocation(j.clock().Location()))

	_, err := j.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		sent, err := j.RunOnce(ctx)
		if err != nil {
			j.log.Error("reminder run failed", "error", err)
			return
		}
		j.log.Info("reminders sent", "count", sent)
	})
	if err != nil {
		return fmt.Errorf("reminders: invalid schedule %q: %w", spec, err)
	}

	j.cron.Start()
	j.log.Info("reminder scheduler started", "schedule", spec)
	return nil
}

// Stop espera a execução em andamento terminar.
func (j *Job) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}

// RunOnce devolve quantos lembretes foram enviados. Falha de um envio não
// interrompe os demais.
func (j *Job) RunOnce(ctx context.Context) (int, error) {
	now := j.clock()
	start := domainAppointment.DayKey(now, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	appointments, err := j.appointments.ListAppointmentsBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, ap := range appointments {
		if ap.Status != string(domainAppointment.StatusConfirmed) {
			continue
		}
		if err := j.sender.Send(ctx, messaging.TypeReminder, ap); err != nil {
			j.log.Warn("reminder not sent", "appointment_id", ap.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}
