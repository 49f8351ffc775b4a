package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Notifier struct {
	templates messaging.Repository
	clients   client.Repository
	catalog   catalog.Repository

	sms   SMSSender
	email EmailSender

	loc     *time.Location
	log     *logging.Logger
	metrics *metrics.Metrics

	wg sync.WaitGroup
}

type Options struct {
	SMS     SMSSender
	Email   EmailSender
	Loc     *time.Location
	Log     *logging.Logger
	Metrics *metrics.Metrics
}

func NewNotifier(
	templates messaging.Repository,
	clients client.Repository,
	catalog catalog.Repository,
	opts Options,
) *Notifier {
	loc := opts.Loc
	if loc == nil {
		loc = time.UTC
	}
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}

	return &Notifier{
		templates: templates,
		clients:   clients,
		catalog:   catalog,
		sms:       opts.SMS,
		email:     opts.Email,
		loc:       loc,
		log:       log,
		metrics:   opts.Metrics,
	}
}

// AppointmentStatusChanged dispara em background a mensagem do novo status.
// Falhas nunca voltam para quem mudou o status.
func (n *Notifier) AppointmentStatusChanged(ctx context.Context, ap models.Appointment) {
	templateType, ok := messaging.TypeForStatus(ap.Status)
	if !ok {
		return
	}

	ctx = context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := n.Send(ctx, templateType, ap); err != nil {
			n.log.Warn("notification not sent",
				"appointment_id", ap.ID,
				"template", templateType,
				"error", err,
			)
		}
	}()
}

// Wait espera os envios em andamento.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// Send renderiza o template do tipo e envia por todos os canais configurados.
func (n *Notifier) Send(ctx context.Context, templateType string, ap models.Appointment) error {
	tmpl, err := n.templates.GetTemplateByType(ctx, templateType)
	if errors.Is(err, domain.ErrNotFound) {
		n.log.Info("no template for notification", "template", templateType)
		return nil
	}
	if err != nil {
		return err
	}

	c, err := n.clients.GetClient(ctx, ap.ClientID)
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}

	serviceName := "Unknown Service"
	if svc, err := n.catalog.GetService(ctx, ap.ServiceID); err == nil {
		serviceName = svc.Name
	}

	subject, body := messaging.Render(*tmpl, messaging.Vars{
		ClientName:  c.Name,
		ServiceName: serviceName,
		Date:        ap.Date.In(n.loc),
	})

	var errs []error

	if n.sms != nil && c.Phone != "" {
		err := n.sms.SendSMS(ctx, c.Phone, body)
		n.metrics.NotificationSent("sms", err)
		errs = append(errs, err)
	}

	if n.email != nil && c.Email != "" {
		err := n.email.SendEmail(ctx, Recipient{Name: c.Name, Email: c.Email, Phone: c.Phone}, subject, body)
		n.metrics.NotificationSent("email", err)
		errs = append(errs, err)
	}

	if n.sms == nil && n.email == nil {
		n.log.Debug("no notification channel configured", "template", templateType)
	}

	return errors.Join(errs...)
}
