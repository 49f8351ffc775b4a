package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/admin"
	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
	"github.com/BruksfildServices01/salon-booking/internal/reports"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/salon-booking/internal/usecase/availability"
	ucBilling "github.com/BruksfildServices01/salon-booking/internal/usecase/billing"
	ucClient "github.com/BruksfildServices01/salon-booking/internal/usecase/client"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// Deps: integrações opcionais (Cache, Notifier, Payments, Uploader) ficam
// como interface nil quando não configuradas.
type Deps struct {
	Config  *config.Config
	Log     *logging.Logger
	Metrics *metrics.Metrics
	Clock   timezone.Clock

	Appointments domainAppointment.Repository
	Clients      client.Repository
	Catalog      catalog.Repository
	Templates    messaging.Repository
	Users        user.Repository
	Reports      reports.Repository

	Audit     *audit.Dispatcher
	AuditLogs audit.Lister
	Tokens    *auth.TokenIssuer

	Cache    ucAvailability.Cache
	Notifier ucAppointment.StatusNotifier
	Payments payments.Gateway
	Uploader media.Uploader
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.Timezone)
	clock := d.Clock
	if clock == nil {
		clock = timezone.SalonClock(cfg.Timezone)
	}
	log := d.Log
	if log == nil {
		log = logging.Nop()
	}

	validators.Register()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Metrics(d.Metrics),
		middleware.CORS(cfg.CORSOrigins),
	)

	// ======================================================
	// USE CASES — AVAILABILITY
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(d.Appointments, d.Cache, loc, log)
	setAvailabilityUC := ucAvailability.NewSetAvailability(d.Appointments, d.Cache, d.Audit, d.Metrics, loc, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createBookingUC := ucAppointment.NewCreateBooking(
		d.Appointments,
		d.Clients,
		d.Catalog,
		d.Audit,
		ucAppointment.CreateBookingOptions{
			Availability:           getAvailabilityUC,
			Metrics:                d.Metrics,
			EnforceDayAvailability: cfg.EnforceDayAvailability,
		},
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		d.Appointments,
		d.Clients,
		d.Catalog,
		d.Audit,
		ucAppointment.UpdateAppointmentOptions{
			Notifier:         d.Notifier,
			Metrics:          d.Metrics,
			Log:              log,
			TrackClientSpend: cfg.TrackClientSpend,
		},
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(d.Appointments, d.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(d.Appointments, d.Clients, d.Catalog, loc)
	timeSlotsUC := ucAppointment.NewGetTimeSlots(getAvailabilityUC, clock, cfg.EnforceDayAvailability)

	paymentLinkUC := payments.NewCreatePaymentLink(d.Appointments, d.Clients, d.Catalog, d.Payments)

	// ======================================================
	// USE CASES — CLIENTS / BILLING
	// ======================================================
	listClientsUC := ucClient.NewListClients(d.Clients)
	createClientUC := ucClient.NewCreateClient(d.Clients, d.Audit)
	updateClientUC := ucClient.NewUpdateClient(d.Clients)

	summaryUC := ucBilling.NewGetSummary(d.Reports, clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(auth.NewLogin(d.Users, d.Tokens), d.Users, log)
	publicHandler := handlers.NewPublicHandler(createBookingUC, timeSlotsUC, getAvailabilityUC, loc, log)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog, log)
	clientHandler := handlers.NewClientHandler(listClientsUC, createClientUC, updateClientUC, log)
	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		paymentLinkUC,
		loc,
		log,
	)
	availabilityHandler := handlers.NewAvailabilityHandler(setAvailabilityUC, loc, log)
	templateHandler := handlers.NewTemplateHandler(d.Templates, log)
	billingHandler := handlers.NewBillingHandler(summaryUC, log)
	mediaHandler := handlers.NewMediaHandler(d.Uploader, clock, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, loc, log)
	adminHandler := handlers.NewAdminHandler(admin.NewManager(listAppointmentsUC, updateAppointmentUC, log.With("component", "admin")), log)

	// ======================================================
	// OPERACIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := r.Group("/api")

	// ------------------------------
	// API PÚBLICA
	// ------------------------------
	api.POST("/auth/login", authHandler.Login)

	api.GET("/service-categories", catalogHandler.ListCategories)
	api.GET("/service-categories/:id", catalogHandler.GetCategory)
	api.GET("/services", catalogHandler.ListServices)
	api.GET("/services/:id", catalogHandler.GetService)
	api.GET("/services/category/:categoryId", catalogHandler.ListServicesByCategory)
	api.GET("/services-with-categories", catalogHandler.ServicesWithCategories)

	api.POST("/clients", clientHandler.Create)
	api.POST("/appointments", publicHandler.CreateAppointment)

	api.GET("/availability", publicHandler.ListAvailability)
	api.GET("/availability/:date", publicHandler.GetAvailability)
	api.GET("/time-slots", publicHandler.TimeSlots)

	// ------------------------------
	// API ADMIN
	// ------------------------------
	secured := api.Group("")
	secured.Use(middleware.RequireAdmin(d.Tokens))
	{
		secured.GET("/auth/me", authHandler.Me)

		secured.GET("/clients", clientHandler.List)
		secured.GET("/clients/:id", clientHandler.Get)
		secured.PUT("/clients/:id", clientHandler.Update)

		secured.POST("/service-categories", catalogHandler.CreateCategory)
		secured.PUT("/service-categories/:id", catalogHandler.UpdateCategory)
		secured.DELETE("/service-categories/:id", catalogHandler.DeleteCategory)

		secured.POST("/services", catalogHandler.CreateService)
		secured.PUT("/services/:id", catalogHandler.UpdateService)
		secured.DELETE("/services/:id", catalogHandler.DeleteService)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.GET("/appointments", appointmentHandler.List)
		secured.GET("/appointments/status/:status", appointmentHandler.ListByStatus)
		secured.GET("/appointments/date/:date", appointmentHandler.ListByDate)
		secured.GET("/appointments/:id", appointmentHandler.Get)
		secured.PUT("/appointments/:id", appointmentHandler.Update)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)
		secured.POST("/appointments/:id/payment-link", appointmentHandler.PaymentLink)
		secured.GET("/appointments-with-details", appointmentHandler.WithDetails)

		secured.GET("/admin/appointments", adminHandler.Tab)
		secured.PATCH("/admin/appointments/:id/status", adminHandler.Transition)

		secured.POST("/availability", availabilityHandler.Set)

		secured.GET("/message-templates", templateHandler.List)
		secured.GET("/message-templates/type/:type", templateHandler.GetByType)
		secured.GET("/message-templates/:id", templateHandler.Get)
		secured.POST("/message-templates", templateHandler.Create)
		secured.PUT("/message-templates/:id", templateHandler.Update)

		secured.GET("/billing/summary", billingHandler.Summary)
		secured.POST("/media/images", mediaHandler.UploadImage)
		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
