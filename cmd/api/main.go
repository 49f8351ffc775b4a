package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/cache"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
	"github.com/BruksfildServices01/salon-booking/internal/reminders"
	"github.com/BruksfildServices01/salon-booking/internal/reports"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "salon-api",
	})

	loc := timezone.Location(cfg.Timezone)
	clock := timezone.SalonClock(cfg.Timezone)
	m := metrics.New()

	deps := routes.Deps{
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Clock:   clock,
		Tokens:  auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var sinks []audit.Sink

	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		sink := audit.NewMemorySink()

		deps.Appointments = store
		deps.Clients = store
		deps.Catalog = store
		deps.Templates = store
		deps.Users = store
		deps.Reports = store
		deps.AuditLogs = sink
		sinks = append(sinks, sink)

		log.Warn("running with in-memory store, data is lost on restart")

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatal("database", "error", err)
		}

		reportsDB, err := reports.Open(cfg.DBUrl)
		if err != nil {
			log.Fatal("reports database", "error", err)
		}
		defer reportsDB.Close()

		sink := audit.NewGormSink(db)

		deps.Appointments = repository.NewAppointmentGormRepository(db)
		deps.Clients = repository.NewClientGormRepository(db)
		deps.Catalog = repository.NewCatalogGormRepository(db)
		deps.Templates = repository.NewTemplateGormRepository(db)
		deps.Users = repository.NewUserGormRepository(db)
		deps.Reports = reports.NewSQLRepository(reportsDB)
		deps.AuditLogs = sink
		sinks = append(sinks, sink)
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err := dbpkg.Seed(seedCtx, dbpkg.SeedRepos{
		Users:     deps.Users,
		Catalog:   deps.Catalog,
		Templates: deps.Templates,
	}, dbpkg.SeedAdmin{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	cancelSeed()
	if err != nil {
		log.Fatal("seed", "error", err)
	}

	// ======================================================
	// INTEGRAÇÕES OPCIONAIS
	// ======================================================
	var kafkaSink *audit.KafkaSink
	if cfg.Kafka.Enabled() {
		kafkaSink = audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		sinks = append(sinks, kafkaSink)
		log.Info("audit events mirrored to kafka", "topic", cfg.Kafka.Topic)
	}

	dispatcher := audit.NewDispatcher(log.With("component", "audit"), sinks...)
	deps.Audit = dispatcher

	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password)
		defer rdb.Close()
		deps.Cache = cache.NewAvailabilityCache(rdb, cfg.Redis.TTL)
		log.Info("availability cache enabled", "addr", cfg.Redis.Addr)
	}

	notifierOpts := notify.Options{
		Loc:     loc,
		Log:     log.With("component", "notify"),
		Metrics: m,
	}
	if cfg.Twilio.Enabled() {
		notifierOpts.SMS = notify.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
	}
	if cfg.SendGrid.Enabled() {
		notifierOpts.Email = notify.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}
	notifier := notify.NewNotifier(deps.Templates, deps.Clients, deps.Catalog, notifierOpts)
	deps.Notifier = notifier

	if cfg.S3.Enabled() {
		deps.Uploader = media.NewS3Uploader(media.S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			PublicBaseURL:   cfg.S3.PublicBaseURL,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
	}

	if cfg.MercadoPagoAccessToken != "" {
		gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Error("mercadopago disabled", "error", err)
		} else {
			deps.Payments = gateway
		}
	}

	// ======================================================
	// LEMBRETES
	// ======================================================
	reminderJob := reminders.NewJob(deps.Appointments, notifier, clock, log.With("component", "reminders"))
	if err := reminderJob.Start(cfg.ReminderCron); err != nil {
		log.Fatal("reminders", "error", err, "spec", cfg.ReminderCron)
	}

	// ======================================================
	// HTTP
	// ======================================================
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "store", cfg.Store, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown", "error", err)
	}

	reminderJob.Stop()
	notifier.Wait()
	dispatcher.Close()

	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			log.Error("kafka close", "error", err)
		}
	}
}
