package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics é nil-safe: um *Metrics nil ignora todas as observações.
type Metrics struct {
	registry *prometheus.Registry

	bookingsCreated    prometheus.Counter
	statusTransitions  *prometheus.CounterVec
	availabilityWrites *prometheus.CounterVec
	notificationsSent  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "appointments_created_total",
			Help:      "Appointments created through the public booking endpoint",
		}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "status_transitions_total",
			Help:      "Appointment status changes made by administrators",
		}, []string{"from", "to"}),
		availabilityWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "availability",
			Name:      "writes_total",
			Help:      "Day availability records written",
		}, []string{"is_available"}),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "notify",
			Name:      "messages_total",
			Help:      "Client notifications by channel and outcome",
		}, []string{"channel", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.bookingsCreated,
		m.statusTransitions,
		m.availabilityWrites,
		m.notificationsSent,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) StatusTransition(from, to string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) AvailabilityWritten(isAvailable bool) {
	if m == nil {
		return
	}
	m.availabilityWrites.WithLabelValues(strconv.FormatBool(isAvailable)).Inc()
}

func (m *Metrics) NotificationSent(channel string, err error) {
	if m == nil {
		return
	}
	status := "sent"
	if err != nil {
		status = "failed"
	}
	m.notificationsSent.WithLabelValues(channel, status).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
