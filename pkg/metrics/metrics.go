package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUseConns      prometheus.Gauge
	DBIdleConns       prometheus.Gauge
	DBWaitCount       prometheus.Gauge

	// Бизнес-метрики
	ReservationsCreated  *prometheus.CounterVec
	ReservationsStatuses *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency.",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Total number of failed database queries.",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections.",
			ConstLabels: constLabels,
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: constLabels,
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections.",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}),
		ReservationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "reservations_created_total",
				Help:        "Reservation create attempts by result.",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		ReservationsStatuses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "reservation_status_changes_total",
				Help:        "Reservation status changes by target status.",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConns,
		m.DBIdleConns,
		m.DBWaitCount,
		m.ReservationsCreated,
		m.ReservationsStatuses,
	)

	return m
}

// IncReservationCreated учитывает попытку создания бронирования (created, conflict, invalid, error)
func (m *Metrics) IncReservationCreated(result string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(result).Inc()
}

// IncStatusChange учитывает смену статуса бронирования
func (m *Metrics) IncStatusChange(status string) {
	if m == nil {
		return
	}
	m.ReservationsStatuses.WithLabelValues(status).Inc()
}
