// Package metrics содержит Prometheus-метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса (HTTP, БД, домен)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbPoolOpen      *prometheus.GaugeVec
	dbPoolIdle      *prometheus.GaugeVec
	dbPoolInUse     *prometheus.GaugeVec

	schedulingRunsTotal      *prometheus.CounterVec
	interviewsScheduledTotal *prometheus.CounterVec
	notificationsTotal       *prometheus.CounterVec
	calendarFallbacksTotal   *prometheus.CounterVec
}

// New создает и регистрирует метрики в default-регистре.
// Имя сервиса передается лейблом в каждый вызов записи
func New() *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		dbPoolOpen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_open_connections",
				Help: "Number of open connections in the pool",
			},
			[]string{"service"},
		),
		dbPoolIdle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_idle_connections",
				Help: "Number of idle connections in the pool",
			},
			[]string{"service"},
		),
		dbPoolInUse: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_in_use_connections",
				Help: "Number of connections currently in use",
			},
			[]string{"service"},
		),
		schedulingRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduling_runs_total",
				Help: "Total number of interview scheduling batch runs",
			},
			[]string{"service", "result"},
		),
		interviewsScheduledTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interviews_scheduled_total",
				Help: "Total number of interviews scheduled",
			},
			[]string{"service", "source"},
		),
		notificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Total number of notification send attempts",
			},
			[]string{"service", "result"},
		),
		calendarFallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calendar_fallbacks_total",
				Help: "Total number of scheduling runs degraded to synthetic slots",
			},
			[]string{"service"},
		),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbPoolOpen,
		m.dbPoolIdle,
		m.dbPoolInUse,
		m.schedulingRunsTotal,
		m.interviewsScheduledTotal,
		m.notificationsTotal,
		m.calendarFallbacksTotal,
	)

	return m
}

// ObserveHTTPRequest записывает метрики HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(seconds)
}

// ObserveDBQuery записывает длительность SQL-запроса
func (m *Metrics) ObserveDBQuery(service, operation string, seconds float64) {
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(seconds)
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(service string, open, idle, inUse int) {
	m.dbPoolOpen.WithLabelValues(service).Set(float64(open))
	m.dbPoolIdle.WithLabelValues(service).Set(float64(idle))
	m.dbPoolInUse.WithLabelValues(service).Set(float64(inUse))
}

// IncSchedulingRun увеличивает счетчик batch-прогонов планировщика
func (m *Metrics) IncSchedulingRun(service, result string) {
	m.schedulingRunsTotal.WithLabelValues(service, result).Inc()
}

// IncInterviewScheduled увеличивает счетчик запланированных интервью
// source: "caldav" | "simulated" | "synthetic"
func (m *Metrics) IncInterviewScheduled(service, source string) {
	m.interviewsScheduledTotal.WithLabelValues(service, source).Inc()
}

// IncNotification увеличивает счетчик отправленных уведомлений
// result: "success" | "error"
func (m *Metrics) IncNotification(service, result string) {
	m.notificationsTotal.WithLabelValues(service, result).Inc()
}

// IncCalendarFallback увеличивает счетчик деградаций календаря
func (m *Metrics) IncCalendarFallback(service string) {
	m.calendarFallbacksTotal.WithLabelValues(service).Inc()
}
