// Package metrics содержит prometheus-метрики content-сервиса.
//
// Metrics реализует scheduler.Recorder и счётчик ремонта рангов партнёров,
// а также отдаёт HTTP-middleware с метриками по маршрутам chi.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "content"

// Metrics — набор метрик сервиса, зарегистрированных в одном Registerer.
type Metrics struct {
	pending      prometheus.Gauge
	published    *prometheus.CounterVec
	publishFails prometheus.Counter
	scanFails    prometheus.Counter
	scanDuration prometheus.Histogram
	rankRepairs  prometheus.Counter
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New создаёт и регистрирует метрики в reg.
// Для процесса используется prometheus.DefaultRegisterer, в тестах — отдельный реестр.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "pending_timers",
			Help:      "Number of registered per-item publication timers.",
		}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "published_total",
			Help:      "Drafts promoted to published, by trigger.",
		}, []string{"source"}),
		publishFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "publish_failures_total",
			Help:      "Failed publish writes.",
		}),
		scanFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "scan_failures_total",
			Help:      "Reconciliation scans that could not read scheduled drafts.",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "scan_duration_seconds",
			Help:      "Duration of reconciliation scans.",
			Buckets:   prometheus.DefBuckets,
		}),
		rankRepairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "partners",
			Name:      "rank_repairs_total",
			Help:      "Partner lists whose ranks were resequenced on read.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	reg.MustRegister(
		m.pending,
		m.published,
		m.publishFails,
		m.scanFails,
		m.scanDuration,
		m.rankRepairs,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

func (m *Metrics) SetPending(n int)            { m.pending.Set(float64(n)) }
func (m *Metrics) IncPublished(source string)  { m.published.WithLabelValues(source).Inc() }
func (m *Metrics) IncPublishFailure()          { m.publishFails.Inc() }
func (m *Metrics) IncScanFailure()             { m.scanFails.Inc() }
func (m *Metrics) ObserveScan(d time.Duration) { m.scanDuration.Observe(d.Seconds()) }

// IncRankRepair отмечает ремонт рангов партнёров.
func (m *Metrics) IncRankRepair() { m.rankRepairs.Inc() }

// HTTP — middleware, считающая запросы и их длительность.
// Метка route — шаблон маршрута chi, а не сырой путь.
func (m *Metrics) HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}

		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
