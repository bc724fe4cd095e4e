// Package metrics exposes the service's Prometheus collectors on a
// dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultNamespace = "penafiel"
	defaultSubsystem = "analytics"
)

type Registry struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	sourceQueries       *prometheus.CounterVec
	sourceDuration      *prometheus.HistogramVec
	breakerState        *prometheus.GaugeVec
	cacheLookups        *prometheus.CounterVec
	jobRuns             *prometheus.CounterVec
	jobDuration         *prometheus.HistogramVec
}

type Option func(*Registry)

func WithNamespace(namespace string) Option {
	return func(r *Registry) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

func WithBuckets(buckets []float64) Option {
	return func(r *Registry) {
		if len(buckets) > 0 {
			r.buckets = buckets
		}
	}
}

// WithProcessCollectors adds the Go runtime and process collectors.
func WithProcessCollectors() Option {
	return func(r *Registry) {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.init()
	return r
}

func (r *Registry) init() {
	auto := promauto.With(r.registry)

	r.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status_code"})

	r.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   r.buckets,
	}, []string{"route", "method"})

	r.sourceQueries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "source_queries_total",
		Help:      "Data source reads by source, dataset and result.",
	}, []string{"source", "dataset", "result"})

	r.sourceDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "source_query_duration_seconds",
		Help:      "Data source read latency by source and dataset.",
		Buckets:   r.buckets,
	}, []string{"source", "dataset"})

	r.breakerState = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "source_circuit_open",
		Help:      "1 while the data source circuit breaker is open or half-open.",
	}, []string{"source"})

	r.cacheLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by key prefix and result.",
	}, []string{"prefix", "result"})

	r.jobRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "scheduler_job_runs_total",
		Help:      "Scheduler job executions by job and result.",
	}, []string{"job", "result"})

	r.jobDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "scheduler_job_duration_seconds",
		Help:      "Scheduler job duration by job.",
		Buckets:   r.buckets,
	}, []string{"job"})
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (r *Registry) ObserveSource(source, dataset string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.sourceQueries.WithLabelValues(source, dataset, result).Inc()
	r.sourceDuration.WithLabelValues(source, dataset).Observe(elapsed.Seconds())
}

func (r *Registry) SetBreakerOpen(source string, open bool) {
	if r == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	r.breakerState.WithLabelValues(source).Set(v)
}

func (r *Registry) CacheHit(prefix string) {
	if r == nil {
		return
	}
	r.cacheLookups.WithLabelValues(prefix, "hit").Inc()
}

func (r *Registry) CacheMiss(prefix string) {
	if r == nil {
		return
	}
	r.cacheLookups.WithLabelValues(prefix, "miss").Inc()
}

func (r *Registry) ObserveJob(job string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.jobRuns.WithLabelValues(job, result).Inc()
	r.jobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
}
