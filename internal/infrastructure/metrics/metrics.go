package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "factskill_requests_total",
		Help: "Requests dispatched, by request kind and the handler that served them",
	}, []string{"kind", "handler"})

	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "factskill_errors_total",
		Help: "Requests answered with the error message, by error code",
	}, []string{"code"})

	DispatchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "factskill_dispatch_latency_seconds",
		Help:    "End-to-end handling latency per front-end",
		Buckets: prometheus.DefBuckets,
	}, []string{"transport"})

	JournalFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "factskill_journal_failures_total",
		Help: "Interaction journal writes that failed",
	})
)
