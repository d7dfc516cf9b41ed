package middleware

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	rateMisses *prometheus.CounterVec
	orphanRefs prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripsplit",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tripsplit",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		rateMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripsplit",
			Name:      "currency_rate_misses_total",
			Help:      "Conversions that fell back to identity because a rate was missing.",
		}, []string{"currency"}),
		orphanRefs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tripsplit",
			Name:      "settlement_orphan_refs_total",
			Help:      "Expense references to non-members skipped during settlement.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.rateMisses, m.orphanRefs)
	return m
}

// Interceptor records a count and latency for every RPC call.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeUnknown.String()
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					code = connectErr.Code().String()
				}
			}
			m.requests.WithLabelValues(procedure, code).Inc()
			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// RateMiss counts a conversion that had no rate for code.
func (m *Metrics) RateMiss(code string) {
	m.rateMisses.WithLabelValues(code).Inc()
}

// OrphanRefs counts n skipped settlement references.
func (m *Metrics) OrphanRefs(n int) {
	m.orphanRefs.Add(float64(n))
}
