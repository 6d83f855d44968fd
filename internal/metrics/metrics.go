// Package metrics holds the prometheus collectors of the service. A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	recalculations      *prometheus.CounterVec
	streakConflicts     prometheus.Counter
	resetGrants         *prometheus.CounterVec
	resetRewardsPaid    *prometheus.CounterVec
	resetZeroFailures   prometheus.Counter
	jobRuns             *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "levelup_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		recalculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_recalculations_total",
				Help: "XP recalculations by outcome",
			},
			[]string{"outcome"},
		),
		streakConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "levelup_streak_conflicts_total",
			Help: "Lost compare-and-swap attempts on user streaks",
		}),
		resetGrants: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_monthly_reset_grants_total",
				Help: "Monthly reward grants by scope and outcome",
			},
			[]string{"scope", "outcome"},
		),
		resetRewardsPaid: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_monthly_reset_rewards_paid_total",
				Help: "Reward currency paid by the monthly reset",
			},
			[]string{"scope"},
		),
		resetZeroFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "levelup_monthly_reset_zero_failures_total",
			Help: "Monthly resets that could not zero monthly xp after all retries",
		}),
		jobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelup_job_runs_total",
				Help: "Scheduled job runs by job and outcome",
			},
			[]string{"job", "outcome"},
		),
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.recalculations,
		m.streakConflicts,
		m.resetGrants,
		m.resetRewardsPaid,
		m.resetZeroFailures,
		m.jobRuns,
	)
	return m
}

func (m *Metrics) ObserveRequest(path, method string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(path, method).Observe(took.Seconds())
}

func (m *Metrics) Recalculation(outcome string) {
	if m == nil {
		return
	}
	m.recalculations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) StreakConflict() {
	if m == nil {
		return
	}
	m.streakConflicts.Inc()
}

func (m *Metrics) ResetGrant(scope, outcome string, amount int64) {
	if m == nil {
		return
	}
	m.resetGrants.WithLabelValues(scope, outcome).Inc()
	if amount > 0 {
		m.resetRewardsPaid.WithLabelValues(scope).Add(float64(amount))
	}
}

func (m *Metrics) ResetZeroFailure() {
	if m == nil {
		return
	}
	m.resetZeroFailures.Inc()
}

func (m *Metrics) JobRun(job, outcome string) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(job, outcome).Inc()
}
