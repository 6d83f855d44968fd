package service

import (
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/limbo/levelup/internal/metrics"
)

const defaultPageSize = 500

type options struct {
	now        func() time.Time
	logger     *slog.Logger
	metrics    *metrics.Metrics
	newBackOff func() backoff.BackOff
	pageSize   int
}

type Option func(*options)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithBackOff sets the retry policy factory used for optimistic updates and critical writes.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(o *options) {
		o.newBackOff = newBackOff
	}
}

// WithPageSize bounds how many rows batch jobs hold in memory at once.
func WithPageSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 10 * time.Second
	return backoff.WithMaxRetries(b, 5)
}

func applyOptions(opts []Option) options {
	o := options{
		now:        time.Now,
		logger:     slog.Default(),
		newBackOff: defaultBackOff,
		pageSize:   defaultPageSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) today() time.Time {
	return o.now().UTC()
}
