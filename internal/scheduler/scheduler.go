package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/metrics"
)

const (
	DefaultMonthlyResetCron = "0 0 1 * *"
	DefaultReconcileCron    = "30 3 * * *"
)

// Job is a named background task run on a cron schedule (UTC).
type Job struct {
	Name string
	Cron string
	Run  func(ctx context.Context) error
}

type Scheduler struct {
	s       gocron.Scheduler
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(m *metrics.Metrics, logger *slog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, errors.New("creating scheduler error: " + err.Error())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		s:       s,
		metrics: m,
		logger:  logger,
	}, nil
}

// Add schedules job. A run that is still going when the next one is due makes that
// next run wait instead of overlapping.
func (sc *Scheduler) Add(ctx context.Context, job Job) error {
	_, err := sc.s.NewJob(
		gocron.CronJob(job.Cron, false),
		gocron.NewTask(func() {
			sc.run(ctx, job)
		}),
		gocron.WithName(job.Name),
		gocron.WithSingletonMode(gocron.LimitModeWait),
	)
	if err != nil {
		return errors.New("scheduling " + job.Name + " error: " + err.Error())
	}
	sc.logger.Info("job scheduled", slog.String("job", job.Name), slog.String("cron", job.Cron))
	return nil
}

func (sc *Scheduler) run(ctx context.Context, job Job) {
	logger := sc.logger.With(slog.String("job", job.Name))
	start := time.Now()
	err := job.Run(ctx)
	took := slog.Duration("took", time.Since(start))
	switch {
	case err == nil:
		sc.metrics.JobRun(job.Name, "ok")
		logger.Info("job finished", took)
	case errors.Is(err, errorvalues.ErrResetAlreadyCompleted):
		sc.metrics.JobRun(job.Name, "skipped")
		logger.Info("job had nothing to do", took)
	default:
		sc.metrics.JobRun(job.Name, "failed")
		logger.Error("job failed", took, slog.String("error", err.Error()))
	}
}

func (sc *Scheduler) JobNames() []string {
	jobs := sc.s.Jobs()
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name())
	}
	return names
}

func (sc *Scheduler) Start() {
	sc.s.Start()
}

func (sc *Scheduler) Shutdown() error {
	return sc.s.Shutdown()
}
