package cleanup

import (
	"errors"
	"log/slog"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse registration order and forgets them.
// Every job runs even if an earlier one fails; the failures are joined.
func CleanUp() error {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		slog.Info("cleanup job started", slog.String("job", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
			errs = append(errs, errors.New(j.Name+": "+err.Error()))
			continue
		}
		slog.Info("cleaned", slog.String("job", j.Name))
	}
	return errors.Join(errs...)
}
