package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/progression"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

// ProgressRepos lists the stores the progress service reads evidence from.
type ProgressRepos struct {
	Users       repository.UsersRepositoryI
	Completions repository.CompletionsRepositoryI
	MoodLogs    repository.MoodLogsRepositoryI
	Resets      repository.MonthlyResetRepositoryI
}

// ProgressService owns the stored XP totals. They are only ever written from a full
// recompute over the evidence, never incremented.
type ProgressService struct {
	repos   ProgressRepos
	streaks StreakServiceI
	opts    options
}

func NewProgressService(repos ProgressRepos, streaks StreakServiceI, opts ...Option) *ProgressService {
	if repos.Users == nil || repos.Completions == nil || repos.MoodLogs == nil || repos.Resets == nil || streaks == nil {
		log.Fatal("on progress service provided nil dependencies")
	}
	return &ProgressService{
		repos:   repos,
		streaks: streaks,
		opts:    applyOptions(opts),
	}
}

func (ps *ProgressService) ComputeTotals(ctx context.Context, uid uuid.UUID) (entity.XpTotals, error) {
	if _, err := ps.findUser(ctx, uid); err != nil {
		return entity.XpTotals{}, err
	}
	return ps.computeTotals(ctx, uid)
}

func (ps *ProgressService) computeTotals(ctx context.Context, uid uuid.UUID) (entity.XpTotals, error) {
	completions, err := ps.repos.Completions.VerifiedByUser(ctx, uid)
	if err != nil {
		return entity.XpTotals{}, errors.New("completions repository error: " + err.Error())
	}
	moods, err := ps.repos.MoodLogs.ListByUser(ctx, uid)
	if err != nil {
		return entity.XpTotals{}, errors.New("mood logs repository error: " + err.Error())
	}
	settled, err := ps.repos.Resets.LastCompletedPeriod(ctx)
	if err != nil {
		return entity.XpTotals{}, errors.New("monthly reset repository error: " + err.Error())
	}
	from := progression.MonthlyWindowStart(ps.opts.today(), settled)
	return progression.ComputeTotals(completions, moods, from), nil
}

func (ps *ProgressService) findUser(ctx context.Context, uid uuid.UUID) (*entity.UserProgression, error) {
	user, err := ps.repos.Users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (ps *ProgressService) Recalculate(ctx context.Context, uid uuid.UUID) (*entity.UserProgression, error) {
	user, err := ps.findUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	totals, err := ps.computeTotals(ctx, uid)
	if err != nil {
		ps.opts.metrics.Recalculation("failed")
		return nil, err
	}
	level, title := progression.LevelFor(totals.TotalXp)
	if err = ps.repos.Users.UpdateTotals(ctx, uid, totals, level, title); err != nil {
		ps.opts.metrics.Recalculation("failed")
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	ps.opts.metrics.Recalculation("ok")
	user.TotalXp = totals.TotalXp
	user.MonthlyXp = totals.MonthlyXp
	user.Level = level
	user.CurrentTitle = title
	return user, nil
}

func (ps *ProgressService) Dashboard(ctx context.Context, uid uuid.UUID) (*entity.Dashboard, error) {
	user, err := ps.Recalculate(ctx, uid)
	if err != nil {
		return nil, err
	}
	streak, err := ps.streaks.Advance(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.Dashboard{
		XpProgress:    progression.XpProgress(user.TotalXp),
		Streak:        streak,
		StreakTitle:   progression.StreakTitle(streak.Count),
		TotalXp:       user.TotalXp,
		MonthlyXp:     user.MonthlyXp,
		RewardBalance: user.RewardBalance,
	}, nil
}

// ReconcileAll walks every user page by page and rewrites the stored totals from evidence.
// Per-user failures are logged and counted; only a failing page read aborts the walk.
func (ps *ProgressService) ReconcileAll(ctx context.Context) (entity.ReconcileReport, error) {
	var report entity.ReconcileReport
	logger := ps.opts.logger.With(slog.String("job", "reconcile"))
	after := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		ids, err := ps.repos.Users.ListIDs(ctx, after, ps.opts.pageSize)
		if err != nil {
			return report, errors.New("users repository error: " + err.Error())
		}
		for _, id := range ids {
			_, err := ps.Recalculate(ctx, id)
			switch {
			case err == nil:
				report.Processed++
			case errors.Is(err, errorvalues.ErrUserNotFound):
				report.Missing++
				logger.Debug("user vanished during reconcile", slog.String("uid", id.String()))
			default:
				report.Failed++
				logger.Error("reconcile failed for user", slog.String("uid", id.String()), slog.String("error", err.Error()))
			}
		}
		if len(ids) < ps.opts.pageSize {
			break
		}
		after = ids[len(ids)-1]
	}
	logger.Info("reconcile finished",
		slog.Int("processed", report.Processed),
		slog.Int("missing", report.Missing),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}
