package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/progression"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

var errStreakRace = errors.New("streak version changed")

type StreakService struct {
	users       repository.UsersRepositoryI
	completions repository.CompletionsRepositoryI
	opts        options
}

func NewStreakService(users repository.UsersRepositoryI, completions repository.CompletionsRepositoryI, opts ...Option) *StreakService {
	if users == nil || completions == nil {
		log.Fatal("on streak service provided nil repos")
	}
	return &StreakService{
		users:       users,
		completions: completions,
		opts:        applyOptions(opts),
	}
}

// Advance applies today's transition to the stored streak. The write is a compare-and-swap
// on the streak version; a lost race reloads the record and evaluates again.
func (ss *StreakService) Advance(ctx context.Context, uid uuid.UUID) (entity.Streak, error) {
	var result entity.Streak
	attempt := func() error {
		user, err := ss.users.FindByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return backoff.Permanent(err)
			}
			return backoff.Permanent(errors.New("users repository error: " + err.Error()))
		}
		now := ss.opts.today()
		// Nothing can change once today's activity has been counted.
		if progression.ClassifyStreak(user.Streak, now) == progression.StreakSameDay && user.Streak.Count > 0 {
			result = user.Streak
			return nil
		}
		from, to := progression.DayBounds(now)
		active, err := ss.completions.HasVerifiedBetween(ctx, uid, from, to)
		if err != nil {
			return backoff.Permanent(errors.New("completions repository error: " + err.Error()))
		}
		next := progression.AdvanceStreak(user.Streak, active, now)
		if progression.SameStreak(next, user.Streak) {
			result = user.Streak
			return nil
		}
		swapped, err := ss.users.CompareAndSwapStreak(ctx, uid, user.StreakVersion, next)
		if err != nil {
			return backoff.Permanent(errors.New("users repository error: " + err.Error()))
		}
		if !swapped {
			ss.opts.metrics.StreakConflict()
			return errStreakRace
		}
		result = next
		return nil
	}
	err := backoff.Retry(attempt, backoff.WithContext(ss.opts.newBackOff(), ctx))
	if err != nil {
		if errors.Is(err, errStreakRace) {
			ss.opts.logger.Warn("streak update gave up after concurrent writes", slog.String("uid", uid.String()))
			return entity.Streak{}, errorvalues.ErrStreakConflict
		}
		return entity.Streak{}, err
	}
	return result, nil
}
