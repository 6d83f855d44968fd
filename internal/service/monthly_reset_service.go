package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/progression"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

// rankedScopes are rewarded independently, so one user can be paid in all of them.
var rankedScopes = []entity.Scope{entity.ScopeWorld, entity.ScopeCountry, entity.ScopeCity}

type MonthlyResetService struct {
	resets repository.MonthlyResetRepositoryI
	opts   options
}

func NewMonthlyResetService(resets repository.MonthlyResetRepositoryI, opts ...Option) *MonthlyResetService {
	if resets == nil {
		log.Fatal("provided nil monthly reset repo")
	}
	return &MonthlyResetService{
		resets: resets,
		opts:   applyOptions(opts),
	}
}

// RunMonthlyReset settles the month before the current one: rewards every ranked scope,
// then zeroes monthly XP. The ranking is frozen when the run first opens and each grant
// is recorded in a ledger, so a run interrupted before completion can be repeated
// without paying anyone or any rank twice.
func (ms *MonthlyResetService) RunMonthlyReset(ctx context.Context) (entity.ResetReport, error) {
	now := ms.opts.today()
	period := progression.SettlementPeriod(now)
	report := entity.ResetReport{Period: period}
	logger := ms.opts.logger.With(slog.String("job", "monthly_reset"), slog.String("period", period.Format("2006-01")))

	if err := ms.resets.StartRun(ctx, period, now); err != nil {
		if errors.Is(err, errorvalues.ErrResetAlreadyCompleted) {
			logger.Info("monthly reset already completed")
			return report, err
		}
		return report, errors.New("monthly reset repository error: " + err.Error())
	}
	for _, scope := range rankedScopes {
		if err := ms.rewardScope(ctx, logger, period, scope, &report); err != nil {
			logger.Error("monthly reset aborted, run left open", slog.String("scope", string(scope)), slog.String("error", err.Error()))
			return report, err
		}
	}

	var zeroed int64
	closeRun := func() error {
		var err error
		zeroed, err = ms.resets.CloseRun(ctx, period, ms.opts.today())
		if errors.Is(err, errorvalues.ErrResetAlreadyCompleted) {
			return backoff.Permanent(err)
		}
		return err
	}
	err := backoff.RetryNotify(closeRun, backoff.WithContext(ms.opts.newBackOff(), ctx), func(err error, wait time.Duration) {
		logger.Warn("zeroing monthly xp failed, retrying", slog.String("error", err.Error()), slog.Duration("wait", wait))
	})
	if errors.Is(err, errorvalues.ErrResetAlreadyCompleted) {
		logger.Warn("monthly reset was completed by another run")
		return report, err
	}
	if err != nil {
		ms.opts.metrics.ResetZeroFailure()
		logger.Error("CRITICAL: monthly xp was not zeroed, run left open", slog.String("error", err.Error()))
		return report, errors.New("closing monthly reset error: " + err.Error())
	}
	report.Zeroed = true
	logger.Info("monthly reset finished",
		slog.Int("granted", report.Granted),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int64("paid", report.Paid),
		slog.Int64("zeroed_users", zeroed),
	)
	return report, nil
}

// rewardScope scans one ranking with keyset pagination. Rank restarts at 1 in every group
// and, once a group is past the rewarded ranks, the scan jumps to the next group.
func (ms *MonthlyResetService) rewardScope(ctx context.Context, logger *slog.Logger, period time.Time, scope entity.Scope, report *entity.ResetReport) error {
	cursor := repository.FirstRankCursor()
	group, rank := "", 0
	started := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		page, err := ms.resets.RankedPage(ctx, period, scope, cursor, ms.opts.pageSize)
		if err != nil {
			return errors.New("monthly reset repository error: " + err.Error())
		}
		for _, u := range page {
			if !started || u.GroupKey != group {
				group, rank, started = u.GroupKey, 0, true
			}
			rank++
			cursor = repository.RankCursor{Key: u.GroupKey, Xp: u.MonthlyXp, ID: u.ID}
			amount := progression.RewardForRank(rank)
			if amount == 0 {
				continue
			}
			ms.grant(ctx, logger, entity.RewardGrant{
				Period:   period,
				UserID:   u.ID,
				Scope:    scope,
				ScopeKey: u.GroupKey,
				Rank:     rank,
				Amount:   amount,
			}, report)
		}
		if len(page) < ms.opts.pageSize {
			return nil
		}
		if rank >= progression.RewardedRanks {
			cursor = repository.GroupEnd(group)
		}
	}
}

func (ms *MonthlyResetService) grant(ctx context.Context, logger *slog.Logger, g entity.RewardGrant, report *entity.ResetReport) {
	paid, err := ms.resets.GrantReward(ctx, g)
	switch {
	case err != nil:
		report.Failed++
		ms.opts.metrics.ResetGrant(string(g.Scope), "failed", 0)
		logger.Error("reward grant failed, skipping user",
			slog.String("uid", g.UserID.String()),
			slog.String("scope", string(g.Scope)),
			slog.Int("rank", g.Rank),
			slog.String("error", err.Error()),
		)
	case !paid:
		report.Skipped++
		ms.opts.metrics.ResetGrant(string(g.Scope), "skipped", 0)
	default:
		report.Granted++
		report.Paid += g.Amount
		ms.opts.metrics.ResetGrant(string(g.Scope), "paid", g.Amount)
	}
}
