package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/levelup/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user with zero progression. Returns its id
	Create(ctx context.Context, user *entity.UserProgression) (uuid.UUID, error)
	// Looks up user's progression record by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.UserProgression, error)
	// Lists user ids ordered ascending, starting after the given id
	ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)
	// Stores recomputed totals and the derived level and title
	UpdateTotals(ctx context.Context, uid uuid.UUID, totals entity.XpTotals, level int, title string) error
	// Stores streak if streak version is unchanged. False means a concurrent update won
	CompareAndSwapStreak(ctx context.Context, uid uuid.UUID, version int64, streak entity.Streak) (bool, error)
}

type CompletionsRepositoryI interface {
	// Lists all verified completions of the user with their habit names
	VerifiedByUser(ctx context.Context, uid uuid.UUID) ([]entity.CompletionEvent, error)
	// Inspects if user has a verified completion created in [from, to)
	HasVerifiedBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) (bool, error)
}

type MoodLogsRepositoryI interface {
	// Lists all mood log entries of the user
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.MoodLogEvent, error)
}

type FollowsRepositoryI interface {
	// Lists ids of the users uid follows
	Following(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error)
}

type LeaderboardRepositoryI interface {
	// Returns ranked top of the scope with positive score
	Top(ctx context.Context, q LeaderboardQuery) ([]entity.LeaderboardEntry, error)
	// Counts users in scope with score strictly greater than score
	CountAbove(ctx context.Context, q LeaderboardQuery, score int64) (int64, error)
}

type MonthlyResetRepositoryI interface {
	// Returns latest completed reset period, nil if none
	LastCompletedPeriod(ctx context.Context) (*time.Time, error)
	// Opens or resumes run for period and freezes its standings once. ErrResetAlreadyCompleted if it is done
	StartRun(ctx context.Context, period, at time.Time) error
	// Returns next page of the frozen ranking scan for scope
	RankedPage(ctx context.Context, period time.Time, scope entity.Scope, cursor RankCursor, limit int) ([]entity.RankedUser, error)
	// Pays grant once. False if it was already paid
	GrantReward(ctx context.Context, grant entity.RewardGrant) (bool, error)
	// Zeroes monthly xp and completes the run
	CloseRun(ctx context.Context, period, at time.Time) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
