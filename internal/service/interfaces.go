package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/levelup/pkg/entity"
)

type CreateProfileRequest struct {
	Name    string `validate:"required,alphanum_underscore,min=3,max=100"`
	Country string `validate:"omitempty,max=100,place"`
	City    string `validate:"omitempty,max=100,place"`
}

// LeaderboardRequest carries the raw leaderboard query. Empty scope and period mean world and monthly.
type LeaderboardRequest struct {
	Scope   string `validate:"omitempty,oneof=world country city friends"`
	Period  string `validate:"omitempty,oneof=monthly alltime"`
	Country string `validate:"omitempty,max=100,place"`
	City    string `validate:"omitempty,max=100,place"`
}

type UserServiceI interface {
	// Validates profile, creates user with zero progression. Returns user's data with ID
	CreateProfile(ctx context.Context, req *CreateProfileRequest) (*entity.UserProgression, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UserProgression, error)
}

type ProgressServiceI interface {
	// Recomputes lifetime and monthly XP from evidence without storing them
	ComputeTotals(ctx context.Context, uid uuid.UUID) (entity.XpTotals, error)
	// Recomputes totals and stores them with the derived level and title
	Recalculate(ctx context.Context, uid uuid.UUID) (*entity.UserProgression, error)
	// Recalculates, advances the streak and returns the progress view
	Dashboard(ctx context.Context, uid uuid.UUID) (*entity.Dashboard, error)
	// Recalculates every user, skipping the ones that disappeared meanwhile
	ReconcileAll(ctx context.Context) (entity.ReconcileReport, error)
}

type StreakServiceI interface {
	// Evaluates today's streak transition for user and stores it
	Advance(ctx context.Context, uid uuid.UUID) (entity.Streak, error)
}

type LeaderboardServiceI interface {
	// Returns top of the requested scope and caller's own rank in it
	GetLeaderboard(ctx context.Context, caller uuid.UUID, req *LeaderboardRequest) (*entity.Leaderboard, error)
}

type MonthlyResetServiceI interface {
	// Pays monthly rewards for the previous month and zeroes monthly XP
	RunMonthlyReset(ctx context.Context) (entity.ResetReport, error)
}
