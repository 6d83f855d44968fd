package errorvalues

import "errors"

var (
	ErrUserExists   = errors.New("such user already exists")
	ErrUserNotFound = errors.New("user doesn't exists")
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrScopeCountryRequired = errors.New("country is required for this scope")
	ErrScopeCityRequired    = errors.New("country and city are required for city scope")
	ErrInvalidScope         = errors.New("unknown leaderboard scope")
	ErrInvalidPeriod        = errors.New("unknown leaderboard period")
	ErrInvalidPlace         = errors.New("invalid country or city")

	ErrStreakConflict        = errors.New("streak was modified concurrently")
	ErrResetAlreadyCompleted = errors.New("monthly reset already completed for this period")
)
