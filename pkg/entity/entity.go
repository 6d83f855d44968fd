package entity

import (
	"time"

	"github.com/google/uuid"
)

type Streak struct {
	Count       int        `json:"count"`
	LastUpdated *time.Time `json:"last_updated"`
}

// UserProgression is the progression part of a user record. Country, City and Name
// belong to the profile collaborator and are only read here.
type UserProgression struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	TotalXp       int64     `json:"total_xp"`
	MonthlyXp     int64     `json:"monthly_xp"`
	Level         int       `json:"level"`
	CurrentTitle  string    `json:"current_title"`
	Streak        Streak    `json:"streak"`
	StreakVersion int64     `json:"-"`
	RewardBalance int64     `json:"reward_balance"`
}

type CompletionEvent struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	HabitID    uuid.UUID
	HabitName  string
	Verified   bool
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

type MoodLogEvent struct {
	UserID    uuid.UUID
	CreatedAt time.Time
}

type LevelThreshold struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Xp    int64  `json:"xp"`
}

type XpProgress struct {
	Level           int     `json:"level"`
	Title           string  `json:"title"`
	CurrentXp       int64   `json:"current_xp"`
	NextLevelXp     *int64  `json:"next_level_xp"`
	ProgressPercent float64 `json:"progress_percent"`
}

type XpTotals struct {
	TotalXp   int64 `json:"total_xp"`
	MonthlyXp int64 `json:"monthly_xp"`
}

type Dashboard struct {
	XpProgress    XpProgress `json:"xp_progress"`
	Streak        Streak     `json:"streak"`
	StreakTitle   string     `json:"streak_title"`
	TotalXp       int64      `json:"total_xp"`
	MonthlyXp     int64      `json:"monthly_xp"`
	RewardBalance int64      `json:"reward_balance"`
}

type Scope string

const (
	ScopeWorld   Scope = "world"
	ScopeCountry Scope = "country"
	ScopeCity    Scope = "city"
	ScopeFriends Scope = "friends"
)

type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodAllTime Period = "alltime"
)

// ScopeFilter is the resolved population filter of a leaderboard query.
type ScopeFilter struct {
	Country string      `json:"country,omitempty"`
	City    string      `json:"city,omitempty"`
	UserIDs []uuid.UUID `json:"-"`
}

type LeaderboardEntry struct {
	Rank    int       `json:"rank"`
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Score   int64     `json:"score"`
	Level   int       `json:"level"`
	Title   string    `json:"title"`
	Country string    `json:"country"`
	City    string    `json:"city"`
}

type LeaderboardCaller struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Score   int64     `json:"score"`
	Rank    *int      `json:"rank"`
	Level   int       `json:"level"`
	Title   string    `json:"title"`
	Country string    `json:"country"`
	City    string    `json:"city"`
}

type Leaderboard struct {
	Scope   Scope              `json:"scope"`
	Period  Period             `json:"period"`
	Filter  ScopeFilter        `json:"filter"`
	Entries []LeaderboardEntry `json:"leaderboard"`
	Caller  LeaderboardCaller  `json:"current_user"`
}

// RankedUser is one row of a monthly ranking scan. GroupKey identifies the
// country or (country, city) group the row is ranked in; it is empty for the world ranking.
type RankedUser struct {
	ID        uuid.UUID
	MonthlyXp int64
	Country   string
	City      string
	GroupKey  string
}

type RewardGrant struct {
	Period   time.Time
	UserID   uuid.UUID
	Scope    Scope
	ScopeKey string
	Rank     int
	Amount   int64
}

type ResetReport struct {
	Period  time.Time `json:"period"`
	Granted int       `json:"granted"`
	Skipped int       `json:"skipped"`
	Failed  int       `json:"failed"`
	Paid    int64     `json:"paid"`
	Zeroed  bool      `json:"zeroed"`
}

type ReconcileReport struct {
	Processed int `json:"processed"`
	Missing   int `json:"missing"`
	Failed    int `json:"failed"`
}
