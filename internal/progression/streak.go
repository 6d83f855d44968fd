package progression

import (
	"time"

	"github.com/limbo/levelup/pkg/entity"
)

const day = 24 * time.Hour

type StreakState int

const (
	StreakNoHistory StreakState = iota
	StreakSameDay
	StreakConsecutiveDay
	StreakGap
)

func (s StreakState) String() string {
	switch s {
	case StreakNoHistory:
		return "no_history"
	case StreakSameDay:
		return "same_day"
	case StreakConsecutiveDay:
		return "consecutive_day"
	case StreakGap:
		return "gap"
	}
	return "unknown"
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the half-open UTC day [start, end) containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.Add(day)
}

// DayDiff counts whole UTC calendar days from "from" to "to".
func DayDiff(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)) / day)
}

// ClassifyStreak selects the transition for a streak evaluated at now.
// A lastUpdated in the future (clock skew) is treated as the same day.
func ClassifyStreak(streak entity.Streak, now time.Time) StreakState {
	if streak.LastUpdated == nil {
		return StreakNoHistory
	}
	switch diff := DayDiff(*streak.LastUpdated, now); {
	case diff <= 0:
		return StreakSameDay
	case diff == 1:
		return StreakConsecutiveDay
	default:
		return StreakGap
	}
}

// AdvanceStreak applies one evaluation of the daily streak machine.
// lastUpdated only moves when there was qualifying activity today, which leaves
// a one-day grace after a missed day before the count drops.
func AdvanceStreak(streak entity.Streak, activeToday bool, now time.Time) entity.Streak {
	touched := entity.Streak{Count: 1, LastUpdated: &now}
	switch ClassifyStreak(streak, now) {
	case StreakNoHistory:
		if activeToday {
			return touched
		}
		return entity.Streak{}
	case StreakSameDay:
		if streak.Count == 0 && activeToday {
			return touched
		}
		return streak
	case StreakConsecutiveDay:
		if activeToday {
			touched.Count = streak.Count + 1
			return touched
		}
		return streak
	default:
		if activeToday {
			return touched
		}
		return entity.Streak{Count: 0, LastUpdated: streak.LastUpdated}
	}
}

// SameStreak reports whether two streak values are identical.
func SameStreak(a, b entity.Streak) bool {
	if a.Count != b.Count {
		return false
	}
	if a.LastUpdated == nil || b.LastUpdated == nil {
		return a.LastUpdated == nil && b.LastUpdated == nil
	}
	return a.LastUpdated.Equal(*b.LastUpdated)
}

type streakTitle struct {
	minDays int
	title   string
}

var streakTitles = []streakTitle{
	{365, "Legendary Streak Master"},
	{300, "Yearly Streak Champion"},
	{180, "Half-Year Hero"},
	{90, "Quarter-Year Achiever"},
	{60, "Two-Month Streaker"},
	{30, "Monthly Motivator"},
	{14, "Fortnight Fighter"},
	{7, "Weekly Warrior"},
	{3, "Rising Star"},
	{1, "Getting Started"},
}

func StreakTitle(count int) string {
	for _, t := range streakTitles {
		if count >= t.minDays {
			return t.title
		}
	}
	return "Keep Going!"
}
