package progression

import (
	"strings"
	"time"

	"github.com/limbo/levelup/pkg/entity"
)

const (
	// FallbackHabitXp is awarded for a verified completion of a habit missing from the table.
	FallbackHabitXp int64 = 10
	// MoodDayBonus is awarded once per distinct UTC day with at least one mood log.
	MoodDayBonus int64 = 10
)

type HabitXp struct {
	Base          int64
	VerifiedBonus int64
}

var habitXpTable = map[string]HabitXp{
	"study":      {Base: 20, VerifiedBonus: 30},
	"coding":     {Base: 40, VerifiedBonus: 50},
	"eating":     {Base: 10, VerifiedBonus: 30},
	"workout":    {Base: 30, VerifiedBonus: 50},
	"reading":    {Base: 15, VerifiedBonus: 25},
	"working":    {Base: 25, VerifiedBonus: 35},
	"meditation": {Base: 15, VerifiedBonus: 15},
	"sleep":      {Base: 30, VerifiedBonus: 0},
}

func NormalizeHabitName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// HabitCompletionXp is the XP one verified completion of the named habit is worth.
func HabitCompletionXp(habitName string) int64 {
	if xp, ok := habitXpTable[NormalizeHabitName(habitName)]; ok {
		return xp.Base + xp.VerifiedBonus
	}
	return FallbackHabitXp
}

// Window is a half-open time interval [From, To). A zero bound leaves that side open.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}

// SumXp totals the evidence that falls inside w. The result does not depend on
// the order or the duplication of mood logs within a day.
func SumXp(completions []entity.CompletionEvent, moods []entity.MoodLogEvent, w Window) int64 {
	var xp int64
	for _, c := range completions {
		if !c.Verified || !w.Contains(c.CreatedAt) {
			continue
		}
		xp += HabitCompletionXp(c.HabitName)
	}
	days := make(map[time.Time]struct{})
	for _, m := range moods {
		if w.Contains(m.CreatedAt) {
			days[StartOfDay(m.CreatedAt)] = struct{}{}
		}
	}
	return xp + int64(len(days))*MoodDayBonus
}

// ComputeTotals derives lifetime XP and the XP earned since monthlyFrom.
func ComputeTotals(completions []entity.CompletionEvent, moods []entity.MoodLogEvent, monthlyFrom time.Time) entity.XpTotals {
	return entity.XpTotals{
		TotalXp:   SumXp(completions, moods, Window{}),
		MonthlyXp: SumXp(completions, moods, Window{From: monthlyFrom}),
	}
}

// MonthStart returns the first instant of t's UTC calendar month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyWindowStart picks where monthly XP starts counting. It is the current
// month, unless a reset has completed before and the previous month is still
// unsettled, in which case the previous month keeps counting until its reset runs.
func MonthlyWindowStart(now time.Time, lastSettled *time.Time) time.Time {
	current := MonthStart(now)
	previous := current.AddDate(0, -1, 0)
	if lastSettled != nil && MonthStart(*lastSettled).Before(previous) {
		return previous
	}
	return current
}

// SettlementPeriod is the month a reset triggered at now pays out for.
func SettlementPeriod(now time.Time) time.Time {
	return MonthStart(now).AddDate(0, -1, 0)
}
