package progression

import (
	"sort"

	"github.com/limbo/levelup/pkg/entity"
)

// levelIndex returns the index of the last curve entry whose threshold is <= xp.
func levelIndex(xp int64) int {
	levels := table()
	idx := sort.Search(len(levels), func(i int) bool {
		return levels[i].Xp > xp
	}) - 1
	if idx < 0 {
		return 0
	}
	return idx
}

// LevelFor returns the level and title reached with xp.
func LevelFor(xp int64) (int, string) {
	current := table()[levelIndex(xp)]
	return current.Level, current.Title
}

// XpProgress maps xp to its position on the level curve. xp must be >= 0.
func XpProgress(xp int64) entity.XpProgress {
	levels := table()
	idx := levelIndex(xp)
	current := levels[idx]
	progress := entity.XpProgress{
		Level:     current.Level,
		Title:     current.Title,
		CurrentXp: xp,
	}
	if idx+1 >= len(levels) {
		progress.ProgressPercent = 100
		return progress
	}
	next := levels[idx+1]
	nextXp := next.Xp
	progress.NextLevelXp = &nextXp
	pct := float64(xp-current.Xp) / float64(next.Xp-current.Xp) * 100
	progress.ProgressPercent = min(100, max(0, pct))
	return progress
}
