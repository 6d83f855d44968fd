// Package progression holds the pure rules of the progression engine: the level
// curve, XP arithmetic, the streak state machine and the monthly reward brackets.
// Nothing here touches storage.
package progression

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/limbo/levelup/pkg/entity"
)

const (
	MaxLevel = 100

	firstIncrement  = 100
	incrementGrowth = 1.12
)

var levelTitles = [...]string{
	"Beginner Explorer", "Rising Learner", "Consistency Seeker", "Achiever", "Master Starter",
	"Dedicated Performer", "Focused Dreamer", "Steady Progressor", "Daily Grinder", "Consistent Achiever",
	"Rising Star", "Life Explorer", "Habit Builder", "Momentum Keeper", "Task Conqueror",
	"Goal Getter", "Daily Hero", "Challenge Chaser", "XP Collector", "Life Master",
	"Life Guru", "Streak Champion", "Mood Master", "Goal Crusher", "Achievement Legend",
	"Consistency King", "XP Hero", "Habit Champion", "Routine Conqueror", "Daily Legend",
	"Mood Guru", "Life Pathfinder", "Progress Ninja", "Focus Wizard", "Energy Leader",
	"Routine Master", "Goal Warrior", "XP Master", "Life Strategist", "Consistency Wizard",
	"Achievement Guru", "Daily Victor", "Mood Champion", "Task Ninja", "XP Legend",
	"Life Conqueror", "Goal Hero", "Master Explorer", "Streak Guru", "Legendary Achiever",
	"Consistency Hero", "Life Overlord", "Mood Overlord", "XP Overlord", "Habit Overlord",
	"Routine Overlord", "Goal Overlord", "Streak Overlord", "Daily Overlord", "Achievement Overlord",
	"Legendary Hero", "Ultimate Master", "Grand Explorer", "Life Dominator", "Mood Dominator",
	"XP Dominator", "Habit Dominator", "Goal Dominator", "Routine Dominator", "Streak Dominator",
	"Daily Dominator", "Achievement Dominator", "Legendary Dominator", "Supreme Master", "Life Legend",
	"Mood Legend", "XP Legend", "Habit Legend", "Goal Legend", "Routine Legend",
	"Streak Legend", "Daily Legend", "Achievement Legend", "Ultimate Hero", "Grand Master",
	"Supreme Achiever", "Life Supreme", "Mood Supreme", "XP Supreme", "Habit Supreme",
	"Goal Supreme", "Routine Supreme", "Streak Supreme", "Daily Supreme", "Achievement Supreme",
	"Legend Supreme (Maxed-Out)",
}

var (
	curveOnce sync.Once
	curve     []entity.LevelThreshold
)

// table returns the shared curve. Callers inside the package must not modify it.
func table() []entity.LevelThreshold {
	curveOnce.Do(func() {
		curve = generateLevels()
	})
	return curve
}

// Levels returns a copy of the 100-entry level curve.
func Levels() []entity.LevelThreshold {
	return slices.Clone(table())
}

func generateLevels() []entity.LevelThreshold {
	levels := make([]entity.LevelThreshold, 0, MaxLevel)
	var xp int64
	increment := int64(firstIncrement)
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		levels = append(levels, entity.LevelThreshold{
			Level: lvl,
			Title: titleFor(lvl),
			Xp:    xp,
		})
		xp += increment
		increment = int64(math.Floor(float64(increment) * incrementGrowth))
	}
	return levels
}

func titleFor(level int) string {
	if level >= 1 && level <= len(levelTitles) {
		return levelTitles[level-1]
	}
	return fmt.Sprintf("Level %d", level)
}
