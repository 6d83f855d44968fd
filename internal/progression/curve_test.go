package progression_test

import (
	"testing"

	"github.com/limbo/levelup/internal/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	levels := progression.Levels()
	require.Len(t, levels, progression.MaxLevel)

	assert.Equal(t, int64(0), levels[0].Xp)
	assert.Equal(t, int64(100), levels[1].Xp)
	assert.Equal(t, int64(212), levels[2].Xp)
	assert.Equal(t, int64(337), levels[3].Xp)

	for i := range levels {
		assert.Equal(t, i+1, levels[i].Level)
		assert.NotEmpty(t, levels[i].Title)
		if i > 0 {
			assert.Greater(t, levels[i].Xp, levels[i-1].Xp, "threshold of level %d", i+1)
		}
	}

	assert.Equal(t, "Beginner Explorer", levels[0].Title)
	assert.Equal(t, "Legend Supreme (Maxed-Out)", levels[95].Title)
	assert.Equal(t, "Level 97", levels[96].Title)
	assert.Equal(t, "Level 100", levels[99].Title)
}

func TestLevelsReturnsCopy(t *testing.T) {
	levels := progression.Levels()
	levels[0].Xp = 42
	levels[0].Title = "changed"

	fresh := progression.Levels()
	assert.Equal(t, int64(0), fresh[0].Xp)
	assert.Equal(t, "Beginner Explorer", fresh[0].Title)
}
