package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/levelup/internal/app"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/internal/service/mocks"
	"github.com/limbo/levelup/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appMocks struct {
	users       *mocks.MockUserServiceI
	progress    *mocks.MockProgressServiceI
	leaderboard *mocks.MockLeaderboardServiceI
	resets      *mocks.MockMonthlyResetServiceI
}

func withMockApp(t *testing.T) appMocks {
	ctrl := gomock.NewController(t)
	m := appMocks{
		users:       mocks.NewMockUserServiceI(ctrl),
		progress:    mocks.NewMockProgressServiceI(ctrl),
		leaderboard: mocks.NewMockLeaderboardServiceI(ctrl),
		resets:      mocks.NewMockMonthlyResetServiceI(ctrl),
	}
	prev := openApp
	openApp = func(context.Context) (*app.App, error) {
		return &app.App{
			Users:       m.users,
			Progress:    m.progress,
			Leaderboard: m.leaderboard,
			Resets:      m.resets,
		}, nil
	}
	t.Cleanup(func() { openApp = prev })
	return m
}

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLevels(t *testing.T) {
	out, err := execute(t, "levels")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 101)
	assert.Equal(t, []string{"1", "0", "Beginner", "Explorer"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "100", "Rising", "Learner"}, strings.Fields(lines[2]))
}

func TestReset(t *testing.T) {
	m := withMockApp(t)
	period := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("report", func(t *testing.T) {
		m.resets.EXPECT().RunMonthlyReset(gomock.Any()).Return(entity.ResetReport{
			Period: period, Granted: 5, Skipped: 1, Paid: 2250, Zeroed: true,
		}, nil)
		out, err := execute(t, "reset")
		require.NoError(t, err)
		assert.Contains(t, out, "Period:  2025-03")
		assert.Contains(t, out, "Granted: 5")
		assert.Contains(t, out, "Zeroed:  true")
	})
	t.Run("already completed", func(t *testing.T) {
		m.resets.EXPECT().RunMonthlyReset(gomock.Any()).Return(entity.ResetReport{Period: period}, errorvalues.ErrResetAlreadyCompleted)
		out, err := execute(t, "reset")
		require.NoError(t, err)
		assert.Contains(t, out, "already completed")
	})
}

func TestRecalculate(t *testing.T) {
	m := withMockApp(t)
	uid := uuid.New()

	m.progress.EXPECT().Recalculate(gomock.Any(), uid).Return(&entity.UserProgression{
		ID: uid, TotalXp: 110, MonthlyXp: 60, Level: 2, CurrentTitle: "Rising Learner",
	}, nil)
	out, err := execute(t, "recalculate", uid.String())
	require.NoError(t, err)
	assert.Contains(t, out, "total 110 XP, monthly 60 XP, level 2 (Rising Learner)")

	_, err = execute(t, "recalculate", "not-a-uid")
	assert.ErrorContains(t, err, "invalid uid")
}

func TestReconcile(t *testing.T) {
	m := withMockApp(t)
	m.progress.EXPECT().ReconcileAll(gomock.Any()).Return(entity.ReconcileReport{Processed: 10, Missing: 1}, nil)
	out, err := execute(t, "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "Processed: 10")
	assert.Contains(t, out, "Missing:   1")
}

func TestLeaderboard(t *testing.T) {
	m := withMockApp(t)
	uid := uuid.New()
	rank := 3
	m.leaderboard.EXPECT().GetLeaderboard(gomock.Any(), uid, &service.LeaderboardRequest{
		Scope:   "country",
		Period:  "alltime",
		Country: "Kazakhstan",
	}).Return(&entity.Leaderboard{
		Entries: []entity.LeaderboardEntry{
			{Rank: 1, Name: "leader", Score: 900, Level: 6, Country: "Kazakhstan"},
		},
		Caller: entity.LeaderboardCaller{Name: "caller", Score: 300, Rank: &rank},
	}, nil)

	out, err := execute(t, "leaderboard", "--user", uid.String(), "--scope", "country", "--period", "alltime", "--country", "Kazakhstan")
	require.NoError(t, err)
	assert.Contains(t, out, "leader")
	assert.Contains(t, out, "caller: 300 XP, #3")
}

func TestUsersAdd(t *testing.T) {
	m := withMockApp(t)
	uid := uuid.New()
	m.users.EXPECT().CreateProfile(gomock.Any(), &service.CreateProfileRequest{
		Name:    "test_user",
		Country: "Kazakhstan",
		City:    "Almaty",
	}).Return(&entity.UserProgression{ID: uid}, nil)

	out, err := execute(t, "users", "add", "--name", "test_user", "--country", "Kazakhstan", "--city", "Almaty")
	require.NoError(t, err)
	assert.Equal(t, uid.String()+"\n", out)
}
