package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository/mocks"
	"github.com/limbo/levelup/internal/service"
	svcmocks "github.com/limbo/levelup/internal/service/mocks"
	"github.com/limbo/levelup/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressMocks struct {
	users       *mocks.MockUsersRepositoryI
	completions *mocks.MockCompletionsRepositoryI
	moods       *mocks.MockMoodLogsRepositoryI
	resets      *mocks.MockMonthlyResetRepositoryI
	streaks     *svcmocks.MockStreakServiceI
}

func newProgressService(t *testing.T, now time.Time, opts ...service.Option) (*service.ProgressService, progressMocks) {
	ctrl := gomock.NewController(t)
	m := progressMocks{
		users:       mocks.NewMockUsersRepositoryI(ctrl),
		completions: mocks.NewMockCompletionsRepositoryI(ctrl),
		moods:       mocks.NewMockMoodLogsRepositoryI(ctrl),
		resets:      mocks.NewMockMonthlyResetRepositoryI(ctrl),
		streaks:     svcmocks.NewMockStreakServiceI(ctrl),
	}
	opts = append([]service.Option{service.WithClock(func() time.Time { return now })}, opts...)
	serv := service.NewProgressService(service.ProgressRepos{
		Users:       m.users,
		Completions: m.completions,
		MoodLogs:    m.moods,
		Resets:      m.resets,
	}, m.streaks, opts...)
	return serv, m
}

// Evidence spread over April and May 2025: 90 XP in April, 70 XP in May.
func evidenceFor(uid uuid.UUID) ([]entity.CompletionEvent, []entity.MoodLogEvent) {
	completions := []entity.CompletionEvent{
		{UserID: uid, HabitName: "Coding", Verified: true, CreatedAt: time.Date(2025, time.April, 20, 9, 0, 0, 0, time.UTC)},
		{UserID: uid, HabitName: "Study", Verified: true, CreatedAt: time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC)},
	}
	moods := []entity.MoodLogEvent{
		{UserID: uid, CreatedAt: time.Date(2025, time.May, 3, 8, 0, 0, 0, time.UTC)},
		{UserID: uid, CreatedAt: time.Date(2025, time.May, 3, 22, 0, 0, 0, time.UTC)},
		{UserID: uid, CreatedAt: time.Date(2025, time.May, 4, 8, 0, 0, 0, time.UTC)},
	}
	return completions, moods
}

func TestComputeTotals(t *testing.T) {
	now := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)
	serv, m := newProgressService(t, now)
	uid := uuid.New()
	completions, moods := evidenceFor(uid)
	aprilSettled := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	marchSettled := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc     string
		Settled  *time.Time
		Expected entity.XpTotals
	}{
		{
			Desc:     "no reset has run yet",
			Expected: entity.XpTotals{TotalXp: 160, MonthlyXp: 70},
		},
		{
			Desc:     "previous month settled",
			Settled:  &aprilSettled,
			Expected: entity.XpTotals{TotalXp: 160, MonthlyXp: 70},
		},
		{
			Desc:     "previous month still unsettled",
			Settled:  &marchSettled,
			Expected: entity.XpTotals{TotalXp: 160, MonthlyXp: 160},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			m.users.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.UserProgression{ID: uid}, nil)
			m.completions.EXPECT().VerifiedByUser(gomock.Any(), uid).Return(completions, nil)
			m.moods.EXPECT().ListByUser(gomock.Any(), uid).Return(moods, nil)
			m.resets.EXPECT().LastCompletedPeriod(gomock.Any()).Return(tc.Settled, nil)
			totals, err := serv.ComputeTotals(ctx, uid)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, totals)
		})
	}
	t.Run("unknown user", func(t *testing.T) {
		m.users.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		_, err := serv.ComputeTotals(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestRecalculate(t *testing.T) {
	now := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)
	serv, m := newProgressService(t, now)
	uid := uuid.New()
	completions, moods := evidenceFor(uid)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "stores recomputed totals",
			MockPrepFunc: func() {
				m.users.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.UserProgression{ID: uid, TotalXp: 999, Level: 7}, nil)
				m.completions.EXPECT().VerifiedByUser(gomock.Any(), uid).Return(completions, nil)
				m.moods.EXPECT().ListByUser(gomock.Any(), uid).Return(moods, nil)
				m.resets.EXPECT().LastCompletedPeriod(gomock.Any()).Return(nil, nil)
				m.users.EXPECT().UpdateTotals(gomock.Any(), uid, entity.XpTotals{TotalXp: 160, MonthlyXp: 70}, 2, "Rising Learner").Return(nil)
			},
		},
		{
			Desc:  "user deleted before update",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				m.users.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.UserProgression{ID: uid}, nil)
				m.completions.EXPECT().VerifiedByUser(gomock.Any(), uid).Return(nil, nil)
				m.moods.EXPECT().ListByUser(gomock.Any(), uid).Return(nil, nil)
				m.resets.EXPECT().LastCompletedPeriod(gomock.Any()).Return(nil, nil)
				m.users.EXPECT().UpdateTotals(gomock.Any(), uid, entity.XpTotals{}, 1, "Beginner Explorer").Return(errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:  "evidence read error",
			Error: errors.New("mood logs repository error: db error"),
			MockPrepFunc: func() {
				m.users.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.UserProgression{ID: uid}, nil)
				m.completions.EXPECT().VerifiedByUser(gomock.Any(), uid).Return(nil, nil)
				m.moods.EXPECT().ListByUser(gomock.Any(), uid).Return(nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := serv.Recalculate(ctx, uid)
			switch {
			case tc.Error == nil:
				require.NoError(t, err)
				assert.Equal(t, int64(160), user.TotalXp)
				assert.Equal(t, int64(70), user.MonthlyXp)
				assert.Equal(t, 2, user.Level)
				assert.Equal(t, "Rising Learner", user.CurrentTitle)
			case errors.Is(tc.Error, errorvalues.ErrUserNotFound):
				assert.ErrorIs(t, err, tc.Error)
			default:
				assert.EqualError(t, err, tc.Error.Error())
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	now := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)
	serv, m := newProgressService(t, now)
	uid := uuid.New()
	completions, moods := evidenceFor(uid)
	ctx := context.Background()

	t.Run("progress view", func(t *testing.T) {
		m.users.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.UserProgression{ID: uid, RewardBalance: 250}, nil)
		m.completions.EXPECT().VerifiedByUser(gomock.Any(), uid).Return(completions, nil)
		m.moods.EXPECT().ListByUser(gomock.Any(), uid).Return(moods, nil)
		m.resets.EXPECT().LastCompletedPeriod(gomock.Any()).Return(nil, nil)
		m.users.EXPECT().UpdateTotals(gomock.Any(), uid, gomock.Any(), 2, "Rising Learner").Return(nil)
		m.streaks.EXPECT().Advance(gomock.Any(), uid).Return(entity.Streak{Count: 8, LastUpdated: &now}, nil)

		dashboard, err := serv.Dashboard(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 2, dashboard.XpProgress.Level)
		assert.Equal(t, int64(160), dashboard.XpProgress.CurrentXp)
		require.NotNil(t, dashboard.XpProgress.NextLevelXp)
		assert.Equal(t, int64(212), *dashboard.XpProgress.NextLevelXp)
		assert.InDelta(t, 53.57, dashboard.XpProgress.ProgressPercent, 0.01)
		assert.Equal(t, 8, dashboard.Streak.Count)
		assert.Equal(t, "Weekly Warrior", dashboard.StreakTitle)
		assert.Equal(t, int64(70), dashboard.MonthlyXp)
		assert.Equal(t, int64(250), dashboard.RewardBalance)
	})

	t.Run("streak conflict surfaces", func(t *testing.T) {
		m.users.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.UserProgression{ID: uid}, nil)
		m.completions.EXPECT().VerifiedByUser(gomock.Any(), uid).Return(nil, nil)
		m.moods.EXPECT().ListByUser(gomock.Any(), uid).Return(nil, nil)
		m.resets.EXPECT().LastCompletedPeriod(gomock.Any()).Return(nil, nil)
		m.users.EXPECT().UpdateTotals(gomock.Any(), uid, entity.XpTotals{}, 1, "Beginner Explorer").Return(nil)
		m.streaks.EXPECT().Advance(gomock.Any(), uid).Return(entity.Streak{}, errorvalues.ErrStreakConflict)

		_, err := serv.Dashboard(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrStreakConflict)
	})
}

func TestReconcileAll(t *testing.T) {
	now := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)
	serv, m := newProgressService(t, now, service.WithPageSize(2))
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	ctx := context.Background()

	gomock.InOrder(
		m.users.EXPECT().ListIDs(gomock.Any(), uuid.Nil, 2).Return([]uuid.UUID{first, second}, nil),
		m.users.EXPECT().ListIDs(gomock.Any(), second, 2).Return([]uuid.UUID{third}, nil),
	)
	m.resets.EXPECT().LastCompletedPeriod(gomock.Any()).Return(nil, nil).AnyTimes()

	m.users.EXPECT().FindByID(gomock.Any(), first).Return(&entity.UserProgression{ID: first}, nil)
	m.completions.EXPECT().VerifiedByUser(gomock.Any(), first).Return(nil, nil)
	m.moods.EXPECT().ListByUser(gomock.Any(), first).Return(nil, nil)
	m.users.EXPECT().UpdateTotals(gomock.Any(), first, entity.XpTotals{}, 1, "Beginner Explorer").Return(nil)

	m.users.EXPECT().FindByID(gomock.Any(), second).Return(nil, errorvalues.ErrUserNotFound)

	m.users.EXPECT().FindByID(gomock.Any(), third).Return(&entity.UserProgression{ID: third}, nil)
	m.completions.EXPECT().VerifiedByUser(gomock.Any(), third).Return(nil, errors.New("db error"))

	report, err := serv.ReconcileAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileReport{Processed: 1, Missing: 1, Failed: 1}, report)
}

func TestReconcileAllListError(t *testing.T) {
	serv, m := newProgressService(t, time.Now())
	m.users.EXPECT().ListIDs(gomock.Any(), uuid.Nil, 500).Return(nil, errors.New("db error"))

	_, err := serv.ReconcileAll(context.Background())
	assert.EqualError(t, err, "users repository error: db error")
}
