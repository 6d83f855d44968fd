package service_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/progression"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/cleanup"
	"github.com/limbo/levelup/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	if os.Getenv("INTEGRATION") != "1" {
		t.Skip("set INTEGRATION=1 to run tests against a postgres container")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("levelup"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func TestProgressionIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { cleanup.CleanUp() })

	usersRepo := repository.NewUsersRepo(pool)
	completionsRepo := repository.NewCompletionsRepo(pool)
	resetsRepo := repository.NewMonthlyResetRepo(pool)
	repos := service.ProgressRepos{
		Users:       usersRepo,
		Completions: completionsRepo,
		MoodLogs:    repository.NewMoodLogsRepo(pool),
		Resets:      resetsRepo,
	}
	clockAt := func(at time.Time) service.Option {
		return service.WithClock(func() time.Time { return at })
	}
	march := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	users := service.NewUserService(usersRepo)

	alice, err := users.CreateProfile(ctx, &service.CreateProfileRequest{Name: "alice", Country: "Kazakhstan", City: "Almaty"})
	require.NoError(t, err)
	bob, err := users.CreateProfile(ctx, &service.CreateProfileRequest{Name: "bob", Country: "kazakhstan", City: "Astana"})
	require.NoError(t, err)
	_, err = users.CreateProfile(ctx, &service.CreateProfileRequest{Name: "alice"})
	require.ErrorIs(t, err, errorvalues.ErrUserExists)

	addCompletion := func(uid uuid.UUID, habit string, at time.Time) {
		var habitID uuid.UUID
		err := pool.QueryRow(ctx,
			`INSERT INTO habits (user_id, title) VALUES ($1, $2) ON CONFLICT (user_id, title) DO UPDATE SET title = EXCLUDED.title RETURNING id;`,
			uid, habit).Scan(&habitID)
		require.NoError(t, err)
		_, err = pool.Exec(ctx,
			`INSERT INTO habit_completions (user_id, habit_id, verified, verified_at, created_at) VALUES ($1, $2, TRUE, $3, $3);`,
			uid, habitID, at)
		require.NoError(t, err)
	}
	addCompletion(alice.ID, "Coding", march.AddDate(0, 0, -1))
	addCompletion(alice.ID, "Study", march)
	_, err = pool.Exec(ctx, `INSERT INTO mood_logs (user_id, created_at) VALUES ($1, $2), ($1, $3);`,
		alice.ID, march, march.Add(time.Hour))
	require.NoError(t, err)
	addCompletion(bob.ID, "Reading", march)

	progress := service.NewProgressService(repos, service.NewStreakService(usersRepo, completionsRepo, clockAt(march)), clockAt(march))

	t.Run("dashboard recalculates and advances streak", func(t *testing.T) {
		dashboard, err := progress.Dashboard(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(150), dashboard.TotalXp)
		assert.Equal(t, int64(150), dashboard.MonthlyXp)
		assert.Equal(t, 2, dashboard.XpProgress.Level)
		assert.Equal(t, 1, dashboard.Streak.Count)

		again, err := progress.Dashboard(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, dashboard.TotalXp, again.TotalXp)
		assert.Equal(t, 1, again.Streak.Count)
	})

	t.Run("reconcile heals every user", func(t *testing.T) {
		report, err := progress.ReconcileAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Processed)
	})

	t.Run("country leaderboard is case insensitive", func(t *testing.T) {
		leaderboard := service.NewLeaderboardService(usersRepo, repository.NewFollowsRepo(pool), repository.NewLeaderboardRepo(pool))
		board, err := leaderboard.GetLeaderboard(ctx, bob.ID, &service.LeaderboardRequest{Scope: "country"})
		require.NoError(t, err)
		require.Len(t, board.Entries, 2)
		assert.Equal(t, alice.ID, board.Entries[0].UserID)
		require.NotNil(t, board.Caller.Rank)
		assert.Equal(t, 2, *board.Caller.Rank)
	})

	t.Run("monthly reset pays once and zeroes monthly xp", func(t *testing.T) {
		april := time.Date(2025, time.April, 1, 0, 5, 0, 0, time.UTC)
		resets := service.NewMonthlyResetService(resetsRepo, clockAt(april))
		report, err := resets.RunMonthlyReset(ctx)
		require.NoError(t, err)
		assert.True(t, report.Zeroed)
		// world 500 + country 500 + city 500 for alice; world 250 + country 250 + city 500 for bob
		assert.Equal(t, int64(2500), report.Paid)

		_, err = resets.RunMonthlyReset(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrResetAlreadyCompleted)

		user, err := usersRepo.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), user.RewardBalance)
		assert.Equal(t, int64(0), user.MonthlyXp)
		assert.Equal(t, int64(150), user.TotalXp)

		afterReset := service.NewProgressService(repos, service.NewStreakService(usersRepo, completionsRepo), clockAt(april))
		totals, err := afterReset.ComputeTotals(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), totals.MonthlyXp)
	})
}

func TestMonthlyResetIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { cleanup.CleanUp() })

	usersRepo := repository.NewUsersRepo(pool)
	resetsRepo := repository.NewMonthlyResetRepo(pool)
	clockAt := func(at time.Time) service.Option {
		return service.WithClock(func() time.Time { return at })
	}
	userID := func(name string) uuid.UUID {
		var id uuid.UUID
		require.NoError(t, pool.QueryRow(ctx, `SELECT id FROM users WHERE name = $1;`, name).Scan(&id))
		return id
	}
	balance := func(name string) int64 {
		user, err := usersRepo.FindByID(ctx, userID(name))
		require.NoError(t, err)
		return user.RewardBalance
	}

	t.Run("deployment month stays monthly after the first rollover", func(t *testing.T) {
		settled, err := resetsRepo.LastCompletedPeriod(ctx)
		require.NoError(t, err)
		require.NotNil(t, settled)
		deployed := progression.MonthStart(time.Now())
		assert.True(t, deployed.AddDate(0, -1, 0).Equal(*settled))
		afterRollover := deployed.AddDate(0, 1, 0).Add(time.Hour)
		assert.True(t, deployed.Equal(progression.MonthlyWindowStart(afterRollover, settled)))
	})

	t.Run("groups restart ranks and skip past rewarded ranks", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO users (name, country, city, monthly_xp)
			SELECT 'kz_' || g, CASE WHEN g % 2 = 0 THEN 'kazakhstan' ELSE 'Kazakhstan' END, CASE WHEN g % 3 = 0 THEN 'ALMATY' ELSE 'Almaty' END, 1000 + g
			FROM generate_series(1, 110) AS g;`)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `INSERT INTO users (name, country, city, monthly_xp)
			SELECT 'ru_' || g, 'Russia', 'Moscow', 500 + g FROM generate_series(1, 3) AS g;`)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `INSERT INTO users (name, monthly_xp) VALUES ('drifter', 50);`)
		require.NoError(t, err)

		april := time.Date(2025, time.April, 1, 0, 5, 0, 0, time.UTC)
		resets := service.NewMonthlyResetService(resetsRepo, clockAt(april), service.WithPageSize(7))
		report, err := resets.RunMonthlyReset(ctx)
		require.NoError(t, err)
		assert.True(t, report.Zeroed)
		top100 := int64(500 + 9*250 + 90*100)
		// world top 100, then country and city: kazakhstan top 100 and russia 3
		assert.Equal(t, top100+2*(top100+500+250+250), report.Paid)
		assert.Equal(t, 100+2*103, report.Granted)
		assert.Zero(t, report.Failed)

		assert.Equal(t, int64(1500), balance("kz_110"))
		assert.Equal(t, int64(300), balance("kz_11"))
		assert.Zero(t, balance("kz_10"))
		assert.Zero(t, balance("kz_1"))
		assert.Equal(t, int64(1000), balance("ru_3"))
		assert.Equal(t, int64(500), balance("ru_1"))
		assert.Zero(t, balance("drifter"))

		var grants int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM monthly_rewards WHERE period = $1;`, resetPeriod).Scan(&grants))
		assert.Equal(t, report.Granted, grants)
	})

	t.Run("resumed run ranks the standings frozen by the first attempt", func(t *testing.T) {
		may := time.Date(2025, time.May, 1, 0, 5, 0, 0, time.UTC)
		april := progression.SettlementPeriod(may)
		_, err := pool.Exec(ctx, `INSERT INTO users (name, monthly_xp) VALUES ('leader', 300), ('chaser', 200);`)
		require.NoError(t, err)
		leader, chaser := userID("leader"), userID("chaser")

		// first attempt froze the ranking and paid rank 1 before it died
		require.NoError(t, resetsRepo.StartRun(ctx, april, may))
		paid, err := resetsRepo.GrantReward(ctx, entity.RewardGrant{Period: april, UserID: leader, Scope: entity.ScopeWorld, Rank: 1, Amount: 500})
		require.NoError(t, err)
		require.True(t, paid)

		_, err = pool.Exec(ctx, `UPDATE users SET monthly_xp = 400 WHERE id = $1;`, chaser)
		require.NoError(t, err)
		paid, err = resetsRepo.GrantReward(ctx, entity.RewardGrant{Period: april, UserID: chaser, Scope: entity.ScopeWorld, Rank: 1, Amount: 500})
		require.NoError(t, err)
		assert.False(t, paid)

		resets := service.NewMonthlyResetService(resetsRepo, clockAt(may), service.WithPageSize(7))
		report, err := resets.RunMonthlyReset(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Skipped)
		assert.Equal(t, 1, report.Granted)
		assert.Equal(t, int64(250), report.Paid)
		assert.Equal(t, int64(500), balance("leader"))
		assert.Equal(t, int64(250), balance("chaser"))
	})
}
