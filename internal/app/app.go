// Package app assembles the record store, services and metrics shared by the HTTP
// service and the admin CLI.
package app

import (
	"context"
	"log/slog"

	"github.com/limbo/levelup/internal/metrics"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Settings struct {
	DB            repository.PGCfg
	ResetPageSize int
	Logger        *slog.Logger
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		DB: repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		},
		ResetPageSize: cfg.GetInt("RESET_PAGE_SIZE", 500),
		Logger:        slog.Default(),
	}
}

type App struct {
	Registry    *prometheus.Registry
	Metrics     *metrics.Metrics
	Users       service.UserServiceI
	Streaks     service.StreakServiceI
	Progress    service.ProgressServiceI
	Leaderboard service.LeaderboardServiceI
	Resets      service.MonthlyResetServiceI
}

// New connects to the record store and assembles the services over it.
// The pool is closed by the cleanup registry.
func New(ctx context.Context, s Settings) (*App, error) {
	pool, err := repository.NewPool(ctx, &s.DB)
	if err != nil {
		return nil, err
	}
	return Assemble(pool, s), nil
}

func Assemble(conn repository.PgConnection, s Settings) *App {
	service.InitValidator()
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	opts := []service.Option{
		service.WithLogger(s.Logger),
		service.WithMetrics(m),
		service.WithPageSize(s.ResetPageSize),
	}

	usersRepo := repository.NewUsersRepo(conn)
	completionsRepo := repository.NewCompletionsRepo(conn)
	resetsRepo := repository.NewMonthlyResetRepo(conn)
	streaks := service.NewStreakService(usersRepo, completionsRepo, opts...)
	return &App{
		Registry: reg,
		Metrics:  m,
		Users:    service.NewUserService(usersRepo),
		Streaks:  streaks,
		Progress: service.NewProgressService(service.ProgressRepos{
			Users:       usersRepo,
			Completions: completionsRepo,
			MoodLogs:    repository.NewMoodLogsRepo(conn),
			Resets:      resetsRepo,
		}, streaks, opts...),
		Leaderboard: service.NewLeaderboardService(usersRepo, repository.NewFollowsRepo(conn), repository.NewLeaderboardRepo(conn)),
		Resets:      service.NewMonthlyResetService(resetsRepo, opts...),
	}
}
