package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/levelup/internal/api"
	"github.com/limbo/levelup/internal/app"
	"github.com/limbo/levelup/internal/scheduler"
	"github.com/limbo/levelup/pkg/cleanup"
	"github.com/limbo/levelup/pkg/config"
	jwtservice "github.com/limbo/levelup/pkg/jwt_service"
)

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cleanup.CleanUp()

	a, err := app.New(ctx, app.SettingsFromConfig(cfg))
	if err != nil {
		log.Println("Startup error: " + err.Error())
		return
	}

	sched, err := scheduler.New(a.Metrics, slog.Default())
	if err != nil {
		log.Println("Scheduler error: " + err.Error())
		return
	}
	jobs := []scheduler.Job{
		{
			Name: "monthly_reset",
			Cron: cfg.GetStringOr("MONTHLY_RESET_CRON", scheduler.DefaultMonthlyResetCron),
			Run: func(ctx context.Context) error {
				_, err := a.Resets.RunMonthlyReset(ctx)
				return err
			},
		},
		{
			Name: "reconcile",
			Cron: cfg.GetStringOr("RECONCILE_CRON", scheduler.DefaultReconcileCron),
			Run: func(ctx context.Context) error {
				_, err := a.Progress.ReconcileAll(ctx)
				return err
			},
		},
	}
	for _, job := range jobs {
		if err = sched.Add(ctx, job); err != nil {
			log.Println("Scheduler error: " + err.Error())
			return
		}
	}
	sched.Start()
	cleanup.Register(&cleanup.Job{Name: "stopping scheduler", F: sched.Shutdown})

	serv := api.New(&api.ServicesList{
		UserService:        a.Users,
		ProgressService:    a.Progress,
		LeaderboardService: a.Leaderboard,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
		Metrics:            a.Metrics,
		Gatherer:           a.Registry,
		RateLimit: api.RateLimit{
			RPS:   cfg.GetFloat("RATE_LIMIT_RPS", 5),
			Burst: cfg.GetInt("RATE_LIMIT_BURST", 30),
		},
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
