package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/levelup/internal/metrics"
	"github.com/limbo/levelup/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	progressService    service.ProgressServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
	metrics            *metrics.Metrics
	gatherer           prometheus.Gatherer
	limiter            *visitorLimiter
}

type ServicesList struct {
	UserService        service.UserServiceI
	ProgressService    service.ProgressServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
	Metrics            *metrics.Metrics
	// Gatherer backs /metrics. The default prometheus registry is used when nil.
	Gatherer  prometheus.Gatherer
	RateLimit RateLimit
}

func New(servicesOptions *ServicesList) *Server {
	gatherer := servicesOptions.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		progressService:    servicesOptions.ProgressService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
		metrics:            servicesOptions.Metrics,
		gatherer:           gatherer,
		limiter:            newVisitorLimiter(servicesOptions.RateLimit),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)
	s.mx.Get("/healthz", s.Healthz)
	s.mx.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/progress", s.GetProgress)
		r.Post("/progress/recalculate", s.Recalculate)
		r.Get("/levels", s.GetLevels)
		r.With(s.RateLimitMiddleware).Get("/leaderboard", s.GetLeaderboard)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go s.limiter.evictLoop(ctx)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("http server stopped")
	return nil
}
