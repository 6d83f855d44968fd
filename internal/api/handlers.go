package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/progression"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/entity"
	"github.com/limbo/levelup/pkg/httputil"
)

type LevelsResponse struct {
	Levels []entity.LevelThreshold `json:"levels"`
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	dashboard, err := s.progressService.Dashboard(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
	logger.Info("progress provided")
}

func (s *Server) Recalculate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recalculation error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.progressService.Recalculate(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "recalculation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("progress recalculated", slog.Int64("total_xp", user.TotalXp), slog.Int("level", user.Level))
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	board, err := s.leaderboardService.GetLeaderboard(ctx, uid, &service.LeaderboardRequest{
		Scope:   q.Get("scope"),
		Period:  q.Get("period"),
		Country: q.Get("country"),
		City:    q.Get("city"),
	})
	if err != nil {
		writeServiceError(w, logger, "leaderboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
	logger.Info("leaderboard provided", slog.String("scope", string(board.Scope)), slog.String("period", string(board.Period)))
}

func (s *Server) GetLevels(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, LevelsResponse{Levels: progression.Levels()})
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(action + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrScopeCountryRequired), errors.Is(err, errorvalues.ErrScopeCityRequired):
		logger.Error(action+" error: scope cannot be resolved", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "scope requires a location", err)
	case errors.Is(err, errorvalues.ErrInvalidScope), errors.Is(err, errorvalues.ErrInvalidPeriod),
		errors.Is(err, errorvalues.ErrInvalidPlace):
		logger.Error(action+" error: invalid query", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query parameters", err)
	case errors.Is(err, errorvalues.ErrStreakConflict):
		logger.Error(action + " error: streak conflict")
		httputil.WriteErrorResponse(w, http.StatusConflict, "progress is being updated concurrently, retry", nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+action, nil)
	}
}
