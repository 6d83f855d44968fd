package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/httputil"
)

type ctxKey string

const (
	requestIDContextKey ctxKey = "Request-ID"
	loggerContextKey    ctxKey = "Logger"
	uidContextKey       ctxKey = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if uid, ok := r.Context().Value(uidContextKey).(uuid.UUID); ok {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// MetricsMiddleware records every request under its route pattern, so path ids do not
// multiply series.
func (s *Server) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.ObserveRequest(path, r.Method, status, time.Since(start))
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Getting claims from token string
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("auth failed: error parsing token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			default:
				logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
				return
			}
		}
		// Assuring if token is alive
		now := time.Now()
		if tokenClaims.ExpiresAt == nil || tokenClaims.ExpiresAt.Time.Before(now) ||
			(tokenClaims.NotBefore != nil && tokenClaims.NotBefore.Time.After(now)) {
			logger.Error("tried to auth with expired or not ready token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			return
		}
		uid, err := uuid.Parse(tokenClaims.UserID)
		if err != nil {
			logger.Error("invalid uid in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		// Assuring if user still exists
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		_, err = s.userService.GetByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("user doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "auth failed: user not found", nil)
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user", nil)
			return
		}
		r = r.WithContext(WithUserID(r.Context(), uid))
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware throttles per caller, falling back to the client address
// for unauthenticated requests.
func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientAddr(r)
		if uid, err := GetUIDFromContext(r); err == nil {
			key = uid.String()
		}
		if ok, wait := s.limiter.reserve(key); !ok {
			GetLoggerFromCtx(r.Context()).Warn("rate limit exceeded", slog.String("key", key))
			httputil.WriteTooManyRequests(w, wait)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func WithUserID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
