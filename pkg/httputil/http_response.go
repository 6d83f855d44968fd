package httputil

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	write(w, statusCode, sonic.ConfigFastest, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	write(w, statusCode, sonic.ConfigDefault, body)
}

// WriteTooManyRequests answers 429 with a Retry-After hint rounded up to whole seconds.
func WriteTooManyRequests(w http.ResponseWriter, retryAfter time.Duration) {
	secs := int((retryAfter + time.Second - 1) / time.Second)
	w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
	WriteErrorResponse(w, http.StatusTooManyRequests, "too many requests", nil)
}

func write(w http.ResponseWriter, statusCode int, api sonic.API, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := api.NewEncoder(w).Encode(body); err != nil {
		slog.Error("writing response body error", slog.String("error", err.Error()))
	}
}
