// Package respond writes JSON response envelopes.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MessageBody is the shape of every error response.
type MessageBody struct {
	Msg string `json:"msg"`
}

// JSON writes v as the response body with the given status code.
// A nil v writes headers only.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already out; nothing to send but the log line
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Message writes {"msg": msg}.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, MessageBody{Msg: msg})
}

// NoContent writes an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// AppError pairs an internal error with the status and message the client sees.
type AppError struct {
	UserMsg string
	Err     error
	Code    int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}
