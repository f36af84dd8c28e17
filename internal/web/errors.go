package web

// errors.go provides unified error response handling for the web layer.
//
// The error flow:
//  1. A handler gets an error (usually Page.Err from a failed build)
//  2. It calls respondError or statusFor
//  3. The error is mapped via core.MapError to a user message and code
//  4. The technical error is logged with the request ID
//  5. The user message is written as JSON or HTML

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/logging"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
	RunID   string `json:"run_id,omitempty"`
}

var rateLimitMessage = core.MapError(errors.New("rate limit exceeded"))

// codeStatus maps support codes to HTTP statuses. Unlisted codes are 500.
var codeStatus = map[string]int{
	"FILE001": http.StatusServiceUnavailable,
	"REQ001":  http.StatusServiceUnavailable,
	"REQ002":  http.StatusGatewayTimeout,
	"RATE001": http.StatusTooManyRequests,
	"RATE002": http.StatusServiceUnavailable,
}

// statusFor returns the HTTP status for an error.
func statusFor(err error) int {
	if status, ok := codeStatus[core.MapError(err).Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondError logs the technical error server-side and writes the user
// message as JSON or HTML depending on the request.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, runID string) {
	userMsg := core.MapError(err)
	status := statusFor(err)

	logging.FromContext(r.Context()).Log(r.Context(), errorLevel(err), "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
		"run_id", runID,
	)

	if wantsJSON(r) {
		resp := errorResponse(userMsg)
		resp.RunID = runID
		writeJSON(w, status, resp)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.ErrorAlert(userMsg.Message, userMsg.Action, userMsg.Code).Render(r.Context(), w)
}

// errorLevel logs known failures, such as a bad data file, at WARN and
// anything that maps to ERR000 at ERROR.
func errorLevel(err error) slog.Level {
	if core.IsUserFacing(err) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg core.UserMessage, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse(msg))
}

func errorResponse(msg core.UserMessage) ErrorResponse {
	return ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	}
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
