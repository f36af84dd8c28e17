package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/dashboard"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/export"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/logging"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/web/templates"
)

// SummaryResponse is the body of GET /api/summary.
type SummaryResponse struct {
	RunID      string            `json:"run_id"`
	DurationMs int64             `json:"duration_ms"`
	Summary    dashboard.Summary `json:"summary"`
}

// handleDashboard builds and renders the page. A failed build still shows
// every section produced before the failure, followed by the error.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := s.builder.Build(ctx)

	status := http.StatusOK
	var alert *core.UserMessage
	if page.Err != nil {
		msg := core.MapError(page.Err)
		alert = &msg
		status = statusFor(page.Err)
	}

	var buf bytes.Buffer
	if err := templates.Dashboard(page, alert).Render(ctx, &buf); err != nil {
		s.respondError(w, r, fmt.Errorf("render dashboard: %w", err), page.RunID)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(ctx).Warn("write dashboard", "error", err)
	}
}

// handleSummary returns the aggregates as JSON.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	page := s.builder.Build(r.Context())
	if page.Err != nil {
		s.respondError(w, r, page.Err, page.RunID)
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{
		RunID:      page.RunID,
		DurationMs: page.Duration.Milliseconds(),
		Summary:    page.Summary,
	})
}

// handleExport streams the cleaned data and aggregates as an xlsx workbook.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	page := s.builder.Build(r.Context())

	var buf bytes.Buffer
	if err := export.Write(&buf, page); err != nil {
		s.respondError(w, r, err, page.RunID)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Warn("write workbook", "error", err)
	}
}

// handleHealth reports liveness. It does not read the data file.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
