// Package schedule exposes the analysis engine over HTTP.
package schedule

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kilianp07/crewsched/core/events"
	"github.com/kilianp07/crewsched/core/logger"
	"github.com/kilianp07/crewsched/core/model"
	coresched "github.com/kilianp07/crewsched/core/schedule"
	"github.com/kilianp07/crewsched/internal/eventbus"
)

// Request is the snapshot payload accepted by both endpoints. Constraints
// are optional; when present they replace the configured defaults.
type Request struct {
	Events      []model.ScheduleEvent  `json:"events"`
	Crew        []model.CrewMember     `json:"crew"`
	Constraints *coresched.Constraints `json:"constraints,omitempty"`
}

// AnalyzeResponse bundles the full analysis with fleet-level statistics.
type AnalyzeResponse struct {
	model.ScheduleAnalysis
	Summary coresched.FleetSummary `json:"summary"`
}

// OptimizeResponse carries only the ranked suggestions.
type OptimizeResponse struct {
	Suggestions []model.ScheduleSuggestion `json:"suggestions"`
}

// Handler serves POST /api/schedule/analyze and /api/schedule/optimize.
type Handler struct {
	defaults coresched.Constraints
	bus      *eventbus.TypedBus[events.AnalysisCompleted]
	log      logger.Logger
}

// New creates a Handler. The bus may be nil when no one listens for
// analysis events.
func New(defaults coresched.Constraints, bus *eventbus.TypedBus[events.AnalysisCompleted], log logger.Logger) *Handler {
	return &Handler{defaults: defaults, bus: bus, log: log}
}

// Mux returns a ServeMux with both endpoints registered.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/schedule/analyze", http.HandlerFunc(h.analyze))
	mux.Handle("/api/schedule/optimize", http.HandlerFunc(h.optimize))
	return mux
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*Request, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *Handler) constraints(req *Request) *coresched.Constraints {
	if req.Constraints != nil {
		return req.Constraints
	}
	return &h.defaults
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	start := time.Now()
	analysis := coresched.AnalyzeSchedule(req.Events, req.Crew, h.constraints(req))
	h.publish("api", analysis, time.Since(start))

	h.log.Debugw("schedule analyzed", map[string]any{
		"events":    len(req.Events),
		"crew":      len(req.Crew),
		"conflicts": len(analysis.Conflicts),
	})
	writeJSON(w, AnalyzeResponse{
		ScheduleAnalysis: analysis,
		Summary:          coresched.Summarize(analysis.CrewUtilization),
	})
}

func (h *Handler) optimize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	start := time.Now()
	analysis := coresched.AnalyzeSchedule(req.Events, req.Crew, h.constraints(req))
	h.publish("api", analysis, time.Since(start))

	writeJSON(w, OptimizeResponse{Suggestions: analysis.Suggestions})
}

func (h *Handler) publish(source string, analysis model.ScheduleAnalysis, dur time.Duration) {
	if h.bus == nil {
		return
	}
	h.bus.Publish(events.AnalysisCompleted{
		Source:   source,
		Analysis: analysis,
		Duration: dur,
		Time:     time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
