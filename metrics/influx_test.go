package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/crewsched/core/model"
)

func TestInfluxSink_RecordAnalysis(t *testing.T) {
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	now := time.Now()
	rec := AnalysisRecord{
		Source: "api",
		Analysis: model.ScheduleAnalysis{
			Conflicts: []model.ScheduleConflict{
				{Type: model.ConflictOverlap, Severity: model.SeverityError, EventID: "e1", CrewMemberID: "crew1"},
			},
			Suggestions: []model.ScheduleSuggestion{
				{Type: model.SuggestionReassign, EventID: "e1", Priority: model.SuggestionHigh},
			},
			CrewUtilization: []model.CrewUtilization{
				{
					CrewMemberID:       "crew1",
					CrewMemberName:     "Alice",
					ScheduledHours:     32,
					AvailableHours:     40,
					UtilizationPercent: 80,
					Status:             model.Optimal,
				},
			},
			UnassignedEvents: []string{"e2"},
		},
		Duration: 12 * time.Millisecond,
		Time:     now,
	}

	if err := sink.RecordAnalysis(rec); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 write requests, got %d", len(bodies))
	}

	summary := write.NewPointWithMeasurement("schedule_analysis").
		AddTag("source", "api").
		AddField("conflicts", 1).
		AddField("suggestions", 1).
		AddField("unassigned_events", 1).
		AddField("duration_ms", int64(12)).
		SetTime(now)
	summary.AddField("conflicts_overlap", 1)
	if got, want := strings.TrimSpace(bodies[0]), strings.TrimSpace(write.PointToLineProtocol(summary, time.Nanosecond)); got != want {
		t.Errorf("unexpected summary body: %s", got)
	}

	util := write.NewPointWithMeasurement("crew_utilization").
		AddTag("crew_id", "crew1").
		AddTag("status", "optimal").
		AddField("scheduled_hours", 32.0).
		AddField("available_hours", 40.0).
		AddField("percent", 80).
		SetTime(now)
	if got, want := strings.TrimSpace(bodies[1]), strings.TrimSpace(write.PointToLineProtocol(util, time.Nanosecond)); got != want {
		t.Errorf("unexpected utilization body: %s", got)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	cfg := Config{
		InfluxURL:    srv.URL + "/api/v2/write",
		InfluxToken:  "tok",
		InfluxOrg:    "org",
		InfluxBucket: "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}

func TestNewInfluxSinkWithFallback_Healthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"influxdb","status":"pass"}`))
			return
		}
	}))
	defer srv.Close()

	cfg := Config{
		InfluxURL:    srv.URL + "/api/v2/write",
		InfluxToken:  "tok",
		InfluxOrg:    "org",
		InfluxBucket: "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	is, ok := sink.(*InfluxSink)
	if !ok {
		t.Fatalf("expected real sink on passing health check, got %T", sink)
	}
	is.Close()
}
