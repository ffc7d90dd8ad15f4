package metrics

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/crewsched/infra/logger"
)

// InfluxSink writes analysis results to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg Config) AnalysisSink {
	sink := NewInfluxSink(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return NopSink{}
	}
	return sink
}

// RecordAnalysis writes one summary point per pass plus one utilization
// point per crew member.
func (s *InfluxSink) RecordAnalysis(rec AnalysisRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	byType := make(map[string]int)
	for _, c := range rec.Analysis.Conflicts {
		byType[string(c.Type)]++
	}
	types := make([]string, 0, len(byType))
	for typ := range byType {
		types = append(types, typ)
	}
	sort.Strings(types)

	summary := write.NewPointWithMeasurement("schedule_analysis").
		AddTag("source", rec.Source).
		AddField("conflicts", len(rec.Analysis.Conflicts)).
		AddField("suggestions", len(rec.Analysis.Suggestions)).
		AddField("unassigned_events", len(rec.Analysis.UnassignedEvents)).
		AddField("duration_ms", rec.Duration.Milliseconds()).
		SetTime(rec.Time)
	// Field order must be stable so repeated runs emit identical lines.
	for _, typ := range types {
		summary.AddField("conflicts_"+strings.ReplaceAll(typ, "-", "_"), byType[typ])
	}
	if err := s.writeAPI.WritePoint(ctx, summary); err != nil {
		return err
	}

	for _, u := range rec.Analysis.CrewUtilization {
		p := write.NewPointWithMeasurement("crew_utilization").
			AddTag("crew_id", u.CrewMemberID).
			AddTag("status", string(u.Status)).
			AddField("scheduled_hours", u.ScheduledHours).
			AddField("available_hours", u.AvailableHours).
			AddField("percent", u.UtilizationPercent).
			SetTime(rec.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }
