package metrics

import (
	"time"

	"github.com/kilianp07/crewsched/core/model"
)

// AnalysisRecord captures one detection pass for observability purposes.
type AnalysisRecord struct {
	Source   string // surface that triggered the pass: "api", "cli", ...
	Analysis model.ScheduleAnalysis
	Duration time.Duration
	Time     time.Time
}

// AnalysisSink records analysis results.
type AnalysisSink interface {
	RecordAnalysis(rec AnalysisRecord) error
}

// NopSink implements AnalysisSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordAnalysis(AnalysisRecord) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}
