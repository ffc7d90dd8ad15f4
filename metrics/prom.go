package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records analysis results in Prometheus metrics.
type PromSink struct {
	analyses    *prometheus.CounterVec
	conflicts   *prometheus.CounterVec
	suggestions *prometheus.CounterVec
	unassigned  prometheus.Gauge
	utilization *prometheus.GaugeVec
	duration    *prometheus.HistogramVec
}

// NewPromSink registers analysis metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_analyses_total",
			Help: "Total number of schedule analysis passes",
		}, []string{"source"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_conflicts_total",
			Help: "Total number of conflicts detected",
		}, []string{"type", "severity"}),
		suggestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_suggestions_total",
			Help: "Total number of suggestions generated",
		}, []string{"type", "priority"}),
		unassigned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "schedule_unassigned_events",
			Help: "Events without crew in the last analyzed snapshot",
		}),
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "schedule_crew_utilization_percent",
			Help: "Per-crew utilization in the last analyzed snapshot",
		}, []string{"crew_id"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "schedule_analysis_duration_seconds",
			Help:    "Wall time of a full analysis pass",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
	}

	if err := register(reg, s.analyses, &s.analyses); err != nil {
		return nil, err
	}
	if err := register(reg, s.conflicts, &s.conflicts); err != nil {
		return nil, err
	}
	if err := register(reg, s.suggestions, &s.suggestions); err != nil {
		return nil, err
	}
	if err := register(reg, s.unassigned, &s.unassigned); err != nil {
		return nil, err
	}
	if err := register(reg, s.utilization, &s.utilization); err != nil {
		return nil, err
	}
	if err := register(reg, s.duration, &s.duration); err != nil {
		return nil, err
	}
	return s, nil
}

// register registers c, reusing an existing collector when one with the same
// descriptor is already present.
func register[C prometheus.Collector](reg prometheus.Registerer, c C, out *C) error {
	if err := reg.Register(c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return err
		}
		existing, ok := are.ExistingCollector.(C)
		if !ok {
			return err
		}
		*out = existing
	}
	return nil
}

// RecordAnalysis updates all collectors from the record.
func (s *PromSink) RecordAnalysis(rec AnalysisRecord) error {
	s.analyses.WithLabelValues(rec.Source).Inc()
	s.duration.WithLabelValues(rec.Source).Observe(rec.Duration.Seconds())
	for _, c := range rec.Analysis.Conflicts {
		s.conflicts.WithLabelValues(string(c.Type), string(c.Severity)).Inc()
	}
	for _, sg := range rec.Analysis.Suggestions {
		s.suggestions.WithLabelValues(string(sg.Type), string(sg.Priority)).Inc()
	}
	s.unassigned.Set(float64(len(rec.Analysis.UnassignedEvents)))
	for _, u := range rec.Analysis.CrewUtilization {
		s.utilization.WithLabelValues(u.CrewMemberID).Set(float64(u.UtilizationPercent))
	}
	return nil
}
