// Package events defines the domain events exchanged over the internal bus.
package events

import (
	"time"

	"github.com/kilianp07/crewsched/core/model"
)

// AnalysisCompleted is published after every detection pass, regardless of
// which surface (API, CLI) triggered it.
type AnalysisCompleted struct {
	Source   string
	Analysis model.ScheduleAnalysis
	Duration time.Duration
	Time     time.Time
}
