package schedule

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/crewsched/core/model"
)

// FleetSummary aggregates utilization statistics across the whole crew pool.
type FleetSummary struct {
	CrewCount          int     `json:"crew_count"`
	MeanUtilization    float64 `json:"mean_utilization"`
	StdDevUtilization  float64 `json:"stddev_utilization"`
	MinUtilization     int     `json:"min_utilization"`
	MaxUtilization     int     `json:"max_utilization"`
	UnderutilizedCount int     `json:"underutilized_count"`
	OptimalCount       int     `json:"optimal_count"`
	OverworkedCount    int     `json:"overworked_count"`
}

// Summarize computes fleet-level statistics over per-crew utilization.
func Summarize(utilization []model.CrewUtilization) FleetSummary {
	s := FleetSummary{CrewCount: len(utilization)}
	if len(utilization) == 0 {
		return s
	}

	percents := make([]float64, len(utilization))
	s.MinUtilization = utilization[0].UtilizationPercent
	for i, u := range utilization {
		percents[i] = float64(u.UtilizationPercent)
		if u.UtilizationPercent < s.MinUtilization {
			s.MinUtilization = u.UtilizationPercent
		}
		if u.UtilizationPercent > s.MaxUtilization {
			s.MaxUtilization = u.UtilizationPercent
		}
		switch u.Status {
		case model.Underutilized:
			s.UnderutilizedCount++
		case model.Overworked:
			s.OverworkedCount++
		default:
			s.OptimalCount++
		}
	}
	s.MeanUtilization = stat.Mean(percents, nil)
	if len(percents) > 1 {
		s.StdDevUtilization = stat.StdDev(percents, nil)
	}
	return s
}
