package schedule

import (
	"math"

	"github.com/kilianp07/crewsched/core/model"
)

// CalculateUtilization reports scheduled versus available hours for each
// crew member. Available hours are the flat weekly sum of the member's
// declared windows, not scoped to the analysis date range.
func CalculateUtilization(events []model.ScheduleEvent, crew []model.CrewMember) []model.CrewUtilization {
	out := make([]model.CrewUtilization, 0, len(crew))
	for _, member := range crew {
		scheduled := 0.0
		for _, e := range events {
			if e.HasAssignee(member.ID) {
				scheduled += e.DurationHours()
			}
		}
		available := member.WeeklyAvailableHours()

		percent := 0
		if available > 0 {
			percent = int(math.Round(scheduled / available * 100))
		}
		status := model.Optimal
		switch {
		case percent < 50:
			status = model.Underutilized
		case percent > 100:
			status = model.Overworked
		}

		out = append(out, model.CrewUtilization{
			CrewMemberID:       member.ID,
			CrewMemberName:     member.Name,
			ScheduledHours:     scheduled,
			AvailableHours:     available,
			UtilizationPercent: percent,
			Status:             status,
		})
	}
	return out
}
