package schedule

import "github.com/kilianp07/crewsched/core/model"

// OptimizeSchedule runs conflict detection and returns only the remediation
// suggestions. Intended for "what should I fix" workflows.
func OptimizeSchedule(events []model.ScheduleEvent, crew []model.CrewMember, constraints *Constraints) []model.ScheduleSuggestion {
	conflicts := DetectConflicts(events, crew, constraints)
	return GenerateSuggestions(events, crew, conflicts)
}

// AnalyzeSchedule returns the full analysis: conflicts, suggestions,
// per-crew utilization and the ids of events with no assigned crew.
func AnalyzeSchedule(events []model.ScheduleEvent, crew []model.CrewMember, constraints *Constraints) model.ScheduleAnalysis {
	conflicts := DetectConflicts(events, crew, constraints)
	suggestions := GenerateSuggestions(events, crew, conflicts)
	utilization := CalculateUtilization(events, crew)

	var unassigned []string
	for _, e := range events {
		if e.Unassigned() {
			unassigned = append(unassigned, e.ID)
		}
	}

	return model.ScheduleAnalysis{
		Conflicts:        conflicts,
		Suggestions:      suggestions,
		CrewUtilization:  utilization,
		UnassignedEvents: unassigned,
	}
}
