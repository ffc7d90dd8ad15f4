package model

// ConflictType classifies a detected assignment problem.
type ConflictType string

const (
	ConflictOverlap       ConflictType = "overlap"
	ConflictTravelTime    ConflictType = "travel-time"
	ConflictAvailability  ConflictType = "availability"
	ConflictSkillMismatch ConflictType = "skill-mismatch"
	ConflictOverwork      ConflictType = "overwork"
)

// ConflictSeverity grades a conflict.
type ConflictSeverity string

const (
	SeverityWarning ConflictSeverity = "warning"
	SeverityError   ConflictSeverity = "error"
)

// ScheduleConflict describes one problem with a current assignment. Conflicts
// always reference an event and crew member present in the input snapshot.
type ScheduleConflict struct {
	Type                ConflictType     `json:"type"`
	Severity            ConflictSeverity `json:"severity"`
	EventID             string           `json:"event_id"`
	CrewMemberID        string           `json:"crew_member_id"`
	CrewMemberName      string           `json:"crew_member_name"`
	Description         string           `json:"description"`
	SuggestedResolution string           `json:"suggested_resolution,omitempty"`
}

// SuggestionType identifies the kind of remediation proposed.
type SuggestionType string

const (
	SuggestionReassign   SuggestionType = "reassign"
	SuggestionReschedule SuggestionType = "reschedule"
	SuggestionAddCrew    SuggestionType = "add-crew"
	SuggestionSplitShift SuggestionType = "split-shift"
)

// SuggestionPriority ranks suggestions for the dispatcher.
type SuggestionPriority string

const (
	SuggestionLow    SuggestionPriority = "low"
	SuggestionMedium SuggestionPriority = "medium"
	SuggestionHigh   SuggestionPriority = "high"
)

// ScheduleSuggestion proposes a crew change that resolves a conflict or
// covers an unassigned event.
type ScheduleSuggestion struct {
	Type                 SuggestionType     `json:"type"`
	EventID              string             `json:"event_id"`
	EventTitle           string             `json:"event_title"`
	CurrentAssignment    []string           `json:"current_assignment"`
	SuggestedAssignment  []string           `json:"suggested_assignment"`
	Reason               string             `json:"reason"`
	EstimatedImprovement string             `json:"estimated_improvement"`
	Priority             SuggestionPriority `json:"priority"`
}

// UtilizationStatus bands a crew member's workload.
type UtilizationStatus string

const (
	Underutilized UtilizationStatus = "underutilized" // < 50%
	Optimal       UtilizationStatus = "optimal"       // 50-100%
	Overworked    UtilizationStatus = "overworked"    // > 100%
)

// CrewUtilization reports scheduled versus declared available hours for one
// crew member.
type CrewUtilization struct {
	CrewMemberID       string            `json:"crew_member_id"`
	CrewMemberName     string            `json:"crew_member_name"`
	ScheduledHours     float64           `json:"scheduled_hours"`
	AvailableHours     float64           `json:"available_hours"`
	UtilizationPercent int               `json:"utilization_percent"`
	Status             UtilizationStatus `json:"status"`
}

// ScheduleAnalysis aggregates everything a detection pass produces.
type ScheduleAnalysis struct {
	Conflicts        []ScheduleConflict   `json:"conflicts"`
	Suggestions      []ScheduleSuggestion `json:"suggestions"`
	CrewUtilization  []CrewUtilization    `json:"crew_utilization"`
	UnassignedEvents []string             `json:"unassigned_events"`
}
