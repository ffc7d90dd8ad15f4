package model

import "time"

// EventPriority indicates how important an event is to the dispatcher.
type EventPriority string

const (
	PriorityLow    EventPriority = "low"
	PriorityMedium EventPriority = "medium"
	PriorityHigh   EventPriority = "high"
	PriorityUrgent EventPriority = "urgent"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location describes where a project takes place.
type Location struct {
	LatLng
	Address string `json:"address,omitempty"`
}

// ScheduleEvent is a time-boxed unit of work tied to a project. Events are
// immutable inputs to the engine: the analysis never mutates them.
type ScheduleEvent struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	ProjectID      string        `json:"project_id"`
	ProjectName    string        `json:"project_name"`
	Location       *Location     `json:"location,omitempty"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"` // must be after StartTime
	AssignedCrew   []string      `json:"assigned_crew"`
	RequiredSkills []string      `json:"required_skills,omitempty"`
	Priority       EventPriority `json:"priority"`
}

// DurationHours returns the event length in hours.
func (e ScheduleEvent) DurationHours() float64 {
	return e.EndTime.Sub(e.StartTime).Hours()
}

// Overlaps reports whether the two events' time ranges intersect.
func (e ScheduleEvent) Overlaps(other ScheduleEvent) bool {
	return e.StartTime.Before(other.EndTime) && other.StartTime.Before(e.EndTime)
}

// Coordinates returns the event's location coordinates, or nil when the
// project has no geo data.
func (e ScheduleEvent) Coordinates() *LatLng {
	if e.Location == nil {
		return nil
	}
	return &e.Location.LatLng
}

// HasAssignee reports whether the crew member id is assigned to the event.
func (e ScheduleEvent) HasAssignee(crewID string) bool {
	for _, id := range e.AssignedCrew {
		if id == crewID {
			return true
		}
	}
	return false
}

// Unassigned reports whether the event has no crew at all.
func (e ScheduleEvent) Unassigned() bool {
	return len(e.AssignedCrew) == 0
}
