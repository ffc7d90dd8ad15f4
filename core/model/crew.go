package model

// AvailabilityWindow is a recurring weekly slot during which a crew member
// can be scheduled. Hours are whole hours in the event's local day; windows
// do not span midnight.
type AvailabilityWindow struct {
	Day       int `json:"day"`        // 0 = Sunday .. 6 = Saturday
	StartHour int `json:"start_hour"` // inclusive, 0-23
	EndHour   int `json:"end_hour"`   // exclusive upper bound, must be > StartHour
}

// SpanHours returns the window length in hours.
func (w AvailabilityWindow) SpanHours() int {
	return w.EndHour - w.StartHour
}

// CrewMember is a person who can be assigned to events. Like events, crew
// records are immutable snapshots.
type CrewMember struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Skills         []string             `json:"skills,omitempty"`
	Availability   []AvailabilityWindow `json:"availability,omitempty"`
	Location       *LatLng              `json:"location,omitempty"`
	MaxHoursPerDay float64              `json:"max_hours_per_day,omitempty"` // 0 means no daily limit
}

// WeeklyAvailableHours sums the spans of all declared windows.
func (c CrewMember) WeeklyAvailableHours() float64 {
	total := 0.0
	for _, w := range c.Availability {
		total += float64(w.SpanHours())
	}
	return total
}
