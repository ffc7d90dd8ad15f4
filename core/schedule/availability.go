package schedule

import "github.com/kilianp07/crewsched/core/model"

// IsAvailable reports whether any of the member's weekly windows covers the
// event. Matching is hour-granular: a window matches when its day equals the
// event's weekday and it fully contains the start and end hours. Minutes are
// ignored and windows spanning midnight are not supported.
func IsAvailable(c model.CrewMember, e model.ScheduleEvent) bool {
	day := int(e.StartTime.Weekday())
	startHour := e.StartTime.Hour()
	endHour := e.EndTime.Hour()
	for _, w := range c.Availability {
		if w.Day == day && w.StartHour <= startHour && w.EndHour >= endHour {
			return true
		}
	}
	return false
}
