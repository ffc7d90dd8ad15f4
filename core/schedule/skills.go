package schedule

import (
	"strings"

	"github.com/kilianp07/crewsched/core/model"
)

// HasSkills reports whether the member satisfies every skill the event
// requires. Matching is a case-insensitive exact comparison. An event with
// no required skills matches everyone.
func HasSkills(c model.CrewMember, e model.ScheduleEvent) bool {
	if len(e.RequiredSkills) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(c.Skills))
	for _, s := range c.Skills {
		have[strings.ToLower(s)] = struct{}{}
	}
	for _, req := range e.RequiredSkills {
		if _, ok := have[strings.ToLower(req)]; !ok {
			return false
		}
	}
	return true
}
