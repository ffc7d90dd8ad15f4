package schedule

import (
	"fmt"
	"sort"

	"github.com/kilianp07/crewsched/core/geo"
	"github.com/kilianp07/crewsched/core/model"
)

// DetectConflicts scans every crew member's assignments and returns the
// conflicts found. Overlap and travel-time checks compare each event only to
// its immediate successor in start-time order; a cluster of three or more
// events can therefore hide a non-adjacent overlap. Consumers depend on this
// narrower conflict count, so the scan is deliberately not all-pairs.
//
// Output order is deterministic: crew members in input order, each member's
// events by start time, overwork dates sorted.
func DetectConflicts(events []model.ScheduleEvent, crew []model.CrewMember, constraints *Constraints) []model.ScheduleConflict {
	cfg := constraints.withDefaults()

	assigned := make(map[string][]model.ScheduleEvent)
	for _, e := range events {
		for _, id := range e.AssignedCrew {
			assigned[id] = append(assigned[id], e)
		}
	}

	var conflicts []model.ScheduleConflict
	for _, member := range crew {
		evs := assigned[member.ID]
		if len(evs) == 0 {
			continue
		}
		sort.SliceStable(evs, func(i, j int) bool {
			return evs[i].StartTime.Before(evs[j].StartTime)
		})

		for i, ev := range evs {
			if cfg.respectAvailability && !IsAvailable(member, ev) {
				conflicts = append(conflicts, model.ScheduleConflict{
					Type:           model.ConflictAvailability,
					Severity:       model.SeverityError,
					EventID:        ev.ID,
					CrewMemberID:   member.ID,
					CrewMemberName: member.Name,
					Description: fmt.Sprintf("%s is not available for %q (%s %02d:00-%02d:00)",
						member.Name, ev.Title, ev.StartTime.Weekday(), ev.StartTime.Hour(), ev.EndTime.Hour()),
					SuggestedResolution: "Reassign the event or update the availability calendar",
				})
			}
			if cfg.prioritizeSkillMatch && !HasSkills(member, ev) {
				conflicts = append(conflicts, model.ScheduleConflict{
					Type:           model.ConflictSkillMismatch,
					Severity:       model.SeverityWarning,
					EventID:        ev.ID,
					CrewMemberID:   member.ID,
					CrewMemberName: member.Name,
					Description: fmt.Sprintf("%s lacks required skills for %q: %v",
						member.Name, ev.Title, ev.RequiredSkills),
					SuggestedResolution: "Assign a crew member with the required skills",
				})
			}
			if i == len(evs)-1 {
				continue
			}
			next := evs[i+1]
			if ev.Overlaps(next) {
				conflicts = append(conflicts, model.ScheduleConflict{
					Type:           model.ConflictOverlap,
					Severity:       model.SeverityError,
					EventID:        ev.ID,
					CrewMemberID:   member.ID,
					CrewMemberName: member.Name,
					Description: fmt.Sprintf("%s is double-booked: %q overlaps %q",
						member.Name, ev.Title, next.Title),
					SuggestedResolution: "Reassign one of the events or reschedule it",
				})
				continue
			}
			travel := geo.TravelMinutes(ev.Coordinates(), next.Coordinates())
			gap := int(next.StartTime.Sub(ev.EndTime).Minutes())
			if travel > 0 && gap < travel+cfg.minBreakMinutes {
				conflicts = append(conflicts, model.ScheduleConflict{
					Type:           model.ConflictTravelTime,
					Severity:       model.SeverityWarning,
					EventID:        next.ID,
					CrewMemberID:   member.ID,
					CrewMemberName: member.Name,
					Description: fmt.Sprintf("%s has %d min between %q and %q but needs %d min travel plus %d min break",
						member.Name, gap, ev.Title, next.Title, travel, cfg.minBreakMinutes),
					SuggestedResolution: "Add buffer time between the events or reassign one of them",
				})
			}
		}

		conflicts = append(conflicts, overworkConflicts(member, evs)...)
	}
	return conflicts
}

// overworkConflicts totals scheduled hours per calendar date and reports each
// date exceeding the member's daily limit. The conflict is attributed to the
// member's first event in start-time order.
func overworkConflicts(member model.CrewMember, sorted []model.ScheduleEvent) []model.ScheduleConflict {
	if member.MaxHoursPerDay <= 0 {
		return nil
	}
	hoursByDate := make(map[string]float64)
	for _, e := range sorted {
		hoursByDate[e.StartTime.Format("2006-01-02")] += e.DurationHours()
	}
	dates := make([]string, 0, len(hoursByDate))
	for d := range hoursByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var conflicts []model.ScheduleConflict
	for _, d := range dates {
		total := hoursByDate[d]
		if total <= member.MaxHoursPerDay {
			continue
		}
		conflicts = append(conflicts, model.ScheduleConflict{
			Type:           model.ConflictOverwork,
			Severity:       model.SeverityWarning,
			EventID:        sorted[0].ID,
			CrewMemberID:   member.ID,
			CrewMemberName: member.Name,
			Description: fmt.Sprintf("%s is scheduled %.1f hours on %s, above the %.1f hour daily limit",
				member.Name, total, d, member.MaxHoursPerDay),
			SuggestedResolution: "Spread the workload across more crew or additional days",
		})
	}
	return conflicts
}
