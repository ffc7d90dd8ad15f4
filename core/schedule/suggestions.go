package schedule

import (
	"fmt"

	"github.com/kilianp07/crewsched/core/model"
)

// GenerateSuggestions proposes remediations for the given conflicts plus
// coverage for unassigned events. Candidate selection is a linear first-match
// scan over the crew slice, so input ordering determines the outcome; this
// keeps repeated runs on the same snapshot byte-identical.
func GenerateSuggestions(events []model.ScheduleEvent, crew []model.CrewMember, conflicts []model.ScheduleConflict) []model.ScheduleSuggestion {
	var suggestions []model.ScheduleSuggestion
	suggestions = append(suggestions, coverageSuggestions(events, crew)...)
	suggestions = append(suggestions, remediationSuggestions(events, crew, conflicts)...)
	return suggestions
}

// coverageSuggestions finds a qualified crew member for every event with an
// empty assignment. Events with no qualifying candidate are left alone.
func coverageSuggestions(events []model.ScheduleEvent, crew []model.CrewMember) []model.ScheduleSuggestion {
	var suggestions []model.ScheduleSuggestion
	for _, ev := range events {
		if !ev.Unassigned() {
			continue
		}
		cand := findCandidate(crew, ev, "")
		if cand == nil {
			continue
		}
		prio := model.SuggestionMedium
		if ev.Priority == model.PriorityUrgent {
			prio = model.SuggestionHigh
		}
		suggestions = append(suggestions, model.ScheduleSuggestion{
			Type:                 model.SuggestionAddCrew,
			EventID:              ev.ID,
			EventTitle:           ev.Title,
			CurrentAssignment:    nil,
			SuggestedAssignment:  []string{cand.ID},
			Reason:               fmt.Sprintf("%s is available and has the required skills", cand.Name),
			EstimatedImprovement: "Unassigned event gets crew coverage",
			Priority:             prio,
		})
	}
	return suggestions
}

// remediationSuggestions groups conflicts by event and proposes a
// replacement for overlap conflicts first, then for skill mismatches on
// events without an overlap. Availability and overwork conflicts produce no
// suggestions.
func remediationSuggestions(events []model.ScheduleEvent, crew []model.CrewMember, conflicts []model.ScheduleConflict) []model.ScheduleSuggestion {
	byEvent := make(map[string][]model.ScheduleConflict)
	var order []string
	for _, c := range conflicts {
		if _, seen := byEvent[c.EventID]; !seen {
			order = append(order, c.EventID)
		}
		byEvent[c.EventID] = append(byEvent[c.EventID], c)
	}

	eventByID := make(map[string]model.ScheduleEvent, len(events))
	for _, e := range events {
		eventByID[e.ID] = e
	}

	var suggestions []model.ScheduleSuggestion
	for _, id := range order {
		ev, ok := eventByID[id]
		if !ok {
			continue
		}
		var overlap, mismatch *model.ScheduleConflict
		for i := range byEvent[id] {
			c := &byEvent[id][i]
			switch c.Type {
			case model.ConflictOverlap:
				if overlap == nil {
					overlap = c
				}
			case model.ConflictSkillMismatch:
				if mismatch == nil {
					mismatch = c
				}
			}
		}

		switch {
		case overlap != nil:
			cand := findCandidate(crew, ev, overlap.CrewMemberID)
			if cand == nil {
				continue
			}
			suggestions = append(suggestions, model.ScheduleSuggestion{
				Type:                 model.SuggestionReassign,
				EventID:              ev.ID,
				EventTitle:           ev.Title,
				CurrentAssignment:    ev.AssignedCrew,
				SuggestedAssignment:  replaceAssignee(ev.AssignedCrew, overlap.CrewMemberID, cand.ID),
				Reason:               fmt.Sprintf("%s is double-booked; %s can cover the event", overlap.CrewMemberName, cand.Name),
				EstimatedImprovement: "Resolves a double-booking",
				Priority:             model.SuggestionHigh,
			})
		case mismatch != nil:
			cand := findCandidate(crew, ev, mismatch.CrewMemberID)
			if cand == nil {
				continue
			}
			suggestions = append(suggestions, model.ScheduleSuggestion{
				Type:                 model.SuggestionReassign,
				EventID:              ev.ID,
				EventTitle:           ev.Title,
				CurrentAssignment:    ev.AssignedCrew,
				SuggestedAssignment:  replaceAssignee(ev.AssignedCrew, mismatch.CrewMemberID, cand.ID),
				Reason:               fmt.Sprintf("%s has the skills %q requires", cand.Name, ev.Title),
				EstimatedImprovement: "Matches required skills to the assigned crew",
				Priority:             model.SuggestionMedium,
			})
		}
	}
	return suggestions
}

// findCandidate returns the first crew member in input order who is
// available and skill-qualified for the event, excluding excludeID and
// anyone already assigned.
func findCandidate(crew []model.CrewMember, ev model.ScheduleEvent, excludeID string) *model.CrewMember {
	for i := range crew {
		c := &crew[i]
		if c.ID == excludeID || ev.HasAssignee(c.ID) {
			continue
		}
		if IsAvailable(*c, ev) && HasSkills(*c, ev) {
			return c
		}
	}
	return nil
}

// replaceAssignee returns the assignment list with removed swapped for added,
// preserving the original order of the remaining ids.
func replaceAssignee(assigned []string, removed, added string) []string {
	out := make([]string, 0, len(assigned))
	for _, id := range assigned {
		if id == removed {
			continue
		}
		out = append(out, id)
	}
	return append(out, added)
}
