package schedule

import (
	"testing"

	"github.com/kilianp07/crewsched/core/model"
)

func availableAllWeek() []model.AvailabilityWindow {
	ws := make([]model.AvailabilityWindow, 7)
	for d := 0; d < 7; d++ {
		ws[d] = model.AvailabilityWindow{Day: d, StartHour: 0, EndHour: 23}
	}
	return ws
}

func TestGenerateSuggestions_CoverageForUnassigned(t *testing.T) {
	events := []model.ScheduleEvent{
		{ID: "e1", Title: "Boiler check", Priority: model.PriorityUrgent,
			RequiredSkills: []string{"hvac"},
			StartTime:      at(9, 0), EndTime: at(11, 0)},
	}
	crew := []model.CrewMember{
		{ID: "c1", Name: "Ana", Skills: []string{"plumbing"}, Availability: availableAllWeek()},
		{ID: "c2", Name: "Bruno", Skills: []string{"HVAC"}, Availability: availableAllWeek()},
	}

	got := GenerateSuggestions(events, crew, nil)
	if len(got) != 1 {
		t.Fatalf("expected one add-crew suggestion, got %v", got)
	}
	s := got[0]
	if s.Type != model.SuggestionAddCrew || s.Priority != model.SuggestionHigh {
		t.Fatalf("urgent event should yield a high add-crew suggestion, got %+v", s)
	}
	if len(s.SuggestedAssignment) != 1 || s.SuggestedAssignment[0] != "c2" {
		t.Fatalf("expected first qualifying candidate c2, got %v", s.SuggestedAssignment)
	}
}

func TestGenerateSuggestions_NoCandidateNoSuggestion(t *testing.T) {
	events := []model.ScheduleEvent{
		{ID: "e1", Title: "Night shift", StartTime: at(9, 0), EndTime: at(11, 0)},
	}
	crew := []model.CrewMember{{ID: "c1", Name: "Ana"}} // no availability at all
	if got := GenerateSuggestions(events, crew, nil); len(got) != 0 {
		t.Fatalf("expected no suggestions without a qualified candidate, got %v", got)
	}
}

func TestGenerateSuggestions_ReassignOnOverlap(t *testing.T) {
	events := []model.ScheduleEvent{
		{ID: "e1", Title: "Install", StartTime: at(9, 0), EndTime: at(11, 0), AssignedCrew: []string{"c1"}},
		{ID: "e2", Title: "Repair", StartTime: at(10, 0), EndTime: at(12, 0), AssignedCrew: []string{"c1"}},
	}
	crew := []model.CrewMember{
		{ID: "c1", Name: "Ana", Availability: availableAllWeek()},
		{ID: "c2", Name: "Bruno", Availability: availableAllWeek()},
	}

	conflicts := DetectConflicts(events, crew, relaxed())
	got := GenerateSuggestions(events, crew, conflicts)
	if len(got) != 1 {
		t.Fatalf("expected one reassign suggestion, got %v", got)
	}
	s := got[0]
	if s.Type != model.SuggestionReassign || s.Priority != model.SuggestionHigh {
		t.Fatalf("overlap remediation should be a high reassign, got %+v", s)
	}
	for _, id := range s.SuggestedAssignment {
		if id == "c1" {
			t.Fatalf("suggested assignment must not re-add the conflicting member: %v", s.SuggestedAssignment)
		}
	}
	if len(s.SuggestedAssignment) != 1 || s.SuggestedAssignment[0] != "c2" {
		t.Fatalf("expected replacement c2, got %v", s.SuggestedAssignment)
	}
}

func TestGenerateSuggestions_ReassignOnSkillMismatch(t *testing.T) {
	events := []model.ScheduleEvent{
		{ID: "e1", Title: "Rewire", RequiredSkills: []string{"electrical"},
			StartTime: at(9, 0), EndTime: at(11, 0), AssignedCrew: []string{"c1"}},
	}
	crew := []model.CrewMember{
		{ID: "c1", Name: "Ana", Skills: []string{"plumbing"}, Availability: availableAllWeek()},
		{ID: "c2", Name: "Bruno", Skills: []string{"electrical"}, Availability: availableAllWeek()},
	}

	conflicts := DetectConflicts(events, crew, nil)
	got := GenerateSuggestions(events, crew, conflicts)
	if len(got) != 1 {
		t.Fatalf("expected one reassign suggestion, got %v", got)
	}
	s := got[0]
	if s.Priority != model.SuggestionMedium {
		t.Fatalf("skill-mismatch remediation should be medium priority, got %+v", s)
	}
	if s.SuggestedAssignment[len(s.SuggestedAssignment)-1] != "c2" {
		t.Fatalf("expected c2 as replacement, got %v", s.SuggestedAssignment)
	}
}

func TestGenerateSuggestions_AvailabilityConflictsIgnored(t *testing.T) {
	events := []model.ScheduleEvent{
		{ID: "e1", Title: "Early", StartTime: at(7, 0), EndTime: at(9, 0), AssignedCrew: []string{"c1"}},
	}
	crew := []model.CrewMember{
		{ID: "c1", Name: "Ana", Availability: []model.AvailabilityWindow{{Day: 1, StartHour: 8, EndHour: 17}}},
		{ID: "c2", Name: "Bruno", Availability: availableAllWeek()},
	}

	conflicts := DetectConflicts(events, crew, nil)
	if len(conflictsOfType(conflicts, model.ConflictAvailability)) != 1 {
		t.Fatalf("setup should produce an availability conflict, got %v", conflicts)
	}
	if got := GenerateSuggestions(events, crew, conflicts); len(got) != 0 {
		t.Fatalf("availability conflicts do not generate suggestions, got %v", got)
	}
}
