package model

import (
	"testing"
	"time"
)

func TestEventOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	a := ScheduleEvent{StartTime: base, EndTime: base.Add(2 * time.Hour)}
	b := ScheduleEvent{StartTime: base.Add(time.Hour), EndTime: base.Add(3 * time.Hour)}
	c := ScheduleEvent{StartTime: base.Add(2 * time.Hour), EndTime: base.Add(4 * time.Hour)}

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatalf("expected a and b to overlap")
	}
	// Touching boundaries are not an overlap.
	if a.Overlaps(c) {
		t.Fatalf("back-to-back events must not overlap")
	}
}

func TestEventDurationHours(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	e := ScheduleEvent{StartTime: start, EndTime: start.Add(90 * time.Minute)}
	if got := e.DurationHours(); got != 1.5 {
		t.Fatalf("expected 1.5h got %v", got)
	}
}

func TestEventCoordinates(t *testing.T) {
	e := ScheduleEvent{}
	if e.Coordinates() != nil {
		t.Fatalf("expected nil coordinates without location")
	}
	e.Location = &Location{LatLng: LatLng{Lat: 48.85, Lng: 2.35}, Address: "Paris"}
	c := e.Coordinates()
	if c == nil || c.Lat != 48.85 {
		t.Fatalf("unexpected coordinates %#v", c)
	}
}

func TestCrewWeeklyAvailableHours(t *testing.T) {
	c := CrewMember{Availability: []AvailabilityWindow{
		{Day: 1, StartHour: 8, EndHour: 17},
		{Day: 2, StartHour: 9, EndHour: 12},
	}}
	if got := c.WeeklyAvailableHours(); got != 12 {
		t.Fatalf("expected 12h got %v", got)
	}
}
