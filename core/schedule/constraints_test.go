package schedule

import "testing"

func TestConstraintsDefaults(t *testing.T) {
	eff := (*Constraints)(nil).withDefaults()
	if eff.maxTravelMinutes != 45 || eff.minBreakMinutes != 30 {
		t.Fatalf("unexpected defaults %+v", eff)
	}
	if !eff.respectAvailability || !eff.prioritizeSkillMatch {
		t.Fatalf("availability and skill checks default to enabled")
	}
}

func TestConstraintsPartialOverride(t *testing.T) {
	c := &Constraints{
		MinBreakBetweenEventsMinutes: 15,
		RespectAvailability:          boolPtr(false),
	}
	eff := c.withDefaults()
	if eff.minBreakMinutes != 15 {
		t.Fatalf("expected break override, got %d", eff.minBreakMinutes)
	}
	if eff.maxTravelMinutes != 45 {
		t.Fatalf("unset travel limit should keep its default, got %d", eff.maxTravelMinutes)
	}
	if eff.respectAvailability {
		t.Fatalf("explicit false must survive the merge")
	}
	if !eff.prioritizeSkillMatch {
		t.Fatalf("unset skill flag should stay enabled")
	}
}
