package schedule

// Constraints tunes the detection pass. All fields are optional and are
// merged over the built-in defaults; pointer booleans distinguish "unset"
// from an explicit false.
type Constraints struct {
	MaxTravelTimeMinutes         int   `json:"max_travel_time_minutes,omitempty"`
	MinBreakBetweenEventsMinutes int   `json:"min_break_between_events_minutes,omitempty"`
	RespectAvailability          *bool `json:"respect_availability,omitempty"`
	PrioritizeSkillMatch         *bool `json:"prioritize_skill_match,omitempty"`
}

const (
	defaultMaxTravelMinutes = 45
	defaultMinBreakMinutes  = 30
)

// effective holds fully resolved constraint values used by the detectors.
type effective struct {
	maxTravelMinutes     int
	minBreakMinutes      int
	respectAvailability  bool
	prioritizeSkillMatch bool
}

// withDefaults merges c over the built-in defaults. A nil receiver yields
// the defaults unchanged.
func (c *Constraints) withDefaults() effective {
	eff := effective{
		maxTravelMinutes:     defaultMaxTravelMinutes,
		minBreakMinutes:      defaultMinBreakMinutes,
		respectAvailability:  true,
		prioritizeSkillMatch: true,
	}
	if c == nil {
		return eff
	}
	if c.MaxTravelTimeMinutes > 0 {
		eff.maxTravelMinutes = c.MaxTravelTimeMinutes
	}
	if c.MinBreakBetweenEventsMinutes > 0 {
		eff.minBreakMinutes = c.MinBreakBetweenEventsMinutes
	}
	if c.RespectAvailability != nil {
		eff.respectAvailability = *c.RespectAvailability
	}
	if c.PrioritizeSkillMatch != nil {
		eff.prioritizeSkillMatch = *c.PrioritizeSkillMatch
	}
	return eff
}
