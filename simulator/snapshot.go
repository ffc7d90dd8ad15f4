// Package simulator generates synthetic schedule snapshots for demos and
// load tests. Output is fully determined by the seed.
package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/crewsched/core/model"
)

// Config holds parameters for bulk snapshot generation.
type Config struct {
	CrewSize   int
	EventCount int
	Seed       int64
	Start      time.Time // first day of the generated window, midnight
	Days       int
}

// Snapshot bundles the generated inputs in the shape the API accepts.
type Snapshot struct {
	Events []model.ScheduleEvent `json:"events"`
	Crew   []model.CrewMember    `json:"crew"`
}

var skillPool = []string{"electrical", "plumbing", "hvac", "carpentry", "roofing", "landscaping"}

var projectNames = []string{
	"Harbor View Renovation", "Cedar Mill Buildout", "Northgate Retrofit",
	"Maple Street Repairs", "Riverside Expansion", "Summit Plaza Upkeep",
}

// Generate creates CrewSize crew members and EventCount events spread over
// Days calendar days. Crew ids are crew0001..crewNNNN; project ids are
// name-derived UUIDs so repeated runs agree on them.
func Generate(cfg Config) Snapshot {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Days <= 0 {
		cfg.Days = 5
	}
	start := cfg.Start
	if start.IsZero() {
		start = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	}

	crew := make([]model.CrewMember, cfg.CrewSize)
	for i := range crew {
		skills := pick(rng, skillPool, 1+rng.Intn(3))
		var windows []model.AvailabilityWindow
		for d := 1; d <= 5; d++ { // weekday availability
			if rng.Float64() < 0.85 {
				windows = append(windows, model.AvailabilityWindow{Day: d, StartHour: 8, EndHour: 17})
			}
		}
		crew[i] = model.CrewMember{
			ID:             fmt.Sprintf("crew%04d", i+1),
			Name:           fmt.Sprintf("Crew Member %d", i+1),
			Skills:         skills,
			Availability:   windows,
			Location:       &model.LatLng{Lat: 45 + rng.Float64()*0.3, Lng: 3 + rng.Float64()*0.3},
			MaxHoursPerDay: 8,
		}
	}

	events := make([]model.ScheduleEvent, cfg.EventCount)
	for i := range events {
		project := projectNames[rng.Intn(len(projectNames))]
		day := rng.Intn(cfg.Days)
		startHour := 8 + rng.Intn(7)
		duration := 1 + rng.Intn(4)
		startTime := start.AddDate(0, 0, day).Add(time.Duration(startHour) * time.Hour)

		var assigned []string
		if cfg.CrewSize > 0 && rng.Float64() < 0.8 {
			assigned = []string{crew[rng.Intn(cfg.CrewSize)].ID}
		}
		events[i] = model.ScheduleEvent{
			ID:          fmt.Sprintf("evt%04d", i+1),
			Title:       fmt.Sprintf("%s #%d", project, i+1),
			ProjectID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(project)).String(),
			ProjectName: project,
			Location: &model.Location{
				LatLng:  model.LatLng{Lat: 45 + rng.Float64()*0.3, Lng: 3 + rng.Float64()*0.3},
				Address: fmt.Sprintf("%d Main St", 1+rng.Intn(400)),
			},
			StartTime:      startTime,
			EndTime:        startTime.Add(time.Duration(duration) * time.Hour),
			AssignedCrew:   assigned,
			RequiredSkills: pick(rng, skillPool, rng.Intn(2)),
			Priority:       priority(rng),
		}
	}

	return Snapshot{Events: events, Crew: crew}
}

func pick(rng *rand.Rand, pool []string, n int) []string {
	if n <= 0 {
		return nil
	}
	idx := rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

func priority(rng *rand.Rand) model.EventPriority {
	switch r := rng.Float64(); {
	case r < 0.1:
		return model.PriorityUrgent
	case r < 0.3:
		return model.PriorityHigh
	case r < 0.8:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
