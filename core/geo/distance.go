package geo

import (
	"math"

	"github.com/kilianp07/crewsched/core/model"
)

const (
	earthRadiusKm = 6371.0
	// Travel time assumes an average field speed of 30 km/h.
	avgSpeedKmh = 30.0
)

// DistanceKm computes the great-circle distance between two coordinates
// using the haversine formula.
func DistanceKm(a, b model.LatLng) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TravelMinutes estimates door-to-door travel time between two points,
// rounded to the nearest minute. Either side missing yields 0, which
// downstream checks treat as "no travel constraint".
func TravelMinutes(a, b *model.LatLng) int {
	if a == nil || b == nil {
		return 0
	}
	km := DistanceKm(*a, *b)
	return int(math.Round(km / avgSpeedKmh * 60))
}
