package tracking

import (
	"math"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

const (
	earthRadiusKm    = 6371
	averageSpeedKmph = 30
	// ArrivalThresholdKm is the distance under which the agent is considered
	// arrived and ticks stop advancing.
	ArrivalThresholdKm = 0.1
	// stepFraction is how much of the remaining delta one tick covers.
	stepFraction = 0.05
)

// DistanceKm returns the great-circle (haversine) distance between two
// coordinates in kilometres.
func DistanceKm(a, b entities.LatLng) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ETAMinutes estimates arrival time in whole minutes for the given distance,
// assuming a fixed 30 km/h average speed. Always at least 1.
func ETAMinutes(distanceKm float64) int {
	eta := int(math.Round(distanceKm / averageSpeedKmph * 60))
	if eta < 1 {
		return 1
	}
	return eta
}

// Tick advances the agent 5% of the remaining linear delta toward the
// destination, applied independently per axis. This is an exponential
// approach, not a geodesic path; displayed legs are short enough that the
// difference does not matter. Once within the arrival threshold the position
// is frozen, so repeated ticks can never increase the distance.
func Tick(current, destination entities.LatLng) entities.LatLng {
	if Arrived(current, destination) {
		return current
	}
	return entities.LatLng{
		Lat: current.Lat + (destination.Lat-current.Lat)*stepFraction,
		Lng: current.Lng + (destination.Lng-current.Lng)*stepFraction,
	}
}

// Arrived reports whether the agent is within the arrival threshold.
func Arrived(current, destination entities.LatLng) bool {
	return DistanceKm(current, destination) < ArrivalThresholdKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
