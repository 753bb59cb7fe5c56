// Package geo estimates distances between coordinates and delivery times over them.
//
// All functions are pure and safe for concurrent use.
package geo

import "math"

const (
	// EarthRadiusMeters is the mean Earth radius used by Distance.
	EarthRadiusMeters = 6_371_000.0
	// TravelSpeedKmh is the constant driver speed assumed by DeliveryEstimateMinutes.
	TravelSpeedKmh = 30.0
	// DefaultPrepMinutes is the kitchen preparation time used when a restaurant has none.
	DefaultPrepMinutes = 15
	// MaxTravelMinutes caps the travel part of DeliveryEstimateMinutes.
	MaxTravelMinutes = math.MaxInt32

	metersPerMinute = TravelSpeedKmh * 1000 / 60
)

// Distance returns the great-circle distance in meters between two points given in degrees,
// computed with the Haversine formula.
//
// Coordinates are not range checked: out-of-range input still yields a finite number.
// Input that would produce NaN (NaN or infinite coordinates) yields 0.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// rounding can push a marginally outside [0, 1] for antipodal points
	a = math.Min(1, math.Max(0, a))
	d := EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return d
}

// DeliveryEstimateMinutes returns the minutes needed to prepare an order and drive it
// distanceMeters at TravelSpeedKmh. The result is never below prepMinutes.
// Travel time saturates at MaxTravelMinutes, infinite distances included.
func DeliveryEstimateMinutes(distanceMeters float64, prepMinutes int) int {
	if math.IsNaN(distanceMeters) || distanceMeters < 0 {
		distanceMeters = 0
	}
	travel := math.Ceil(distanceMeters / metersPerMinute)
	if travel >= MaxTravelMinutes {
		return MaxTravelMinutes + prepMinutes
	}
	return int(travel) + prepMinutes
}

// TravelMinutes returns the driving minutes for distanceMeters at speedKmh, unrounded.
// Non-positive speeds fall back to TravelSpeedKmh.
func TravelMinutes(distanceMeters, speedKmh float64) float64 {
	if speedKmh <= 0 {
		speedKmh = TravelSpeedKmh
	}
	return distanceMeters / (speedKmh * 1000 / 60)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
