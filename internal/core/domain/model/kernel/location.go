package kernel

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/geo"
	"marketplace/internal/pkg/guard"
)

const (
	// MinLatitude is the southern bound of a valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northern bound of a valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the western bound of a valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the eastern bound of a valid longitude in degrees.
	MaxLongitude = 180.0
)

// ErrLocationIsNotConstructed is returned by Validate on a zero Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation")

// Location is a point on the Earth's surface in decimal degrees.
// Locations are compared by value and are safe to copy.
//
// Example:
//
//	loc, err := kernel.NewLocation(51.5074, -0.1278)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(loc) // Location(51.507400,-0.127800)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location after checking both coordinates.
//
// Parameters:
//   - latitude: degrees in [MinLatitude..MaxLatitude]
//   - longitude: degrees in [MinLongitude..MaxLongitude]
//
// Returns:
//   - Location: a valid location
//   - error: joined out-of-range errors for every bad coordinate
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for coordinates known to be valid, such as fixtures.
func MustNewLocation(latitude, longitude float64) Location {
	loc, err := NewLocation(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate reports ErrLocationIsNotConstructed for a zero Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual reports whether both locations denote the same coordinates.
// It fails if either location was not constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// DistanceTo returns the great-circle distance to other in meters.
//
// Example:
//
//	london, _ := kernel.NewLocation(51.5074, -0.1278)
//	paris, _ := kernel.NewLocation(48.8566, 2.3522)
//	meters, _ := london.DistanceTo(paris) // ≈ 343,500
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return geo.Distance(l.latitude, l.longitude, other.latitude, other.longitude), nil
}

// StepTowards moves at most stepMeters from l to target along the straight
// latitude/longitude segment between them.
//
// Returns:
//   - Location: the new position, exactly target when it is within reach
//   - bool: whether target was reached
//   - error: validation error if either location is not constructed
func (l Location) StepTowards(target Location, stepMeters float64) (Location, bool, error) {
	distance, err := l.DistanceTo(target)
	if err != nil {
		return Location{}, false, err
	}

	if distance <= stepMeters {
		return target, true, nil
	}
	if stepMeters <= 0 || math.IsNaN(stepMeters) {
		return l, false, nil
	}

	fraction := stepMeters / distance
	next, err := NewLocation(
		l.latitude+(target.latitude-l.latitude)*fraction,
		l.longitude+(target.longitude-l.longitude)*fraction,
	)
	if err != nil {
		return Location{}, false, err
	}

	return next, false, nil
}

func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) {
		return errs.NewValueIsInvalidError("latitude")
	}
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) {
		return errs.NewValueIsInvalidError("longitude")
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}
