package kernel

import (
	"errors"
	"fmt"
	"math"

	"freight/internal/pkg/errs"
)

// Geographic coordinate bounds in degrees.
const (
	LongitudeMin = -180.0
	LongitudeMax = 180.0
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
)

// earthRadiusMeters is the mean Earth radius used by the spherical distance model.
const earthRadiusMeters = 6371000.0

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint to ensure the
// coordinates are within valid bounds.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a (longitude, latitude) pair
// in decimal degrees. It is an immutable value object; the zero value is
// invalid and fails validation, so instances must be created via NewGeoPoint.
//
// Longitude comes first to match the GeoJSON-style [lon, lat] coordinate
// ordering used on the wire and in storage.
type GeoPoint struct {
	lon           float64
	lat           float64
	isConstructed bool
}

// NewGeoPoint creates a GeoPoint with the given longitude and latitude in
// decimal degrees. Returns an error if either coordinate is out of bounds.
func NewGeoPoint(lon float64, lat float64) (GeoPoint, error) {
	p := GeoPoint{isConstructed: true}

	if err := errors.Join(p.setLon(lon), p.setLat(lat)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
// The zero value fails this validation.
func (p GeoPoint) Validate() error {
	if !p.isConstructed {
		return ErrGeoPointIsNotConstructed
	}
	return nil
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// String returns a human-readable "Point(lon,lat)" representation.
func (p GeoPoint) String() string {
	return fmt.Sprintf("Point(%g,%g)", p.lon, p.lat)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lon == other.lon && p.lat == other.lat, nil
}

// DistanceMeters computes the great-circle distance to another point in meters
// using the haversine formula on a spherical Earth model. Both points must be
// properly constructed.
func (p GeoPoint) DistanceMeters(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLon := (other.lon - p.lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// setLon sets the longitude with bounds validation.
// Pointer receiver is intentional: the private setter self-encapsulates
// validation during construction.
func (p *GeoPoint) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}

// setLat sets the latitude with bounds validation.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// Address holds the human-readable location metadata attached to pickup and
// delivery points. It is plain data with no invariants of its own.
type Address struct {
	Street  string
	City    string
	State   string
	Pincode string
}
