package londinium

import (
	"github.com/cockroachdb/errors"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

const utmFalseEasting = 500000.0
const utmSouthFalseNorthing = 10000000.0
const utmScaleFactor = 0.9996

// NewUTM constructs the Transverse Mercator projection of a UTM zone over the
// given ellipsoid. Southern hemisphere zones carry a false northing of
// 10,000 km.
func NewUTM(zone int, hemisphere Hemisphere, ellipsoid *Ellipsoid) (*TransverseMercator, error) {
	if zone < 1 || zone > 60 {
		return nil, errors.Wrapf(ErrInvalidProjectionParameters, "zone %d out of range", zone)
	}
	falseNorthing := 0.0
	switch hemisphere {
	case HemisphereNorth:
	case HemisphereSouth:
		falseNorthing = utmSouthFalseNorthing
	default:
		return nil, errors.Wrap(ErrInvalidProjectionParameters, "hemisphere out of range")
	}
	centralMeridian := float64(6*zone - 183)
	return NewTransverseMercator(centralMeridian, 0, utmFalseEasting, falseNorthing,
		utmScaleFactor, ellipsoid)
}

// NewUTM29 constructs UTM zone 29 north (central meridian 9°W) over the given
// ellipsoid.
func NewUTM29(ellipsoid *Ellipsoid) (*TransverseMercator, error) {
	return NewUTM(29, HemisphereNorth, ellipsoid)
}

// NewNationalGrid constructs the Ordnance Survey national grid: true origin
// 49°N 2°W, false origin 400 km west and 100 km north of it, over Airy 1830.
func NewNationalGrid() (*TransverseMercator, error) {
	return NewTransverseMercator(-2, 49, 400000, -100000, 0.9996012717, Airy1830)
}
