package londinium

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// maxIterations bounds every fixed-point loop in this package.
const maxIterations = 100

// latitudeTolerance is the mean absolute latitude change, in radians, below
// which the cartesian to ellipsoidal iteration stops.
const latitudeTolerance = 1e-6

// Ellipsoid is a biaxial reference surface modelling the Earth's shape.
type Ellipsoid struct {
	semiMajorAxis float64 // a, meters
	semiMinorAxis float64 // b, meters
}

// NewEllipsoid constructs an ellipsoid from its semi-major and semi-minor
// axes in meters. The axes must satisfy a > b > 0.
func NewEllipsoid(semiMajorAxis, semiMinorAxis float64) (*Ellipsoid, error) {
	if !(semiMinorAxis > 0) {
		return nil, errors.Wrapf(ErrInvalidEllipsoidParameters,
			"semi-minor axis must be greater than zero, got %g", semiMinorAxis)
	}
	if !(semiMajorAxis > semiMinorAxis) {
		return nil, errors.Wrapf(ErrInvalidEllipsoidParameters,
			"semi-major axis %g must exceed semi-minor axis %g", semiMajorAxis, semiMinorAxis)
	}
	if math.IsInf(semiMajorAxis, 0) {
		return nil, errors.Wrap(ErrInvalidEllipsoidParameters, "semi-major axis is infinite")
	}
	return &Ellipsoid{semiMajorAxis: semiMajorAxis, semiMinorAxis: semiMinorAxis}, nil
}

// SemiMajorAxis returns a in meters.
func (e *Ellipsoid) SemiMajorAxis() float64 { return e.semiMajorAxis }

// SemiMinorAxis returns b in meters.
func (e *Ellipsoid) SemiMinorAxis() float64 { return e.semiMinorAxis }

// EccentricitySquared returns e² = 1 - (b/a)².
func (e *Ellipsoid) EccentricitySquared() float64 {
	r := e.semiMinorAxis / e.semiMajorAxis
	return 1 - r*r
}

// FlatteningRatio returns Helmert's n = (a-b)/(a+b).
func (e *Ellipsoid) FlatteningRatio() float64 {
	return (e.semiMajorAxis - e.semiMinorAxis) / (e.semiMajorAxis + e.semiMinorAxis)
}

// primeVerticalRadius is the radius of curvature in the prime vertical at the
// given latitude.
func (e *Ellipsoid) primeVerticalRadius(sinLat float64) float64 {
	return e.semiMajorAxis / math.Sqrt(1-e.EccentricitySquared()*sinLat*sinLat)
}

// ToGeocentricCartesian converts longitude/latitude pairs in degrees on this
// ellipsoid to geocentric cartesian coordinates in meters.
func (e *Ellipsoid) ToGeocentricCartesian(lonLat ...[]float64) ([]r3.Vector, error) {
	lon, lat, err := CanonicalizeLonLat(lonLat...)
	if err != nil {
		return nil, err
	}
	e2 := e.EccentricitySquared()
	xyz := make([]r3.Vector, len(lon))
	for i := range lon {
		sinLat, cosLat := math.Sincos(lat[i].Radians())
		sinLon, cosLon := math.Sincos(lon[i].Radians())
		nu := e.primeVerticalRadius(sinLat)
		xyz[i] = r3.Vector{
			X: nu * cosLon * cosLat,
			Y: nu * sinLon * cosLat,
			Z: (1 - e2) * nu * sinLat,
		}
	}
	return xyz, nil
}

// FromGeocentricCartesian converts geocentric cartesian coordinates in meters
// to longitude/latitude pairs in degrees on this ellipsoid.
//
// Latitude is found by fixed-point iteration over the whole batch at once:
// every point is updated each round and the loop stops when the mean absolute
// change across the batch falls below 1e-6 radians.
func (e *Ellipsoid) FromGeocentricCartesian(xyz []r3.Vector) ([][]float64, error) {
	n := len(xyz)
	if n == 0 {
		return [][]float64{}, nil
	}
	e2 := e.EccentricitySquared()

	lon := make([]float64, n)
	lat := make([]float64, n)
	horizontal := make([]float64, n)
	for i, p := range xyz {
		horizontal[i] = math.Hypot(p.X, p.Y)
		lon[i] = math.Atan2(p.Y, p.X)
		lat[i] = math.Atan2(p.Z, horizontal[i]*(1-e2))
	}

	diff := make([]float64, n)
	converged := false
	for iter := 0; iter < maxIterations; iter++ {
		for i, p := range xyz {
			sinLat := math.Sin(lat[i])
			nu := e.primeVerticalRadius(sinLat)
			next := math.Atan2(p.Z+e2*nu*sinLat, horizontal[i])
			diff[i] = next - lat[i]
			lat[i] = next
		}
		if meanAbs(diff) < latitudeTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return nil, errors.Wrapf(ErrConvergenceFailure,
			"latitude of %d points after %d iterations", n, maxIterations)
	}

	for i := range lon {
		lon[i] = s1.Angle(lon[i]).Degrees()
		lat[i] = s1.Angle(lat[i]).Degrees()
	}
	return pairs(lon, lat), nil
}
