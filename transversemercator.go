package londinium

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
)

// northingTolerance is the mean absolute meridional arc residual, in meters,
// below which the inverse projection's latitude iteration stops.
const northingTolerance = 1e-5

// TransverseMercator provides conversions between ellipsoidal coordinates
// (longitude and latitude) and Transverse Mercator projection coordinates
// (easting and northing), using the series expansions published for the
// Ordnance Survey national grid.
type TransverseMercator struct {
	ellipsoid *Ellipsoid

	originLong    s1.Angle // True origin longitude
	originLat     s1.Angle // True origin latitude
	falseEasting  float64  // False easting in meters
	falseNorthing float64  // False northing in meters
	scaleFactor   float64  // Scale factor on the central meridian
}

// NewTransverseMercator constructs a projection with its true origin at
// (originLong, originLat) in degrees over the given ellipsoid.
func NewTransverseMercator(originLong, originLat, falseEasting, falseNorthing,
	scaleFactor float64, ellipsoid *Ellipsoid) (*TransverseMercator, error) {
	if ellipsoid == nil {
		return nil, errors.Wrap(ErrInvalidProjectionParameters, "missing ellipsoid")
	}
	if originLat < -90 || originLat > 90 {
		return nil, errors.Wrapf(ErrInvalidProjectionParameters, "origin latitude %g out of range", originLat)
	}
	if originLong < -180 || originLong > 180 {
		return nil, errors.Wrapf(ErrInvalidProjectionParameters, "origin longitude %g out of range", originLong)
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if !(scaleFactor >= minScaleFactor && scaleFactor <= maxScaleFactor) {
		return nil, errors.Wrapf(ErrInvalidProjectionParameters, "scale factor %g out of range", scaleFactor)
	}

	return &TransverseMercator{
		ellipsoid:     ellipsoid,
		originLong:    fromDegrees(originLong),
		originLat:     fromDegrees(originLat),
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
		scaleFactor:   scaleFactor,
	}, nil
}

// Ellipsoid returns the reference surface the projection is defined over.
func (t *TransverseMercator) Ellipsoid() *Ellipsoid { return t.ellipsoid }

// Origin returns the true origin as longitude and latitude in degrees.
func (t *TransverseMercator) Origin() (long, lat float64) {
	return t.originLong.Degrees(), t.originLat.Degrees()
}

// FalseOrigin returns the false easting and northing in meters.
func (t *TransverseMercator) FalseOrigin() (easting, northing float64) {
	return t.falseEasting, t.falseNorthing
}

// ScaleFactor returns the scale factor on the central meridian.
func (t *TransverseMercator) ScaleFactor() float64 { return t.scaleFactor }

// meridionalArc returns the scaled distance along the meridian from the true
// origin latitude to lat, in meters.
func (t *TransverseMercator) meridionalArc(lat float64) float64 {
	n := t.ellipsoid.FlatteningRatio()
	n2 := n * n
	n3 := n2 * n

	d := lat - t.originLat.Radians()
	s := lat + t.originLat.Radians()

	ma := (1 + n + 5.0/4.0*n2 + 5.0/4.0*n3) * d
	mb := (3*n + 3*n2 + 21.0/8.0*n3) * math.Sin(d) * math.Cos(s)
	mc := (15.0/8.0*n2 + 15.0/8.0*n3) * math.Sin(2*d) * math.Cos(2*s)
	md := (35.0 / 24.0 * n3) * math.Sin(3*d) * math.Cos(3*s)

	return t.ellipsoid.semiMinorAxis * t.scaleFactor * (ma - mb + mc - md)
}

// radii returns the scaled transverse (nu) and meridional (rho) radii of
// curvature and eta² = nu/rho - 1 at a latitude with the given sine.
func (t *TransverseMercator) radii(sinLat float64) (nu, rho, eta2 float64) {
	e2 := t.ellipsoid.EccentricitySquared()
	aF0 := t.ellipsoid.semiMajorAxis * t.scaleFactor
	w := 1 - e2*sinLat*sinLat
	nu = aF0 / math.Sqrt(w)
	rho = aF0 * (1 - e2) / (w * math.Sqrt(w))
	eta2 = w/(1-e2) - 1
	return nu, rho, eta2
}

// ToPlanar projects longitude/latitude pairs in degrees to easting/northing
// pairs in meters.
func (t *TransverseMercator) ToPlanar(lonLat ...[]float64) ([][]float64, error) {
	lon, lat, err := CanonicalizeLonLat(lonLat...)
	if err != nil {
		return nil, err
	}
	easting := make([]float64, len(lon))
	northing := make([]float64, len(lon))
	for i := range lon {
		easting[i], northing[i] = t.project(lon[i].Radians(), lat[i].Radians())
	}
	return pairs(easting, northing), nil
}

func (t *TransverseMercator) project(lon, lat float64) (easting, northing float64) {
	sinLat, cosLat := math.Sincos(lat)
	tan2 := (sinLat / cosLat) * (sinLat / cosLat)
	tan4 := tan2 * tan2
	nu, _, eta2 := t.radii(sinLat)
	cos3 := cosLat * cosLat * cosLat
	cos5 := cos3 * cosLat * cosLat

	// Odd powers of the longitude difference for easting.
	e1 := nu * cosLat
	e3 := nu / 6 * cos3 * (1 - tan2 + eta2)
	e5 := nu / 120 * cos5 * (5 - 18*tan2 + tan4 + 14*eta2 - 58*tan2*eta2)

	// Even powers for northing.
	n2 := nu / 2 * sinLat * cosLat
	n4 := nu / 24 * sinLat * cos3 * (5 - tan2 + 9*eta2)
	n6 := nu / 720 * sinLat * cos5 * (61 - 58*tan2 + tan4)

	l := lon - t.originLong.Radians()
	l2 := l * l

	easting = t.falseEasting + l*(e1+l2*(e3+l2*e5))
	northing = t.falseNorthing + t.meridionalArc(lat) + l2*(n2+l2*(n4+l2*n6))
	return easting, northing
}

// ToEllipsoidal converts easting/northing pairs in meters back to
// longitude/latitude pairs in degrees.
//
// The meridional arc has no closed-form inverse, so latitude is first found
// by iterating over the whole batch until the mean absolute arc residual is
// below 1e-5 meters. A northing whose latitude lies beyond a pole is reported
// as ErrConvergenceFailure.
func (t *TransverseMercator) ToEllipsoidal(eastingNorthing ...[]float64) ([][]float64, error) {
	easting, northing, err := CanonicalizeEastingNorthing(eastingNorthing...)
	if err != nil {
		return nil, err
	}
	n := len(easting)
	if n == 0 {
		return [][]float64{}, nil
	}

	bF0 := t.ellipsoid.semiMinorAxis * t.scaleFactor
	delta := make([]float64, n)
	lat := make([]float64, n)
	residual := make([]float64, n)
	for i := range northing {
		delta[i] = northing[i] - t.falseNorthing
		lat[i] = t.originLat.Radians() + delta[i]/bF0
		residual[i] = delta[i] - t.meridionalArc(lat[i])
	}

	iter := 0
	for !(meanAbs(residual) < northingTolerance) {
		if iter == maxIterations {
			return nil, errors.Wrapf(ErrConvergenceFailure,
				"meridional arc of %d points after %d iterations", n, maxIterations)
		}
		for i := range lat {
			lat[i] += residual[i] / bF0
			residual[i] = delta[i] - t.meridionalArc(lat[i])
		}
		iter++
	}

	for i, footpoint := range lat {
		if !(math.Abs(footpoint) <= math.Pi/2) {
			return nil, errors.Wrapf(ErrConvergenceFailure,
				"northing %g gives footpoint latitude %g° outside ±90°", northing[i], s1.Angle(footpoint).Degrees())
		}
	}

	lon := make([]float64, n)
	for i := range lat {
		lon[i], lat[i] = t.unproject(easting[i]-t.falseEasting, lat[i])
	}
	return pairs(lon, lat), nil
}

// unproject applies the closed-form longitude and latitude corrections at the
// footpoint latitude latF, returning degrees.
func (t *TransverseMercator) unproject(e, latF float64) (lon, lat float64) {
	sinLat, cosLat := math.Sincos(latF)
	sec := 1 / cosLat
	tan := sinLat * sec
	tan2 := tan * tan
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2
	nu, rho, eta2 := t.radii(sinLat)
	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	// Even powers of the easting offset for latitude.
	c2 := tan / (2 * rho * nu)
	c4 := tan / (24 * rho * nu3) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	c6 := tan / (720 * rho * nu5) * (61 + 90*tan2 + 45*tan4)

	// Odd powers for longitude.
	d1 := sec / nu
	d3 := sec / (6 * nu3) * (nu/rho + 2*tan2)
	d5 := sec / (120 * nu5) * (5 + 28*tan2 + 24*tan4)
	d7 := sec / (5040 * nu7) * (61 + 662*tan2 + 1320*tan4 + 720*tan6)

	e2 := e * e
	lat = latF - e2*(c2-e2*(c4-e2*c6))
	lon = t.originLong.Radians() + e*(d1-e2*(d3-e2*(d5-e2*d7)))
	return s1.Angle(lon).Degrees(), s1.Angle(lat).Degrees()
}
