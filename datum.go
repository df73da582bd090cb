package londinium

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/mat"
)

// DatumTransformation is a seven parameter (Helmert) transformation between
// the geocentric cartesian frames of two datums.
type DatumTransformation struct {
	matrix      *mat.Dense // I + scale + skew-symmetric rotation
	inverse     *mat.Dense
	translation r3.Vector
}

// NewDatumTransformation constructs a transformation from translations in
// meters, a scale offset (so that 0 means no change in scale) and small
// rotations in radians about the x, y and z axes.
func NewDatumTransformation(tx, ty, tz, scale, rx, ry, rz float64) (*DatumTransformation, error) {
	m := mat.NewDense(3, 3, []float64{
		1 + scale, -rz, ry,
		rz, 1 + scale, -rx,
		-ry, rx, 1 + scale,
	})
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, errors.Wrapf(ErrSingularTransformMatrix,
			"scale=%g rotation=(%g, %g, %g): %v", scale, rx, ry, rz, err)
	}
	return &DatumTransformation{
		matrix:      m,
		inverse:     &inv,
		translation: r3.Vector{X: tx, Y: ty, Z: tz},
	}, nil
}

// NewHelmertFromSeconds constructs a transformation from parameters in the
// units they are usually published in: meters, parts per million and
// arc-seconds.
func NewHelmertFromSeconds(tx, ty, tz, ppm, rxSec, rySec, rzSec float64) (*DatumTransformation, error) {
	arcSecond := s1.Degree / 3600
	return NewDatumTransformation(tx, ty, tz, ppm*1e-6,
		(s1.Angle(rxSec) * arcSecond).Radians(),
		(s1.Angle(rySec) * arcSecond).Radians(),
		(s1.Angle(rzSec) * arcSecond).Radians())
}

// Forward maps points from the source datum frame to the target frame.
func (d *DatumTransformation) Forward(xyz []r3.Vector) []r3.Vector {
	if len(xyz) == 0 {
		return []r3.Vector{}
	}
	var out mat.Dense
	out.Mul(rows(xyz, r3.Vector{}), d.matrix.T())
	return vectors(&out, d.translation)
}

// Backward maps points from the target datum frame back to the source frame.
func (d *DatumTransformation) Backward(xyz []r3.Vector) []r3.Vector {
	if len(xyz) == 0 {
		return []r3.Vector{}
	}
	var out mat.Dense
	out.Mul(rows(xyz, d.translation), d.inverse.T())
	return vectors(&out, r3.Vector{})
}

// rows packs points, less offset, into an N x 3 matrix.
func rows(xyz []r3.Vector, offset r3.Vector) *mat.Dense {
	data := make([]float64, 0, 3*len(xyz))
	for _, p := range xyz {
		q := p.Sub(offset)
		data = append(data, q.X, q.Y, q.Z)
	}
	return mat.NewDense(len(xyz), 3, data)
}

// vectors unpacks an N x 3 matrix into points, adding offset to each.
func vectors(m *mat.Dense, offset r3.Vector) []r3.Vector {
	n, _ := m.Dims()
	out := make([]r3.Vector, n)
	for i := range out {
		out[i] = r3.Vector{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}.Add(offset)
	}
	return out
}

// DatumShift converts longitude/latitude between two datums by way of their
// geocentric cartesian frames.
type DatumShift struct {
	from      *Ellipsoid
	to        *Ellipsoid
	transform *DatumTransformation
}

// NewDatumShift constructs a shift from coordinates on the from ellipsoid to
// coordinates on the to ellipsoid using transform between their frames.
func NewDatumShift(from, to *Ellipsoid, transform *DatumTransformation) (*DatumShift, error) {
	if from == nil || to == nil {
		return nil, errors.Wrap(ErrInvalidEllipsoidParameters, "datum shift needs both ellipsoids")
	}
	if transform == nil {
		return nil, errors.New("datum shift needs a transformation")
	}
	return &DatumShift{from: from, to: to, transform: transform}, nil
}

// Apply converts longitude/latitude pairs in degrees from the source datum to
// the target datum.
func (s *DatumShift) Apply(lonLat ...[]float64) ([][]float64, error) {
	xyz, err := s.from.ToGeocentricCartesian(lonLat...)
	if err != nil {
		return nil, err
	}
	return s.to.FromGeocentricCartesian(s.transform.Forward(xyz))
}

// Reverse converts longitude/latitude pairs in degrees from the target datum
// back to the source datum.
func (s *DatumShift) Reverse(lonLat ...[]float64) ([][]float64, error) {
	xyz, err := s.to.ToGeocentricCartesian(lonLat...)
	if err != nil {
		return nil, err
	}
	return s.from.FromGeocentricCartesian(s.transform.Backward(xyz))
}
