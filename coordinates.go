package londinium

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
)

// CanonicalizeLonLat arranges longitude/latitude input, in degrees, into two
// parallel slices of angles. The input may be a single pair, a sequence of
// pairs, or any set of rows whose values read in order form whole pairs.
func CanonicalizeLonLat(coords ...[]float64) (lon, lat []s1.Angle, err error) {
	flat, err := reshape(coords)
	if err != nil {
		return nil, nil, err
	}
	n := len(flat) / 2
	lon = make([]s1.Angle, n)
	lat = make([]s1.Angle, n)
	for i := 0; i < n; i++ {
		lon[i] = fromDegrees(flat[2*i])
		lat[i] = fromDegrees(flat[2*i+1])
	}
	return lon, lat, nil
}

// CanonicalizeEastingNorthing arranges easting/northing input, in meters, into
// two parallel slices. It accepts the same shapes as CanonicalizeLonLat.
func CanonicalizeEastingNorthing(coords ...[]float64) (easting, northing []float64, err error) {
	flat, err := reshape(coords)
	if err != nil {
		return nil, nil, err
	}
	n := len(flat) / 2
	easting = make([]float64, n)
	northing = make([]float64, n)
	for i := 0; i < n; i++ {
		easting[i] = flat[2*i]
		northing[i] = flat[2*i+1]
	}
	return easting, northing, nil
}

func reshape(coords [][]float64) ([]float64, error) {
	total := 0
	for _, c := range coords {
		total += len(c)
	}
	if total%2 != 0 {
		return nil, errors.Wrapf(ErrInputShape, "%d values do not form whole pairs", total)
	}
	flat := make([]float64, 0, total)
	for _, c := range coords {
		flat = append(flat, c...)
	}
	return flat, nil
}

// pairs packs two parallel slices into rows of two, sharing one backing array.
func pairs(first, second []float64) [][]float64 {
	backing := make([]float64, 2*len(first))
	out := make([][]float64, len(first))
	for i := range first {
		backing[2*i] = first[i]
		backing[2*i+1] = second[i]
		out[i] = backing[2*i : 2*i+2 : 2*i+2]
	}
	return out
}

func fromDegrees(deg float64) s1.Angle {
	return s1.Angle(deg) * s1.Degree
}

func meanAbs(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += math.Abs(v)
	}
	return sum / float64(len(values))
}
