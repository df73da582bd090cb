package londinium_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r3"
	"github.com/tzneal/londinium"
)

func TestNewEllipsoidRejectsInvalidAxes(t *testing.T) {
	for _, axes := range [][2]float64{
		{6356752.314245, 6378137.0}, // a < b
		{6378137.0, 6378137.0},      // sphere
		{6378137.0, 0},
		{-1, -2},
		{math.NaN(), 1},
	} {
		if _, err := londinium.NewEllipsoid(axes[0], axes[1]); !errors.Is(err, londinium.ErrInvalidEllipsoidParameters) {
			t.Errorf("a=%g b=%g: expected ErrInvalidEllipsoidParameters, got %v", axes[0], axes[1], err)
		}
	}
}

func TestWGS84Constants(t *testing.T) {
	e, err := londinium.NewEllipsoid(6378137.0, 6356752.314245)
	if err != nil {
		t.Fatalf("error creating ellipsoid: %s", err)
	}
	if math.Abs(e.EccentricitySquared()-0.00669438) > 1e-8 {
		t.Fatalf("expected e² 0.00669438, got %.12f", e.EccentricitySquared())
	}
	want := (6378137.0 - 6356752.314245) / (6378137.0 + 6356752.314245)
	if e.FlatteningRatio() != want {
		t.Fatalf("expected n %g, got %g", want, e.FlatteningRatio())
	}
}

func TestGeocentricKnownPoints(t *testing.T) {
	e := londinium.WGS84
	xyz, err := e.ToGeocentricCartesian([]float64{0, 0}, []float64{90, 0}, []float64{0, 90})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := []r3.Vector{
		{X: e.SemiMajorAxis()},
		{Y: e.SemiMajorAxis()},
		{Z: e.SemiMinorAxis()},
	}
	for i, want := range expected {
		if xyz[i].Sub(want).Norm() > 1e-6 {
			t.Errorf("point %d: expected %v, got %v", i, want, xyz[i])
		}
	}
}

func TestGeocentricRoundTrip(t *testing.T) {
	for _, e := range []*londinium.Ellipsoid{londinium.WGS84, londinium.Airy1830} {
		const latInc = 1.0
		const lngInc = 10.0
		for lng := -180.0; lng < 180; lng += lngInc {
			for lat := -89.0; lat <= 89; lat += latInc {
				xyz, err := e.ToGeocentricCartesian([]float64{lng, lat})
				if err != nil {
					t.Fatalf("unexpected error at %g %g: %s", lng, lat, err)
				}
				ll, err := e.FromGeocentricCartesian(xyz)
				if err != nil {
					t.Fatalf("expected no error in round trip, got one at %g %g (%s)", lng, lat, err)
				}
				if math.Abs(ll[0][0]-lng) > 1e-6 || math.Abs(ll[0][1]-lat) > 1e-6 {
					t.Fatalf("expected %g %g, got %v", lng, lat, ll[0])
				}
			}
		}
	}
}

func TestGeocentricBatchRoundTrip(t *testing.T) {
	var input [][]float64
	for lat := -80.0; lat <= 80; lat += 5 {
		input = append(input, []float64{lat / 2, lat})
	}
	xyz, err := londinium.Airy1830.ToGeocentricCartesian(input...)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	ll, err := londinium.Airy1830.FromGeocentricCartesian(xyz)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(ll) != len(input) {
		t.Fatalf("expected %d points, got %d", len(input), len(ll))
	}
	for i := range input {
		if math.Abs(ll[i][0]-input[i][0]) > 1e-6 || math.Abs(ll[i][1]-input[i][1]) > 1e-6 {
			t.Errorf("expected %v, got %v", input[i], ll[i])
		}
	}
}

func TestGeocentricPoleTerminates(t *testing.T) {
	ll, err := londinium.WGS84.FromGeocentricCartesian([]r3.Vector{{Z: londinium.WGS84.SemiMinorAxis()}})
	if err != nil {
		if !errors.Is(err, londinium.ErrConvergenceFailure) {
			t.Fatalf("expected ErrConvergenceFailure, got %v", err)
		}
		return
	}
	if math.Abs(ll[0][1]-90) > 1e-6 {
		t.Fatalf("expected latitude 90, got %g", ll[0][1])
	}
}

func TestGeocentricNonConvergence(t *testing.T) {
	_, err := londinium.WGS84.FromGeocentricCartesian([]r3.Vector{{X: 1, Y: 1, Z: math.NaN()}})
	if !errors.Is(err, londinium.ErrConvergenceFailure) {
		t.Fatalf("expected ErrConvergenceFailure, got %v", err)
	}
}

func TestGeocentricEmpty(t *testing.T) {
	ll, err := londinium.WGS84.FromGeocentricCartesian(nil)
	if err != nil || len(ll) != 0 {
		t.Fatalf("expected empty result, got %v (%v)", ll, err)
	}
}
