package canvas

import (
	"math"

	"github.com/paulmach/orb"
)

// Distortion warps planar coordinates. Project has the signature of
// orb.Projection, so a distortion's method value can be used wherever orb
// expects one.
type Distortion interface {
	Project(p orb.Point) orb.Point
}

// DefaultCentre is the point on the national grid, near Charing Cross, that
// distortion is centred on.
var DefaultCentre = orb.Point{530500, 181500}

// DefaultRadialScale is the distance in meters at which the default radial
// transform has compressed a radius to atan(1).
const DefaultRadialScale = 5000

// Arctan returns the radial transform r -> atan(r/scale). It expands the
// centre of the map and compresses its outskirts towards a circle of radius
// pi/2.
func Arctan(scale float64) func(r float64) float64 {
	return func(r float64) float64 { return math.Atan(r / scale) }
}

// PolarDistortion rescales the distance of every point from Centre with
// RadialTransform while keeping its bearing. Distorted output is centred on
// the origin.
type PolarDistortion struct {
	Centre          orb.Point
	RadialTransform func(r float64) float64
}

// NewPolarDistortion returns the default distortion, atan(r/5000) about
// DefaultCentre.
func NewPolarDistortion() *PolarDistortion {
	return &PolarDistortion{Centre: DefaultCentre, RadialTransform: Arctan(DefaultRadialScale)}
}

// Project distorts a single planar point.
func (d *PolarDistortion) Project(p orb.Point) orb.Point {
	dx, dy := p[0]-d.Centre[0], p[1]-d.Centre[1]
	r := d.RadialTransform(math.Hypot(dx, dy))
	theta := math.Atan2(dy, dx)
	return orb.Point{r * math.Cos(theta), r * math.Sin(theta)}
}

// NoDistortion leaves points untouched.
type NoDistortion struct{}

// Project returns p.
func (NoDistortion) Project(p orb.Point) orb.Point { return p }
