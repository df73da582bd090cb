// Package canvas draws transport networks as styled GeoJSON features,
// projecting longitude/latitude onto a planar grid and optionally distorting
// the result.
package canvas

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
)

// ErrNoGeometry is returned when asked to plot a nil geometry.
var ErrNoGeometry = errors.New("no geometry")

// Projector converts longitude/latitude pairs in degrees into planar
// coordinates. TransverseMercator satisfies it.
type Projector interface {
	ToPlanar(lonLat ...[]float64) ([][]float64, error)
}

// DefaultBBox is the longitude/latitude extent of Greater London.
var DefaultBBox = orb.Bound{Min: orb.Point{-0.54, 51.3}, Max: orb.Point{0.28, 51.7}}

// Style controls how a feature is drawn. Zero values are left out of the
// feature's properties, except Z.
type Style struct {
	Stroke       string
	StrokeWidth  float64
	MarkerColor  string
	MarkerStroke string
	MarkerSize   float64
	Z            int
}

func (s Style) properties() geojson.Properties {
	p := geojson.Properties{"z-index": s.Z}
	if s.Stroke != "" {
		p["stroke"] = s.Stroke
	}
	if s.StrokeWidth != 0 {
		p["stroke-width"] = s.StrokeWidth
	}
	if s.MarkerColor != "" {
		p["marker-color"] = s.MarkerColor
	}
	if s.MarkerStroke != "" {
		p["marker-stroke"] = s.MarkerStroke
	}
	if s.MarkerSize != 0 {
		p["marker-size"] = s.MarkerSize
	}
	return p
}

type drawn struct {
	feature *geojson.Feature
	z       int
}

// Canvas accumulates projected, distorted and styled features.
type Canvas struct {
	projection Projector
	distortion Distortion
	bbox       orb.Bound
	drawn      []drawn
}

// New returns an empty canvas. A nil distortion means NoDistortion.
func New(projection Projector, distortion Distortion, bbox orb.Bound) *Canvas {
	if distortion == nil {
		distortion = NoDistortion{}
	}
	return &Canvas{projection: projection, distortion: distortion, bbox: bbox}
}

// BBox returns the longitude/latitude extent used when plotting with
// checkBBox.
func (c *Canvas) BBox() orb.Bound { return c.bbox }

// Plot projects a longitude/latitude geometry, distorts it and records it
// with style. With checkBBox, geometries lying wholly outside the canvas
// bbox are skipped. It reports whether the geometry was drawn.
func (c *Canvas) Plot(g orb.Geometry, style Style, checkBBox bool) (bool, error) {
	if g == nil {
		return false, ErrNoGeometry
	}
	if checkBBox && !g.Bound().Intersects(c.bbox) {
		return false, nil
	}
	planar, err := c.toPlanar(g)
	if err != nil {
		return false, err
	}
	f := geojson.NewFeature(project.Geometry(planar, c.distortion.Project))
	f.Properties = style.properties()
	c.drawn = append(c.drawn, drawn{feature: f, z: style.Z})
	return true, nil
}

// toPlanar returns a projected copy of g, converting all of its points in
// one batch.
func (c *Canvas) toPlanar(g orb.Geometry) (orb.Geometry, error) {
	var lonLat [][]float64
	out := project.Geometry(orb.Clone(g), func(p orb.Point) orb.Point {
		lonLat = append(lonLat, []float64{p[0], p[1]})
		return p
	})
	if len(lonLat) == 0 {
		return out, nil
	}
	en, err := c.projection.ToPlanar(lonLat...)
	if err != nil {
		return nil, errors.Wrap(err, "projecting geometry")
	}
	i := 0
	return project.Geometry(out, func(orb.Point) orb.Point {
		p := orb.Point{en[i][0], en[i][1]}
		i++
		return p
	}), nil
}

// Len returns the number of features drawn.
func (c *Canvas) Len() int { return len(c.drawn) }

// FeatureCollection returns the drawn features from bottom to top: ordered
// by z-index, and by drawing order within a z-index.
func (c *Canvas) FeatureCollection() *geojson.FeatureCollection {
	sorted := make([]drawn, len(c.drawn))
	copy(sorted, c.drawn)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].z < sorted[j].z })
	fc := geojson.NewFeatureCollection()
	for _, d := range sorted {
		fc.Append(d.feature)
	}
	return fc
}
