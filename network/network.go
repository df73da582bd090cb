// Package network represents transport networks: modes made of lines, lines
// made of stops joined by links, and interchanges tying stops together.
// Locations are longitude/latitude points in degrees.
package network

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ErrInvalidWay is returned for a way outside Ways.
var ErrInvalidWay = errors.New("invalid way")

// Ways lists the kinds of way a mode can run on.
var Ways = []string{"rail", "road", "river", "cable"}

// Mode is a collection of lines operating the same way.
type Mode struct {
	Name  string
	way   string
	lines map[string]*Line
}

// NewMode constructs an empty mode running on way.
func NewMode(name, way string) (*Mode, error) {
	m := &Mode{Name: name, lines: make(map[string]*Line)}
	if err := m.SetWay(way); err != nil {
		return nil, err
	}
	return m, nil
}

// Way returns the lower-case way the mode runs on.
func (m *Mode) Way() string { return m.way }

// SetWay changes the way the mode runs on.
func (m *Mode) SetWay(way string) error {
	w := strings.ToLower(way)
	for _, valid := range Ways {
		if w == valid {
			m.way = w
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidWay, "%q is not one of %v", way, Ways)
}

// AddLine adds or replaces a line by name.
func (m *Mode) AddLine(line *Line) {
	m.lines[line.Name] = line
}

// Line returns the named line.
func (m *Mode) Line(name string) (*Line, bool) {
	l, ok := m.lines[name]
	return l, ok
}

// Lines returns the mode's lines sorted by name.
func (m *Mode) Lines() []*Line {
	out := make([]*Line, 0, len(m.lines))
	for _, l := range m.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Line is a distinct service within a mode.
type Line struct {
	Name  string
	stops map[string]*Stop
	links []*Link
}

// NewLine constructs an empty line.
func NewLine(name string) *Line {
	return &Line{Name: name, stops: make(map[string]*Stop)}
}

// AddStop adds or replaces a stop by ID.
func (l *Line) AddStop(s *Stop) {
	l.stops[s.ID] = s
}

// Stop returns the stop with the given ID.
func (l *Line) Stop(id string) (*Stop, bool) {
	s, ok := l.stops[id]
	return s, ok
}

// Stops returns the line's stops sorted by ID.
func (l *Line) Stops() []*Stop {
	out := make([]*Stop, 0, len(l.stops))
	for _, s := range l.stops {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddLink appends a link.
func (l *Line) AddLink(link *Link) {
	l.links = append(l.links, link)
}

// Links returns the line's links in the order they were added.
func (l *Line) Links() []*Link { return l.links }

// Section is a contiguous branch of a line, bounded by stops at junctions or
// termini.
type Section struct {
	Name      string
	Endpoints [2]*Stop
	Links     []*Link
}

// Stops returns the distinct stops touched by the section's links, in order
// of first appearance.
func (s *Section) Stops() []*Stop {
	seen := make(map[*Stop]bool)
	var out []*Stop
	for _, l := range s.Links {
		for _, st := range []*Stop{l.Stop1, l.Stop2} {
			if st != nil && !seen[st] {
				seen[st] = true
				out = append(out, st)
			}
		}
	}
	return out
}

// Stop is a point for passengers to alight or depart.
type Stop struct {
	ID        string
	Name      string
	Location  orb.Point
	Elevation *float64
	Disused   bool
}

// Link is a topological connection between two stops on a line.
type Link struct {
	Stop1 *Stop
	Stop2 *Stop

	distance *float64
	geometry orb.LineString
	Time     *float64 // seconds
}

// NewLink joins two stops. A nil distance is computed from the geometry; a
// nil geometry is the straight segment between the stops.
func NewLink(stop1, stop2 *Stop, distance *float64, geometry orb.LineString) *Link {
	return &Link{Stop1: stop1, Stop2: stop2, distance: distance, geometry: geometry}
}

// Geometry returns the path of the link.
func (l *Link) Geometry() orb.LineString {
	if len(l.geometry) > 0 {
		return l.geometry
	}
	return orb.LineString{l.Stop1.Location, l.Stop2.Location}
}

// Distance returns the link length in meters: the recorded distance if any,
// else the length of the geometry over the Earth's surface.
func (l *Link) Distance() float64 {
	if l.distance != nil {
		return *l.distance
	}
	return geo.Length(l.Geometry())
}

// Interchange ties several stops into an internal or external walking
// interchange.
type Interchange struct {
	Name  string
	Stops []*Stop
}

// Distance returns the surface distance in meters between two stops.
func (i *Interchange) Distance(a, b *Stop) float64 {
	return geo.Distance(a.Location, b.Location)
}
