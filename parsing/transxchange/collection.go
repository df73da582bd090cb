package transxchange

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/tzneal/londinium/network"
)

// ErrUnknownStop is returned when a route link refers to a stop point that
// no file for the line defines.
var ErrUnknownStop = errors.New("unknown stop point")

// Geocoder converts national grid easting/northing pairs into
// longitude/latitude pairs in degrees.
type Geocoder interface {
	ToEllipsoidal(eastingNorthing ...[]float64) ([][]float64, error)
}

// StopPair identifies a link or section by the stop points at either end.
type StopPair struct {
	From string
	To   string
}

// lineData is everything gathered for one line across its files.
type lineData struct {
	name          string
	files         []*File
	stopPoints    []StopPoint
	routeSections []RouteSection
	routeLinks    []RouteLink
	routes        []Route
}

// Collection aggregates many TransXChange files by line name. Where files
// repeat a stop point, route section or route link, the first one read is
// kept.
type Collection struct {
	paths []string
	lines []*lineData
}

// NewCollection returns a collection over paths. Nothing is read until Load
// or an accessor is called.
func NewCollection(paths []string) *Collection {
	return &Collection{paths: paths}
}

// Load reads every file. It is called implicitly by the accessors.
func (c *Collection) Load() error {
	if c.lines != nil {
		return nil
	}
	byName := make(map[string]*lineData)
	var lines []*lineData
	for _, path := range c.paths {
		log.Printf("parsing %s", path)
		f := NewFile(path)
		svc, err := f.Service()
		if err != nil {
			return err
		}
		name := svc.Line().Name
		ld, ok := byName[name]
		if !ok {
			ld = &lineData{name: name}
			byName[name] = ld
			lines = append(lines, ld)
		}
		ld.files = append(ld.files, f)
	}
	for _, ld := range lines {
		if err := ld.aggregate(); err != nil {
			return err
		}
	}
	if lines == nil {
		lines = []*lineData{}
	}
	c.lines = lines
	return nil
}

func (ld *lineData) aggregate() error {
	stops := make(map[string]bool)
	sections := make(map[StopPair]bool)
	links := make(map[StopPair]bool)
	routes := make(map[string]bool)
	for _, f := range ld.files {
		sps, err := f.StopPoints()
		if err != nil {
			return err
		}
		for _, sp := range sps {
			if !stops[sp.AtcoCode] {
				stops[sp.AtcoCode] = true
				ld.stopPoints = append(ld.stopPoints, sp)
			}
		}

		rss, err := f.RouteSections()
		if err != nil {
			return err
		}
		for _, rs := range rss {
			key := StopPair{rs.RouteLinks[0].From, rs.RouteLinks[len(rs.RouteLinks)-1].To}
			if !sections[key] {
				sections[key] = true
				ld.routeSections = append(ld.routeSections, rs)
			}
			for _, rl := range rs.RouteLinks {
				key := StopPair{rl.From, rl.To}
				if !links[key] {
					links[key] = true
					ld.routeLinks = append(ld.routeLinks, rl)
				}
			}
		}

		rts, err := f.Routes()
		if err != nil {
			return err
		}
		for _, r := range rts {
			if !routes[r.ID] {
				routes[r.ID] = true
				ld.routes = append(ld.routes, r)
			}
		}
	}
	return nil
}

func (c *Collection) line(name string) (*lineData, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	for _, ld := range c.lines {
		if ld.name == name {
			return ld, nil
		}
	}
	return &lineData{name: name}, nil
}

// LineNames returns the line names in the order they were first seen.
func (c *Collection) LineNames() ([]string, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	names := make([]string, len(c.lines))
	for i, ld := range c.lines {
		names[i] = ld.name
	}
	return names, nil
}

// Files returns the files describing the named line.
func (c *Collection) Files(line string) ([]*File, error) {
	ld, err := c.line(line)
	if err != nil {
		return nil, err
	}
	return ld.files, nil
}

// StopPoints returns the distinct stop points of the named line.
func (c *Collection) StopPoints(line string) ([]StopPoint, error) {
	ld, err := c.line(line)
	if err != nil {
		return nil, err
	}
	return ld.stopPoints, nil
}

// RouteSections returns the named line's route sections, distinct by the
// stop points at either end.
func (c *Collection) RouteSections(line string) ([]RouteSection, error) {
	ld, err := c.line(line)
	if err != nil {
		return nil, err
	}
	return ld.routeSections, nil
}

// RouteLinks returns the named line's route links, distinct by the stop
// points at either end.
func (c *Collection) RouteLinks(line string) ([]RouteLink, error) {
	ld, err := c.line(line)
	if err != nil {
		return nil, err
	}
	return ld.routeLinks, nil
}

// Routes returns the named line's routes, distinct by ID.
func (c *Collection) Routes(line string) ([]Route, error) {
	ld, err := c.line(line)
	if err != nil {
		return nil, err
	}
	return ld.routes, nil
}

// Network builds a line per line name, with a stop per stop point and a link
// per route link. Stop points with a grid reference are located by converting
// it to longitude/latitude with geocoder.
func (c *Collection) Network(geocoder Geocoder) ([]*network.Line, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	lines := make([]*network.Line, 0, len(c.lines))
	for _, ld := range c.lines {
		line := network.NewLine(ld.name)

		var grid [][]float64
		var located []*network.Stop
		for _, sp := range ld.stopPoints {
			stop := &network.Stop{ID: sp.AtcoCode, Name: sp.CommonName}
			line.AddStop(stop)
			if sp.Easting != nil && sp.Northing != nil {
				grid = append(grid, []float64{*sp.Easting, *sp.Northing})
				located = append(located, stop)
			}
		}
		if len(grid) > 0 {
			lonLat, err := geocoder.ToEllipsoidal(grid...)
			if err != nil {
				return nil, errors.Wrapf(err, "locating stops of %s", ld.name)
			}
			for i, stop := range located {
				stop.Location = orb.Point{lonLat[i][0], lonLat[i][1]}
			}
		}

		for _, rl := range ld.routeLinks {
			from, ok := line.Stop(rl.From)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownStop, "%s on %s", rl.From, ld.name)
			}
			to, ok := line.Stop(rl.To)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownStop, "%s on %s", rl.To, ld.name)
			}
			line.AddLink(network.NewLink(from, to, rl.Distance, nil))
		}
		lines = append(lines, line)
	}
	return lines, nil
}
