package canvas

import (
	"log"

	"github.com/paulmach/orb"
	"github.com/tzneal/londinium/colours"
	"github.com/tzneal/londinium/parsing"
)

// Sizes and z-indices of stations and interchanges.
const (
	zOSICasing    = 97
	zInterchange  = 98
	zOSIInfill    = 99
	zDisused      = 99
	lineWidth     = 1.2
	osiCasing     = 3
	osiInfill     = 1
	interchangeMS = 4
	stationMS     = 2
)

// lineStyle returns the colour and z-index of a named line, falling back
// to corporate grey at the bottom for lines without a colour.
func lineStyle(name string) (string, int) {
	c, ok := colours.LineColour(name)
	if !ok {
		return colours.CorporateGrey.Hex(), 0
	}
	z, _ := colours.PlotOrder(name)
	return c.Hex(), z
}

// DrawTubeMap draws the TfL lines and stations, closed stations,
// out-of-station interchanges and National Rail links from data.
func DrawTubeMap(c *Canvas, data *parsing.RepoData) error {
	lines, err := data.TfLLines.Lines()
	if err != nil {
		return err
	}
	for _, line := range lines {
		colour, z := lineStyle(line.Name)
		for _, link := range line.Links {
			if _, err := c.Plot(link.Geometry, Style{Stroke: colour, StrokeWidth: lineWidth, Z: z}, false); err != nil {
				return err
			}
		}
	}

	osiStations, err := data.OSIs.Stations()
	if err != nil {
		return err
	}
	interchanges := make(map[string]bool, len(osiStations))
	for _, name := range osiStations {
		interchanges[name] = true
	}

	stations, err := data.TfLStations.Stations()
	if err != nil {
		return err
	}
	byName := make(map[string]orb.Point, len(stations))
	white, black := colours.CorporateWhite.Hex(), colours.CorporateBlack.Hex()
	for _, s := range stations {
		byName[s.Name] = s.Location
		var style Style
		if len(s.Lines) > 1 || interchanges[s.Name] {
			style = Style{MarkerColor: white, MarkerStroke: black, MarkerSize: interchangeMS, Z: zInterchange}
		} else {
			var colour string
			var z int
			if len(s.Lines) == 1 {
				colour, z = lineStyle(s.Lines[0])
			} else {
				colour, z = lineStyle("")
			}
			style = Style{MarkerColor: colour, MarkerStroke: colour, MarkerSize: stationMS, Z: z}
		}
		if _, err := c.Plot(s.Location, style, false); err != nil {
			return err
		}
	}

	closed, err := data.DisusedStations.Stations()
	if err != nil {
		return err
	}
	grey := colours.DisusedStation.Hex()
	for _, s := range closed {
		style := Style{MarkerColor: grey, MarkerStroke: grey, MarkerSize: stationMS, Z: zDisused}
		if _, err := c.Plot(s.Location, style, false); err != nil {
			return err
		}
	}

	osis, err := data.OSIs.OSIs()
	if err != nil {
		return err
	}
	for _, o := range osis {
		a, okA := byName[o.A]
		b, okB := byName[o.B]
		if !okA || !okB {
			log.Printf("skipping interchange %s - %s: station not found", o.A, o.B)
			continue
		}
		segment := orb.LineString{a, b}
		if _, err := c.Plot(segment, Style{Stroke: black, StrokeWidth: osiCasing, Z: zOSICasing}, false); err != nil {
			return err
		}
		if _, err := c.Plot(segment, Style{Stroke: white, StrokeWidth: osiInfill, Z: zOSIInfill}, false); err != nil {
			return err
		}
	}

	nrLinks, err := data.NRLines.Links()
	if err != nil {
		return err
	}
	nrZ, _ := colours.PlotOrder("National Rail")
	nrStyle := Style{Stroke: colours.NationalRailLinks.Hex(), StrokeWidth: 1, Z: nrZ}
	for _, link := range nrLinks {
		if _, err := c.Plot(link.Geometry, nrStyle, true); err != nil {
			return err
		}
	}
	return nil
}
