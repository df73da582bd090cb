// Package parsing opens the data files describing London's transport
// networks and turns timetables into networks.
package parsing

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tzneal/londinium/config"
	"github.com/tzneal/londinium/network"
	"github.com/tzneal/londinium/parsing/disused"
	"github.com/tzneal/londinium/parsing/geojson"
	"github.com/tzneal/londinium/parsing/osi"
	"github.com/tzneal/londinium/parsing/transxchange"
)

// ErrUnknownMode is returned for a mode with no timetable pattern.
var ErrUnknownMode = errors.New("unknown mode")

// ErrNoTimetables is returned when a mode's pattern matches no files.
var ErrNoTimetables = errors.New("no timetable files")

// Modes lists the modes with timetables, in reading order.
var Modes = []string{"boat", "bus", "cablecar", "dlr", "tram", "underground"}

// RepoData holds a reader for each repository data file. Files are read on
// first access.
type RepoData struct {
	NRLines         *geojson.LinesFile
	TfLLines        *geojson.LinesFile
	NRStationsAll   *geojson.StationsFile
	NRStationsZ16   *geojson.StationsFile
	TfLStations     *geojson.StationsFile
	DisusedStations *disused.File
	OSIs            *osi.File
}

// ReadRepoData opens a reader for each repository data file.
func ReadRepoData(paths config.RepoDataPaths) *RepoData {
	return &RepoData{
		NRLines:         geojson.NewLinesFile(paths.Lines.NR),
		TfLLines:        geojson.NewLinesFile(paths.Lines.TfL),
		NRStationsAll:   geojson.NewStationsFile(paths.Stations.NR.All),
		NRStationsZ16:   geojson.NewStationsFile(paths.Stations.NR.Z16),
		TfLStations:     geojson.NewStationsFile(paths.Stations.TfL),
		DisusedStations: disused.NewFile(paths.Stations.Disused),
		OSIs:            osi.NewFile(paths.OSIs.JSON),
	}
}

// WayForMode returns the way a mode runs on.
func WayForMode(mode string) string {
	switch strings.ToLower(mode) {
	case "boat":
		return "river"
	case "bus":
		return "road"
	case "cablecar":
		return "cable"
	default:
		return "rail"
	}
}

// ReadTimetables reads every TransXChange file of a mode and assembles its
// lines, locating stops with geocoder.
func ReadTimetables(paths config.TfLDataPaths, mode string, geocoder transxchange.Geocoder) (*network.Mode, error) {
	pattern, ok := paths.Timetables.ForMode(mode)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMode, "%q", mode)
	}
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "matching %s", pattern)
	}
	if len(files) == 0 {
		return nil, errors.Wrapf(ErrNoTimetables, "%s matched nothing", pattern)
	}
	log.Printf("reading %d %s timetables", len(files), mode)

	m, err := network.NewMode(mode, WayForMode(mode))
	if err != nil {
		return nil, err
	}
	lines, err := transxchange.NewCollection(files).Network(geocoder)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s timetables", mode)
	}
	for _, l := range lines {
		m.AddLine(l)
	}
	return m, nil
}
