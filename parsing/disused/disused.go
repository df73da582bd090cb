// Package disused reads the JSON list of closed stations.
package disused

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// ErrMalformedCoordinates is returned when a station's "coordinates" field
// is not a pair of numbers.
var ErrMalformedCoordinates = errors.New("malformed coordinates")

// IDPrefix is prepended to a station's name to form its ID.
const IDPrefix = "DISUSED_"

// Station is a station no longer in passenger use.
type Station struct {
	ID               string
	Name             string
	Lines            []string
	Location         orb.Point
	DateClosed       string
	TypeOfClosure    string
	Details          string
	CurrentCondition string
	ImageURL         string
}

type record struct {
	Station          string `json:"station"`
	Line             string `json:"line"`
	Coordinates      string `json:"coordinates"`
	Closed           string `json:"closed"`
	TypeOfClosure    string `json:"type_of_closure"`
	Details          string `json:"details"`
	CurrentCondition string `json:"current_condition"`
	Image            string `json:"image"`
}

// File lazily reads a disused stations file.
type File struct {
	path    string
	records []record
}

// NewFile returns a reader for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Reset discards the decoded contents so the next access rereads the file.
func (f *File) Reset() { f.records = nil }

func (f *File) root() ([]record, error) {
	if f.records == nil {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", f.path)
		}
		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", f.path)
		}
		f.records = records
	}
	return f.records, nil
}

// Stations decodes every station in the file.
func (f *File) Stations() ([]Station, error) {
	records, err := f.root()
	if err != nil {
		return nil, err
	}
	stations := make([]Station, 0, len(records))
	for _, r := range records {
		loc, err := parseLatLon(r.Coordinates)
		if err != nil {
			return nil, errors.Wrapf(err, "station %q", r.Station)
		}
		stations = append(stations, Station{
			ID:               IDPrefix + r.Station,
			Name:             r.Station,
			Lines:            strings.Split(r.Line, ", "),
			Location:         loc,
			DateClosed:       r.Closed,
			TypeOfClosure:    r.TypeOfClosure,
			Details:          r.Details,
			CurrentCondition: r.CurrentCondition,
			ImageURL:         r.Image,
		})
	}
	return stations, nil
}

// parseLatLon reads a whitespace separated "lat lon" string into a
// longitude/latitude point.
func parseLatLon(s string) (orb.Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return orb.Point{}, errors.Wrapf(ErrMalformedCoordinates, "%q", s)
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(ErrMalformedCoordinates, "%q: %s", s, err)
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(ErrMalformedCoordinates, "%q: %s", s, err)
	}
	return orb.Point{lon, lat}, nil
}
