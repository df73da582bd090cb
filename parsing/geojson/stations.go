package geojson

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// StationsFile reads a GeoJSON collection of station points.
type StationsFile struct {
	file
}

// NewStationsFile returns a reader for path. Nothing is read until the
// stations are requested.
func NewStationsFile(path string) *StationsFile {
	return &StationsFile{file{path: path}}
}

// Cartography holds where a station's label is drawn.
type Cartography struct {
	DisplayName string
	LabelX      float64
	LabelY      float64
}

// Station is a single station feature.
type Station struct {
	ID           string
	AltID        string
	NLCID        string
	OtherModeIDs []string
	Name         string
	Lines        []string
	Cartography  Cartography
	Zone         string
	Location     orb.Point
}

type stationProperties struct {
	ID         string  `json:"id"`
	AltID      string  `json:"alt_id"`
	NLCID      string  `json:"nlc_id"`
	AltModeID  *string `json:"altmodeid"`
	AltModeID2 *string `json:"altmodeid2"`
	Name       string  `json:"name"`
	Lines      []struct {
		Name string `json:"name"`
	} `json:"lines"`
	Cartography struct {
		DisplayName *string  `json:"display_name"`
		LabelX      *float64 `json:"labelX"`
		LabelY      *float64 `json:"labelY"`
	} `json:"cartography"`
	Zone json.RawMessage `json:"zone"`
}

// zone accepts the zone as either a string ("2/3") or a bare number.
func zone(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// Stations decodes every station in the file.
func (f *StationsFile) Stations() ([]Station, error) {
	features, err := f.features()
	if err != nil {
		return nil, err
	}
	stations := make([]Station, 0, len(features))
	for i, feat := range features {
		loc, ok := feat.Geometry.(orb.Point)
		if !ok {
			return nil, errors.Wrapf(ErrMalformedFeature, "%s: feature %d is %T, not a point", f.path, i, feat.Geometry)
		}
		var p stationProperties
		if err := decodeProperties(feat.Properties, &p); err != nil {
			return nil, errors.Wrapf(ErrMalformedFeature, "%s: feature %d: %s", f.path, i, err)
		}
		s := Station{
			ID:       p.ID,
			AltID:    p.AltID,
			NLCID:    p.NLCID,
			Name:     p.Name,
			Zone:     zone(p.Zone),
			Location: loc,
		}
		for _, id := range []*string{p.AltModeID, p.AltModeID2} {
			if id != nil {
				s.OtherModeIDs = append(s.OtherModeIDs, *id)
			}
		}
		for _, l := range p.Lines {
			s.Lines = append(s.Lines, l.Name)
		}
		s.Cartography.DisplayName = p.Name
		if p.Cartography.DisplayName != nil {
			s.Cartography.DisplayName = *p.Cartography.DisplayName
		}
		if p.Cartography.LabelX != nil {
			s.Cartography.LabelX = *p.Cartography.LabelX
		}
		if p.Cartography.LabelY != nil {
			s.Cartography.LabelY = *p.Cartography.LabelY
		}
		stations = append(stations, s)
	}
	return stations, nil
}
