package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables consulted by OverrideFromEnv. EnvConfig names the
// configuration file when no path is given on the command line.
const (
	EnvConfig   = "LONDINIUM_CONFIG"
	EnvRepoData = "LONDINIUM_REPO_DATA"
	EnvTfLData  = "LONDINIUM_TFL_DATA"
)

// Default returns the configuration describing the standard data layout,
// with empty base directories.
func Default() Config {
	return Config{
		Repo: RepoPaths{
			DisusedStations:    "dylanmaryk/disused-stations.json",
			GreaterLondon:      "oobrien/2247.json",
			TfLStations:        "oobrien/tfl_stations.json",
			RailStationsLondon: "oobrien/nontfl_zonal_stations.json",
			RailStationsAll:    "oobrien/nr_stations.json",
			RailLines:          "oobrien/nr_lines.json",
			OSIsJSON:           "oobrien/osis.json",
			RiverThames:        "oobrien/river_thames_simp.json",
			TfLLines:           "oobrien/tfl_lines.json",
			ZoneBoundaries:     "oobrien/zones1to6.json",
			OSIsXLSX:           "TfL/out-of-station-interchanges.xlsx",
			StationDepths:      "TfL/Station depths.csv",
		},
		TfL: TfLPaths{
			StopsBoat:        "stops/pierlocations-v1.kml",
			StopsBus:         "stops/bus-stops.csv",
			StopsUnderground: "stops/stations.kml",
			RoutesBus:        "routes/bus-sequences.csv",
			TTBoat:           "timetables/boat/tfl_3*.xml",
			TTBus:            "timetables/bus/tfl_*.xml",
			TTCableCar:       "timetables/cablecar/tfl_71-*.xml",
			TTDLR:            "timetables/dlr/tfl_25-*.xml",
			TTTram:           "timetables/tram/tfl_63-*.xml",
			TTUnderground:    "timetables/underground/tfl_1-*.xml",
			PaxCounts:        "passengers/counts/",
			PaxRODS:          "passengers/RODS_2017/",
			PaxOyster:        "passengers/Nov09JnyExport.csv",
		},
		Map: MapConfig{
			Projection:  "national-grid",
			Centre:      [2]float64{-0.1189917374, 51.5168462495},
			RadialScale: 5000,
			BBox:        BBox{MinLon: -0.54, MaxLon: 0.28, MinLat: 51.3, MaxLat: 51.7},
		},
	}
}

// Load reads a YAML or JSON configuration file. Keys present in the file
// override the defaults; absent keys keep them.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML (or JSON) configuration over the defaults and validates
// the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section of the configuration.
func (c Config) Validate() error {
	v := validator.New()
	for _, section := range []interface{}{c.Repo, c.TfL, c.Map} {
		if err := v.Struct(section); err != nil {
			return errors.Mark(errors.Wrap(err, "validating config"), ErrInvalidConfig)
		}
	}
	return nil
}

// OverrideFromEnv replaces the base directories with the values of
// LONDINIUM_REPO_DATA and LONDINIUM_TFL_DATA when they are set.
func (c *Config) OverrideFromEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvRepoData)); v != "" {
		c.Repo.BaseDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTfLData)); v != "" {
		c.TfL.BaseDir = v
	}
}

func abspath(basedir, path string) string {
	if filepath.IsAbs(path) || basedir == "" {
		return path
	}
	return filepath.Join(basedir, path)
}

// Resolve joins every repository file name onto the base directory.
func (r RepoPaths) Resolve() RepoDataPaths {
	p := func(name string) string { return abspath(r.BaseDir, name) }
	return RepoDataPaths{
		Stations: StationsPaths{
			TfL: p(r.TfLStations),
			NR: NRPaths{
				Z16: p(r.RailStationsLondon),
				All: p(r.RailStationsAll),
			},
			Disused: p(r.DisusedStations),
			Depths:  p(r.StationDepths),
		},
		Lines: LinesPaths{
			TfL: p(r.TfLLines),
			NR:  p(r.RailLines),
		},
		Areas: AreasPaths{
			London: p(r.GreaterLondon),
			River:  p(r.RiverThames),
			Zones:  p(r.ZoneBoundaries),
		},
		OSIs: OSIPaths{
			JSON: p(r.OSIsJSON),
			XLSX: p(r.OSIsXLSX),
		},
	}
}

// Resolve joins every TfL file name and pattern onto the base directory.
func (t TfLPaths) Resolve() TfLDataPaths {
	p := func(name string) string { return abspath(t.BaseDir, name) }
	return TfLDataPaths{
		Stops: StopsPaths{
			Boat:        p(t.StopsBoat),
			Bus:         p(t.StopsBus),
			Underground: p(t.StopsUnderground),
		},
		Routes: RoutesPaths{Bus: p(t.RoutesBus)},
		Timetables: TimetablesPaths{
			Boat:        p(t.TTBoat),
			Bus:         p(t.TTBus),
			CableCar:    p(t.TTCableCar),
			DLR:         p(t.TTDLR),
			Tram:        p(t.TTTram),
			Underground: p(t.TTUnderground),
		},
		Passengers: PassengersPaths{
			Counts: p(t.PaxCounts),
			RODS:   p(t.PaxRODS),
			Oyster: p(t.PaxOyster),
		},
	}
}

// ForMode returns the timetable glob pattern for a mode name such as "dlr".
func (t TimetablesPaths) ForMode(mode string) (string, bool) {
	switch strings.ToLower(mode) {
	case "boat":
		return t.Boat, true
	case "bus":
		return t.Bus, true
	case "cablecar":
		return t.CableCar, true
	case "dlr":
		return t.DLR, true
	case "tram":
		return t.Tram, true
	case "underground":
		return t.Underground, true
	}
	return "", false
}
