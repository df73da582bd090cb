package config

// RepoPaths locates the data files supplied with the repository. Each file
// name is relative to BaseDir unless it is absolute.
type RepoPaths struct {
	BaseDir            string `yaml:"basedir"`
	DisusedStations    string `yaml:"disused_stations" validate:"required"`
	GreaterLondon      string `yaml:"greater_london" validate:"required"`
	TfLStations        string `yaml:"tfl_stations" validate:"required"`
	RailStationsLondon string `yaml:"rail_stations_london" validate:"required"`
	RailStationsAll    string `yaml:"rail_stations_all" validate:"required"`
	RailLines          string `yaml:"rail_lines" validate:"required"`
	OSIsJSON           string `yaml:"osis_json" validate:"required"`
	RiverThames        string `yaml:"river_thames" validate:"required"`
	TfLLines           string `yaml:"tfl_lines" validate:"required"`
	ZoneBoundaries     string `yaml:"zone_boundaries" validate:"required"`
	OSIsXLSX           string `yaml:"osis_xlsx" validate:"required"`
	StationDepths      string `yaml:"station_depths" validate:"required"`
}

// TfLPaths locates TfL open data files. Timetable entries are glob patterns.
type TfLPaths struct {
	BaseDir          string `yaml:"basedir"`
	StopsBoat        string `yaml:"stops_boat" validate:"required"`
	StopsBus         string `yaml:"stops_bus" validate:"required"`
	StopsUnderground string `yaml:"stops_underground" validate:"required"`
	RoutesBus        string `yaml:"routes_bus" validate:"required"`
	TTBoat           string `yaml:"tt_boat" validate:"required"`
	TTBus            string `yaml:"tt_bus" validate:"required"`
	TTCableCar       string `yaml:"tt_cablecar" validate:"required"`
	TTDLR            string `yaml:"tt_dlr" validate:"required"`
	TTTram           string `yaml:"tt_tram" validate:"required"`
	TTUnderground    string `yaml:"tt_underground" validate:"required"`
	PaxCounts        string `yaml:"pax_counts" validate:"required"`
	PaxRODS          string `yaml:"pax_rods" validate:"required"`
	PaxOyster        string `yaml:"pax_oyster" validate:"required"`
}

// BBox is a longitude/latitude bounding box in degrees.
type BBox struct {
	MinLon float64 `yaml:"min_lon" validate:"gte=-180,ltfield=MaxLon"`
	MaxLon float64 `yaml:"max_lon" validate:"lte=180"`
	MinLat float64 `yaml:"min_lat" validate:"gte=-90,ltfield=MaxLat"`
	MaxLat float64 `yaml:"max_lat" validate:"lte=90"`
}

// MapConfig controls projection and distortion of the drawn map.
type MapConfig struct {
	Projection  string     `yaml:"projection" validate:"oneof=national-grid utm29"`
	Distort     bool       `yaml:"distort"`
	Centre      [2]float64 `yaml:"centre"` // longitude, latitude in degrees
	RadialScale float64    `yaml:"radial_scale" validate:"gt=0"`
	BBox        BBox       `yaml:"bbox"`
}

// Config is the root configuration structure
type Config struct {
	Repo RepoPaths `yaml:"repo"`
	TfL  TfLPaths  `yaml:"tfl"`
	Map  MapConfig `yaml:"map"`
}

// StationsPaths are the resolved station file paths.
type StationsPaths struct {
	TfL     string
	NR      NRPaths
	Disused string
	Depths  string
}

// NRPaths are the resolved National Rail station file paths.
type NRPaths struct {
	Z16 string // stations within fare zones 1-6
	All string
}

// LinesPaths are the resolved line file paths.
type LinesPaths struct {
	TfL string
	NR  string
}

// AreasPaths are the resolved area outline file paths.
type AreasPaths struct {
	London string
	River  string
	Zones  string
}

// OSIPaths are the resolved out-of-station interchange file paths.
type OSIPaths struct {
	JSON string
	XLSX string
}

// RepoDataPaths are absolute (or base-relative) paths to repository data.
type RepoDataPaths struct {
	Stations StationsPaths
	Lines    LinesPaths
	Areas    AreasPaths
	OSIs     OSIPaths
}

// StopsPaths are the resolved stop file paths.
type StopsPaths struct {
	Boat        string
	Bus         string
	Underground string
}

// RoutesPaths are the resolved route file paths.
type RoutesPaths struct {
	Bus string
}

// TimetablesPaths are the resolved timetable glob patterns, per mode.
type TimetablesPaths struct {
	Boat        string
	Bus         string
	CableCar    string
	DLR         string
	Tram        string
	Underground string
}

// PassengersPaths are the resolved passenger count paths.
type PassengersPaths struct {
	Counts string
	RODS   string
	Oyster string
}

// TfLDataPaths are resolved paths to TfL open data.
type TfLDataPaths struct {
	Stops      StopsPaths
	Routes     RoutesPaths
	Timetables TimetablesPaths
	Passengers PassengersPaths
}
