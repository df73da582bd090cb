package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/paulmach/orb"
	"github.com/tzneal/londinium"
	"github.com/tzneal/londinium/canvas"
	"github.com/tzneal/londinium/config"
	"github.com/tzneal/londinium/internal"
	"github.com/tzneal/londinium/parsing"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file (default $LONDINIUM_CONFIG)")
	out := flag.String("out", "", "write the map GeoJSON to this file instead of stdout")
	projection := flag.String("projection", "", "national-grid|utm29 (overrides config)")
	distort := flag.Bool("distort", false, "apply the polar distortion (overrides config)")
	osgb36 := flag.Bool("osgb36", false, "shift WGS84 longitude/latitude onto OSGB36 before projecting")
	convert := flag.Bool("convert", false, "read longitude latitude pairs from stdin and print easting northing")
	inverse := flag.Bool("inverse", false, "with -convert, read easting northing and print longitude latitude")
	timetables := flag.String("timetables", "", "summarise a mode's timetables: "+strings.Join(parsing.Modes, "|"))
	flag.Parse()

	internal.InitLogging()
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "projection":
			cfg.Map.Projection = *projection
		case "distort":
			cfg.Map.Distort = *distort
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	tm := selectProjection(cfg.Map.Projection)
	proj, err := newProjector(tm, *osgb36)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *convert:
		if err := convertStream(os.Stdin, os.Stdout, proj, tm, *inverse); err != nil {
			log.Fatal(err)
		}
	case *timetables != "":
		if err := summariseTimetables(cfg, *timetables); err != nil {
			log.Fatal(err)
		}
	default:
		if err := drawMap(cfg, proj, *out); err != nil {
			log.Fatal(err)
		}
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	cfg.OverrideFromEnv()
	return cfg, nil
}

func selectProjection(name string) *londinium.TransverseMercator {
	if name == "utm29" {
		return londinium.DefaultUTM29
	}
	return londinium.DefaultNationalGrid
}

// newProjector returns tm, or with shift set, tm behind the WGS84 to OSGB36
// datum shift. The shift only makes sense for projections over Airy 1830.
func newProjector(tm *londinium.TransverseMercator, shift bool) (converter, error) {
	if !shift {
		return tm, nil
	}
	if tm.Ellipsoid() != londinium.Airy1830 {
		return nil, errors.Wrap(londinium.ErrInvalidProjectionParameters,
			"the OSGB36 shift needs a projection over Airy 1830")
	}
	return shiftedProjection{shift: londinium.DefaultWGS84ToOSGB36, tm: tm}, nil
}

// shiftedProjection moves points between datums before projecting them.
type shiftedProjection struct {
	shift *londinium.DatumShift
	tm    *londinium.TransverseMercator
}

func (s shiftedProjection) ToPlanar(lonLat ...[]float64) ([][]float64, error) {
	shifted, err := s.shift.Apply(lonLat...)
	if err != nil {
		return nil, err
	}
	return s.tm.ToPlanar(shifted...)
}

func (s shiftedProjection) ToEllipsoidal(eastingNorthing ...[]float64) ([][]float64, error) {
	lonLat, err := s.tm.ToEllipsoidal(eastingNorthing...)
	if err != nil {
		return nil, err
	}
	return s.shift.Reverse(lonLat...)
}

func drawMap(cfg config.Config, proj canvas.Projector, out string) error {
	distortion, err := newDistortion(cfg.Map, proj)
	if err != nil {
		return err
	}
	bbox := orb.Bound{
		Min: orb.Point{cfg.Map.BBox.MinLon, cfg.Map.BBox.MinLat},
		Max: orb.Point{cfg.Map.BBox.MaxLon, cfg.Map.BBox.MaxLat},
	}
	c := canvas.New(proj, distortion, bbox)
	if err := canvas.DrawTubeMap(c, parsing.ReadRepoData(cfg.Repo.Resolve())); err != nil {
		return errors.Wrap(err, "drawing tube map")
	}
	data, err := c.FeatureCollection().MarshalJSON()
	if err != nil {
		return err
	}
	log.Printf("drew %d features", c.Len())
	if out == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

// newDistortion centres the polar distortion on the configured
// longitude/latitude, projected the same way as the map.
func newDistortion(m config.MapConfig, proj canvas.Projector) (canvas.Distortion, error) {
	if !m.Distort {
		return canvas.NoDistortion{}, nil
	}
	centre, err := proj.ToPlanar(m.Centre[:])
	if err != nil {
		return nil, errors.Wrap(err, "projecting distortion centre")
	}
	return &canvas.PolarDistortion{
		Centre:          orb.Point{centre[0][0], centre[0][1]},
		RadialTransform: canvas.Arctan(m.RadialScale),
	}, nil
}

type converter interface {
	canvas.Projector
	ToEllipsoidal(eastingNorthing ...[]float64) ([][]float64, error)
}

func convertStream(r io.Reader, w io.Writer, forward canvas.Projector, tm *londinium.TransverseMercator, inverse bool) error {
	var pairs [][]float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return errors.Newf("line %d: expected two values, got %d", line, len(fields))
		}
		var pair []float64
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return errors.Wrapf(err, "line %d", line)
			}
			pair = append(pair, v)
		}
		pairs = append(pairs, pair)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(pairs) == 0 {
		return nil
	}

	var result [][]float64
	var err error
	format := "%.3f %.3f\n"
	if inverse {
		var back converter = tm
		if c, ok := forward.(converter); ok {
			back = c
		}
		result, err = back.ToEllipsoidal(pairs...)
		format = "%.8f %.8f\n"
	} else {
		result, err = forward.ToPlanar(pairs...)
	}
	if err != nil {
		return err
	}
	for _, p := range result {
		if _, err := fmt.Fprintf(w, format, p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

// summariseTimetables prints stop and link counts per line. Timetable grid
// references are always on the national grid.
func summariseTimetables(cfg config.Config, mode string) error {
	m, err := parsing.ReadTimetables(cfg.TfL.Resolve(), mode, londinium.DefaultNationalGrid)
	if err != nil {
		return err
	}
	for _, l := range m.Lines() {
		fmt.Printf("%s\t%s\t%d stops\t%d links\n", m.Name, l.Name, len(l.Stops()), len(l.Links()))
	}
	return nil
}
