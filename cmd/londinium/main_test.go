package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/tzneal/londinium"
	"github.com/tzneal/londinium/canvas"
	"github.com/tzneal/londinium/config"
)

func TestConvertStream(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("-2 49\n\n0.5 51.5\n")
	if err := convertStream(in, &out, londinium.DefaultNationalGrid, londinium.DefaultNationalGrid, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if lines[0] != "400000.000 -100000.000" {
		t.Errorf("expected true origin, got %q", lines[0])
	}
}

func TestConvertStreamInverse(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("651409.903 313177.270\n")
	if err := convertStream(in, &out, londinium.DefaultNationalGrid, londinium.DefaultNationalGrid, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := strings.Fields(out.String())
	lon, _ := strconv.ParseFloat(fields[0], 64)
	lat, _ := strconv.ParseFloat(fields[1], 64)
	if math.Abs(lon-1.717921583) > 1e-6 || math.Abs(lat-52.657570306) > 1e-6 {
		t.Errorf("unexpected position %q", out.String())
	}
}

func TestConvertStreamShifted(t *testing.T) {
	proj := shiftedProjection{shift: londinium.DefaultWGS84ToOSGB36, tm: londinium.DefaultNationalGrid}
	var forward bytes.Buffer
	if err := convertStream(strings.NewReader("-0.1 51.5\n"), &forward, proj, londinium.DefaultNationalGrid, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back bytes.Buffer
	if err := convertStream(strings.NewReader(forward.String()), &back, proj, londinium.DefaultNationalGrid, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := strings.Fields(back.String())
	lon, _ := strconv.ParseFloat(fields[0], 64)
	lat, _ := strconv.ParseFloat(fields[1], 64)
	if math.Abs(lon+0.1) > 1e-6 || math.Abs(lat-51.5) > 1e-6 {
		t.Errorf("expected round trip to (-0.1, 51.5), got %q", back.String())
	}
}

func TestConvertStreamErrors(t *testing.T) {
	for _, in := range []string{"1 2 3\n", "a b\n"} {
		var out bytes.Buffer
		if err := convertStream(strings.NewReader(in), &out, londinium.DefaultNationalGrid, londinium.DefaultNationalGrid, false); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LONDINIUM_CONFIG", "")
	t.Setenv("LONDINIUM_REPO_DATA", "/data/repo")
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Repo.BaseDir != "/data/repo" {
		t.Errorf("expected environment base dir, got %q", cfg.Repo.BaseDir)
	}
	if selectProjection("utm29") != londinium.DefaultUTM29 || selectProjection("national-grid") != londinium.DefaultNationalGrid {
		t.Errorf("unexpected projection selection")
	}
}

func TestNewProjectorShiftNeedsAiry(t *testing.T) {
	if _, err := newProjector(londinium.DefaultUTM29, true); !errors.Is(err, londinium.ErrInvalidProjectionParameters) {
		t.Fatalf("expected ErrInvalidProjectionParameters, got %v", err)
	}
	proj, err := newProjector(londinium.DefaultUTM29, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proj != londinium.DefaultUTM29 {
		t.Fatalf("expected the plain projection without the shift")
	}
	proj, err = newProjector(londinium.DefaultNationalGrid, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := proj.(shiftedProjection); !ok {
		t.Fatalf("expected a shifted projection, got %T", proj)
	}
}

func TestNewDistortionFollowsProjection(t *testing.T) {
	m := config.Default().Map
	m.Distort = true
	for _, tm := range []*londinium.TransverseMercator{londinium.DefaultNationalGrid, londinium.DefaultUTM29} {
		d, err := newDistortion(m, tm)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		centre, err := tm.ToPlanar(m.Centre[:])
		if err != nil {
			t.Fatal(err)
		}
		got := d.Project(orb.Point{centre[0][0], centre[0][1]})
		if math.Hypot(got[0], got[1]) > 1e-9 {
			t.Fatalf("expected the configured centre to map to the origin, got %v", got)
		}
	}

	d, _ := newDistortion(m, londinium.DefaultNationalGrid)
	if c := d.(*canvas.PolarDistortion).Centre; math.Abs(c[0]-530500) > 1e-3 || math.Abs(c[1]-181500) > 1e-3 {
		t.Fatalf("expected the default centre at 530500 181500, got %v", c)
	}

	m.Distort = false
	if d, _ := newDistortion(m, londinium.DefaultUTM29); d != (canvas.NoDistortion{}) {
		t.Fatalf("expected no distortion, got %T", d)
	}
}
