package osi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/tzneal/londinium/parsing/osi"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "osi.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestOSIs(t *testing.T) {
	f := osi.NewFile(writeFixture(t, `{"2019":[["x","y","z"]],"2020":[
["Waterloo","Waterloo East","OSI"],
["Bank","Monument","ISI"],
["Waterloo","Southwark","OSI"]]}`))
	osis, err := f.OSIs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(osis) != 3 {
		t.Fatalf("expected 3 interchanges, got %d", len(osis))
	}
	if osis[1] != (osi.OSI{A: "Bank", B: "Monument", InterchangeType: "ISI"}) {
		t.Errorf("unexpected interchange %+v", osis[1])
	}

	stations, err := f.Stations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Bank", "Monument", "Southwark", "Waterloo", "Waterloo East"}
	if len(stations) != len(want) {
		t.Fatalf("expected %v, got %v", want, stations)
	}
	for i := range want {
		if stations[i] != want[i] {
			t.Errorf("expected %v, got %v", want, stations)
			break
		}
	}
}

func TestMissingYear(t *testing.T) {
	f := osi.NewFile(writeFixture(t, `{"2019":[]}`))
	if _, err := f.OSIs(); !errors.Is(err, osi.ErrMissingYear) {
		t.Fatalf("expected ErrMissingYear, got %v", err)
	}
}

func TestEmptyYear(t *testing.T) {
	f := osi.NewFile(writeFixture(t, `{"2020":[]}`))
	stations, err := f.Stations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stations) != 0 {
		t.Fatalf("expected no stations, got %v", stations)
	}
}
