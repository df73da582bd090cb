// Package osi reads out-of-station interchanges: pairs of stations between
// which passengers may walk without their journey being broken.
package osi

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
)

// Year is the key of the interchange list in the file.
const Year = "2020"

// ErrMissingYear is returned when the file has no list for Year.
var ErrMissingYear = errors.New("missing interchange year")

// OSI is a single out-of-station interchange.
type OSI struct {
	A               string
	B               string
	InterchangeType string
}

// File lazily reads an interchange file.
type File struct {
	path    string
	entries [][3]string
}

// NewFile returns a reader for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Reset discards the decoded contents so the next access rereads the file.
func (f *File) Reset() { f.entries = nil }

func (f *File) root() ([][3]string, error) {
	if f.entries == nil {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", f.path)
		}
		var years map[string][][3]string
		if err := json.Unmarshal(data, &years); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", f.path)
		}
		entries, ok := years[Year]
		if !ok {
			return nil, errors.Wrapf(ErrMissingYear, "%s has no %q key", f.path, Year)
		}
		if entries == nil {
			entries = [][3]string{}
		}
		f.entries = entries
	}
	return f.entries, nil
}

// OSIs returns every interchange in file order.
func (f *File) OSIs() ([]OSI, error) {
	entries, err := f.root()
	if err != nil {
		return nil, err
	}
	osis := make([]OSI, len(entries))
	for i, e := range entries {
		osis[i] = OSI{A: e[0], B: e[1], InterchangeType: e[2]}
	}
	return osis, nil
}

// Stations returns the sorted names of every station at either end of an
// interchange.
func (f *File) Stations() ([]string, error) {
	osis, err := f.OSIs()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, o := range osis {
		for _, n := range []string{o.A, o.B} {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
