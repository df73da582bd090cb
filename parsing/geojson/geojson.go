// Package geojson reads the station and line GeoJSON files describing the
// London rail network.
package geojson

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb/geojson"
)

// ErrMalformedFeature is returned when a feature lacks the geometry or
// properties the reader expects.
var ErrMalformedFeature = errors.New("malformed feature")

// file lazily decodes a feature collection from disk.
type file struct {
	path string
	root *geojson.FeatureCollection
}

func (f *file) features() ([]*geojson.Feature, error) {
	if f.root == nil {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", f.path)
		}
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding %s", f.path)
		}
		f.root = fc
	}
	return f.root.Features, nil
}

// Reset discards the decoded contents so the next access rereads the file.
func (f *file) Reset() { f.root = nil }

// Path returns the file's location.
func (f *file) Path() string { return f.path }

// decodeProperties copies a feature's free-form properties into v.
func decodeProperties(props geojson.Properties, v interface{}) error {
	data, err := json.Marshal(props)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
