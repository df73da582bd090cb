package geojson

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// LinesFile reads a GeoJSON collection of track links.
type LinesFile struct {
	file
}

// NewLinesFile returns a reader for path. Nothing is read until links or
// lines are requested.
func NewLinesFile(path string) *LinesFile {
	return &LinesFile{file{path: path}}
}

// LinkLine is one line running over a link, with the station IDs the
// link connects for that line.
type LinkLine struct {
	Name      string
	Endpoints []string
}

// Link is a single stretch of track.
type Link struct {
	ID        string
	LinkLines []LinkLine
	Geometry  orb.LineString
}

// Line is the set of links used by one named line.
type Line struct {
	Name  string
	Links []Link
}

// Section is a group of links belonging to the same branch of a line.
type Section struct {
	Name  string
	Links []Link
	Line  *Line
}

type linkProperties struct {
	ID    string `json:"id"`
	Lines []struct {
		Name     string  `json:"name"`
		Start    string  `json:"start_sid"`
		End      string  `json:"end_sid"`
		OtherEnd *string `json:"otend_sid"`
		Other2   *string `json:"ot2end_sid"`
	} `json:"lines"`
}

// Links decodes every link in the file. MultiLineString geometries are
// joined into a single path.
func (f *LinesFile) Links() ([]Link, error) {
	features, err := f.features()
	if err != nil {
		return nil, err
	}
	links := make([]Link, 0, len(features))
	for i, feat := range features {
		var geom orb.LineString
		switch g := feat.Geometry.(type) {
		case orb.LineString:
			geom = g
		case orb.MultiLineString:
			for _, ls := range g {
				geom = append(geom, ls...)
			}
		default:
			return nil, errors.Wrapf(ErrMalformedFeature, "%s: feature %d is %T, not a line", f.path, i, feat.Geometry)
		}
		var p linkProperties
		if err := decodeProperties(feat.Properties, &p); err != nil {
			return nil, errors.Wrapf(ErrMalformedFeature, "%s: feature %d: %s", f.path, i, err)
		}
		link := Link{ID: p.ID, Geometry: geom}
		for _, l := range p.Lines {
			ll := LinkLine{Name: l.Name, Endpoints: []string{l.Start, l.End}}
			for _, e := range []*string{l.OtherEnd, l.Other2} {
				if e != nil {
					ll.Endpoints = append(ll.Endpoints, *e)
				}
			}
			link.LinkLines = append(link.LinkLines, ll)
		}
		links = append(links, link)
	}
	return links, nil
}

// Lines groups the links by the lines running over them, in the order each
// line is first seen.
func (f *LinesFile) Lines() ([]*Line, error) {
	links, err := f.Links()
	if err != nil {
		return nil, err
	}
	var lines []*Line
	byName := make(map[string]*Line)
	for _, link := range links {
		for _, ll := range link.LinkLines {
			line, ok := byName[ll.Name]
			if !ok {
				line = &Line{Name: ll.Name}
				byName[ll.Name] = line
				lines = append(lines, line)
			}
			line.Links = append(line.Links, link)
		}
	}
	return lines, nil
}

// Sections groups the line's links by ID with the final rune removed.
// A link alone in its group keeps its own ID as the section name.
func (l *Line) Sections() []Section {
	var order []string
	groups := make(map[string][]Link)
	for _, link := range l.Links {
		_, size := utf8.DecodeLastRuneInString(link.ID)
		key := link.ID[:len(link.ID)-size]
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], link)
	}
	sections := make([]Section, 0, len(order))
	for _, key := range order {
		links := groups[key]
		name := key
		if len(links) == 1 {
			name = links[0].ID
		}
		sections = append(sections, Section{Name: name, Links: links, Line: l})
	}
	return sections
}
