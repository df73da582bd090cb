package transxchange_test

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/tzneal/londinium"
	"github.com/tzneal/londinium/parsing/transxchange"
)

type stop struct {
	code     string
	name     string
	easting  float64
	northing float64
}

type link struct {
	from, to string
	distance float64
}

func document(service, privateCode, lineID, lineName string, stops []stop, sections [][]link, routes []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString(`<TransXChange xmlns="http://www.transxchange.org.uk/">` + "\n<StopPoints>\n")
	for _, s := range stops {
		fmt.Fprintf(&b, `<StopPoint><AtcoCode>%s</AtcoCode><Descriptor><CommonName>%s</CommonName></Descriptor>`+
			`<Place><NptgLocalityRef>E0034</NptgLocalityRef><Location><Easting>%g</Easting><Northing>%g</Northing></Location></Place></StopPoint>`+"\n",
			s.code, s.name, s.easting, s.northing)
	}
	b.WriteString("</StopPoints>\n<RouteSections>\n")
	for i, sec := range sections {
		fmt.Fprintf(&b, `<RouteSection id="RS%d">`, i)
		for j, l := range sec {
			fmt.Fprintf(&b, `<RouteLink id="RL%d_%d"><From><StopPointRef>%s</StopPointRef></From>`+
				`<To><StopPointRef>%s</StopPointRef></To><Distance>%g</Distance><Direction>outbound</Direction></RouteLink>`,
				i, j, l.from, l.to, l.distance)
		}
		b.WriteString("</RouteSection>\n")
	}
	b.WriteString("</RouteSections>\n<Routes>\n")
	for _, r := range routes {
		fmt.Fprintf(&b, `<Route id="%s"><PrivateCode>%s</PrivateCode><Description>d</Description><RouteSectionRef>RS0</RouteSectionRef></Route>`+"\n", r, r)
	}
	b.WriteString("</Routes>\n<Services>\n")
	fmt.Fprintf(&b, `<Service><ServiceCode>%s</ServiceCode><PrivateCode>%s</PrivateCode>`+
		`<Lines><Line id="%s"><LineName>%s</LineName></Line></Lines>`+
		`<OperatingPeriod><StartDate>2020-01-01</StartDate><EndDate>2020-12-31</EndDate></OperatingPeriod>`+
		`<RegisteredOperatorRef>OId_LUL</RegisteredOperatorRef><Description>desc</Description></Service>`+"\n",
		service, privateCode, lineID, lineName)
	b.WriteString("</Services>\n</TransXChange>\n")
	return b.String()
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

var (
	stopA = stop{"A", "Alpha", 530000, 180000}
	stopB = stop{"B", "Bravo", 531000, 180500}
	stopC = stop{"C", "Charlie", 532000, 181000}
)

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.xml", document("1-W-_-y05", "1-W-_-y05", "1-W-_-y05", "Waterloo and City",
		[]stop{stopA, stopB}, [][]link{{{"A", "B", 1200}}}, []string{"R1"}))

	f := transxchange.NewFile(path)
	svc, err := f.Service()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Line().Name != "Waterloo and City" || svc.Operator != "OId_LUL" || svc.StartDate != "2020-01-01" {
		t.Errorf("unexpected service %+v", svc)
	}
	sps, err := f.StopPoints()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sps) != 2 || sps[1].CommonName != "Bravo" || sps[0].Locality != "E0034" {
		t.Fatalf("unexpected stop points %+v", sps)
	}
	if sps[0].Easting == nil || *sps[0].Easting != 530000 {
		t.Errorf("expected easting 530000, got %v", sps[0].Easting)
	}
	rss, err := f.RouteSections()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rl := rss[0].RouteLinks[0]
	if rl.From != "A" || rl.To != "B" || rl.Distance == nil || *rl.Distance != 1200 || rl.Direction != "outbound" {
		t.Errorf("unexpected route link %+v", rl)
	}
	routes, err := f.Routes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 1 || routes[0].ID != "R1" || routes[0].RouteSectionRefs[0] != "RS0" {
		t.Errorf("unexpected routes %+v", routes)
	}
}

func TestFileValidation(t *testing.T) {
	dir := t.TempDir()
	tcs := []struct {
		name string
		doc  string
	}{
		{"private code mismatch", document("S1", "S2", "S1", "L", nil, nil, nil)},
		{"line id mismatch", document("S1", "S1", "S2", "L", nil, nil, nil)},
		{"no services", `<TransXChange xmlns="http://www.transxchange.org.uk/"></TransXChange>`},
		{"wrong namespace", `<TransXChange xmlns="urn:other"></TransXChange>`},
		{"empty route section", document("S1", "S1", "S1", "L", nil, [][]link{{}}, nil)},
	}
	for i, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			f := transxchange.NewFile(writeFile(t, dir, fmt.Sprintf("%d.xml", i), tc.doc))
			if _, err := f.Service(); !errors.Is(err, transxchange.ErrMalformedDocument) {
				t.Fatalf("expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestCollectionDeduplicates(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "1.xml", document("S1", "S1", "S1", "Central",
		[]stop{stopA, stopB}, [][]link{{{"A", "B", 100}}}, []string{"R1"}))
	p2 := writeFile(t, dir, "2.xml", document("S2", "S2", "S2", "Central",
		[]stop{{"A", "Duplicate", 0, 0}, stopC, stopB}, [][]link{{{"A", "B", 999}, {"B", "C", 200}}}, []string{"R1", "R2"}))
	p3 := writeFile(t, dir, "3.xml", document("S3", "S3", "S3", "Victoria",
		[]stop{stopA, stopC}, [][]link{{{"C", "A", 300}}}, nil))

	c := transxchange.NewCollection([]string{p1, p2, p3})
	names, err := c.LineNames()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "Central" || names[1] != "Victoria" {
		t.Fatalf("unexpected line names %v", names)
	}

	files, _ := c.Files("Central")
	if len(files) != 2 {
		t.Errorf("expected 2 Central files, got %d", len(files))
	}
	sps, _ := c.StopPoints("Central")
	if len(sps) != 3 || sps[0].CommonName != "Alpha" || sps[1].AtcoCode != "C" {
		t.Errorf("unexpected stop points %+v", sps)
	}
	links, _ := c.RouteLinks("Central")
	if len(links) != 2 || *links[0].Distance != 100 {
		t.Errorf("expected first-seen route links, got %+v", links)
	}
	sections, _ := c.RouteSections("Central")
	if len(sections) != 2 {
		t.Errorf("expected sections A-B and A-C, got %d", len(sections))
	}
	routes, _ := c.Routes("Central")
	if len(routes) != 2 {
		t.Errorf("expected routes R1 and R2, got %+v", routes)
	}
	if sps, _ := c.StopPoints("Jubilee"); len(sps) != 0 {
		t.Errorf("expected no stop points for unknown line")
	}
}

type shiftGeocoder struct{}

func (shiftGeocoder) ToEllipsoidal(en ...[]float64) ([][]float64, error) {
	out := make([][]float64, len(en))
	for i, p := range en {
		out[i] = []float64{p[0] / 1000, p[1] / 1000}
	}
	return out, nil
}

func TestNetwork(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "1.xml", document("S1", "S1", "S1", "Central",
		[]stop{stopA, stopB, stopC}, [][]link{{{"A", "B", 100}, {"B", "C", 200}}}, []string{"R1"}))

	lines, err := transxchange.NewCollection([]string{p1}).Network(shiftGeocoder{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0].Name != "Central" {
		t.Fatalf("unexpected lines %v", lines)
	}
	b, ok := lines[0].Stop("B")
	if !ok || b.Name != "Bravo" || b.Location[0] != 531 || b.Location[1] != 180.5 {
		t.Fatalf("unexpected stop %+v", b)
	}
	links := lines[0].Links()
	if len(links) != 2 || links[1].Stop1 != b || links[1].Distance() != 200 {
		t.Fatalf("unexpected links %+v", links)
	}
}

func TestNetworkNationalGrid(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "1.xml", document("S1", "S1", "S1", "Origin",
		[]stop{{"O", "True origin", 400000, -100000}}, nil, nil))
	lines, err := transxchange.NewCollection([]string{p}).Network(londinium.DefaultNationalGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o, _ := lines[0].Stop("O")
	if math.Abs(o.Location[0]+2) > 1e-8 || math.Abs(o.Location[1]-49) > 1e-8 {
		t.Fatalf("expected true origin at (-2, 49), got %v", o.Location)
	}
}

func TestNetworkUnknownStop(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "1.xml", document("S1", "S1", "S1", "Central",
		[]stop{stopA}, [][]link{{{"A", "Z", 100}}}, nil))
	if _, err := transxchange.NewCollection([]string{p}).Network(shiftGeocoder{}); !errors.Is(err, transxchange.ErrUnknownStop) {
		t.Fatalf("expected ErrUnknownStop, got %v", err)
	}
}
