// Package transxchange reads the subset of TransXChange timetable documents
// needed to recover the stops and links of each line.
package transxchange

import "encoding/xml"

// Namespace is the XML namespace of TransXChange documents.
const Namespace = "http://www.transxchange.org.uk/"

type document struct {
	XMLName       xml.Name       `xml:"http://www.transxchange.org.uk/ TransXChange"`
	StopPoints    []StopPoint    `xml:"StopPoints>StopPoint"`
	RouteSections []RouteSection `xml:"RouteSections>RouteSection"`
	Routes        []Route        `xml:"Routes>Route"`
	Services      []Service      `xml:"Services>Service"`
}

// StopPoint is a place where vehicles stop. Easting and Northing are on the
// national grid and may be absent.
type StopPoint struct {
	AtcoCode   string   `xml:"AtcoCode"`
	CommonName string   `xml:"Descriptor>CommonName"`
	Locality   string   `xml:"Place>NptgLocalityRef"`
	Easting    *float64 `xml:"Place>Location>Easting"`
	Northing   *float64 `xml:"Place>Location>Northing"`
}

// RouteSection is an ordered run of route links.
type RouteSection struct {
	ID         string      `xml:"id,attr"`
	RouteLinks []RouteLink `xml:"RouteLink"`
}

// RouteLink joins two stop points.
type RouteLink struct {
	ID        string   `xml:"id,attr"`
	From      string   `xml:"From>StopPointRef"`
	To        string   `xml:"To>StopPointRef"`
	Distance  *float64 `xml:"Distance"` // meters
	Direction string   `xml:"Direction"`
}

// Route is a sequence of route sections.
type Route struct {
	ID               string   `xml:"id,attr"`
	PrivateCode      string   `xml:"PrivateCode"`
	Description      string   `xml:"Description"`
	RouteSectionRefs []string `xml:"RouteSectionRef"`
}

// Service describes the timetabled service in a document.
type Service struct {
	ServiceCode string `xml:"ServiceCode"`
	PrivateCode string `xml:"PrivateCode"`
	Lines       []Line `xml:"Lines>Line"`
	StartDate   string `xml:"OperatingPeriod>StartDate"`
	EndDate     string `xml:"OperatingPeriod>EndDate"`
	Operator    string `xml:"RegisteredOperatorRef"`
	Description string `xml:"Description"`
}

// Line is the single line a service runs as.
type Line struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"LineName"`
}

// Line returns the service's only line.
func (s *Service) Line() Line {
	return s.Lines[0]
}
