// Package colours holds the TfL colour standard and the line styling used to
// draw transit maps.
package colours

import (
	"fmt"
	"image/color"
)

// Colour is a brand colour given in several colour systems. Any of PMS, CMYK
// and NCS may be absent.
type Colour struct {
	PMS  string
	CMYK *[4]uint8
	RGB  color.RGBA
	NCS  string
}

func newColour(pms string, cmyk *[4]uint8, r, g, b uint8, ncs string) Colour {
	return Colour{PMS: pms, CMYK: cmyk, RGB: color.RGBA{R: r, G: g, B: b, A: 0xff}, NCS: ncs}
}

func cmyk(c, m, y, k uint8) *[4]uint8 { return &[4]uint8{c, m, y, k} }

// Hex returns the colour as #rrggbb.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.RGB.R, c.RGB.G, c.RGB.B)
}

func (c Colour) String() string { return c.Hex() }

// WithNCS returns a copy of c with a different NCS notation.
func (c Colour) WithNCS(ncs string) Colour {
	c.NCS = ncs
	return c
}

// Corporate colours
var (
	CorporateBlue     = newColour("072", cmyk(100, 88, 0, 5), 0, 25, 168, "S 3560-R80B")
	CorporateRed      = newColour("485", cmyk(0, 95, 100, 0), 220, 36, 31, "S 1085-Y80R")
	CorporateGrey     = newColour("043", cmyk(5, 0, 0, 45), 134, 143, 152, "S 4005-R80B")
	CorporateDarkGrey = newColour("432", cmyk(23, 2, 0, 77), 65, 75, 86, "S 7010-R90B")
	CorporateYellow   = newColour("116", cmyk(0, 16, 100, 0), 255, 206, 0, "S 0580-Y10R")
	CorporateGreen    = newColour("356", cmyk(95, 0, 100, 27), 0, 114, 41, "S 3065-G10Y")
	CorporateBlack    = newColour("Black", cmyk(0, 0, 0, 100), 0, 0, 0, "S 9000-N")
	CorporateWhite    = newColour("", cmyk(0, 0, 0, 0), 255, 255, 255, "S 0500-N")
)

// Mode colours
var (
	TfL         = CorporateBlue.WithNCS("S 4060-R80B")
	Emirates    = newColour("186", cmyk(0, 100, 81, 4), 220, 36, 31, "")
	Buses       = CorporateRed
	Coaches     = newColour("130", cmyk(0, 30, 100, 0), 241, 171, 0, "S1070-Y20R")
	Elizabeth   = newColour("266", cmyk(73, 81, 0, 0), 147, 100, 204, "")
	Santander   = newColour("", cmyk(0, 93, 100, 0), 220, 36, 31, "")
	DialARide   = newColour("Pantone Purple", cmyk(38, 88, 0, 0), 183, 39, 191, "S 2050-R40B")
	DLR         = newColour("326", cmyk(87, 0, 38, 0), 0, 175, 173, "S 2050-B50G")
	Overground  = newColour("158", cmyk(0, 61, 97, 0), 239, 123, 16, "S 0585-Y50R")
	Riverboat   = newColour("299", cmyk(85, 19, 0, 0), 0, 160, 226, "S 2060-B")
	Taxi        = newColour("2715", cmyk(57, 45, 0, 0), 132, 128, 215, "S 2060-R70B")
	TfLRail     = TfL
	Trams       = newColour("368", cmyk(57, 0, 100, 0), 0, 189, 25, "S 0580-G30Y")
	Underground = TfL
)

// London Underground line colours
var (
	Bakerloo          = newColour("470", cmyk(26, 67, 89, 19), 178, 99, 0, "S 4050-Y50R")
	Central           = CorporateRed
	Circle            = CorporateYellow
	District          = CorporateGreen
	HammersmithCity   = newColour("197", cmyk(2, 50, 17, 0), 244, 169, 190, "S 0550-R10B")
	Jubilee           = newColour("430", cmyk(53, 37, 34, 16), 161, 165, 167, "S 4005-R80B")
	Metropolitan      = newColour("235", cmyk(38, 100, 27, 27), 155, 0, 88, "S 4050-R30B")
	Northern          = CorporateBlack
	Piccadilly        = TfL
	Victoria          = newColour("299", cmyk(80, 15, 0, 0), 0, 152, 216, "S 2060-B")
	WaterlooAndCity   = newColour("338", cmyk(57, 0, 40, 0), 147, 206, 186, "S 1565-B")
	DisusedStation    = newColour("", nil, 0x88, 0x88, 0x88, "")
	NationalRailLinks = newColour("", nil, 0xdd, 0xdd, 0xdd, "")
)

var lineColours = map[string]Colour{
	"Bakerloo":             Bakerloo,
	"Central":              Central,
	"Circle":               Circle,
	"District":             District,
	"Hammersmith & City":   HammersmithCity,
	"Jubilee":              Jubilee,
	"Metropolitan":         Metropolitan,
	"Northern":             Northern,
	"Piccadilly":           Piccadilly,
	"Victoria":             Victoria,
	"Waterloo & City":      WaterlooAndCity,
	"DLR":                  DLR,
	"Crossrail":            Elizabeth,
	"Crossrail 2":          Elizabeth,
	"Thameslink 6tph line": CorporateGrey,
	"TfL Rail":             TfLRail,
	"Emirates Air Line":    Emirates,
	"East London":          Overground,
	"National Rail":        CorporateGrey,
	"London Overground":    Overground,
	"Tramlink":             Trams,
}

// plotOrder lists line names from bottom to top.
var plotOrder = []string{
	"National Rail",
	"Crossrail",

	"Bakerloo",
	"Central",
	"Circle",
	"Hammersmith & City",
	"District",
	"Jubilee",
	"Metropolitan",
	"Northern",
	"Piccadilly",
	"Victoria",
	"Waterloo & City",

	"Crossrail 2",
	"Thameslink 6tph line",
	"Tramlink",
	"DLR",
	"London Overground",
	"East London",
	"TfL Rail",

	"Emirates Air Line",
}

// LineColour returns the colour a line is drawn in.
func LineColour(name string) (Colour, bool) {
	c, ok := lineColours[name]
	return c, ok
}

// PlotOrder returns the z-index a line is drawn at; higher is on top.
func PlotOrder(name string) (int, bool) {
	for i, n := range plotOrder {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
