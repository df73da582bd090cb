package londinium

import "fmt"

// WGS84 is the global reference ellipsoid, based on GRS80.
var WGS84 *Ellipsoid

// Airy1830 is the British reference ellipsoid used by the Ordnance Survey.
var Airy1830 *Ellipsoid

// DefaultNationalGrid is the Ordnance Survey national grid projection.
var DefaultNationalGrid *TransverseMercator

// DefaultUTM29 is UTM zone 29 north over WGS84.
var DefaultUTM29 *TransverseMercator

// DefaultWGS84ToOSGB36 shifts WGS84 longitude/latitude onto the OSGB36 datum
// (Airy 1830), accurate to a few meters across Great Britain.
var DefaultWGS84ToOSGB36 *DatumShift

func init() {
	var err error
	WGS84, err = NewEllipsoid(6378137.0, 6356752.314245)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
	Airy1830, err = NewEllipsoid(6377563.396, 6356256.909)
	if err != nil {
		panic(fmt.Sprintf("error constructing Airy 1830 ellipsoid: %s", err))
	}
	DefaultNationalGrid, err = NewNationalGrid()
	if err != nil {
		panic(fmt.Sprintf("error constructing national grid: %s", err))
	}
	DefaultUTM29, err = NewUTM29(WGS84)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM29 projection: %s", err))
	}
	helmert, err := NewHelmertFromSeconds(-446.448, 125.157, -542.060, 20.4894, -0.1502, -0.2470, -0.8421)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 to OSGB36 transformation: %s", err))
	}
	DefaultWGS84ToOSGB36, err = NewDatumShift(WGS84, Airy1830, helmert)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 to OSGB36 shift: %s", err))
	}
}
