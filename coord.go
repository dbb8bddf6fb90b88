package h3grid

/*
#cgo LDFLAGS: -lh3
#include <h3/h3api.h>
*/
import "C"

// Point is a geographic location in degrees.
type Point struct {
	Lng float64
	Lat float64
}

// toGeoCoord converts degrees to the radian GeoCoord the engine expects.
// Out-of-range values pass through untouched, the engine applies its own
// normalization.
func toGeoCoord(p Point) C.GeoCoord {
	return C.GeoCoord{
		lat: C.degsToRads(C.double(p.Lat)),
		lon: C.degsToRads(C.double(p.Lng)),
	}
}

func fromGeoCoord(c C.GeoCoord) Point {
	return Point{
		Lng: float64(C.radsToDegs(c.lon)),
		Lat: float64(C.radsToDegs(c.lat)),
	}
}
