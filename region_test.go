package h3grid

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

func sfPolygon() Polygon {
	return Polygon{
		Outer: []Point{
			{Lng: -122.4089866999972145, Lat: 37.813318999983238},
			{Lng: -122.3805436999997056, Lat: 37.7866302000007224},
			{Lng: -122.3544736999993603, Lat: 37.7198061999978478},
			{Lng: -122.5123436999983966, Lat: 37.7076131999975672},
			{Lng: -122.5247187000021967, Lat: 37.7835871999971715},
			{Lng: -122.4798767000009008, Lat: 37.8151571999998453},
		},
	}
}

func TestPolyfill(t *testing.T) {
	is := is.New(t)

	cells, err := Polyfill(sfPolygon(), 9)
	is.NoErr(err)
	is.True(len(cells) > 0)

	for _, idx := range cells {
		is.True(idx.Valid())
		res, err := idx.Resolution()
		is.NoErr(err)
		is.Equal(res, 9)
	}
}

func TestPolyfillRect(t *testing.T) {
	is := is.New(t)

	rect := Polygon{
		Outer: []Point{
			{Lng: -122.5, Lat: 37.7},
			{Lng: -122.35, Lat: 37.7},
			{Lng: -122.35, Lat: 37.82},
			{Lng: -122.5, Lat: 37.82},
		},
	}
	cells, err := Polyfill(rect, 7)
	is.NoErr(err)
	is.True(len(cells) > 0)
}

func TestPolyfillClosedRing(t *testing.T) {
	is := is.New(t)

	// A GeoJSON-style closed ring gives the same cover as an open one.
	open := sfPolygon()
	closed := sfPolygon()
	closed.Outer = append(closed.Outer, closed.Outer[0])

	a, err := Polyfill(open, 8)
	is.NoErr(err)
	b, err := Polyfill(closed, 8)
	is.NoErr(err)
	is.Equal(a, b)
}

func TestPolyfillWithHole(t *testing.T) {
	is := is.New(t)

	full, err := Polyfill(sfPolygon(), 9)
	is.NoErr(err)

	holed := sfPolygon()
	holed.Holes = [][]Point{{
		{Lng: -122.4471197, Lat: 37.7869802},
		{Lng: -122.4590777, Lat: 37.7664102},
		{Lng: -122.4137097, Lat: 37.7710682},
	}}
	part, err := Polyfill(holed, 9)
	is.NoErr(err)

	is.True(len(part) > 0)
	is.True(len(part) < len(full))
}

func TestPolyfillDegenerate(t *testing.T) {
	is := is.New(t)

	_, err := Polyfill(Polygon{}, 9)
	is.True(errors.Is(err, ErrGeometry))

	_, err = Polyfill(Polygon{Outer: []Point{{0, 0}, {1, 1}}}, 9)
	is.True(errors.Is(err, ErrGeometry))

	// A "triangle" that is only a closed segment.
	_, err = Polyfill(Polygon{Outer: []Point{{0, 0}, {1, 1}, {0, 0}}}, 9)
	is.True(errors.Is(err, ErrGeometry))

	holed := sfPolygon()
	holed.Holes = [][]Point{{{Lng: -122.45, Lat: 37.77}}}
	_, err = Polyfill(holed, 9)
	is.True(errors.Is(err, ErrGeometry))

	_, err = Polyfill(sfPolygon(), 16)
	is.True(errors.Is(err, ErrResolution))
}

func TestCellsToMultiPolygonSingle(t *testing.T) {
	is := is.New(t)

	polys, err := CellsToMultiPolygon([]Index{0x8928308280fffff})
	is.NoErr(err)
	is.Equal(len(polys), 1)
	is.Equal(len(polys[0].Outer), 6)
	is.Equal(len(polys[0].Holes), 0)
}

func TestCellsToMultiPolygonContiguous(t *testing.T) {
	is := is.New(t)

	cells, err := Index(0x8928308280fffff).KRing(1)
	is.NoErr(err)

	polys, err := CellsToMultiPolygon(cells)
	is.NoErr(err)
	is.Equal(len(polys), 1)
	// 18 perimeter edges around a 7-cell cluster.
	is.Equal(len(polys[0].Outer), 18)
	is.Equal(len(polys[0].Holes), 0)
}

func TestCellsToMultiPolygonHole(t *testing.T) {
	is := is.New(t)

	// A hollow ring of six cells: one polygon, one hole.
	origin := Index(0x8928308280fffff)
	ring, err := origin.HexRing(1)
	is.NoErr(err)
	is.Equal(len(ring), 6)

	polys, err := CellsToMultiPolygon(ring)
	is.NoErr(err)
	is.Equal(len(polys), 1)
	is.Equal(len(polys[0].Holes), 1)
	is.Equal(len(polys[0].Holes[0]), 6)
}

func TestCellsToMultiPolygonDisjoint(t *testing.T) {
	is := is.New(t)

	a, err := FromPoint(Point{Lng: -122.4194, Lat: 37.7749}, 9)
	is.NoErr(err)
	b, err := FromPoint(Point{Lng: 4.3517, Lat: 50.8503}, 9)
	is.NoErr(err)

	polys, err := CellsToMultiPolygon([]Index{a, b})
	is.NoErr(err)
	is.Equal(len(polys), 2)
}

func TestCellsToMultiPolygonEmpty(t *testing.T) {
	is := is.New(t)

	polys, err := CellsToMultiPolygon(nil)
	is.NoErr(err)
	is.Equal(len(polys), 0)

	_, err = CellsToMultiPolygon([]Index{0})
	is.True(errors.Is(err, ErrInvalidIndex))
}

func TestPolyfillOutlineRoundTrip(t *testing.T) {
	is := is.New(t)

	// Fill, outline, fill again: the cover must survive the round trip
	// through the linked-geometry structure, holes included.
	holed := sfPolygon()
	holed.Holes = [][]Point{{
		{Lng: -122.4471197, Lat: 37.7869802},
		{Lng: -122.4590777, Lat: 37.7664102},
		{Lng: -122.4137097, Lat: 37.7710682},
	}}

	cells, err := Polyfill(holed, 8)
	is.NoErr(err)
	is.True(len(cells) > 0)

	polys, err := CellsToMultiPolygon(cells)
	is.NoErr(err)
	is.True(len(polys) > 0)

	refilled := make(map[Index]bool)
	for _, poly := range polys {
		out, err := Polyfill(poly, 8)
		is.NoErr(err)
		for _, idx := range out {
			refilled[idx] = true
		}
	}
	for _, idx := range cells {
		is.True(refilled[idx])
	}
}
