package h3grid

/*
#include <stdlib.h>
#include <h3/h3api.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Polygon is a simple polygon with optional holes. Rings are open: the first
// vertex is not repeated at the end, matching the engine's convention. A
// closing vertex on input is stripped before crossing the boundary.
type Polygon struct {
	Outer []Point
	Holes [][]Point
}

// stripClosure drops a repeated closing vertex, if present.
func stripClosure(ring []Point) []Point {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

func checkRing(ring []Point) ([]Point, error) {
	ring = stripClosure(ring)
	if len(ring) < 3 {
		return nil, fmt.Errorf("%w: ring with %d points", ErrGeometry, len(ring))
	}
	return ring, nil
}

// newGeofence copies a ring into C memory. The fence struct holds a pointer
// to the vertex array, so Go memory cannot be handed across the boundary.
func newGeofence(ring []Point) (C.Geofence, error) {
	mem := C.calloc(C.size_t(len(ring)), C.sizeof_GeoCoord)
	if mem == nil {
		return C.Geofence{}, fmt.Errorf("%w: %d ring vertices", ErrAllocation, len(ring))
	}

	verts := (*[1 << 26]C.GeoCoord)(mem)[:len(ring):len(ring)]
	for n, p := range ring {
		verts[n] = toGeoCoord(p)
	}
	return C.Geofence{
		numVerts: C.int(len(ring)),
		verts:    (*C.GeoCoord)(mem),
	}, nil
}

func freeGeofence(f C.Geofence) {
	if f.verts != nil {
		C.free(unsafe.Pointer(f.verts))
	}
}

// newGeoPolygon marshals a validated polygon into the engine's
// polygon-with-holes input structure. Free with freeGeoPolygon.
func newGeoPolygon(poly Polygon) (C.GeoPolygon, error) {
	out := C.GeoPolygon{}

	fence, err := newGeofence(poly.Outer)
	if err != nil {
		return out, err
	}
	out.geofence = fence

	if len(poly.Holes) > 0 {
		mem := C.calloc(C.size_t(len(poly.Holes)), C.sizeof_Geofence)
		if mem == nil {
			freeGeoPolygon(out)
			return C.GeoPolygon{}, fmt.Errorf("%w: %d holes", ErrAllocation, len(poly.Holes))
		}
		out.numHoles = C.int(len(poly.Holes))
		out.holes = (*C.Geofence)(mem)

		holes := (*[1 << 24]C.Geofence)(mem)[:len(poly.Holes):len(poly.Holes)]
		for n, ring := range poly.Holes {
			hole, err := newGeofence(ring)
			if err != nil {
				freeGeoPolygon(out)
				return C.GeoPolygon{}, err
			}
			holes[n] = hole
		}
	}

	return out, nil
}

func freeGeoPolygon(poly C.GeoPolygon) {
	freeGeofence(poly.geofence)
	if poly.holes != nil {
		holes := (*[1 << 24]C.Geofence)(unsafe.Pointer(poly.holes))[:int(poly.numHoles):int(poly.numHoles)]
		for _, h := range holes {
			freeGeofence(h)
		}
		C.free(unsafe.Pointer(poly.holes))
	}
}

// Polyfill returns the cells at the given resolution whose centroids fall
// inside the polygon, holes excluded.
func Polyfill(poly Polygon, res Resolution) ([]Index, error) {
	if !res.valid() {
		return nil, fmt.Errorf("%w: %d", ErrResolution, res)
	}

	outer, err := checkRing(poly.Outer)
	if err != nil {
		return nil, err
	}
	holes := make([][]Point, len(poly.Holes))
	for n, ring := range poly.Holes {
		holes[n], err = checkRing(ring)
		if err != nil {
			return nil, err
		}
	}

	cpoly, err := newGeoPolygon(Polygon{Outer: outer, Holes: holes})
	if err != nil {
		return nil, err
	}
	defer freeGeoPolygon(cpoly)

	size := int(C.maxPolyfillSize(&cpoly, C.int(res)))
	if size == 0 {
		return []Index{}, nil
	}

	buf := make([]C.H3Index, size)
	C.polyfill(&cpoly, C.int(res), &buf[0])
	return collectIndexes(buf), nil
}

// CellsToMultiPolygon merges a set of cells into their outlines. Each
// contiguous cluster yields one polygon, the first ring of which is the
// outer boundary, the rest are holes, in the engine's own nesting order.
//
// The engine hands back an intrusive linked structure that it allocated.
// Everything is copied out eagerly and the structure is destroyed exactly
// once before returning, on every path.
func CellsToMultiPolygon(cells []Index) ([]Polygon, error) {
	if len(cells) == 0 {
		return []Polygon{}, nil
	}

	set := make([]C.H3Index, len(cells))
	for n, idx := range cells {
		if !idx.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, idx)
		}
		set[n] = C.H3Index(idx)
	}

	var root C.LinkedGeoPolygon
	C.h3SetToLinkedGeo(&set[0], C.int(len(set)), &root)
	defer C.destroyLinkedPolygon(&root)

	out := make([]Polygon, 0)
	for p := &root; p != nil; p = p.next {
		rings := make([][]Point, 0)
		for l := p.first; l != nil; l = l.next {
			ring := make([]Point, 0)
			for c := l.first; c != nil; c = c.next {
				ring = append(ring, fromGeoCoord(c.vertex))
			}
			rings = append(rings, ring)
		}
		if len(rings) == 0 {
			continue
		}
		out = append(out, Polygon{
			Outer: rings[0],
			Holes: rings[1:],
		})
	}
	return out, nil
}
