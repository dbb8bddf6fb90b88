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

// Index is a 64-bit H3 cell handle. The zero value is the engine's "no cell"
// sentinel and is never valid. Constructing an Index from a raw integer is
// allowed, every operation except Valid fails on handles the engine rejects.
type Index uint64

// FromPoint indexes the location at the given resolution, returning the cell
// containing it.
func FromPoint(p Point, res Resolution) (Index, error) {
	if !res.valid() {
		return 0, fmt.Errorf("%w: %d", ErrResolution, res)
	}

	c := toGeoCoord(p)
	idx := Index(C.geoToH3(&c, C.int(res)))
	if idx == 0 {
		return 0, fmt.Errorf("%w: cannot index point (%f, %f)", ErrInvalidArgument, p.Lng, p.Lat)
	}
	return idx, nil
}

// Valid reports whether the engine accepts the handle.
func (i Index) Valid() bool {
	return C.h3IsValid(C.H3Index(i)) != 0
}

// Point returns the centroid of the cell.
func (i Index) Point() (Point, error) {
	if !i.Valid() {
		return Point{}, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}

	var c C.GeoCoord
	C.h3ToGeo(C.H3Index(i), &c)
	return fromGeoCoord(c), nil
}

// Boundary returns the cell outline as an open ring. Pentagons yield fewer
// vertices than hexagons, cells that cross icosahedron edges can yield more.
func (i Index) Boundary() ([]Point, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}

	var b C.GeoBoundary
	C.h3ToGeoBoundary(C.H3Index(i), &b)

	ring := make([]Point, int(b.numVerts))
	for n := range ring {
		ring[n] = fromGeoCoord(b.verts[n])
	}
	return ring, nil
}

func (i Index) Resolution() (Resolution, error) {
	if !i.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	return Resolution(C.h3GetResolution(C.H3Index(i))), nil
}

func (i Index) BaseCell() (int, error) {
	if !i.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	return int(C.h3GetBaseCell(C.H3Index(i))), nil
}

// Pentagon reports whether the cell is one of the twelve pentagons at its
// resolution.
func (i Index) Pentagon() (bool, error) {
	if !i.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	return C.h3IsPentagon(C.H3Index(i)) != 0, nil
}

// ResClassIII reports whether the cell's resolution has Class III
// orientation.
func (i Index) ResClassIII() (bool, error) {
	if !i.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	return C.h3IsResClassIII(C.H3Index(i)) != 0, nil
}

// Faces returns the icosahedron faces intersected by the cell.
func (i Index) Faces() ([]int, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}

	max := int(C.maxFaceCount(C.H3Index(i)))
	buf := make([]C.int, max)
	C.h3GetFaces(C.H3Index(i), &buf[0])

	// Unused slots are marked with a negative face number.
	faces := make([]int, 0, max)
	for _, f := range buf {
		if f >= 0 {
			faces = append(faces, int(f))
		}
	}
	return faces, nil
}

// Neighbors reports whether the two cells share an edge.
func (i Index) Neighbors(other Index) (bool, error) {
	if !i.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	if !other.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidIndex, other)
	}
	return C.h3IndexesAreNeighbors(C.H3Index(i), C.H3Index(other)) != 0, nil
}

// String formats the handle as lowercase hex without a 0x prefix, the
// canonical H3 text form.
func (i Index) String() string {
	var buf [17]C.char
	C.h3ToString(C.H3Index(i), &buf[0], C.size_t(len(buf)))
	return C.GoString(&buf[0])
}

// ParseIndex parses the canonical hex form. The handle is returned as-is,
// callers that need a valid cell should check Valid.
func ParseIndex(s string) (Index, error) {
	if len(s) == 0 || len(s) > 16 {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	for _, c := range s {
		ishex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !ishex {
			return 0, fmt.Errorf("%w: %q", ErrParse, s)
		}
	}

	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))

	idx := Index(C.stringToH3(cs))
	if idx == 0 {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return idx, nil
}
