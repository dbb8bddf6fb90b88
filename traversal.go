package h3grid

/*
#include <h3/h3api.h>
*/
import "C"

import "fmt"

// Every traversal follows the same protocol: ask the engine for the maximum
// output size, allocate a zeroed buffer of exactly that size, invoke, then
// drop the zero-sentinel slots the engine leaves behind (rings around
// pentagons fill fewer slots than the formula predicts). The buffer never
// outlives the call.

func collectIndexes(buf []C.H3Index) []Index {
	out := make([]Index, 0, len(buf))
	for _, idx := range buf {
		if idx != 0 {
			out = append(out, Index(idx))
		}
	}
	return out
}

func groupByDistance(indexes []C.H3Index, distances []C.int) [][]Index {
	maxDist := 0
	for n, idx := range indexes {
		if idx != 0 && int(distances[n]) > maxDist {
			maxDist = int(distances[n])
		}
	}

	out := make([][]Index, maxDist+1)
	for n := range out {
		out[n] = []Index{}
	}
	for n, idx := range indexes {
		if idx == 0 {
			continue
		}
		d := int(distances[n])
		out[d] = append(out[d], Index(idx))
	}
	return out
}

func (i Index) checkTraversal(k int) error {
	if k < 0 {
		return fmt.Errorf("%w: negative distance %d", ErrInvalidArgument, k)
	}
	if !i.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	return nil
}

// KRing returns all cells within grid distance k of the origin, origin
// included. k of 0 returns just the origin.
func (i Index) KRing(k int) ([]Index, error) {
	if err := i.checkTraversal(k); err != nil {
		return nil, err
	}

	buf := make([]C.H3Index, int(C.maxKringSize(C.int(k))))
	C.kRing(C.H3Index(i), C.int(k), &buf[0])
	return collectIndexes(buf), nil
}

// KRingDistances returns the cells within grid distance k, grouped by their
// distance from the origin. Slot 0 holds the origin alone.
func (i Index) KRingDistances(k int) ([][]Index, error) {
	if err := i.checkTraversal(k); err != nil {
		return nil, err
	}

	size := int(C.maxKringSize(C.int(k)))
	indexes := make([]C.H3Index, size)
	distances := make([]C.int, size)
	C.kRingDistances(C.H3Index(i), C.int(k), &indexes[0], &distances[0])
	return groupByDistance(indexes, distances), nil
}

// HexRange is the fast variant of KRing. It fails on pentagons and in the
// pentagon distortion area instead of silently handling them.
func (i Index) HexRange(k int) ([]Index, error) {
	if err := i.checkTraversal(k); err != nil {
		return nil, err
	}

	buf := make([]C.H3Index, int(C.maxKringSize(C.int(k))))
	if C.hexRange(C.H3Index(i), C.int(k), &buf[0]) != 0 {
		return nil, fmt.Errorf("%w: hex range around %s at k=%d", ErrPentagon, i, k)
	}
	return collectIndexes(buf), nil
}

// HexRangeDistances is HexRange grouped by grid distance.
func (i Index) HexRangeDistances(k int) ([][]Index, error) {
	if err := i.checkTraversal(k); err != nil {
		return nil, err
	}

	size := int(C.maxKringSize(C.int(k)))
	indexes := make([]C.H3Index, size)
	distances := make([]C.int, size)
	if C.hexRangeDistances(C.H3Index(i), C.int(k), &indexes[0], &distances[0]) != 0 {
		return nil, fmt.Errorf("%w: hex range around %s at k=%d", ErrPentagon, i, k)
	}
	return groupByDistance(indexes, distances), nil
}

// HexRing returns the hollow ring of cells at exactly grid distance k.
func (i Index) HexRing(k int) ([]Index, error) {
	if err := i.checkTraversal(k); err != nil {
		return nil, err
	}

	size := 1
	if k > 0 {
		size = 6 * k
	}
	buf := make([]C.H3Index, size)
	if C.hexRing(C.H3Index(i), C.int(k), &buf[0]) != 0 {
		return nil, fmt.Errorf("%w: hex ring around %s at k=%d", ErrPentagon, i, k)
	}
	return collectIndexes(buf), nil
}

// DistanceTo returns the grid distance to another cell.
func (i Index) DistanceTo(other Index) (int, error) {
	if !i.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	if !other.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, other)
	}

	d := int(C.h3Distance(C.H3Index(i), C.H3Index(other)))
	if d < 0 {
		return 0, fmt.Errorf("%w: no distance between %s and %s", ErrOutOfRange, i, other)
	}
	return d, nil
}

// LineTo returns the line of cells from this cell to the other, both ends
// included.
func (i Index) LineTo(other Index) ([]Index, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	if !other.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, other)
	}

	size := int(C.h3LineSize(C.H3Index(i), C.H3Index(other)))
	if size < 0 {
		return nil, fmt.Errorf("%w: no line between %s and %s", ErrOutOfRange, i, other)
	}

	buf := make([]C.H3Index, size)
	if C.h3Line(C.H3Index(i), C.H3Index(other), &buf[0]) != 0 {
		return nil, fmt.Errorf("%w: no line between %s and %s", ErrOutOfRange, i, other)
	}

	line := make([]Index, size)
	for n := range buf {
		line[n] = Index(buf[n])
	}
	return line, nil
}
