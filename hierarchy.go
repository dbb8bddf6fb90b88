package h3grid

/*
#include <h3/h3api.h>
*/
import "C"

import "fmt"

// Parent returns the ancestor of the cell at a coarser resolution.
func (i Index) Parent(res Resolution) (Index, error) {
	if !i.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	cur, _ := i.Resolution()
	if !res.valid() || res > cur {
		return 0, fmt.Errorf("%w: parent resolution %d of a resolution %d cell", ErrResolution, res, cur)
	}

	return Index(C.h3ToParent(C.H3Index(i), C.int(res))), nil
}

// Children returns all descendants of the cell at a finer resolution.
// Children of a pentagon are fewer than the hexagon formula predicts, the
// unused slots are dropped.
func (i Index) Children(res Resolution) ([]Index, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, i)
	}
	cur, _ := i.Resolution()
	if !res.valid() || res < cur {
		return nil, fmt.Errorf("%w: child resolution %d of a resolution %d cell", ErrResolution, res, cur)
	}

	buf := make([]C.H3Index, int(C.maxH3ToChildrenSize(C.H3Index(i), C.int(res))))
	C.h3ToChildren(C.H3Index(i), C.int(res), &buf[0])
	return collectIndexes(buf), nil
}

// Compact replaces clusters of same-resolution cells with their common
// parents wherever a parent is fully covered, leaving the rest untouched.
func Compact(in []Index) ([]Index, error) {
	if len(in) == 0 {
		return []Index{}, nil
	}

	set := make([]C.H3Index, len(in))
	for n, idx := range in {
		if !idx.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, idx)
		}
		set[n] = C.H3Index(idx)
	}

	buf := make([]C.H3Index, len(in))
	if C.compact(&set[0], &buf[0], C.int(len(set))) != 0 {
		return nil, fmt.Errorf("%w: compact of %d cells", ErrInvalidArgument, len(in))
	}
	return collectIndexes(buf), nil
}

// Uncompact expands a compacted set back to uniform cells at the given
// resolution.
func Uncompact(in []Index, res Resolution) ([]Index, error) {
	if !res.valid() {
		return nil, fmt.Errorf("%w: %d", ErrResolution, res)
	}
	if len(in) == 0 {
		return []Index{}, nil
	}

	set := make([]C.H3Index, len(in))
	for n, idx := range in {
		if !idx.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidIndex, idx)
		}
		set[n] = C.H3Index(idx)
	}

	size := int(C.maxUncompactSize(&set[0], C.int(len(set)), C.int(res)))
	if size < 0 {
		return nil, fmt.Errorf("%w: uncompact to resolution %d", ErrResolution, res)
	}

	buf := make([]C.H3Index, size)
	if C.uncompact(&set[0], C.int(len(set)), &buf[0], C.int(size), C.int(res)) != 0 {
		return nil, fmt.Errorf("%w: uncompact to resolution %d", ErrResolution, res)
	}
	return collectIndexes(buf), nil
}
