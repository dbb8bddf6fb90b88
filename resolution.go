package h3grid

/*
#include <h3/h3api.h>
*/
import "C"

// Resolution selects the cell size of the grid, 0 (coarsest) to 15 (finest).
type Resolution int

const MaxResolution Resolution = 15

func (r Resolution) valid() bool {
	return r >= 0 && r <= MaxResolution
}

// EdgeLengthM is the average hexagon edge length in meters at this
// resolution.
func (r Resolution) EdgeLengthM() float64 {
	return float64(C.edgeLengthM(C.int(r)))
}

func (r Resolution) EdgeLengthKm() float64 {
	return float64(C.edgeLengthKm(C.int(r)))
}

// HexAreaM2 is the average hexagon area in square meters at this resolution.
func (r Resolution) HexAreaM2() float64 {
	return float64(C.hexAreaM2(C.int(r)))
}

func (r Resolution) HexAreaKm2() float64 {
	return float64(C.hexAreaKm2(C.int(r)))
}

// NumCells is the number of unique cells at this resolution.
func (r Resolution) NumCells() int64 {
	return int64(C.numHexagons(C.int(r)))
}
