package h3grid

import "errors"

// Failure classes reported by the wrapper. Native status codes never cross
// this boundary: every precondition is checked before the native call and
// every non-zero native status is mapped to one of these.
var (
	ErrInvalidIndex    = errors.New("invalid H3 index")
	ErrResolution      = errors.New("resolution out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrGeometry        = errors.New("degenerate or malformed geometry")
	ErrParse           = errors.New("malformed H3 index string")
	ErrAllocation      = errors.New("native allocation failed")
	ErrPentagon        = errors.New("pentagon distortion")
	ErrOutOfRange      = errors.New("indexes out of range or not comparable")
)
