// Package h3grid wraps the H3 C library, a hexagonal hierarchical geospatial
// index. The native engine is linked as a system library; this package owns
// the boundary discipline: index validity checks before every call, the
// query-size-then-allocate protocol for variable-length results, and
// exactly-once release of native-allocated linked structures.
//
// Longitudes and latitudes are degrees throughout the public API, GeoJSON
// axis order. Conversion to the radian representation used by the engine
// happens inside this package only.
package h3grid
