package h3grid

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// GeoJSON rings are closed, the core model's rings are open. Conversion in
// both directions happens here and nowhere else.

func closeRing(ring []Point) [][]float64 {
	out := make([][]float64, 0, len(ring)+1)
	for _, p := range ring {
		out = append(out, []float64{p.Lng, p.Lat})
	}
	if len(ring) > 0 {
		out = append(out, []float64{ring[0].Lng, ring[0].Lat})
	}
	return out
}

func openRing(ring [][]float64) ([]Point, error) {
	out := make([]Point, 0, len(ring))
	for _, c := range ring {
		if len(c) < 2 {
			return nil, fmt.Errorf("%w: coordinate with %d values", ErrGeometry, len(c))
		}
		out = append(out, Point{Lng: c[0], Lat: c[1]})
	}
	return stripClosure(out), nil
}

func polygonCoords(poly Polygon) [][][]float64 {
	rings := make([][][]float64, 0, len(poly.Holes)+1)
	rings = append(rings, closeRing(poly.Outer))
	for _, hole := range poly.Holes {
		rings = append(rings, closeRing(hole))
	}
	return rings
}

// BoundaryFeature returns the cell outline as a GeoJSON polygon feature,
// with the index in the properties.
func BoundaryFeature(i Index) (*geojson.Feature, error) {
	ring, err := i.Boundary()
	if err != nil {
		return nil, err
	}

	f := geojson.NewPolygonFeature([][][]float64{closeRing(ring)})
	f.SetProperty("index", i.String())
	return f, nil
}

// CellsFeatureCollection returns one boundary feature per cell.
func CellsFeatureCollection(cells []Index) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, idx := range cells {
		f, err := BoundaryFeature(idx)
		if err != nil {
			return nil, err
		}
		fc.AddFeature(f)
	}
	return fc, nil
}

// MultiPolygonFeature merges a cell set into its outline and returns it as a
// GeoJSON multipolygon feature.
func MultiPolygonFeature(cells []Index) (*geojson.Feature, error) {
	polys, err := CellsToMultiPolygon(cells)
	if err != nil {
		return nil, err
	}

	coords := make([][][][]float64, 0, len(polys))
	for _, poly := range polys {
		coords = append(coords, polygonCoords(poly))
	}
	return geojson.NewMultiPolygonFeature(coords...), nil
}

// FeaturePolygons extracts the polygons of a GeoJSON feature into the core
// model. Only Polygon and MultiPolygon geometries carry fillable area.
func FeaturePolygons(f *geojson.Feature) ([]Polygon, error) {
	if f.Geometry == nil {
		return nil, fmt.Errorf("%w: feature without geometry", ErrGeometry)
	}

	coords := make([][][][]float64, 0)
	switch f.Geometry.Type {
	case geojson.GeometryPolygon:
		coords = append(coords, f.Geometry.Polygon)
	case geojson.GeometryMultiPolygon:
		coords = append(coords, f.Geometry.MultiPolygon...)
	default:
		return nil, fmt.Errorf("%w: cannot fill a %s", ErrGeometry, f.Geometry.Type)
	}

	out := make([]Polygon, 0, len(coords))
	for _, rings := range coords {
		if len(rings) == 0 {
			return nil, fmt.Errorf("%w: polygon without rings", ErrGeometry)
		}

		outer, err := openRing(rings[0])
		if err != nil {
			return nil, err
		}
		holes := make([][]Point, 0, len(rings)-1)
		for _, ring := range rings[1:] {
			hole, err := openRing(ring)
			if err != nil {
				return nil, err
			}
			holes = append(holes, hole)
		}
		out = append(out, Polygon{Outer: outer, Holes: holes})
	}
	return out, nil
}
