package h3grid

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"sort"

	geojson "github.com/paulmach/go.geojson"
)

// LoadFeatures reads a GeoJSON file holding either a FeatureCollection or a
// single Feature.
func LoadFeatures(sourcePath string) ([]*geojson.Feature, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err == nil && fc.Type == "FeatureCollection" {
		return fc.Features, nil
	}

	f, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not GeoJSON", ErrGeometry, sourcePath)
	}
	return []*geojson.Feature{f}, nil
}

// Cover fills every feature of the layer's source file and returns the
// deduplicated cell set, compacted when the layer asks for it. Cells come
// back sorted so repeated runs produce identical output.
func (l *CoverLayer) Cover() ([]Index, error) {
	features, err := LoadFeatures(l.Source)
	if err != nil {
		return nil, err
	}

	seen := make(map[Index]bool)
	for _, f := range features {
		polys, err := FeaturePolygons(f)
		if err != nil {
			return nil, err
		}
		for _, poly := range polys {
			cells, err := Polyfill(poly, Resolution(l.Resolution))
			if err != nil {
				return nil, err
			}
			for _, idx := range cells {
				seen[idx] = true
			}
		}
	}

	cells := make([]Index, 0, len(seen))
	for idx := range seen {
		cells = append(cells, idx)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })

	if l.Compact {
		return Compact(cells)
	}
	return cells, nil
}

// RunCover executes a cover job, writing one index-per-line file per layer
// into the output directory. The progress callback is invoked once per
// finished layer, nil to disable.
func RunCover(config *CoverConfig, outputPath string, progress func(layer string, cells int)) error {
	err := os.MkdirAll(outputPath, 0755)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(config.Layers))
	for name := range config.Layers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cells, err := config.Layers[name].Cover()
		if err != nil {
			return fmt.Errorf("layer %s: %w", name, err)
		}

		err = writeCells(path.Join(outputPath, name+".txt"), cells)
		if err != nil {
			return err
		}

		if progress != nil {
			progress(name, len(cells))
		}
	}

	return nil
}

func writeCells(outPath string, cells []Index) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, idx := range cells {
		fmt.Fprintln(w, idx.String())
	}
	return w.Flush()
}
