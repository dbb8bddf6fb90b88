package h3grid

import (
	"errors"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const sfGeoJSON = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"sf"},"geometry":{"type":"Polygon","coordinates":[[[-122.4089867,37.813319],[-122.3805437,37.7866302],[-122.3544737,37.7198062],[-122.5123437,37.7076132],[-122.5247187,37.7835872],[-122.4798767,37.8151572],[-122.4089867,37.813319]]]}}]}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := path.Join(t.TempDir(), name)
	err := os.WriteFile(p, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadCoverConfig(t *testing.T) {
	is := is.New(t)

	p := writeTempFile(t, "cover.yaml", `
layers:
  sf:
    source: sf.geojson
    resolution: 8
    compact: true
`)
	config, err := LoadCoverConfig(p)
	is.NoErr(err)
	is.Equal(len(config.Layers), 1)
	is.Equal(config.Layers["sf"].Resolution, 8)
	is.True(config.Layers["sf"].Compact)
}

func TestLoadCoverConfigRejects(t *testing.T) {
	is := is.New(t)

	p := writeTempFile(t, "cover.yaml", `
layers:
  sf:
    source: sf.geojson
    resolution: 17
`)
	_, err := LoadCoverConfig(p)
	is.True(errors.Is(err, ErrResolution))

	p = writeTempFile(t, "empty.yaml", "layers: {}\n")
	_, err = LoadCoverConfig(p)
	is.True(errors.Is(err, ErrInvalidArgument))

	p = writeTempFile(t, "nosource.yaml", `
layers:
  sf:
    resolution: 8
`)
	_, err = LoadCoverConfig(p)
	is.True(errors.Is(err, ErrInvalidArgument))
}

func TestLoadFeatures(t *testing.T) {
	is := is.New(t)

	p := writeTempFile(t, "sf.geojson", sfGeoJSON)
	features, err := LoadFeatures(p)
	is.NoErr(err)
	is.Equal(len(features), 1)

	// A bare feature works too.
	single := `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]},"properties":null}`
	p = writeTempFile(t, "single.geojson", single)
	features, err = LoadFeatures(p)
	is.NoErr(err)
	is.Equal(len(features), 1)

	p = writeTempFile(t, "bad.geojson", "not json")
	_, err = LoadFeatures(p)
	is.True(errors.Is(err, ErrGeometry))
}

func TestLayerCover(t *testing.T) {
	is := is.New(t)

	layer := &CoverLayer{
		Source:     writeTempFile(t, "sf.geojson", sfGeoJSON),
		Resolution: 8,
	}
	cells, err := layer.Cover()
	is.NoErr(err)
	is.True(len(cells) > 0)

	for n := 1; n < len(cells); n++ {
		is.True(cells[n-1] < cells[n])
	}

	// Compacting can only shrink the set.
	layer.Compact = true
	compacted, err := layer.Cover()
	is.NoErr(err)
	is.True(len(compacted) > 0)
	is.True(len(compacted) <= len(cells))
}

func TestRunCover(t *testing.T) {
	is := is.New(t)

	source := writeTempFile(t, "sf.geojson", sfGeoJSON)
	configPath := writeTempFile(t, "cover.yaml", `
layers:
  sf:
    source: `+source+`
    resolution: 8
`)
	config, err := LoadCoverConfig(configPath)
	is.NoErr(err)

	outDir := t.TempDir()
	done := map[string]int{}
	err = RunCover(config, outDir, func(layer string, cells int) {
		done[layer] = cells
	})
	is.NoErr(err)
	is.True(done["sf"] > 0)

	data, err := os.ReadFile(path.Join(outDir, "sf.txt"))
	is.NoErr(err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	is.Equal(len(lines), done["sf"])
	for _, line := range lines {
		idx, err := ParseIndex(line)
		is.NoErr(err)
		is.True(idx.Valid())
	}
}
