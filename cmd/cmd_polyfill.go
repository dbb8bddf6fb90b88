package cmd

import (
	"fmt"

	"github.com/gridwise/h3grid"
)

type CmdPolyfill struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("polyfill",
		"Fill a polygon with cells",
		"Print the covering cell set of the polygons in a GeoJSON file",
		&CmdPolyfill{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdPolyfill) Usage() string {
	return "file.geojson resolution"
}

func (cmd CmdPolyfill) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Arguments missing, Usage: %s", cmd.Usage())
	}

	res, err := parseResolutionArg(args[1])
	if err != nil {
		return err
	}

	features, err := h3grid.LoadFeatures(args[0])
	if err != nil {
		return err
	}

	for _, f := range features {
		polys, err := h3grid.FeaturePolygons(f)
		if err != nil {
			return err
		}

		for _, poly := range polys {
			cells, err := h3grid.Polyfill(poly, res)
			if err != nil {
				return err
			}
			printCells(cells)
		}
	}

	return nil
}
