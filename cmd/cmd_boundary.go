package cmd

import (
	"fmt"

	"github.com/gridwise/h3grid"
)

type CmdBoundary struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("boundary",
		"Cell boundaries",
		"Print the boundaries of one or more cells as a GeoJSON FeatureCollection",
		&CmdBoundary{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdBoundary) Usage() string {
	return "index..."
}

func (cmd CmdBoundary) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("Index missing, Usage: %s", cmd.Usage())
	}

	cells := make([]h3grid.Index, 0, len(args))
	for _, arg := range args {
		idx, err := parseIndexArg(arg)
		if err != nil {
			return err
		}
		cells = append(cells, idx)
	}

	fc, err := h3grid.CellsFeatureCollection(cells)
	if err != nil {
		return err
	}

	return cmd.global.WriteJSON(fc)
}
