package cmd

import (
	"fmt"

	"github.com/gridwise/h3grid"
)

type CmdOutline struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("outline",
		"Outline of a cell set",
		"Merge cells into their outline and print it as a GeoJSON MultiPolygon feature",
		&CmdOutline{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdOutline) Usage() string {
	return "index..."
}

func (cmd CmdOutline) Execute(args []string) error {
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

	f, err := h3grid.MultiPolygonFeature(cells)
	if err != nil {
		return err
	}

	return cmd.global.WriteJSON(f)
}
