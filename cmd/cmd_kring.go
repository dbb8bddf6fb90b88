package cmd

import (
	"fmt"
	"strconv"

	"github.com/gridwise/h3grid"
)

type CmdKRing struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("kring",
		"Cells within distance k",
		"Print all cells within grid distance k of a cell, origin included",
		&CmdKRing{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdKRing) Usage() string {
	return "index k"
}

func (cmd CmdKRing) Execute(args []string) error {
	idx, k, err := parseTraversalArgs(args, cmd.Usage())
	if err != nil {
		return err
	}

	cells, err := idx.KRing(k)
	if err != nil {
		return err
	}

	printCells(cells)
	return nil
}

type CmdHexRange struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("hexrange",
		"Cells within distance k, fast variant",
		"Print all cells within grid distance k of a cell, failing on pentagon distortion",
		&CmdHexRange{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdHexRange) Usage() string {
	return "index k"
}

func (cmd CmdHexRange) Execute(args []string) error {
	idx, k, err := parseTraversalArgs(args, cmd.Usage())
	if err != nil {
		return err
	}

	cells, err := idx.HexRange(k)
	if err != nil {
		return err
	}

	printCells(cells)
	return nil
}

func parseTraversalArgs(args []string, usage string) (h3grid.Index, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("Arguments missing, Usage: %s", usage)
	}

	idx, err := parseIndexArg(args[0])
	if err != nil {
		return 0, 0, err
	}

	k, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: distance %q", h3grid.ErrInvalidArgument, args[1])
	}
	return idx, k, nil
}
