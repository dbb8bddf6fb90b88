package cmd

import (
	"fmt"
	"strconv"

	"github.com/gridwise/h3grid"
)

type CmdIndex struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("index",
		"Index a point",
		"Convert a longitude/latitude pair to the containing cell at a resolution",
		&CmdIndex{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdIndex) Usage() string {
	return "lng lat resolution"
}

func (cmd CmdIndex) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Arguments missing, Usage: %s", cmd.Usage())
	}

	lng, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: longitude %q", h3grid.ErrInvalidArgument, args[0])
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: latitude %q", h3grid.ErrInvalidArgument, args[1])
	}
	res, err := parseResolutionArg(args[2])
	if err != nil {
		return err
	}

	idx, err := h3grid.FromPoint(h3grid.Point{Lng: lng, Lat: lat}, res)
	if err != nil {
		return err
	}

	fmt.Println(idx.String())
	return nil
}
