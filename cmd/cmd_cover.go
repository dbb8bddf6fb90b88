package cmd

import (
	"fmt"

	"github.com/cheggaaa/pb"
	"github.com/gridwise/h3grid"
)

type CmdCover struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("cover",
		"Run a cover job",
		"Fill every layer of a cover configuration and write the cell sets to an output directory",
		&CmdCover{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdCover) Usage() string {
	return "config.yaml outputpath"
}

func (cmd CmdCover) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Config file or output path not specified, Usage: %s", cmd.Usage())
	}

	config, err := h3grid.LoadCoverConfig(args[0])
	if err != nil {
		return err
	}

	bar := pb.StartNew(len(config.Layers))
	defer bar.Finish()

	err = h3grid.RunCover(config, args[1], func(layer string, cells int) {
		bar.Increment()
	})
	if err != nil {
		return fmt.Errorf("Failed to cover: %w", err)
	}

	return nil
}
