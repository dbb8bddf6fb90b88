package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gridwise/h3grid"
)

type CmdCompact struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("compact",
		"Compact a cell set",
		"Read indexes from stdin, one per line, and print the compacted set",
		&CmdCompact{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdCompact) Execute(args []string) error {
	cells, err := readCells(os.Stdin)
	if err != nil {
		return err
	}

	compacted, err := h3grid.Compact(cells)
	if err != nil {
		return err
	}

	printCells(compacted)
	return nil
}

type CmdUncompact struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("uncompact",
		"Uncompact a cell set",
		"Read indexes from stdin, one per line, and print the set expanded to a resolution",
		&CmdUncompact{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdUncompact) Usage() string {
	return "resolution"
}

func (cmd CmdUncompact) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Resolution missing, Usage: %s", cmd.Usage())
	}

	res, err := parseResolutionArg(args[0])
	if err != nil {
		return err
	}

	cells, err := readCells(os.Stdin)
	if err != nil {
		return err
	}

	expanded, err := h3grid.Uncompact(cells, res)
	if err != nil {
		return err
	}

	printCells(expanded)
	return nil
}

func readCells(r io.Reader) ([]h3grid.Index, error) {
	cells := make([]h3grid.Index, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		idx, err := parseIndexArg(line)
		if err != nil {
			return nil, err
		}
		cells = append(cells, idx)
	}
	return cells, scanner.Err()
}
