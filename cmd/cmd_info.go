package cmd

import (
	"fmt"

	"github.com/kr/pretty"
)

type CmdInfo struct {
	global *GlobalOptions
}

type indexInfo struct {
	Index       string
	Resolution  int
	BaseCell    int
	Pentagon    bool
	ResClassIII bool
	Faces       []int
}

func init() {
	_, err := parser.AddCommand("info",
		"Inspect a cell",
		"Print the components of a cell index",
		&CmdInfo{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdInfo) Usage() string {
	return "index"
}

func (cmd CmdInfo) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Index missing, Usage: %s", cmd.Usage())
	}

	idx, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	res, err := idx.Resolution()
	if err != nil {
		return err
	}
	base, err := idx.BaseCell()
	if err != nil {
		return err
	}
	pent, err := idx.Pentagon()
	if err != nil {
		return err
	}
	class3, err := idx.ResClassIII()
	if err != nil {
		return err
	}
	faces, err := idx.Faces()
	if err != nil {
		return err
	}

	fmt.Printf("%# v\n", pretty.Formatter(indexInfo{
		Index:       idx.String(),
		Resolution:  int(res),
		BaseCell:    base,
		Pentagon:    pent,
		ResClassIII: class3,
		Faces:       faces,
	}))
	return nil
}
