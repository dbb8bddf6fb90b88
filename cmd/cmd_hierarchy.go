package cmd

import "fmt"

type CmdParent struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("parent",
		"Parent cell",
		"Print the ancestor of a cell at a coarser resolution",
		&CmdParent{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdParent) Usage() string {
	return "index resolution"
}

func (cmd CmdParent) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Arguments missing, Usage: %s", cmd.Usage())
	}

	idx, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}
	res, err := parseResolutionArg(args[1])
	if err != nil {
		return err
	}

	parent, err := idx.Parent(res)
	if err != nil {
		return err
	}

	fmt.Println(parent.String())
	return nil
}

type CmdChildren struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("children",
		"Child cells",
		"Print the descendants of a cell at a finer resolution",
		&CmdChildren{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdChildren) Usage() string {
	return "index resolution"
}

func (cmd CmdChildren) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Arguments missing, Usage: %s", cmd.Usage())
	}

	idx, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}
	res, err := parseResolutionArg(args[1])
	if err != nil {
		return err
	}

	children, err := idx.Children(res)
	if err != nil {
		return err
	}

	printCells(children)
	return nil
}
