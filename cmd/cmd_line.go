package cmd

import "fmt"

type CmdLine struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("line",
		"Line between two cells",
		"Print the line of cells from one cell to another",
		&CmdLine{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdLine) Usage() string {
	return "from to"
}

func (cmd CmdLine) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Arguments missing, Usage: %s", cmd.Usage())
	}

	from, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}
	to, err := parseIndexArg(args[1])
	if err != nil {
		return err
	}

	line, err := from.LineTo(to)
	if err != nil {
		return err
	}

	printCells(line)
	return nil
}
