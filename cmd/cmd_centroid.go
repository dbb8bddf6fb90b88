package cmd

import "fmt"

type CmdCentroid struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("centroid",
		"Cell centroid",
		"Print the centroid of a cell as a longitude/latitude pair",
		&CmdCentroid{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdCentroid) Usage() string {
	return "index"
}

func (cmd CmdCentroid) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Index missing, Usage: %s", cmd.Usage())
	}

	idx, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	p, err := idx.Point()
	if err != nil {
		return err
	}

	fmt.Printf("%f %f\n", p.Lng, p.Lat)
	return nil
}
