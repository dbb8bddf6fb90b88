package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/gridwise/h3grid"
	"github.com/jessevdk/go-flags"
)

type GlobalOptions struct {
	Pretty bool `short:"p" long:"pretty" description:"Indent JSON output"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) WriteJSON(v interface{}) error {
	var (
		data []byte
		err  error
	)
	if g.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	os.Stdout.Write(data)
	os.Stdout.WriteString("\n")
	return nil
}

func parseIndexArg(arg string) (h3grid.Index, error) {
	idx, err := h3grid.ParseIndex(arg)
	if err != nil {
		return 0, err
	}
	if !idx.Valid() {
		return 0, fmt.Errorf("%w: %s", h3grid.ErrInvalidIndex, arg)
	}
	return idx, nil
}

func parseResolutionArg(arg string) (h3grid.Resolution, error) {
	res, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: resolution %q", h3grid.ErrInvalidArgument, arg)
	}
	return h3grid.Resolution(res), nil
}

func printCells(cells []h3grid.Index) {
	for _, idx := range cells {
		fmt.Println(idx.String())
	}
}
