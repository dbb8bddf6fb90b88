package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gridwise/h3grid"
	"github.com/gridwise/h3grid/cmd"
)

// Each failure class gets its own exit code, scripts rely on these.
var exitCodes = []struct {
	err  error
	code int
}{
	{h3grid.ErrInvalidIndex, 2},
	{h3grid.ErrResolution, 3},
	{h3grid.ErrInvalidArgument, 4},
	{h3grid.ErrGeometry, 5},
	{h3grid.ErrParse, 6},
	{h3grid.ErrAllocation, 7},
	{h3grid.ErrPentagon, 8},
	{h3grid.ErrOutOfRange, 9},
}

func main() {
	err := cmd.Run()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err.Error())
	for _, m := range exitCodes {
		if errors.Is(err, m.err) {
			os.Exit(m.code)
		}
	}
	os.Exit(1)
}
