package main

import (
	"os"

	"github.com/NovaOrdis/std.shlib/cmd/shlib"
)

func main() {
	os.Exit(shlib.Run(os.Args[1:], os.LookupEnv, shlib.Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}, os.Exit))
}
