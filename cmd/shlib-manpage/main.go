package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/NovaOrdis/std.shlib/cmd/shlib"
)

func main() {
	rootCmd := shlib.NewRootCmd(&shlib.App{})

	if err := doc.GenMan(rootCmd, shlib.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
