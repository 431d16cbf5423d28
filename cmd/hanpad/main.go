package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"hanpad/internal/app"
	"hanpad/internal/cli"
	"hanpad/pkg/keymap"
)

func main() {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hanpad: %v\n", err)
		fmt.Fprintln(os.Stderr, cli.Usage())
		os.Exit(2)
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return
	}

	if opts.ListLayouts {
		for _, name := range keymap.Available() {
			fmt.Println(name)
		}
		return
	}

	// The pad needs a terminal; piped input is converted line by line.
	if !opts.Serve && !opts.Convert && !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.Convert = true
	}

	rt := app.NewRuntime(opts, os.Stdin, os.Stdout, os.Stderr)
	if err := rt.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hanpad: %v\n", err)
		os.Exit(1)
	}
}
