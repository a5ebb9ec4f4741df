package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/wmctl/internal/tui"
)

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl tui")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open the interactive window picker.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "tui takes no arguments")
		fs.Usage()
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tui requires an interactive terminal (stdin/stdout must be TTYs)")
		return 1
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := tui.Run(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
