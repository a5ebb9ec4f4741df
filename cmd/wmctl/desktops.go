package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

func runDesktops(args []string) int {
	fs := flag.NewFlagSet("desktops", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl desktops [--json] [--switch <desktop>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List virtual desktops, or switch the active one with --switch.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output the listing as JSON")
	switchTo := fs.Int("switch", -1, "Switch to this desktop instead of listing")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "desktops takes no arguments")
		fs.Usage()
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *switchTo >= 0 {
		if err := c.SwitchDesktop(*switchTo); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	desktops, err := c.ListDesktops()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(desktops); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("%5s %3s %-11s %-18s %s", "INDEX", "CUR", "GEOMETRY", "WORKAREA", "NAME")))
	for _, d := range desktops {
		cur := "-"
		if d.Current {
			cur = "*"
		}
		fmt.Printf("%5d %3s %-11s %-18s %s\n", d.Index, cur, d.Geometry, d.Workarea, d.Name)
	}
	return 0
}

func runWM(args []string) int {
	fs := flag.NewFlagSet("wm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl wm")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show information about the running window manager.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "wm takes no arguments")
		fs.Usage()
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	info, err := c.WMInfo()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(info)
	return 0
}
