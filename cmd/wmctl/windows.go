package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/wmctl/pkg/wmctrl"
)

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl list [--json] [--title <substr>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List all windows the window manager knows about.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output the listing as JSON")
	title := fs.String("title", "", "Only show windows whose title contains this substring")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "list takes no arguments")
		fs.Usage()
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	windows, err := c.List()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *title != "" {
		filtered := windows[:0]
		for _, win := range windows {
			if strings.Contains(win.Title, *title) {
				filtered = append(filtered, win)
			}
		}
		windows = filtered
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(windows); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("%-12s %4s %7s %-12s %s", "ID", "DESK", "PID", "HOST", "TITLE")))
	for _, win := range windows {
		fmt.Printf("%-12s %4d %7d %-12s %s\n", win.ID, win.Desktop, win.PID, win.Host, win.Title)
	}
	return 0
}

func runFind(args []string) int {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl find [--json] <title-substring>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the first window whose title contains the given substring.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output the window as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "find takes exactly one argument")
		fs.Usage()
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	win, err := c.FindByTitle(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(win); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	fmt.Printf("%s %d %d %s %s\n", win.ID, win.Desktop, win.PID, win.Host, win.Title)
	return 0
}

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl move [--id <id> | --title <substr>] [-x N] [-y N] [--width N] [--height N]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move and/or resize a window. Omitted fields keep their current value")
		fmt.Fprintln(os.Stderr, "(wmctrl's -1 sentinel).")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	id := fs.String("id", "", "Window id (0x-prefixed hex)")
	title := fs.String("title", "", "Title substring to look the window up")
	x := fs.Int("x", wmctrl.Unchanged, "New x position")
	y := fs.Int("y", wmctrl.Unchanged, "New y position")
	width := fs.Int("width", wmctrl.Unchanged, "New width")
	height := fs.Int("height", wmctrl.Unchanged, "New height")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "move takes no arguments")
		fs.Usage()
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	target, err := resolveTarget(c, *id, *title)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := c.Transform(target, wmctrl.NewTransformation(*x, *y, *width, *height)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runClose(args []string) int {
	fs := flag.NewFlagSet("close", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl close [--id <id> | --title <substr>] [--yes]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Ask the window manager to close a window gracefully. Prompts for")
		fmt.Fprintln(os.Stderr, "confirmation on a terminal unless --yes is given.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	id := fs.String("id", "", "Window id (0x-prefixed hex)")
	title := fs.String("title", "", "Title substring to look the window up")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "close takes no arguments")
		fs.Usage()
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	target, err := resolveTarget(c, *id, *title)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if !*yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "refusing to close without --yes outside a terminal")
			return 1
		}
		prompt := fmt.Sprintf("Close window %s?", target)
		if *title != "" {
			prompt = fmt.Sprintf("Close window %s (matched %q)?", target, *title)
		}
		var confirmed bool
		if err := huh.NewConfirm().Title(prompt).Value(&confirmed).Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, "aborted")
			return 1
		}
	}

	if err := c.Close(target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runState(args []string) int {
	fs := flag.NewFlagSet("state", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl state [--id <id> | --title <substr>] <add|remove|toggle> <property>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Change a window-manager hint on a window. Properties:")
		names := make([]string, 0)
		for _, p := range wmctrl.Properties() {
			names = append(names, p.String())
		}
		fmt.Fprintln(os.Stderr, "  "+strings.Join(names, ", "))
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	id := fs.String("id", "", "Window id (0x-prefixed hex)")
	title := fs.String("title", "", "Title substring to look the window up")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "state takes exactly two arguments")
		fs.Usage()
		return 2
	}

	action, err := wmctrl.ParseAction(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	property, err := wmctrl.ParseProperty(fs.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	target, err := resolveTarget(c, *id, *title)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := c.ChangeState(target, wmctrl.NewState(action, property)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runTargetOp covers the argument-free window operations that differ only
// in which client method they call.
func runTargetOp(name, description string, args []string, op func(c *wmctrl.Client, id string) error) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wmctl %s [--id <id> | --title <substr>]\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, description)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	id := fs.String("id", "", "Window id (0x-prefixed hex)")
	title := fs.String("title", "", "Title substring to look the window up")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", name)
		fs.Usage()
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	target, err := resolveTarget(c, *id, *title)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := op(c, target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runActivate(args []string) int {
	return runTargetOp("activate", "Bring a window to the current desktop and raise it.", args,
		func(c *wmctrl.Client, id string) error { return c.Activate(id) })
}

func runRaise(args []string) int {
	return runTargetOp("raise", "Switch to a window's desktop and raise it.", args,
		func(c *wmctrl.Client, id string) error { return c.Raise(id) })
}

func runRetitle(args []string) int {
	fs := flag.NewFlagSet("retitle", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl retitle [--id <id> | --title <substr>] [--icon | --both] <new-title>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Set a window's title, its icon title (--icon), or both (--both).")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	id := fs.String("id", "", "Window id (0x-prefixed hex)")
	title := fs.String("title", "", "Title substring to look the window up")
	icon := fs.Bool("icon", false, "Set the icon title instead of the title")
	both := fs.Bool("both", false, "Set both the title and the icon title")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "retitle takes exactly one argument")
		fs.Usage()
		return 2
	}
	if *icon && *both {
		fmt.Fprintln(os.Stderr, "--icon and --both are mutually exclusive")
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	target, err := resolveTarget(c, *id, *title)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	newTitle := fs.Arg(0)
	switch {
	case *both:
		err = c.SetBothTitles(target, newTitle)
	case *icon:
		err = c.SetIconTitle(target, newTitle)
	default:
		err = c.SetTitle(target, newTitle)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runToDesktop(args []string) int {
	fs := flag.NewFlagSet("to-desktop", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl to-desktop [--id <id> | --title <substr>] <desktop>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move a window to the given virtual desktop.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	id := fs.String("id", "", "Window id (0x-prefixed hex)")
	title := fs.String("title", "", "Title substring to look the window up")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "to-desktop takes exactly one argument")
		fs.Usage()
		return 2
	}
	desktop, err := strconv.Atoi(fs.Arg(0))
	if err != nil || desktop < 0 {
		fmt.Fprintf(os.Stderr, "invalid desktop index %q\n", fs.Arg(0))
		return 2
	}

	c, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	target, err := resolveTarget(c, *id, *title)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := c.SetDesktop(target, desktop); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
