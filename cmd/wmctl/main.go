package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/pkg/wmctrl"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "find":
		os.Exit(runFind(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "close":
		os.Exit(runClose(os.Args[2:]))
	case "state":
		os.Exit(runState(os.Args[2:]))
	case "activate":
		os.Exit(runActivate(os.Args[2:]))
	case "raise":
		os.Exit(runRaise(os.Args[2:]))
	case "retitle":
		os.Exit(runRetitle(os.Args[2:]))
	case "to-desktop":
		os.Exit(runToDesktop(os.Args[2:]))
	case "desktops":
		os.Exit(runDesktops(os.Args[2:]))
	case "wm":
		os.Exit(runWM(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wmctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                List windows")
	fmt.Fprintln(w, "  find                Find a window by title substring")
	fmt.Fprintln(w, "  move                Move and/or resize a window")
	fmt.Fprintln(w, "  close               Ask a window to close gracefully")
	fmt.Fprintln(w, "  state               Add/remove/toggle a window state hint")
	fmt.Fprintln(w, "  activate            Bring a window to the current desktop and raise it")
	fmt.Fprintln(w, "  raise               Switch to a window's desktop and raise it")
	fmt.Fprintln(w, "  retitle             Set a window's title and/or icon title")
	fmt.Fprintln(w, "  to-desktop          Move a window to another desktop")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  desktops            List virtual desktops (or switch with --switch)")
	fmt.Fprintln(w, "  wm                  Show window manager information")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  tui                 Open the interactive window picker")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "  config print        Show the effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wmctl <command> --help' for command-specific options.")
}

// newClient builds a wmctrl client from the user's config and verifies the
// external tool is reachable before any subcommand work starts.
func newClient() (*wmctrl.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	c := wmctrl.New(wmctrl.Options{
		Path:    cfg.ToolPath,
		Timeout: cfg.Timeout(),
		Logger:  logger,
	})
	if !c.Available() {
		return nil, fmt.Errorf("wmctrl is not installed or not on PATH. Install it using:\n" +
			"  Debian/Ubuntu: sudo apt install wmctrl\n" +
			"  Fedora:        sudo dnf install wmctrl\n" +
			"  Arch Linux:    sudo pacman -S wmctrl")
	}
	return c, nil
}

// resolveTarget turns the --id/--title flag pair into a window ID. An
// explicit ID wins; otherwise the title substring is looked up.
func resolveTarget(c *wmctrl.Client, id, title string) (string, error) {
	if id != "" {
		return id, nil
	}
	if title == "" {
		return "", fmt.Errorf("either --id or --title is required")
	}
	win, err := c.FindByTitle(title)
	if err != nil {
		return "", err
	}
	return win.ID, nil
}
