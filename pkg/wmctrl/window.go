package wmctrl

import (
	"fmt"
	"strconv"
	"strings"
)

// Window is a point-in-time snapshot of one line of `wmctrl -l -p` output.
// The ID is the only unique key within a single listing and carries no
// cross-snapshot identity: a recreated window gets a new ID.
type Window struct {
	// ID is the window's hexadecimal identifier, kept in its original
	// 0x-prefixed textual form and never reformatted.
	ID string `json:"id"`
	// Desktop is the virtual desktop index at listing time. -1 marks a
	// sticky window visible on all desktops.
	Desktop int `json:"desktop"`
	// PID is the owning process. Informational only.
	PID int `json:"pid"`
	// Host names the machine the window's client runs on.
	Host string `json:"host"`
	// Title is everything after the host field, verbatim, including any
	// embedded whitespace.
	Title string `json:"title"`
}

// splitFields consumes up to n whitespace-delimited tokens from line and
// returns them along with the remainder, trimmed of its leading whitespace.
// The remainder keeps internal whitespace untouched.
func splitFields(line string, n int) ([]string, string) {
	tokens := make([]string, 0, n)
	rest := line
	for len(tokens) < n {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			break
		}
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			tokens = append(tokens, rest)
			rest = ""
			break
		}
		tokens = append(tokens, rest[:idx])
		rest = rest[idx:]
	}
	return tokens, strings.TrimLeft(rest, " \t")
}

// parseWindow parses a single listing line. The first four tokens are
// id, desktop, pid, and host; the rest of the line is the title. Titles
// routinely contain spaces, so splitting the whole line on whitespace
// would corrupt them.
func parseWindow(line string) (Window, error) {
	line = strings.TrimRight(line, "\r")
	tokens, title := splitFields(line, 4)
	if len(tokens) < 4 {
		return Window{}, fmt.Errorf("expected at least 4 fields, got %d", len(tokens))
	}

	desktop, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Window{}, fmt.Errorf("invalid desktop index %q", tokens[1])
	}
	pid, err := strconv.Atoi(tokens[2])
	if err != nil {
		return Window{}, fmt.Errorf("invalid pid %q", tokens[2])
	}

	return Window{
		ID:      tokens[0],
		Desktop: desktop,
		PID:     pid,
		Host:    tokens[3],
		Title:   title,
	}, nil
}
