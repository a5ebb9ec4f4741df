package wmctrl

import (
	"fmt"
	"strconv"
	"strings"
)

// Desktop is a snapshot of one line of `wmctrl -d` output.
type Desktop struct {
	Index int `json:"index"`
	// Current marks the active desktop (the '*' column).
	Current bool `json:"current"`
	// Geometry is the desktop geometry string, e.g. "3840x1080".
	Geometry string `json:"geometry"`
	// Viewport is the viewport position, or "N/A" on inactive desktops.
	Viewport string `json:"viewport"`
	// Workarea is the workarea origin and geometry, e.g. "0,25 3840x1055".
	Workarea string `json:"workarea"`
	// Name is the remainder of the line, verbatim.
	Name string `json:"name"`
}

// parseDesktop parses one `wmctrl -d` line. Layout:
//
//	0  * DG: 3840x1080  VP: 0,0  WA: 0,25 3840x1055  Desktop 1
//
// Nine whitespace-delimited tokens precede the name, which may contain
// spaces and is kept verbatim.
func parseDesktop(line string) (Desktop, error) {
	line = strings.TrimRight(line, "\r")
	tokens, name := splitFields(line, 9)
	if len(tokens) < 9 {
		return Desktop{}, fmt.Errorf("expected at least 9 fields, got %d", len(tokens))
	}

	index, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Desktop{}, fmt.Errorf("invalid desktop index %q", tokens[0])
	}

	return Desktop{
		Index:    index,
		Current:  tokens[1] == "*",
		Geometry: tokens[3],
		Viewport: tokens[5],
		Workarea: tokens[7] + " " + tokens[8],
		Name:     name,
	}, nil
}

// ListDesktops queries wmctrl for all virtual desktops (`wmctrl -d`).
// Malformed lines are skipped with a logged warning, same policy as List.
func (c *Client) ListDesktops() ([]Desktop, error) {
	out, err := c.command("-d")
	if err != nil {
		return nil, err
	}

	desktops := make([]Desktop, 0)
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		desk, err := parseDesktop(line)
		if err != nil {
			c.logger.Warn("skipping malformed desktop line", "line", line, "error", err)
			continue
		}
		desktops = append(desktops, desk)
	}
	return desktops, nil
}

// CurrentDesktop returns the active desktop from the listing. Returns
// ErrDesktopNotFound when no desktop is marked current.
func (c *Client) CurrentDesktop() (Desktop, error) {
	desktops, err := c.ListDesktops()
	if err != nil {
		return Desktop{}, err
	}
	for _, desk := range desktops {
		if desk.Current {
			return desk, nil
		}
	}
	return Desktop{}, ErrDesktopNotFound
}

// SwitchDesktop makes the given desktop active (`wmctrl -s <desk>`).
func (c *Client) SwitchDesktop(desktop int) error {
	_, err := c.command("-s", strconv.Itoa(desktop))
	return err
}
