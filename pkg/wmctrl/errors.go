package wmctrl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrToolUnavailable is returned when the wmctrl executable could not be
// located or launched. Wrap checks should use errors.Is.
var ErrToolUnavailable = errors.New("wmctrl is not available")

// ErrWindowNotFound is returned by title lookups when no window matches.
var ErrWindowNotFound = errors.New("no matching window")

// ErrDesktopNotFound is returned when the current desktop cannot be
// determined from the desktop listing.
var ErrDesktopNotFound = errors.New("no current desktop")

// ToolError reports a wmctrl invocation that ran but exited non-zero.
// Stderr carries the tool's own diagnostic text verbatim.
type ToolError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("wmctrl %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}
