// Package wmctrl wraps the wmctrl command-line window-management tool.
//
// Every operation is a single synchronous process invocation: the listing
// query is parsed into Window snapshots, and the window operations format
// the exact argument grammar wmctrl expects. A Window is a point-in-time
// record with no live binding to the real window, so any operation using
// its ID may fail with a *ToolError if the window closed between the
// listing and the operation. That race is the caller's to tolerate.
package wmctrl

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultTool is the executable name resolved via PATH when no explicit
// path is configured.
const DefaultTool = "wmctrl"

// Options configures a Client. The zero value is usable: wmctrl from PATH,
// no timeout, diagnostics discarded.
type Options struct {
	// Path overrides the wmctrl executable location.
	Path string
	// Timeout bounds each invocation. Zero means no timeout, which matches
	// wmctrl's own behavior of blocking until the request completes.
	Timeout time.Duration
	// Logger receives skip diagnostics for malformed listing lines.
	Logger *slog.Logger
}

// Client issues wmctrl invocations. Each call is independent and touches
// no shared state, so a Client is safe for concurrent use.
type Client struct {
	path    string
	timeout time.Duration
	logger  *slog.Logger
	run     runner
}

// New creates a Client. It does not probe for the executable; an
// unavailable tool surfaces as ErrToolUnavailable on the first operation.
func New(opts Options) *Client {
	path := opts.Path
	if path == "" {
		path = DefaultTool
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		path:    path,
		timeout: opts.Timeout,
		logger:  logger,
		run:     execRunner{},
	}
}

// Available reports whether the configured wmctrl executable can be found.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.path)
	return err == nil
}

// List queries wmctrl for all managed windows (`wmctrl -l -p`) and returns
// one snapshot per line. Malformed lines are skipped with a logged warning
// so one bad line does not discard an otherwise valid inventory. An empty
// listing returns an empty slice, not an error.
func (c *Client) List() ([]Window, error) {
	out, err := c.command("-l", "-p")
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0)
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		win, err := parseWindow(line)
		if err != nil {
			c.logger.Warn("skipping malformed listing line", "line", line, "error", err)
			continue
		}
		windows = append(windows, win)
	}
	return windows, nil
}

// FindByTitle returns the first listed window whose title contains substr.
// Substring matching is used because exact titles are rarely known.
// Returns ErrWindowNotFound when nothing matches.
func (c *Client) FindByTitle(substr string) (Window, error) {
	windows, err := c.List()
	if err != nil {
		return Window{}, err
	}
	for _, win := range windows {
		if strings.Contains(win.Title, substr) {
			return win, nil
		}
	}
	return Window{}, fmt.Errorf("%w: title containing %q", ErrWindowNotFound, substr)
}

// Transform moves and resizes the window (`wmctrl -i -r <id> -e`).
// Fire-and-forget: success means wmctrl accepted the request, not that
// the window actually moved.
func (c *Client) Transform(id string, t Transformation) error {
	_, err := c.command("-i", "-r", id, "-e", t.String())
	return err
}

// Close asks the window manager to close the window gracefully
// (`wmctrl -i -c <id>`). This is a request to the application, not a kill.
func (c *Client) Close(id string) error {
	_, err := c.command("-i", "-c", id)
	return err
}

// ChangeState adds, removes, or toggles a window-manager hint on the
// window (`wmctrl -i -r <id> -b <action,property>`). Invalid combinations
// are wmctrl's to reject; no validation happens here.
func (c *Client) ChangeState(id string, s State) error {
	_, err := c.command("-i", "-r", id, "-b", s.String())
	return err
}

// SetTitle sets the window's title (`wmctrl -i -r <id> -N`).
func (c *Client) SetTitle(id, title string) error {
	_, err := c.command("-i", "-r", id, "-N", title)
	return err
}

// SetIconTitle sets the window's icon title (`wmctrl -i -r <id> -I`).
func (c *Client) SetIconTitle(id, title string) error {
	_, err := c.command("-i", "-r", id, "-I", title)
	return err
}

// SetBothTitles sets the window's title and icon title together
// (`wmctrl -i -r <id> -T`).
func (c *Client) SetBothTitles(id, title string) error {
	_, err := c.command("-i", "-r", id, "-T", title)
	return err
}

// SetDesktop moves the window to the given virtual desktop
// (`wmctrl -i -r <id> -t <desk>`).
func (c *Client) SetDesktop(id string, desktop int) error {
	_, err := c.command("-i", "-r", id, "-t", strconv.Itoa(desktop))
	return err
}

// Activate moves the window to the current desktop and raises it
// (`wmctrl -i -R <id>`).
func (c *Client) Activate(id string) error {
	_, err := c.command("-i", "-R", id)
	return err
}

// Raise switches to the window's desktop and raises it
// (`wmctrl -i -a <id>`).
func (c *Client) Raise(id string) error {
	_, err := c.command("-i", "-a", id)
	return err
}

// WMInfo returns wmctrl's report about the running window manager
// (`wmctrl -m`), trimmed of trailing whitespace.
func (c *Client) WMInfo() (string, error) {
	out, err := c.command("-m")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

var defaultClient = New(Options{})

// List lists all managed windows using the default client.
func List() ([]Window, error) { return defaultClient.List() }

// FindByTitle looks up a window by title substring using the default client.
func FindByTitle(substr string) (Window, error) { return defaultClient.FindByTitle(substr) }

// Transform moves and resizes a window using the default client.
func Transform(id string, t Transformation) error { return defaultClient.Transform(id, t) }

// Close gracefully closes a window using the default client.
func Close(id string) error { return defaultClient.Close(id) }

// ChangeState changes a window's state using the default client.
func ChangeState(id string, s State) error { return defaultClient.ChangeState(id, s) }

// Activate activates a window using the default client.
func Activate(id string) error { return defaultClient.Activate(id) }

// ListDesktops lists virtual desktops using the default client.
func ListDesktops() ([]Desktop, error) { return defaultClient.ListDesktops() }

// SwitchDesktop switches the active desktop using the default client.
func SwitchDesktop(desktop int) error { return defaultClient.SwitchDesktop(desktop) }
