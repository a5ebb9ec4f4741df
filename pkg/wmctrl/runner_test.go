package wmctrl

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// fakeRunner stands in for the wmctrl process. It records every argv and
// replays canned stdout/stderr/err.
type fakeRunner struct {
	stdout string
	stderr string
	err    error
	calls  [][]string
}

func (f *fakeRunner) run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, args)
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func (f *fakeRunner) lastCall() string {
	if len(f.calls) == 0 {
		return ""
	}
	return strings.Join(f.calls[len(f.calls)-1], " ")
}

// newTestClient wires a Client to a fake runner. The returned strings.Builder
// collects the client's diagnostic log output.
func newTestClient(fake *fakeRunner) (*Client, *strings.Builder) {
	var logs strings.Builder
	c := New(Options{
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
		Timeout: 5 * time.Second,
	})
	c.run = fake
	return c, &logs
}
