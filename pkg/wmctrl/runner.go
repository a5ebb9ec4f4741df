package wmctrl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// runner abstracts wmctrl invocation so parsing and formatting can be
// tested against canned output without spawning processes.
type runner interface {
	run(ctx context.Context, path string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner is the real runner. One process per call, stdout and stderr
// captured separately, blocks until the process exits.
type execRunner struct{}

func (execRunner) run(ctx context.Context, path string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// command runs wmctrl with the given arguments and returns its stdout.
// Failures are classified per the error taxonomy: launch failures wrap
// ErrToolUnavailable, non-zero exits become *ToolError with the captured
// stderr preserved verbatim.
func (c *Client) command(args ...string) (string, error) {
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stdout, stderr, err := c.run.run(ctx, c.path, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("wmctrl %s timed out after %s: %w", strings.Join(args, " "), c.timeout, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ToolError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimRight(string(stderr), "\n"),
			}
		}
		return "", fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	return string(stdout), nil
}
