package wmctrl

import (
	"errors"
	"os"
	"os/exec"
	"testing"
)

func TestOperationArgv(t *testing.T) {
	tests := []struct {
		name string
		op   func(c *Client) error
		want string
	}{
		{
			name: "transform",
			op: func(c *Client) error {
				return c.Transform("0x01400003", NewTransformation(0, 0, 960, 540))
			},
			want: "-i -r 0x01400003 -e 0,0,0,960,540",
		},
		{
			name: "transform keeps sentinels",
			op: func(c *Client) error {
				return c.Transform("0x01400003", Transformation{X: 50, Y: 50, Width: Unchanged, Height: Unchanged})
			},
			want: "-i -r 0x01400003 -e 0,50,50,-1,-1",
		},
		{
			name: "close",
			op:   func(c *Client) error { return c.Close("0x01400003") },
			want: "-i -c 0x01400003",
		},
		{
			name: "change state",
			op: func(c *Client) error {
				return c.ChangeState("0x01400003", NewState(Add, Fullscreen))
			},
			want: "-i -r 0x01400003 -b add,fullscreen",
		},
		{
			name: "set title",
			op:   func(c *Client) error { return c.SetTitle("0x01400003", "scratch pad") },
			want: "-i -r 0x01400003 -N scratch pad",
		},
		{
			name: "set icon title",
			op:   func(c *Client) error { return c.SetIconTitle("0x01400003", "pad") },
			want: "-i -r 0x01400003 -I pad",
		},
		{
			name: "set both titles",
			op:   func(c *Client) error { return c.SetBothTitles("0x01400003", "pad") },
			want: "-i -r 0x01400003 -T pad",
		},
		{
			name: "set desktop",
			op:   func(c *Client) error { return c.SetDesktop("0x01400003", 2) },
			want: "-i -r 0x01400003 -t 2",
		},
		{
			name: "activate",
			op:   func(c *Client) error { return c.Activate("0x01400003") },
			want: "-i -R 0x01400003",
		},
		{
			name: "raise",
			op:   func(c *Client) error { return c.Raise("0x01400003") },
			want: "-i -a 0x01400003",
		},
		{
			name: "switch desktop",
			op:   func(c *Client) error { return c.SwitchDesktop(3) },
			want: "-s 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRunner{}
			c, _ := newTestClient(fake)
			if err := tt.op(c); err != nil {
				t.Fatalf("operation: %v", err)
			}
			if got := fake.lastCall(); got != tt.want {
				t.Fatalf("argv = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdentifierPassedVerbatim(t *testing.T) {
	// The 0x-prefixed textual form must never be renumbered or reformatted,
	// leading zeros included.
	fake := &fakeRunner{}
	c, _ := newTestClient(fake)
	if err := c.Activate("0x0000000a"); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if got := fake.lastCall(); got != "-i -R 0x0000000a" {
		t.Fatalf("argv = %q, identifier was reformatted", got)
	}
}

func TestCommandErrors_NonZeroExit(t *testing.T) {
	fake := &fakeRunner{
		stderr: "Cannot get client list properties.\n",
		err:    &exec.ExitError{ProcessState: &os.ProcessState{}},
	}
	c, _ := newTestClient(fake)

	_, err := c.List()
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *ToolError, got %v", err)
	}
	if toolErr.Stderr != "Cannot get client list properties." {
		t.Fatalf("stderr not preserved verbatim: %q", toolErr.Stderr)
	}
}

func TestCommandErrors_ToolUnavailable(t *testing.T) {
	fake := &fakeRunner{
		err: &exec.Error{Name: "wmctrl", Err: exec.ErrNotFound},
	}
	c, _ := newTestClient(fake)

	_, err := c.List()
	if !errors.Is(err, ErrToolUnavailable) {
		t.Fatalf("expected ErrToolUnavailable, got %v", err)
	}
}

func TestWMInfo(t *testing.T) {
	fake := &fakeRunner{stdout: "Name: Mutter\nClass: N/A\nPID: N/A\n"}
	c, _ := newTestClient(fake)

	info, err := c.WMInfo()
	if err != nil {
		t.Fatalf("WMInfo: %v", err)
	}
	if info != "Name: Mutter\nClass: N/A\nPID: N/A" {
		t.Fatalf("unexpected info %q", info)
	}
	if fake.lastCall() != "-m" {
		t.Fatalf("expected argv \"-m\", got %q", fake.lastCall())
	}
}
