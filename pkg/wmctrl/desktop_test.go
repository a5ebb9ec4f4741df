package wmctrl

import (
	"errors"
	"testing"
)

const desktopListing = "0  * DG: 3840x1080  VP: 0,0  WA: 0,25 3840x1055  Main\n" +
	"1  - DG: 3840x1080  VP: N/A  WA: 0,25 3840x1055  Desktop 2\n"

func TestParseDesktop(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Desktop
		wantErr bool
	}{
		{
			name: "current desktop",
			line: "0  * DG: 3840x1080  VP: 0,0  WA: 0,25 3840x1055  Main",
			want: Desktop{Index: 0, Current: true, Geometry: "3840x1080", Viewport: "0,0", Workarea: "0,25 3840x1055", Name: "Main"},
		},
		{
			name: "inactive desktop with spaced name",
			line: "1  - DG: 3840x1080  VP: N/A  WA: 0,25 3840x1055  Desktop 2",
			want: Desktop{Index: 1, Current: false, Geometry: "3840x1080", Viewport: "N/A", Workarea: "0,25 3840x1055", Name: "Desktop 2"},
		},
		{
			name:    "truncated line",
			line:    "0  * DG: 3840x1080",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDesktop(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDesktop: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListDesktops(t *testing.T) {
	fake := &fakeRunner{stdout: desktopListing}
	c, _ := newTestClient(fake)

	desktops, err := c.ListDesktops()
	if err != nil {
		t.Fatalf("ListDesktops: %v", err)
	}
	if len(desktops) != 2 {
		t.Fatalf("expected 2 desktops, got %d", len(desktops))
	}
	if fake.lastCall() != "-d" {
		t.Fatalf("expected argv \"-d\", got %q", fake.lastCall())
	}
}

func TestCurrentDesktop(t *testing.T) {
	fake := &fakeRunner{stdout: desktopListing}
	c, _ := newTestClient(fake)

	desk, err := c.CurrentDesktop()
	if err != nil {
		t.Fatalf("CurrentDesktop: %v", err)
	}
	if desk.Index != 0 || !desk.Current {
		t.Fatalf("unexpected desktop %+v", desk)
	}
}

func TestCurrentDesktop_NoneMarked(t *testing.T) {
	fake := &fakeRunner{stdout: "1  - DG: 3840x1080  VP: N/A  WA: 0,25 3840x1055  Desktop 2\n"}
	c, _ := newTestClient(fake)

	if _, err := c.CurrentDesktop(); !errors.Is(err, ErrDesktopNotFound) {
		t.Fatalf("expected ErrDesktopNotFound, got %v", err)
	}
}
