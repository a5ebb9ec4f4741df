package wmctrl

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"add fullscreen", NewState(Add, Fullscreen), "add,fullscreen"},
		{"remove maximized vert", NewState(Remove, MaximizedVert), "remove,maximized_vert"},
		{"toggle maximized horz", NewState(Toggle, MaximizedHorz), "toggle,maximized_horz"},
		{"add sticky", NewState(Add, Sticky), "add,sticky"},
		{"toggle shaded", NewState(Toggle, Shaded), "toggle,shaded"},
		{"add above", NewState(Add, Above), "add,above"},
		{"remove below", NewState(Remove, Below), "remove,below"},
		{"add skip taskbar", NewState(Add, SkipTaskbar), "add,skip_taskbar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{Add, Remove, Toggle} {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", a, err)
		}
		if got != a {
			t.Fatalf("ParseAction(%q) = %v, want %v", a, got, a)
		}
	}
	if _, err := ParseAction("set"); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestParseProperty_CoversFullVocabulary(t *testing.T) {
	for _, p := range Properties() {
		got, err := ParseProperty(p.String())
		if err != nil {
			t.Fatalf("ParseProperty(%q): %v", p, err)
		}
		if got != p {
			t.Fatalf("ParseProperty(%q) = %v, want %v", p, got, p)
		}
	}
	if _, err := ParseProperty("minimized"); err == nil {
		t.Fatal("expected error for property outside wmctrl's vocabulary")
	}
}
