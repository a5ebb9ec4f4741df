package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/wmctl/pkg/wmctrl"
)

type fakeWM struct {
	windows []wmctrl.Window
	ops     []string
}

func (f *fakeWM) List() ([]wmctrl.Window, error) { return f.windows, nil }

func (f *fakeWM) Close(id string) error {
	f.ops = append(f.ops, "close "+id)
	return nil
}

func (f *fakeWM) ChangeState(id string, s wmctrl.State) error {
	f.ops = append(f.ops, "state "+id+" "+s.String())
	return nil
}

func (f *fakeWM) Activate(id string) error {
	f.ops = append(f.ops, "activate "+id)
	return nil
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func newTestModel() (Model, *fakeWM) {
	wm := &fakeWM{windows: []wmctrl.Window{
		{ID: "0x01400003", Title: "Firefox - Mozilla"},
		{ID: "0x01600021", Title: "Terminal"},
	}}
	m := NewModel(wm)
	updated, _ := m.Update(windowsMsg{windows: wm.windows})
	return updated.(Model), wm
}

// drain applies a command's message back into the model, following the
// refresh chain until no command remains.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		updated, next := m.Update(cmd())
		m = updated.(Model)
		cmd = next
	}
	return m
}

func TestCursorNavigation(t *testing.T) {
	m, _ := newTestModel()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after j, want 1", m.cursor)
	}

	// Does not run past the end.
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after k, want 0", m.cursor)
	}
}

func TestCloseRequiresConfirmation(t *testing.T) {
	m, wm := newTestModel()

	updated, _ := m.Update(keyMsg("c"))
	m = updated.(Model)
	if m.confirmClose != "0x01400003" {
		t.Fatalf("expected pending confirmation, got %q", m.confirmClose)
	}
	if len(wm.ops) != 0 {
		t.Fatalf("close must not run before confirmation, ops=%v", wm.ops)
	}

	// Answering anything but y cancels.
	updated, _ = m.Update(keyMsg("n"))
	m = updated.(Model)
	if len(wm.ops) != 0 {
		t.Fatalf("cancelled close still ran, ops=%v", wm.ops)
	}

	updated, _ = m.Update(keyMsg("c"))
	m = updated.(Model)
	updated, cmd := m.Update(keyMsg("y"))
	m = drain(t, updated.(Model), cmd)
	if len(wm.ops) == 0 || wm.ops[0] != "close 0x01400003" {
		t.Fatalf("expected confirmed close, ops=%v", wm.ops)
	}
}

func TestStateToggles(t *testing.T) {
	m, wm := newTestModel()

	updated, cmd := m.Update(keyMsg("f"))
	m = drain(t, updated.(Model), cmd)
	if len(wm.ops) == 0 || wm.ops[0] != "state 0x01400003 toggle,fullscreen" {
		t.Fatalf("unexpected ops %v", wm.ops)
	}

	wm.ops = nil
	updated, cmd = m.Update(keyMsg("m"))
	drain(t, updated.(Model), cmd)
	if len(wm.ops) != 2 ||
		wm.ops[0] != "state 0x01400003 toggle,maximized_vert" ||
		wm.ops[1] != "state 0x01400003 toggle,maximized_horz" {
		t.Fatalf("maximize should toggle both hints, ops=%v", wm.ops)
	}
}

func TestActivateSelection(t *testing.T) {
	m, wm := newTestModel()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	updated, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	drain(t, updated.(Model), cmd)
	if len(wm.ops) == 0 || wm.ops[0] != "activate 0x01600021" {
		t.Fatalf("unexpected ops %v", wm.ops)
	}
}
