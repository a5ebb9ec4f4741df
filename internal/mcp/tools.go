package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wmctl/pkg/wmctrl"
)

func windowInfo(w wmctrl.Window) WindowInfo {
	return WindowInfo{
		ID:      w.ID,
		Desktop: w.Desktop,
		PID:     w.PID,
		Host:    w.Host,
		Title:   w.Title,
	}
}

// resolveWindowID picks the target window: an explicit id wins, otherwise
// the title substring is looked up. One of the two is required.
func (s *Server) resolveWindowID(windowID, title string) (string, error) {
	if strings.TrimSpace(windowID) != "" {
		return windowID, nil
	}
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("either window_id or title is required")
	}
	win, err := s.wm.FindByTitle(title)
	if err != nil {
		return "", err
	}
	return win.ID, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.wm.List()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		if args.TitleContains != "" && !strings.Contains(w.Title, args.TitleContains) {
			continue
		}
		out.Windows = append(out.Windows, windowInfo(w))
	}
	return nil, out, nil
}

func (s *Server) handleFindWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FindWindowInput) (*mcpsdk.CallToolResult, FindWindowOutput, error) {
	win, err := s.wm.FindByTitle(args.Title)
	if err != nil {
		return nil, FindWindowOutput{}, err
	}
	return nil, FindWindowOutput{Window: windowInfo(win)}, nil
}

// geometryField maps an optional JSON field onto wmctrl's "leave
// unchanged" sentinel.
func geometryField(v *int) int {
	if v == nil {
		return wmctrl.Unchanged
	}
	return *v
}

func (s *Server) handleMoveResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveResizeWindowInput) (*mcpsdk.CallToolResult, MoveResizeWindowOutput, error) {
	id, err := s.resolveWindowID(args.WindowID, args.Title)
	if err != nil {
		return nil, MoveResizeWindowOutput{}, err
	}

	tr := wmctrl.Transformation{
		X:      geometryField(args.X),
		Y:      geometryField(args.Y),
		Width:  geometryField(args.Width),
		Height: geometryField(args.Height),
	}
	if err := s.wm.Transform(id, tr); err != nil {
		return nil, MoveResizeWindowOutput{}, err
	}
	return nil, MoveResizeWindowOutput{WindowID: id, Geometry: tr.String()}, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CloseWindowInput) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	id, err := s.resolveWindowID(args.WindowID, args.Title)
	if err != nil {
		return nil, CloseWindowOutput{}, err
	}
	if err := s.wm.Close(id); err != nil {
		return nil, CloseWindowOutput{}, err
	}
	return nil, CloseWindowOutput{WindowID: id}, nil
}

func (s *Server) handleChangeWindowState(_ context.Context, _ *mcpsdk.CallToolRequest, args ChangeWindowStateInput) (*mcpsdk.CallToolResult, ChangeWindowStateOutput, error) {
	id, err := s.resolveWindowID(args.WindowID, args.Title)
	if err != nil {
		return nil, ChangeWindowStateOutput{}, err
	}

	action, err := wmctrl.ParseAction(args.Action)
	if err != nil {
		return nil, ChangeWindowStateOutput{}, err
	}
	property, err := wmctrl.ParseProperty(args.Property)
	if err != nil {
		return nil, ChangeWindowStateOutput{}, err
	}

	state := wmctrl.NewState(action, property)
	if err := s.wm.ChangeState(id, state); err != nil {
		return nil, ChangeWindowStateOutput{}, err
	}
	return nil, ChangeWindowStateOutput{WindowID: id, State: state.String()}, nil
}

func (s *Server) handleActivateWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ActivateWindowInput) (*mcpsdk.CallToolResult, ActivateWindowOutput, error) {
	id, err := s.resolveWindowID(args.WindowID, args.Title)
	if err != nil {
		return nil, ActivateWindowOutput{}, err
	}
	if err := s.wm.Activate(id); err != nil {
		return nil, ActivateWindowOutput{}, err
	}
	return nil, ActivateWindowOutput{WindowID: id}, nil
}

func (s *Server) handleListDesktops(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListDesktopsInput) (*mcpsdk.CallToolResult, ListDesktopsOutput, error) {
	desktops, err := s.wm.ListDesktops()
	if err != nil {
		return nil, ListDesktopsOutput{}, err
	}

	out := ListDesktopsOutput{Desktops: make([]DesktopInfo, 0, len(desktops))}
	for _, d := range desktops {
		out.Desktops = append(out.Desktops, DesktopInfo{
			Index:    d.Index,
			Current:  d.Current,
			Geometry: d.Geometry,
			Name:     d.Name,
		})
	}
	return nil, out, nil
}

func (s *Server) handleSwitchDesktop(_ context.Context, _ *mcpsdk.CallToolRequest, args SwitchDesktopInput) (*mcpsdk.CallToolResult, SwitchDesktopOutput, error) {
	if args.Desktop < 0 {
		return nil, SwitchDesktopOutput{}, fmt.Errorf("desktop index must not be negative, got %d", args.Desktop)
	}
	if err := s.wm.SwitchDesktop(args.Desktop); err != nil {
		return nil, SwitchDesktopOutput{}, err
	}
	return nil, SwitchDesktopOutput{Desktop: args.Desktop}, nil
}
