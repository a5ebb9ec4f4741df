package mcp

// WindowInfo describes one window snapshot in tool output.
type WindowInfo struct {
	ID      string `json:"id"`
	Desktop int    `json:"desktop"`
	PID     int    `json:"pid"`
	Host    string `json:"host"`
	Title   string `json:"title"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	TitleContains string `json:"title_contains,omitempty" jsonschema:"Optional substring filter over window titles"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// FindWindowInput is the input for the find_window tool.
type FindWindowInput struct {
	Title string `json:"title" jsonschema:"required,Substring to look for in window titles"`
}

// FindWindowOutput is the output for the find_window tool.
type FindWindowOutput struct {
	Window WindowInfo `json:"window"`
}

// MoveResizeWindowInput is the input for the move_resize_window tool.
type MoveResizeWindowInput struct {
	WindowID string `json:"window_id,omitempty" jsonschema:"Window id from list_windows (0x-prefixed hex). Either window_id or title is required."`
	Title    string `json:"title,omitempty" jsonschema:"Title substring used to look the window up when window_id is not given"`
	X        *int   `json:"x,omitempty" jsonschema:"New x position. Omit to keep the current value."`
	Y        *int   `json:"y,omitempty" jsonschema:"New y position. Omit to keep the current value."`
	Width    *int   `json:"width,omitempty" jsonschema:"New width. Omit to keep the current value."`
	Height   *int   `json:"height,omitempty" jsonschema:"New height. Omit to keep the current value."`
}

// MoveResizeWindowOutput is the output for the move_resize_window tool.
type MoveResizeWindowOutput struct {
	WindowID string `json:"window_id"`
	Geometry string `json:"geometry"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct {
	WindowID string `json:"window_id,omitempty" jsonschema:"Window id from list_windows. Either window_id or title is required."`
	Title    string `json:"title,omitempty" jsonschema:"Title substring used to look the window up when window_id is not given"`
}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	WindowID string `json:"window_id"`
}

// ChangeWindowStateInput is the input for the change_window_state tool.
type ChangeWindowStateInput struct {
	WindowID string `json:"window_id,omitempty" jsonschema:"Window id from list_windows. Either window_id or title is required."`
	Title    string `json:"title,omitempty" jsonschema:"Title substring used to look the window up when window_id is not given"`
	Action   string `json:"action" jsonschema:"required,One of add, remove, toggle"`
	Property string `json:"property" jsonschema:"required,Window-manager hint: modal, sticky, maximized_vert, maximized_horz, shaded, skip_taskbar, skip_pager, hidden, fullscreen, above, below"`
}

// ChangeWindowStateOutput is the output for the change_window_state tool.
type ChangeWindowStateOutput struct {
	WindowID string `json:"window_id"`
	State    string `json:"state"`
}

// ActivateWindowInput is the input for the activate_window tool.
type ActivateWindowInput struct {
	WindowID string `json:"window_id,omitempty" jsonschema:"Window id from list_windows. Either window_id or title is required."`
	Title    string `json:"title,omitempty" jsonschema:"Title substring used to look the window up when window_id is not given"`
}

// ActivateWindowOutput is the output for the activate_window tool.
type ActivateWindowOutput struct {
	WindowID string `json:"window_id"`
}

// DesktopInfo describes one virtual desktop in tool output.
type DesktopInfo struct {
	Index    int    `json:"index"`
	Current  bool   `json:"current"`
	Geometry string `json:"geometry"`
	Name     string `json:"name"`
}

// ListDesktopsInput is the input for the list_desktops tool.
type ListDesktopsInput struct{}

// ListDesktopsOutput is the output for the list_desktops tool.
type ListDesktopsOutput struct {
	Desktops []DesktopInfo `json:"desktops"`
}

// SwitchDesktopInput is the input for the switch_desktop tool.
type SwitchDesktopInput struct {
	Desktop int `json:"desktop" jsonschema:"required,Desktop index from list_desktops"`
}

// SwitchDesktopOutput is the output for the switch_desktop tool.
type SwitchDesktopOutput struct {
	Desktop int `json:"desktop"`
}
