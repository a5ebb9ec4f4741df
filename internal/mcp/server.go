package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wmctl/pkg/wmctrl"
)

const (
	ServerName    = "wmctl"
	ServerVersion = "0.1.0"
)

// WindowManager is the subset of the wmctrl client the MCP tools use.
// Declared as an interface so handler tests can substitute a fake.
type WindowManager interface {
	List() ([]wmctrl.Window, error)
	FindByTitle(substr string) (wmctrl.Window, error)
	Transform(id string, t wmctrl.Transformation) error
	Close(id string) error
	ChangeState(id string, s wmctrl.State) error
	Activate(id string) error
	ListDesktops() ([]wmctrl.Desktop, error)
	SwitchDesktop(desktop int) error
}

// Server exposes the wmctrl wrapper as MCP tools over stdio.
type Server struct {
	mcpServer *mcpsdk.Server
	wm        WindowManager
}

// NewServer creates an MCP server backed by the given window manager client.
func NewServer(wm WindowManager) *Server {
	s := &Server{wm: wm}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all windows the window manager currently knows about. Each record is a point-in-time snapshot: the window id may become stale if the window closes afterwards.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "find_window",
		Description: "Find the first window whose title contains the given substring.",
	}, s.handleFindWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_resize_window",
		Description: "Move and/or resize a window. Omitted geometry fields are left unchanged. The request is fire-and-forget: success means the window manager accepted it.",
	}, s.handleMoveResizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Ask the window manager to close a window gracefully. The application may refuse or prompt; this is not a forced kill.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "change_window_state",
		Description: "Add, remove, or toggle a window-manager hint on a window (fullscreen, maximized_vert, maximized_horz, shaded, sticky, above, below, and the rest of wmctrl's vocabulary).",
	}, s.handleChangeWindowState)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "activate_window",
		Description: "Bring a window to the current desktop and raise it.",
	}, s.handleActivateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_desktops",
		Description: "List virtual desktops with their geometry and which one is current.",
	}, s.handleListDesktops)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "switch_desktop",
		Description: "Switch the active virtual desktop.",
	}, s.handleSwitchDesktop)
}
