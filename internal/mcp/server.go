// Package mcp exposes a window manager session as MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/logging"
)

const ServerName = "wndstack"

// WindowManager is the session the tools drive.
type WindowManager interface {
	Open(ctx context.Context, id entity.WindowID, args entity.Args) (*entity.Window, error)
	Close(ctx context.Context, id entity.WindowID) error
	BackToRoot(ctx context.Context) error
	Reset(ctx context.Context, clearFollow bool)
	Snapshot() usecase.WindowsSnapshot
}

// Server is the MCP server for one window manager session.
// Tool calls may arrive concurrently; they are serialized because the
// manager itself does no locking.
type Server struct {
	mcpServer *mcpsdk.Server
	wm        WindowManager
	logger    zerolog.Logger

	mu sync.Mutex
}

// NewServer creates the server and registers its tools.
func NewServer(wm WindowManager, logger zerolog.Logger, version string) *Server {
	s := &Server{
		wm:     wm,
		logger: logger.With().Str("component", "mcp").Logger(),
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: version,
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

// MCPServer returns the underlying SDK server, for custom transports.
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.mcpServer
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_window",
		Description: "Open a window by identity. A cached instance is resumed instead of rebuilt. Depending on its open policy the window hides other windows until it is closed. Opening a window that is already shown returns it with already_open set.",
	}, s.handleOpenWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close a shown normal or popup window. A normal window must be the most recently opened one still shown; closing it restores the windows its opening hid.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "back_to_root",
		Description: "Close every normal window, drop the navigation history and show the root window.",
	}, s.handleBackToRoot)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "reset",
		Description: "Destroy every window instance, shown or cached, and clear the navigation history.",
	}, s.handleReset)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "status",
		Description: "Return the shown windows, the cached windows and the navigation stack.",
	}, s.handleStatus)
}

func (s *Server) withLogger(ctx context.Context, tool string) context.Context {
	return logging.WithContext(ctx, s.logger.With().Str("tool", tool).Logger())
}

func (s *Server) handleOpenWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args OpenWindowInput) (*mcpsdk.CallToolResult, OpenWindowOutput, error) {
	if args.WindowID == "" {
		return nil, OpenWindowOutput{}, fmt.Errorf("window_id is required")
	}
	ctx = s.withLogger(ctx, "open_window")

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.wm.Open(ctx, entity.WindowID(args.WindowID), entity.Args(args.Args))
	alreadyOpen := errors.Is(err, entity.ErrAlreadyOpen)
	if err != nil && !alreadyOpen {
		return nil, OpenWindowOutput{}, err
	}
	return nil, OpenWindowOutput{
		InstanceID:  w.InstanceID(),
		AlreadyOpen: alreadyOpen,
		State:       s.wm.Snapshot(),
	}, nil
}

func (s *Server) handleCloseWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args CloseWindowInput) (*mcpsdk.CallToolResult, StateOutput, error) {
	if args.WindowID == "" {
		return nil, StateOutput{}, fmt.Errorf("window_id is required")
	}
	ctx = s.withLogger(ctx, "close_window")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wm.Close(ctx, entity.WindowID(args.WindowID)); err != nil {
		return nil, StateOutput{}, err
	}
	return nil, StateOutput{State: s.wm.Snapshot()}, nil
}

func (s *Server) handleBackToRoot(ctx context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, StateOutput, error) {
	ctx = s.withLogger(ctx, "back_to_root")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wm.BackToRoot(ctx); err != nil {
		return nil, StateOutput{}, err
	}
	return nil, StateOutput{State: s.wm.Snapshot()}, nil
}

func (s *Server) handleReset(ctx context.Context, _ *mcpsdk.CallToolRequest, args ResetInput) (*mcpsdk.CallToolResult, StateOutput, error) {
	ctx = s.withLogger(ctx, "reset")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.wm.Reset(ctx, args.ClearFollow)
	return nil, StateOutput{State: s.wm.Snapshot()}, nil
}

func (s *Server) handleStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, StateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return nil, StateOutput{State: s.wm.Snapshot()}, nil
}
