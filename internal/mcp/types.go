package mcp

import "github.com/bnema/wndstack/internal/application/usecase"

// OpenWindowInput is the input for the open_window tool.
type OpenWindowInput struct {
	WindowID string         `json:"window_id" jsonschema:"Identity of the window to open"`
	Args     map[string]any `json:"args,omitempty" jsonschema:"Free-form arguments handed to the window content"`
}

// OpenWindowOutput is the output for the open_window tool.
type OpenWindowOutput struct {
	InstanceID  string                  `json:"instance_id"`
	AlreadyOpen bool                    `json:"already_open"`
	State       usecase.WindowsSnapshot `json:"state"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct {
	WindowID string `json:"window_id" jsonschema:"Identity of the shown window to close"`
}

// ResetInput is the input for the reset tool.
type ResetInput struct {
	ClearFollow bool `json:"clear_follow,omitempty" jsonschema:"Also destroy host objects in the follow layer"`
}

// EmptyInput is used by tools without arguments.
type EmptyInput struct{}

// StateOutput wraps the manager state returned by most tools.
type StateOutput struct {
	State usecase.WindowsSnapshot `json:"state"`
}
