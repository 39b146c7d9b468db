// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion = "\uf02b" // tag
	IconCode    = "\uf121" // code
	IconGo      = "\ue627" // go gopher
	IconArrow   = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconCache   = "\uf49e" // cache

	// Windows
	IconWindow = "\uf2d2" // window
	IconStack  = "\uf24d" // clone/stack
	IconLayer  = "\uf5fd" // layer-group
	IconPlay   = "\uf04b" // play (active)
	IconPause  = "\uf04c" // pause
	IconStop   = "\uf04d" // stop (closed)
)
