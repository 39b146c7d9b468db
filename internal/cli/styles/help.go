package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// SessionKeyMap defines keybindings for the interactive session.
type SessionKeyMap struct {
	Submit   key.Binding
	Previous key.Binding
	Next     key.Binding
	CloseTop key.Binding
	Back     key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.CloseTop, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Previous, k.Next},
		{k.CloseTop, k.Back, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultSessionKeyMap returns the default session keybindings.
func DefaultSessionKeyMap() SessionKeyMap {
	return SessionKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		CloseTop: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close top window"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "back to root"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
