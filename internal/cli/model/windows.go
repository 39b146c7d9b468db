// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/infrastructure/host"
	"github.com/bnema/wndstack/internal/logging"
)

const maxCommandHistory = 100

// WindowManager is the session the model drives.
type WindowManager interface {
	Open(ctx context.Context, id entity.WindowID, args entity.Args) (*entity.Window, error)
	Close(ctx context.Context, id entity.WindowID) error
	BackToRoot(ctx context.Context) error
	Reset(ctx context.Context, clearFollow bool)
	Snapshot() usecase.WindowsSnapshot
}

// WindowsModelConfig holds the session the model drives.
type WindowsModelConfig struct {
	Windows   WindowManager
	Scene     *host.Scene
	SessionID string
}

// WindowsModel is the Bubble Tea model for an interactive window session.
type WindowsModel struct {
	// UI components
	input textinput.Model
	help  help.Model
	keys  styles.SessionKeyMap
	scene *styles.SceneRenderer

	// State
	snapshot      usecase.WindowsSnapshot
	history       []string
	historyIdx    int
	width         int
	height        int
	err           error
	statusMessage string

	// Dependencies
	ctx       context.Context
	windows   WindowManager
	host      *host.Scene
	sessionID string
	// mu serializes commands; the manager does no locking of its own.
	mu    *sync.Mutex
	theme *styles.Theme
}

// NewWindowsModel creates a new session model.
func NewWindowsModel(ctx context.Context, theme *styles.Theme, cfg WindowsModelConfig) WindowsModel {
	input := styles.NewCommandInput(theme)
	input.Focus()

	m := WindowsModel{
		input:     input,
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultSessionKeyMap(),
		scene:     styles.NewSceneRenderer(theme),
		width:     100,
		height:    30,
		ctx:       ctx,
		windows:   cfg.Windows,
		host:      cfg.Scene,
		sessionID: cfg.SessionID,
		mu:        &sync.Mutex{},
		theme:     theme,
	}
	if m.windows != nil {
		m.snapshot = m.windows.Snapshot()
	}
	return m
}

// commandDoneMsg is sent when a command has run against the session.
type commandDoneMsg struct {
	cmd      command
	err      error
	snapshot usecase.WindowsSnapshot
}

// Init implements tea.Model.
func (m WindowsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m WindowsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKeyMsg(msg); handled {
			return model, cmd
		}

	case commandDoneMsg:
		m.snapshot = msg.snapshot
		if msg.err != nil {
			m.err = msg.err
			m.statusMessage = ""
		} else {
			m.err = nil
			m.statusMessage = msg.cmd.String()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m WindowsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true

	case key.Matches(msg, m.keys.Submit):
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil, true
		}
		m.input.Reset()
		m.pushHistory(line)
		c, err := parseCommand(line)
		if err != nil {
			m.err = err
			m.statusMessage = ""
			return m, nil, true
		}
		return m, m.run(c), true

	case key.Matches(msg, m.keys.Previous):
		if m.historyIdx > 0 {
			m.historyIdx--
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Next):
		if m.historyIdx < len(m.history)-1 {
			m.historyIdx++
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		} else {
			m.historyIdx = len(m.history)
			m.input.Reset()
		}
		return m, nil, true

	case key.Matches(msg, m.keys.CloseTop):
		if len(m.snapshot.Stack) == 0 {
			m.statusMessage = "No window to close"
			return m, nil, true
		}
		top := m.snapshot.Stack[len(m.snapshot.Stack)-1]
		return m, m.run(command{kind: cmdClose, window: top.WindowID}), true

	case key.Matches(msg, m.keys.Back):
		return m, m.run(command{kind: cmdBack}), true

	case key.Matches(msg, m.keys.Reset):
		return m, m.run(command{kind: cmdReset}), true
	}
	return m, nil, false
}

func (m *WindowsModel) pushHistory(line string) {
	m.history = append(m.history, line)
	if len(m.history) > maxCommandHistory {
		m.history = m.history[len(m.history)-maxCommandHistory:]
	}
	m.historyIdx = len(m.history)
}

// run executes c against the session off the UI loop.
func (m WindowsModel) run(c command) tea.Cmd {
	return func() tea.Msg {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.windows == nil {
			return commandDoneMsg{cmd: c, err: errors.New("no window session")}
		}

		log := logging.FromContext(m.ctx)
		log.Debug().Str("command", c.String()).Msg("running session command")

		var err error
		switch c.kind {
		case cmdOpen:
			_, err = m.windows.Open(m.ctx, c.window, c.args)
		case cmdClose:
			err = m.windows.Close(m.ctx, c.window)
		case cmdBack:
			err = m.windows.BackToRoot(m.ctx)
		case cmdReset:
			m.windows.Reset(m.ctx, c.clearFollow)
		case cmdSpawn:
			if m.host == nil {
				err = errors.New("no host scene")
			} else {
				m.host.Spawn(entity.CategoryFollow, c.name)
			}
		}
		return commandDoneMsg{cmd: c, err: err, snapshot: m.windows.Snapshot()}
	}
}

// View implements tea.Model.
func (m WindowsModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.scene.RenderSnapshot(m.snapshot))
	b.WriteString("\n")
	if m.host != nil {
		b.WriteString(m.scene.RenderLayers(m.host))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
	case m.statusMessage != "":
		b.WriteString(t.Subtle.Render(fmt.Sprintf("%s %s", styles.IconCheck, m.statusMessage)))
	}
	b.WriteString("\n")

	b.WriteString(t.InputBox(m.input.View(), m.input.Focused()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m WindowsModel) renderHeader() string {
	t := m.theme

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	titleStyle := t.Title.MarginLeft(1)

	icon := iconStyle.Render(styles.IconWindow)
	title := titleStyle.Render("Windows")

	stats := t.Subtle.Render(fmt.Sprintf("  %s %d active  %s %d shown  %s %d cached  %s %d deep",
		styles.IconPlay, len(m.snapshot.Active()),
		styles.IconWindow, len(m.snapshot.Shown),
		styles.IconCache, len(m.snapshot.Cached),
		styles.IconStack, len(m.snapshot.Stack),
	))
	header := icon + title + stats
	if m.sessionID != "" {
		header += t.Subtle.Render("  session " + logging.ShortSessionID(m.sessionID))
	}
	return header
}
