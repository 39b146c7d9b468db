package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/infrastructure/catalog"
	"github.com/bnema/wndstack/internal/infrastructure/host"
	"github.com/bnema/wndstack/internal/infrastructure/scripting"
)

func newTestModel(t *testing.T) WindowsModel {
	t.Helper()
	ctx := context.Background()

	registry := catalog.NewRegistry()
	for _, w := range []struct {
		id       entity.WindowID
		category entity.Category
		policy   entity.OpenPolicy
	}{
		{"main", entity.CategoryMain, entity.OpenDoNothing},
		{"bag", entity.CategoryNormal, entity.OpenHideNormalsAndMain},
		{"shop", entity.CategoryNormal, entity.OpenHideAll},
	} {
		_, err := registry.Add(ctx, w.id, "ui/"+string(w.id), w.category, w.policy, entity.BackdropNone)
		require.NoError(t, err)
	}

	scene := host.NewScene()
	provider := scripting.NewProvider("")
	uc := usecase.NewManageWindowsUseCase(registry, host.NewFactory(scene, provider, ""), scene,
		usecase.WithRootWindow("main"))
	provider.SetNavigator(uc)

	return NewWindowsModel(ctx, styles.NewTheme(), WindowsModelConfig{
		Windows:   uc,
		Scene:     scene,
		SessionID: "20260101_120000_abcd",
	})
}

func typeText(m WindowsModel, text string) WindowsModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(WindowsModel)
}

// press sends a key and runs the resulting command synchronously.
func press(t *testing.T, m WindowsModel, msg tea.KeyMsg) WindowsModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(WindowsModel)
	if cmd == nil {
		return m
	}
	if done, ok := cmd().(commandDoneMsg); ok {
		next, _ = m.Update(done)
		m = next.(WindowsModel)
	}
	return m
}

func submit(t *testing.T, m WindowsModel, line string) WindowsModel {
	t.Helper()
	return press(t, typeText(m, line), tea.KeyMsg{Type: tea.KeyEnter})
}

func TestWindowsModel_OpenAndCloseTop(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "open main")
	m = submit(t, m, "open bag")
	m = submit(t, m, "open shop tab=potions")
	require.NoError(t, m.err)
	assert.Equal(t, []entity.WindowID{"bag", "shop"}, m.snapshot.StackIDs())
	assert.Equal(t, "open shop", m.statusMessage)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	require.NoError(t, m.err)
	assert.Equal(t, []entity.WindowID{"bag"}, m.snapshot.StackIDs())
	assert.Equal(t, []entity.WindowID{"bag"}, m.snapshot.Active())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.NoError(t, m.err)
	assert.Empty(t, m.snapshot.Stack)
	assert.Equal(t, []entity.WindowID{"main"}, m.snapshot.Active())
}

func TestWindowsModel_ErrorsAreShown(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "open nope")
	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, entity.ErrDescriptorNotFound)
	assert.Contains(t, m.View(), "not found")

	m = submit(t, m, "fly away")
	assert.ErrorContains(t, m.err, "unknown command")

	m = submit(t, m, "open main")
	assert.NoError(t, m.err)
}

func TestWindowsModel_CloseTopWithEmptyStack(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Equal(t, "No window to close", m.statusMessage)
}

func TestWindowsModel_ResetAndSpawn(t *testing.T) {
	m := newTestModel(t)

	m = submit(t, m, "open bag")
	m = submit(t, m, "spawn marker")
	require.NoError(t, m.err)
	assert.Len(t, m.host.Layer(entity.CategoryFollow).Nodes(), 1)

	m = submit(t, m, "reset follow")
	require.NoError(t, m.err)
	assert.Empty(t, m.snapshot.Shown)
	assert.Empty(t, m.snapshot.Cached)
	assert.Empty(t, m.host.Layer(entity.CategoryFollow).Nodes())
}

func TestWindowsModel_CommandHistory(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "open main")
	m = submit(t, m, "open bag")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "open bag", m.input.Value())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "open main", m.input.Value())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "open bag", m.input.Value())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.input.Value())
}

func TestWindowsModel_View(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "open bag")

	view := m.View()
	assert.Contains(t, view, "Windows")
	assert.Contains(t, view, "session abcd")
	assert.Contains(t, view, "bag")
	assert.Contains(t, view, "Layers")
}

func TestWindowsModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
