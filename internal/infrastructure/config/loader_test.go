package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
logging:
  level: DEBUG
  format: json
root_window: main
scripting:
  hook_timeout: 500ms
windows:
  - path: ui/main
    category: main
  - id: inventory
    path: ui/windows/bag
    script: bag
    category: Normal
    open_policy: hide-normals-and-main
    backdrop: dark
  - path: ui/popups/tip
    category: popup
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "windows.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestManager_Load(t *testing.T) {
	m, err := NewManager(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "main", cfg.RootWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.Scripting.HookTimeout)
	assert.Equal(t, defaultMetricsListen, cfg.Metrics.Listen)
	require.Len(t, cfg.Windows, 3)

	bag := cfg.Windows[1]
	assert.Equal(t, "normal", bag.Category)
	assert.Equal(t, "hide_normals_and_main", bag.OpenPolicy)
	assert.Equal(t, "dark", bag.Backdrop)
	assert.Equal(t, "do_nothing", cfg.Windows[0].OpenPolicy)
	assert.Equal(t, "none", cfg.Windows[2].Backdrop)
}

func TestManager_LoadEnvOverride(t *testing.T) {
	t.Setenv("WNDSTACK_LOG_LEVEL", "warn")

	m, err := NewManager(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, "warn", m.Get().Logging.Level)
}

func TestManager_LoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	m, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, defaultLogLevel, cfg.Logging.Level)
	assert.Empty(t, cfg.Windows)
	assert.Empty(t, m.GetConfigFile())
}

func TestManager_LoadRejectsInvalidConfig(t *testing.T) {
	m, err := NewManager(writeConfig(t, `
root_window: nowhere
windows:
  - path: ui/a
    category: sidebar
  - path: other/a
`))
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "windows[0].category")
	assert.Contains(t, err.Error(), `identity "a" already declared`)
	assert.Contains(t, err.Error(), `root_window "nowhere"`)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m, err := NewManager(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Windows[0].Path = "mutated"
	cfg.RootWindow = "mutated"

	assert.Equal(t, "ui/main", m.Get().Windows[0].Path)
	assert.Equal(t, "main", m.Get().RootWindow)
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got []*Config
	m.OnConfigChange(func(c *Config) { got = append(got, c) })

	updated := sampleConfig + `  - path: ui/windows/shop
    open_policy: hide_all
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.NoError(t, m.Reload())

	require.Len(t, got, 1)
	assert.Len(t, got[0].Windows, 4)

	require.NoError(t, os.WriteFile(path, []byte("windows:\n  - category: normal\n"), 0o644))
	require.Error(t, m.Reload())
	assert.Len(t, got, 1, "invalid reload does not notify")
	assert.Len(t, m.Get().Windows, 4, "invalid reload keeps the previous config")
}
