package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager. An empty configFile searches
// the XDG config directory and the working directory for windows.yaml.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("WNDSTACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "WNDSTACK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WNDSTACK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WNDSTACK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WNDSTACK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: defaults apply and no windows are declared.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid YAML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = defaultLogFormat
	}

	config.RootWindow = strings.TrimSpace(config.RootWindow)
	config.TemplatesDir = strings.TrimSpace(config.TemplatesDir)
	config.ScriptsDir = strings.TrimSpace(config.ScriptsDir)
	config.Metrics.Listen = strings.TrimSpace(config.Metrics.Listen)

	for i := range config.Windows {
		w := &config.Windows[i]
		w.ID = strings.TrimSpace(w.ID)
		w.Path = strings.TrimSpace(w.Path)
		w.Script = strings.TrimSpace(w.Script)
		w.Category = normalizeEnum(w.Category, "normal")
		w.OpenPolicy = normalizeEnum(w.OpenPolicy, "do_nothing")
		w.Backdrop = normalizeEnum(w.Backdrop, "none")
	}
}

func normalizeEnum(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, "-", "_")
	if value == "" {
		return fallback
	}
	return value
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Windows = append([]WindowConfig(nil), m.config.Windows...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("root_window", defaults.RootWindow)
	m.viper.SetDefault("templates_dir", defaults.TemplatesDir)
	m.viper.SetDefault("scripts_dir", defaults.ScriptsDir)
	m.viper.SetDefault("scripting.hook_timeout", defaults.Scripting.HookTimeout)
	m.viper.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	m.viper.SetDefault("metrics.listen", defaults.Metrics.Listen)
}
