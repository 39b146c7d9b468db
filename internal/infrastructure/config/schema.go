package config

import "time"

// Config represents the complete configuration for wndstack.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
	// RootWindow is the window BackToRoot returns to.
	RootWindow string `mapstructure:"root_window" yaml:"root_window" json:"root_window,omitempty" jsonschema:"description=Window identity opened by back-to-root"`
	// TemplatesDir, when set, makes window construction fail for templates missing on disk.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir" json:"templates_dir,omitempty"`
	// ScriptsDir is where window scripts are looked up.
	ScriptsDir string          `mapstructure:"scripts_dir" yaml:"scripts_dir" json:"scripts_dir,omitempty"`
	Scripting  ScriptingConfig `mapstructure:"scripting" yaml:"scripting" json:"scripting"`
	Metrics    MetricsConfig   `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
	Windows    []WindowConfig  `mapstructure:"windows" yaml:"windows" json:"windows"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// ScriptingConfig tunes the script runtime.
type ScriptingConfig struct {
	// HookTimeout bounds a single hook call; 0 disables the bound.
	HookTimeout time.Duration `mapstructure:"hook_timeout" yaml:"hook_timeout" json:"hook_timeout" jsonschema:"type=string,description=Go duration such as 2s"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Listen  string `mapstructure:"listen" yaml:"listen" json:"listen"`
}

// WindowConfig declares one window kind.
type WindowConfig struct {
	// ID defaults to the last segment of Path.
	ID         string `mapstructure:"id" yaml:"id" json:"id,omitempty"`
	Path       string `mapstructure:"path" yaml:"path" json:"path"`
	Script     string `mapstructure:"script" yaml:"script" json:"script,omitempty"`
	Category   string `mapstructure:"category" yaml:"category" json:"category,omitempty" jsonschema:"enum=normal,enum=main,enum=fixed,enum=popup,enum=follow"`
	OpenPolicy string `mapstructure:"open_policy" yaml:"open_policy" json:"open_policy,omitempty" jsonschema:"enum=do_nothing,enum=hide_normals_and_main,enum=hide_all"`
	Backdrop   string `mapstructure:"backdrop" yaml:"backdrop" json:"backdrop,omitempty" jsonschema:"enum=none,enum=transparent,enum=dark"`
}
