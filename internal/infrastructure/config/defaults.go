package config

import "time"

const (
	appName        = "wndstack"
	configFileName = "windows"
	configFileType = "yaml"

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultHookTimeout   = 2 * time.Second
	defaultMetricsListen = "127.0.0.1:9464"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Scripting: ScriptingConfig{
			HookTimeout: defaultHookTimeout,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  defaultMetricsListen,
		},
	}
}
