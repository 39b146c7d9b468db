package config

import (
	"fmt"
	"strings"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateScripting(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)
	validationErrors = append(validationErrors, validateWindows(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateScripting(config *Config) []string {
	if config.Scripting.HookTimeout < 0 {
		return []string{"scripting.hook_timeout must be non-negative"}
	}
	return nil
}

func validateMetrics(config *Config) []string {
	if config.Metrics.Enabled && config.Metrics.Listen == "" {
		return []string{"metrics.listen is required when metrics.enabled is true"}
	}
	return nil
}

func validateWindows(config *Config) []string {
	var validationErrors []string
	seen := make(map[entity.WindowID]int, len(config.Windows))

	for i, w := range config.Windows {
		field := fmt.Sprintf("windows[%d]", i)
		if w.Path == "" {
			validationErrors = append(validationErrors, field+".path is required")
			continue
		}
		if _, err := entity.ParseCategory(w.Category); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.category: %v", field, err))
		}
		if _, err := entity.ParseOpenPolicy(w.OpenPolicy); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.open_policy: %v", field, err))
		}
		if _, err := entity.ParseBackdrop(w.Backdrop); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.backdrop: %v", field, err))
		}

		id := windowID(w)
		if first, ok := seen[id]; ok {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s: identity %q already declared by windows[%d]", field, id, first))
			continue
		}
		seen[id] = i
	}

	if config.RootWindow != "" {
		if _, ok := seen[entity.WindowID(config.RootWindow)]; !ok {
			validationErrors = append(validationErrors,
				fmt.Sprintf("root_window %q does not match any declared window", config.RootWindow))
		}
	}
	return validationErrors
}

func windowID(w WindowConfig) entity.WindowID {
	if w.ID != "" {
		return entity.WindowID(w.ID)
	}
	return entity.WindowID(entity.TemplateName(w.Path))
}
