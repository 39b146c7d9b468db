// Package cli wires the window manager for the command-line frontends.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/domain/build"
	"github.com/bnema/wndstack/internal/infrastructure/catalog"
	"github.com/bnema/wndstack/internal/infrastructure/config"
	"github.com/bnema/wndstack/internal/infrastructure/metrics"
	"github.com/bnema/wndstack/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Catalog is shared by every session and follows config reloads.
	Catalog *catalog.Registry
	Metrics *metrics.WindowMetrics

	configManager *config.Manager
	metricsServer *http.Server

	// Context with logger
	ctx    context.Context
	logger zerolog.Logger
}

// NewApp loads configuration and registers the configured windows.
// An empty configFile uses the default search locations.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	registry := catalog.NewRegistry()
	descriptors, err := config.ToDescriptors(cfg)
	if err != nil {
		return nil, fmt.Errorf("build window descriptors: %w", err)
	}
	if _, err := registry.Sync(ctx, descriptors); err != nil {
		return nil, fmt.Errorf("register windows: %w", err)
	}

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Int("windows", registry.Len()).
		Msg("configuration loaded")

	return &App{
		Config:        cfg,
		Theme:         styles.NewTheme(),
		Catalog:       registry,
		Metrics:       metrics.NewWindowMetrics(),
		configManager: mgr,
		ctx:           ctx,
		logger:        logger,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return &a.logger
}

// SetLogger replaces the application logger, for frontends that own the terminal.
func (a *App) SetLogger(logger zerolog.Logger) {
	a.logger = logger
	a.ctx = logging.WithContext(context.Background(), logger)
}

// ConfigFile returns the config file in use, empty when running on defaults.
func (a *App) ConfigFile() string {
	return a.configManager.GetConfigFile()
}

// WatchConfig keeps the catalog in sync with the config file. Windows added to
// the file become available to every session; changed or removed ones are
// reported and left as they were.
func (a *App) WatchConfig() error {
	a.configManager.OnConfigChange(a.syncCatalog)
	return a.configManager.Watch()
}

func (a *App) syncCatalog(cfg *config.Config) {
	log := a.logger.With().Str("component", "config").Logger()
	descriptors, err := config.ToDescriptors(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring reloaded config")
		return
	}
	res, err := a.Catalog.Sync(logging.WithContext(context.Background(), log), descriptors)
	if err != nil {
		log.Warn().Err(err).Msg("some windows were not reloaded")
	}
	log.Info().
		Int("added", len(res.Added)).
		Int("unchanged", res.Unchanged).
		Int("rejected", len(res.Rejected)).
		Int("missing", len(res.Missing)).
		Msg("window catalog reloaded")
}

// ServeMetrics exposes the Prometheus endpoint when enabled in config.
func (a *App) ServeMetrics() {
	if !a.Config.Metrics.Enabled || a.metricsServer != nil {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.Metrics.Handler())
	a.metricsServer = &http.Server{
		Addr:              a.Config.Metrics.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		a.logger.Info().Str("listen", a.Config.Metrics.Listen).Msg("serving metrics")
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return a.metricsServer.Shutdown(ctx)
	}
	return nil
}
