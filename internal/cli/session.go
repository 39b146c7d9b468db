package cli

import (
	"context"

	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/infrastructure/host"
	"github.com/bnema/wndstack/internal/infrastructure/scenario"
	"github.com/bnema/wndstack/internal/infrastructure/scripting"
	"github.com/bnema/wndstack/internal/logging"
)

// Session is one UI session: its own scene, registries and stack.
type Session struct {
	ID      string
	Windows *usecase.ManageWindowsUseCase
	Scene   *host.Scene

	ctx context.Context
}

// Ctx returns the session context, whose logger carries the session ID.
func (s *Session) Ctx() context.Context {
	return s.ctx
}

// NewSession builds an independent session on top of the shared catalog.
func (a *App) NewSession(ctx context.Context) *Session {
	id := logging.GenerateSessionID()
	ctx = logging.WithSessionID(ctx, logging.ShortSessionID(id))

	scene := host.NewScene()
	provider := scripting.NewProvider(a.Config.ScriptsDir,
		scripting.WithHookTimeout(a.Config.Scripting.HookTimeout))
	factory := host.NewFactory(scene, provider, a.Config.TemplatesDir)

	windows := usecase.NewManageWindowsUseCase(a.Catalog, factory, scene,
		usecase.WithRootWindow(entity.WindowID(a.Config.RootWindow)),
		usecase.WithMetrics(a.Metrics),
	)
	provider.SetNavigator(windows)

	logging.FromContext(ctx).Debug().Msg("session created")
	return &Session{
		ID:      id,
		Windows: windows,
		Scene:   scene,
		ctx:     ctx,
	}
}

// ScenarioSessions adapts NewSession for the scenario runner.
func (a *App) ScenarioSessions() scenario.SessionFactory {
	return func(ctx context.Context) (scenario.Session, error) {
		return a.NewSession(ctx).Windows, nil
	}
}
