// Package scripting builds window content from JavaScript files run by sobek.
package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grafana/sobek"

	"github.com/bnema/wndstack/internal/application/port"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/logging"
)

const (
	defaultHookTimeout = 2 * time.Second
	scriptExt          = ".js"
)

// Provider implements port.ContentProvider. Descriptors without a script get
// content that only logs its transitions.
type Provider struct {
	dir         string
	hookTimeout time.Duration

	mu        sync.Mutex
	programs  map[string]*sobek.Program
	navigator port.WindowNavigator
}

var _ port.ContentProvider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithHookTimeout bounds how long one hook may run. Zero disables the bound.
func WithHookTimeout(d time.Duration) Option {
	return func(p *Provider) { p.hookTimeout = d }
}

// NewProvider loads scripts from dir.
func NewProvider(dir string, opts ...Option) *Provider {
	p := &Provider{
		dir:         dir,
		hookTimeout: defaultHookTimeout,
		programs:    make(map[string]*sobek.Program),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetNavigator gives scripts access to the window manager. It must be called
// before the first hook runs; scripts see a nil manager otherwise.
func (p *Provider) SetNavigator(nav port.WindowNavigator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigator = nav
}

func (p *Provider) currentNavigator() port.WindowNavigator {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.navigator
}

// NewContent evaluates the descriptor's script in a fresh runtime.
func (p *Provider) NewContent(ctx context.Context, d *entity.Descriptor) (entity.Content, error) {
	if d.Script == "" {
		return &logContent{id: d.ID}, nil
	}

	program, err := p.program(d.Script)
	if err != nil {
		return nil, err
	}

	c := newScriptContent(d, p.currentNavigator, p.hookTimeout)
	if err := c.load(ctx, program); err != nil {
		return nil, fmt.Errorf("evaluate script %s: %w", d.Script, err)
	}
	logging.FromContext(ctx).Debug().
		Str("window_id", string(d.ID)).
		Str("script", d.Script).
		Strs("hooks", c.hookNames()).
		Msg("window script loaded")
	return c, nil
}

// program compiles a script once and reuses it for later instances.
func (p *Provider) program(script string) (*sobek.Program, error) {
	path := p.scriptPath(script)

	p.mu.Lock()
	defer p.mu.Unlock()
	if prg, ok := p.programs[path]; ok {
		return prg, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	prg, err := sobek.Compile(path, string(src), false)
	if err != nil {
		return nil, fmt.Errorf("compile script %s: %w", script, err)
	}
	p.programs[path] = prg
	return prg, nil
}

func (p *Provider) scriptPath(script string) string {
	if filepath.Ext(script) == "" {
		script += scriptExt
	}
	if filepath.IsAbs(script) || p.dir == "" {
		return script
	}
	return filepath.Join(p.dir, script)
}

// logContent is used for windows without a script.
type logContent struct {
	id entity.WindowID
}

func (c *logContent) OnInit(ctx context.Context)                    { c.log(ctx, "init", nil) }
func (c *logContent) OnEnter(ctx context.Context, args entity.Args)  { c.log(ctx, "enter", args) }
func (c *logContent) OnExit(ctx context.Context, args entity.Args)   { c.log(ctx, "exit", args) }
func (c *logContent) OnPause(ctx context.Context, args entity.Args)  { c.log(ctx, "pause", args) }
func (c *logContent) OnResume(ctx context.Context, args entity.Args) { c.log(ctx, "resume", args) }

func (c *logContent) log(ctx context.Context, hook string, args entity.Args) {
	ev := logging.FromContext(ctx).Debug().Str("window_id", string(c.id)).Str("hook", hook)
	if len(args) > 0 {
		ev = ev.Interface("args", args)
	}
	ev.Msg("window hook")
}
