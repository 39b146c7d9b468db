package scripting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grafana/sobek"

	"github.com/bnema/wndstack/internal/application/port"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/logging"
)

const (
	hookInit   = "onInit"
	hookEnter  = "onEnter"
	hookExit   = "onExit"
	hookPause  = "onPause"
	hookResume = "onResume"
)

var hookOrder = []string{hookInit, hookEnter, hookExit, hookPause, hookResume}

var errCloseSelf = errors.New("a window cannot close itself from its own hook")

// scriptContent runs one window instance's hooks in its own runtime.
type scriptContent struct {
	descriptor *entity.Descriptor
	rt         *sobek.Runtime
	hooks      map[string]sobek.Callable
	navigator  func() port.WindowNavigator
	timeout    time.Duration

	// ctx is the context of the hook currently running, used by the wm and log bindings.
	ctx context.Context
}

func newScriptContent(d *entity.Descriptor, nav func() port.WindowNavigator, timeout time.Duration) *scriptContent {
	return &scriptContent{
		descriptor: d,
		rt:         sobek.New(),
		hooks:      make(map[string]sobek.Callable),
		navigator:  nav,
		timeout:    timeout,
		ctx:        context.Background(),
	}
}

func (c *scriptContent) load(ctx context.Context, program *sobek.Program) error {
	c.ctx = ctx
	c.rt.SetFieldNameMapper(sobek.TagFieldNameMapper("json", true))
	if err := c.installBindings(); err != nil {
		return err
	}
	if _, err := c.rt.RunProgram(program); err != nil {
		return err
	}
	for _, name := range hookOrder {
		if fn, ok := sobek.AssertFunction(c.rt.Get(name)); ok {
			c.hooks[name] = fn
		}
	}
	return nil
}

func (c *scriptContent) hookNames() []string {
	var names []string
	for _, name := range hookOrder {
		if _, ok := c.hooks[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

func (c *scriptContent) OnInit(ctx context.Context)                    { c.call(ctx, hookInit, nil) }
func (c *scriptContent) OnEnter(ctx context.Context, args entity.Args)  { c.call(ctx, hookEnter, args) }
func (c *scriptContent) OnExit(ctx context.Context, args entity.Args)   { c.call(ctx, hookExit, args) }
func (c *scriptContent) OnPause(ctx context.Context, args entity.Args)  { c.call(ctx, hookPause, args) }
func (c *scriptContent) OnResume(ctx context.Context, args entity.Args) { c.call(ctx, hookResume, args) }

// call runs a hook. Hooks cannot fail the transition; script errors are logged.
func (c *scriptContent) call(ctx context.Context, hook string, args entity.Args) {
	fn, ok := c.hooks[hook]
	if !ok {
		return
	}

	outer := c.ctx
	c.ctx = ctx
	defer func() { c.ctx = outer }()

	var jsArgs []sobek.Value
	if hook != hookInit {
		if args == nil {
			args = entity.Args{}
		}
		jsArgs = append(jsArgs, c.rt.ToValue(map[string]any(args)))
	}

	if c.timeout > 0 {
		timer := time.AfterFunc(c.timeout, func() {
			c.rt.Interrupt(fmt.Sprintf("%s exceeded %s", hook, c.timeout))
		})
		defer func() {
			timer.Stop()
			c.rt.ClearInterrupt()
		}()
	}

	if _, err := fn(sobek.Undefined(), jsArgs...); err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("window_id", string(c.descriptor.ID)).
			Str("hook", hook).
			Msg("window script hook failed")
	}
}

func (c *scriptContent) installBindings() error {
	win := c.rt.NewObject()
	for k, v := range map[string]string{
		"id":       string(c.descriptor.ID),
		"name":     c.descriptor.Name,
		"path":     c.descriptor.Path,
		"category": c.descriptor.Category.String(),
	} {
		if err := win.Set(k, v); err != nil {
			return err
		}
	}
	if err := c.rt.Set("window", win); err != nil {
		return err
	}

	wm := c.rt.NewObject()
	if err := wm.Set("open", c.jsOpen); err != nil {
		return err
	}
	if err := wm.Set("close", c.jsClose); err != nil {
		return err
	}
	if err := wm.Set("backToRoot", c.jsBackToRoot); err != nil {
		return err
	}
	if err := c.rt.Set("wm", wm); err != nil {
		return err
	}

	log := c.rt.NewObject()
	for level, fn := range map[string]func(sobek.FunctionCall) sobek.Value{
		"debug": c.jsLog("debug"),
		"info":  c.jsLog("info"),
		"warn":  c.jsLog("warn"),
		"error": c.jsLog("error"),
	} {
		if err := log.Set(level, fn); err != nil {
			return err
		}
	}
	return c.rt.Set("log", log)
}

func (c *scriptContent) nav() port.WindowNavigator {
	nav := c.navigator()
	if nav == nil {
		panic(c.rt.NewGoError(errors.New("window manager is not available")))
	}
	return nav
}

func (c *scriptContent) jsOpen(call sobek.FunctionCall) sobek.Value {
	id := entity.WindowID(call.Argument(0).String())
	var args entity.Args
	if exported, ok := call.Argument(1).Export().(map[string]any); ok {
		args = entity.Args(exported)
	}

	w, err := c.nav().Open(c.ctx, id, args)
	if err != nil && !errors.Is(err, entity.ErrAlreadyOpen) {
		panic(c.rt.NewGoError(err))
	}
	if w == nil {
		return sobek.Undefined()
	}
	return c.rt.ToValue(w.InstanceID())
}

func (c *scriptContent) jsClose(call sobek.FunctionCall) sobek.Value {
	id := entity.WindowID(call.Argument(0).String())
	if id == c.descriptor.ID {
		panic(c.rt.NewGoError(errCloseSelf))
	}
	if err := c.nav().Close(c.ctx, id); err != nil {
		panic(c.rt.NewGoError(err))
	}
	return sobek.Undefined()
}

func (c *scriptContent) jsBackToRoot(sobek.FunctionCall) sobek.Value {
	if err := c.nav().BackToRoot(c.ctx); err != nil {
		panic(c.rt.NewGoError(err))
	}
	return sobek.Undefined()
}

func (c *scriptContent) jsLog(level string) func(sobek.FunctionCall) sobek.Value {
	return func(call sobek.FunctionCall) sobek.Value {
		logger := logging.FromContext(c.ctx)
		ev := logger.Debug()
		switch level {
		case "info":
			ev = logger.Info()
		case "warn":
			ev = logger.Warn()
		case "error":
			ev = logger.Error()
		}
		ev.Str("window_id", string(c.descriptor.ID)).Msg(call.Argument(0).String())
		return sobek.Undefined()
	}
}
