package entity

import "context"

// Args is the free-form payload handed to window content on lifecycle transitions.
type Args map[string]any

// Content is the per-kind window logic notified of lifecycle transitions.
// Implementations must not open or close their own window from a hook.
type Content interface {
	OnInit(ctx context.Context)
	OnEnter(ctx context.Context, args Args)
	OnExit(ctx context.Context, args Args)
	OnPause(ctx context.Context, args Args)
	OnResume(ctx context.Context, args Args)
}

// Container is a host-side parent that surfaces are attached to.
type Container interface {
	Name() string
}

// Surface is the host-side visual handle of a window.
type Surface interface {
	SetVisible(visible bool)
	Visible() bool
	SetParent(c Container)
	// Raise moves the surface to the top of its container's draw order.
	Raise()
	SetBackdrop(b Backdrop)
	Destroy()
}

// WindowState is the lifecycle state of a window instance.
type WindowState int

const (
	StateCreated WindowState = iota
	StateActive
	StatePaused
	StateClosed
)

func (s WindowState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Window is one instantiated window, either shown or cached.
//
// Transition ordering matters because content may query visibility from its hooks:
// Enter and Resume show first and notify after, Exit notifies first and hides
// after, Pause hides first and notifies after.
type Window struct {
	instanceID  string
	descriptor  *Descriptor
	content     Content
	surface     Surface
	state       WindowState
	initialized bool
	previousID  WindowID
}

// NewWindow wraps freshly constructed content and surface. The window starts
// in StateCreated and hidden; Init must be called once before use.
func NewWindow(instanceID string, d *Descriptor, content Content, surface Surface) *Window {
	return &Window{
		instanceID: instanceID,
		descriptor: d,
		content:    content,
		surface:    surface,
		state:      StateCreated,
	}
}

func (w *Window) ID() WindowID { return w.descriptor.ID }
func (w *Window) InstanceID() string { return w.instanceID }
func (w *Window) Descriptor() *Descriptor { return w.descriptor }
func (w *Window) Category() Category { return w.descriptor.Category }
func (w *Window) State() WindowState { return w.state }
func (w *Window) Surface() Surface { return w.surface }
func (w *Window) Content() Content { return w.content }
func (w *Window) PreviousID() WindowID { return w.previousID }
func (w *Window) SetPreviousID(id WindowID) { w.previousID = id }

// IsActive is true only in StateActive.
func (w *Window) IsActive() bool {
	return w.state == StateActive
}

// Init fires the one-time construction hook. Later calls do nothing.
func (w *Window) Init(ctx context.Context) bool {
	if w.initialized {
		return false
	}
	w.initialized = true
	w.content.OnInit(ctx)
	return true
}

// Enter activates a created, paused or closed window.
func (w *Window) Enter(ctx context.Context, args Args) bool {
	if w.state == StateActive {
		return false
	}
	w.surface.SetVisible(true)
	w.state = StateActive
	w.content.OnEnter(ctx, args)
	return true
}

// Exit closes the window from any state; closing twice is a no-op.
func (w *Window) Exit(ctx context.Context, args Args) bool {
	if w.state == StateClosed {
		return false
	}
	w.content.OnExit(ctx, args)
	w.surface.SetVisible(false)
	w.state = StateClosed
	return true
}

// Pause hides an active window.
func (w *Window) Pause(ctx context.Context, args Args) bool {
	if w.state != StateActive {
		return false
	}
	w.surface.SetVisible(false)
	w.state = StatePaused
	w.content.OnPause(ctx, args)
	return true
}

// Resume reactivates a paused window, or a closed one pulled back out of the cache.
func (w *Window) Resume(ctx context.Context, args Args) bool {
	if w.state != StatePaused && w.state != StateClosed {
		return false
	}
	w.surface.SetVisible(true)
	w.state = StateActive
	w.content.OnResume(ctx, args)
	return true
}
