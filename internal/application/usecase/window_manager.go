package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/bnema/wndstack/internal/application/port"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/domain/repository"
	"github.com/bnema/wndstack/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageWindowsUseCase is the window manager: it owns the shown and cached
// registries and the visibility stack for one UI session.
//
// It does no locking. Calls must be serialized by the caller; window content may
// open or close other windows from its hooks since every call completes synchronously.
type ManageWindowsUseCase struct {
	descriptors repository.DescriptorRepository
	factory     port.WindowFactory
	placement   port.Placement
	metrics     port.WindowMetrics
	tracer      trace.Tracer
	idGenerator IDGenerator
	rootID      entity.WindowID

	windows   *windowRegistry
	stack     entity.VisibilityStack
	resetting bool
}

// Option configures a ManageWindowsUseCase.
type Option func(*ManageWindowsUseCase)

// WithRootWindow sets the window BackToRoot returns to.
func WithRootWindow(id entity.WindowID) Option {
	return func(uc *ManageWindowsUseCase) { uc.rootID = id }
}

// WithMetrics reports activity to m.
func WithMetrics(m port.WindowMetrics) Option {
	return func(uc *ManageWindowsUseCase) {
		if m != nil {
			uc.metrics = m
		}
	}
}

// WithTracer wraps every operation in a span from t.
func WithTracer(t trace.Tracer) Option {
	return func(uc *ManageWindowsUseCase) {
		if t != nil {
			uc.tracer = t
		}
	}
}

// WithIDGenerator overrides instance ID generation (uuid by default).
func WithIDGenerator(gen IDGenerator) Option {
	return func(uc *ManageWindowsUseCase) {
		if gen != nil {
			uc.idGenerator = gen
		}
	}
}

// NewManageWindowsUseCase creates a window manager for one UI session.
func NewManageWindowsUseCase(
	descriptors repository.DescriptorRepository,
	factory port.WindowFactory,
	placement port.Placement,
	opts ...Option,
) *ManageWindowsUseCase {
	uc := &ManageWindowsUseCase{
		descriptors: descriptors,
		factory:     factory,
		placement:   placement,
		metrics:     port.NopWindowMetrics{},
		tracer:      noop.NewTracerProvider().Tracer("wndstack/usecase"),
		idGenerator: uuid.NewString,
		windows:     newWindowRegistry(placement),
		stack:       entity.NewVisibilityStack(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ port.WindowNavigator = (*ManageWindowsUseCase)(nil)

// RootWindow returns the configured root window identity.
func (uc *ManageWindowsUseCase) RootWindow() entity.WindowID {
	return uc.rootID
}

// Open shows the window id, reusing a cached instance when one exists.
//
// If the window is already shown the existing instance is returned together
// with entity.ErrAlreadyOpen. Opening a Normal window records a stack frame
// listing the windows its open policy hid, so Close can restore them.
func (uc *ManageWindowsUseCase) Open(ctx context.Context, id entity.WindowID, args entity.Args) (*entity.Window, error) {
	ctx, span := uc.tracer.Start(ctx, "window.open", trace.WithAttributes(attribute.String("window.id", string(id))))
	defer span.End()
	ctx = logging.WithWindowID(ctx, string(id))
	log := logging.FromContext(ctx)

	if w, ok := uc.windows.shown.Get(id); ok {
		log.Warn().Msg("window is already open")
		return w, fmt.Errorf("%w: %s", entity.ErrAlreadyOpen, id)
	}
	if uc.resetting {
		log.Warn().Msg("open requested while resetting, refusing")
		return nil, uc.fail(span, "open", fmt.Errorf("%w: %s", entity.ErrResetInProgress, id))
	}

	d, err := uc.descriptors.FindByID(ctx, id)
	if err != nil {
		return nil, uc.fail(span, "open", err)
	}

	// Everything that can fail happens before the first mutation.
	var fresh *entity.Window
	if !uc.windows.cached.Has(id) {
		content, surface, err := uc.factory.Create(ctx, d)
		if err != nil {
			return nil, uc.fail(span, "open", fmt.Errorf("%w: %s: %w", entity.ErrConstructionFailed, id, err))
		}
		fresh = entity.NewWindow(uc.idGenerator(), d, content, surface)
	}
	if err := uc.windows.canStoreAll(affectedWindows(d.OpenPolicy, id, uc.windows.activeShown())); err != nil {
		log.Error().Err(err).Msg("registry invariant broken, refusing to open")
		if fresh != nil {
			fresh.Surface().Destroy()
		}
		return nil, uc.fail(span, "open", err)
	}

	previous, _ := uc.stack.Peek()
	depth := uc.stack.Len()

	w, reused := uc.activate(ctx, d, fresh, args)
	span.SetAttributes(attribute.Bool("window.reused", reused))
	w.SetPreviousID(previous.WindowID)

	if !w.IsActive() {
		return uc.openedInactive(ctx, w, depth, reused), nil
	}

	// Recomputed after activation: hooks may have opened more windows.
	affected := affectedWindows(d.OpenPolicy, id, uc.windows.activeShown())
	if err := uc.windows.canStoreAll(affected); err != nil {
		// The window is already active, so it keeps a frame that hides nothing.
		log.Error().Err(err).Msg("registry invariant broken by a hook, leaving affected windows shown")
		uc.pushFrame(d, nil)
		uc.metrics.WindowOpened(d, reused)
		uc.reportRegistries()
		return w, uc.fail(span, "open", err)
	}
	hidden := make([]*entity.Window, 0, len(affected))
	for _, other := range affected {
		// Pause hooks run between stores and may break the cache on their own.
		if err := uc.pauseAndStore(ctx, other); err != nil {
			log.Error().Err(err).Str("affected", string(other.ID())).Msg("failed to cache affected window")
			continue
		}
		hidden = append(hidden, other)
	}
	uc.pushFrame(d, hidden)

	log.Debug().
		Bool("reused", reused).
		Str("category", d.Category.String()).
		Int("hidden", len(hidden)).
		Int("stack_depth", uc.stack.Len()).
		Msg("window opened")

	uc.metrics.WindowOpened(d, reused)
	uc.metrics.WindowsHidden(len(hidden))
	uc.reportRegistries()
	return w, nil
}

// openedInactive finishes an open whose window was hidden or closed by its own
// enter or resume hook. A window paused by a nested open keeps a frame below the
// frames that open pushed, so closing them brings it back on top of the stack.
func (uc *ManageWindowsUseCase) openedInactive(ctx context.Context, w *entity.Window, depth int, reused bool) *entity.Window {
	d := w.Descriptor()
	if d.Category == entity.CategoryNormal && w.State() == entity.StatePaused {
		uc.stack.InsertAt(depth, entity.StackFrame{WindowID: d.ID, Policy: d.OpenPolicy})
	}
	logging.FromContext(ctx).Debug().
		Str("state", w.State().String()).
		Int("stack_depth", uc.stack.Len()).
		Msg("window opened, then hidden by a hook")

	uc.metrics.WindowOpened(d, reused)
	uc.reportRegistries()
	return w
}

func (uc *ManageWindowsUseCase) pushFrame(d *entity.Descriptor, hidden []*entity.Window) {
	if d.Category != entity.CategoryNormal {
		return
	}
	uc.stack.Push(entity.StackFrame{
		WindowID: d.ID,
		Affected: windowIDs(hidden),
		Policy:   d.OpenPolicy,
	})
}

// activate brings a window into the shown registry: a fresh instance is
// initialized and entered, a cached one is resumed.
func (uc *ManageWindowsUseCase) activate(ctx context.Context, d *entity.Descriptor, fresh *entity.Window, args entity.Args) (*entity.Window, bool) {
	if fresh == nil {
		w, _ := uc.windows.take(d.ID)
		uc.windows.show(w)
		w.Resume(ctx, args)
		w.Surface().Raise()
		return w, true
	}

	fresh.Surface().SetBackdrop(d.Backdrop)
	uc.windows.show(fresh)
	fresh.Init(ctx)
	fresh.Enter(ctx, args)
	fresh.Surface().Raise()
	return fresh, false
}

// Close closes a shown Normal or Popup window.
//
// A Normal window must be on top of the visibility stack; closing it restores
// the windows its open hid. Closing out of order returns
// entity.ErrStackOrderViolation and changes nothing.
func (uc *ManageWindowsUseCase) Close(ctx context.Context, id entity.WindowID) error {
	ctx, span := uc.tracer.Start(ctx, "window.close", trace.WithAttributes(attribute.String("window.id", string(id))))
	defer span.End()
	ctx = logging.WithWindowID(ctx, string(id))

	w, ok := uc.windows.shown.Get(id)
	if !ok {
		logging.FromContext(ctx).Error().Msg("closing a window that is not shown")
		return uc.fail(span, "close", fmt.Errorf("%w: %s", entity.ErrNotShown, id))
	}

	var err error
	switch w.Category() {
	case entity.CategoryNormal:
		err = uc.closeNormal(ctx, w)
	case entity.CategoryPopup:
		err = uc.exitAndStore(ctx, w)
	default:
		err = fmt.Errorf("%w: %s is %s", entity.ErrUnsupportedCloseCategory, id, w.Category())
	}
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("close refused")
		return uc.fail(span, "close", err)
	}

	uc.metrics.WindowClosed(w.Descriptor())
	uc.reportRegistries()
	return nil
}

// CloseWindow closes the given instance, which must be the one currently shown for its identity.
func (uc *ManageWindowsUseCase) CloseWindow(ctx context.Context, w *entity.Window) error {
	if w == nil {
		return fmt.Errorf("%w: nil window", entity.ErrNotShown)
	}
	if current, ok := uc.windows.shown.Get(w.ID()); !ok || current != w {
		return fmt.Errorf("%w: %s (instance %s)", entity.ErrNotShown, w.ID(), w.InstanceID())
	}
	return uc.Close(ctx, w.ID())
}

func (uc *ManageWindowsUseCase) closeNormal(ctx context.Context, w *entity.Window) error {
	top, ok := uc.stack.Peek()
	if !ok {
		return uc.recoverEmptyStack(ctx, w)
	}
	if top.WindowID != w.ID() {
		if !uc.stack.Contains(w.ID()) {
			return fmt.Errorf("%w: %s has no frame, %s is on top", entity.ErrStackOrderViolation, w.ID(), top.WindowID)
		}
		return fmt.Errorf("%w: closing %s while %s is on top", entity.ErrStackOrderViolation, w.ID(), top.WindowID)
	}
	if err := uc.windows.canStore(w.ID()); err != nil {
		return err
	}

	// Popped before restoring so windows opened from resume hooks stack on the right frame.
	uc.stack.Pop()
	if err := uc.exitAndStore(ctx, w); err != nil {
		return err
	}
	if top.Policy.Hides() {
		uc.restore(ctx, top.Affected)
	}
	return nil
}

// recoverEmptyStack handles a Normal close with no stack frame, which means the
// stack and the registries went out of sync earlier. The window is closed and
// its recorded predecessor reopened on a best-effort basis.
func (uc *ManageWindowsUseCase) recoverEmptyStack(ctx context.Context, w *entity.Window) error {
	log := logging.FromContext(ctx)
	previous := w.PreviousID()
	log.Error().Str("previous", string(previous)).Msg("visibility stack is empty while closing a normal window, recovering")

	if err := uc.exitAndStore(ctx, w); err != nil {
		return err
	}
	uc.metrics.OperationFailed("close", "stack_desync")

	switch {
	case previous == "":
		log.Warn().Msg("no previous window recorded, nothing to reopen")
		return nil
	case previous == w.ID():
		log.Warn().Msg("previous window is the closed window itself, not reopening")
		return nil
	case uc.windows.shown.Has(previous):
		return nil
	}
	if _, err := uc.descriptors.FindByID(ctx, previous); err != nil {
		log.Warn().Err(err).Str("previous", string(previous)).Msg("previous window is no longer valid, not reopening")
		return nil
	}
	if _, err := uc.Open(ctx, previous, nil); err != nil {
		log.Warn().Err(err).Str("previous", string(previous)).Msg("failed to reopen previous window")
	}
	return nil
}

// restore resumes the windows listed in a popped frame that are still cached.
func (uc *ManageWindowsUseCase) restore(ctx context.Context, ids []entity.WindowID) {
	restored := 0
	for _, id := range ids {
		w, ok := uc.windows.take(id)
		if !ok {
			logging.FromContext(ctx).Debug().Str("affected", string(id)).Msg("affected window no longer cached, skipping restore")
			continue
		}
		uc.windows.show(w)
		w.Resume(ctx, nil)
		w.Surface().Raise()
		restored++
	}
	uc.metrics.WindowsRestored(restored)
}

func (uc *ManageWindowsUseCase) exitAndStore(ctx context.Context, w *entity.Window) error {
	if err := uc.windows.store(w); err != nil {
		return err
	}
	w.Exit(ctx, nil)
	return nil
}

func (uc *ManageWindowsUseCase) pauseAndStore(ctx context.Context, w *entity.Window) error {
	if err := uc.windows.store(w); err != nil {
		return err
	}
	w.Pause(ctx, nil)
	return nil
}

// BackToRoot closes every shown Normal window, drops the whole navigation
// history and opens the root window.
func (uc *ManageWindowsUseCase) BackToRoot(ctx context.Context) error {
	ctx, span := uc.tracer.Start(ctx, "window.back_to_root")
	defer span.End()
	log := logging.FromContext(ctx)

	if uc.rootID == "" {
		return uc.fail(span, "back_to_root", entity.ErrNoRootWindow)
	}
	if _, err := uc.descriptors.FindByID(ctx, uc.rootID); err != nil {
		return uc.fail(span, "back_to_root", err)
	}

	closed := 0
	for _, w := range uc.windows.shown.Values() {
		if w.Category() != entity.CategoryNormal {
			continue
		}
		if err := uc.exitAndStore(ctx, w); err != nil {
			log.Error().Err(err).Str("window_id", string(w.ID())).Msg("failed to cache normal window")
			continue
		}
		closed++
	}
	uc.stack.Clear()
	log.Debug().Int("closed", closed).Str("root", string(uc.rootID)).Msg("back to root")

	if _, err := uc.Open(ctx, uc.rootID, nil); err != nil && !errors.Is(err, entity.ErrAlreadyOpen) {
		return uc.fail(span, "back_to_root", err)
	}
	return nil
}

// Reset destroys every shown and cached instance and clears the stack. With
// clearFollow it also purges host objects living in the Follow container.
// The next Open behaves like a cold start.
//
// Opens requested by exit hooks while resetting fail with entity.ErrResetInProgress.
func (uc *ManageWindowsUseCase) Reset(ctx context.Context, clearFollow bool) {
	ctx, span := uc.tracer.Start(ctx, "window.reset", trace.WithAttributes(attribute.Bool("clear_follow", clearFollow)))
	defer span.End()

	uc.resetting = true
	defer func() { uc.resetting = false }()

	uc.stack.Clear()
	shown, cached := 0, 0
	// Exit hooks may close other windows into the cache, so drain until both are empty.
	for uc.windows.shown.Len() > 0 || uc.windows.cached.Len() > 0 {
		shown += uc.windows.dropShown(ctx)
		cached += uc.windows.evictAll(ctx)
	}

	purged := 0
	if clearFollow {
		purged = uc.placement.Purge(uc.placement.Container(entity.CategoryFollow))
	}

	logging.FromContext(ctx).Info().
		Int("shown", shown).
		Int("cached", cached).
		Int("follow_purged", purged).
		Msg("window manager reset")
	uc.reportRegistries()
}

// Window returns the shown instance for id.
func (uc *ManageWindowsUseCase) Window(id entity.WindowID) (*entity.Window, bool) {
	return uc.windows.shown.Get(id)
}

// Shown returns the shown windows in registration order.
func (uc *ManageWindowsUseCase) Shown() []*entity.Window {
	return uc.windows.shown.Values()
}

// Cached returns the cached windows in caching order.
func (uc *ManageWindowsUseCase) Cached() []*entity.Window {
	return uc.windows.cached.Values()
}

// Stack returns the visibility stack frames from bottom to top.
func (uc *ManageWindowsUseCase) Stack() []entity.StackFrame {
	return uc.stack.Frames()
}

func (uc *ManageWindowsUseCase) reportRegistries() {
	uc.metrics.Registries(uc.windows.shown.Len(), uc.windows.cached.Len(), uc.stack.Len())
}

func (uc *ManageWindowsUseCase) fail(span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.metrics.OperationFailed(op, failureReason(err))
	return err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entity.ErrDescriptorNotFound):
		return "not_found"
	case errors.Is(err, entity.ErrNotShown):
		return "not_shown"
	case errors.Is(err, entity.ErrStackOrderViolation):
		return "stack_order"
	case errors.Is(err, entity.ErrUnsupportedCloseCategory):
		return "unsupported_category"
	case errors.Is(err, entity.ErrDuplicateCacheEntry):
		return "duplicate_cache"
	case errors.Is(err, entity.ErrConstructionFailed):
		return "construction"
	case errors.Is(err, entity.ErrNoRootWindow):
		return "no_root"
	case errors.Is(err, entity.ErrResetInProgress):
		return "resetting"
	default:
		return "other"
	}
}
