package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/wndstack/internal/application/port"
	"github.com/bnema/wndstack/internal/cache/generic"
	"github.com/bnema/wndstack/internal/domain/entity"
)

// windowRegistry owns the shown and cached registries. Every instance lives in
// exactly one of them outside of an in-flight operation.
type windowRegistry struct {
	shown     *generic.Ordered[entity.WindowID, *entity.Window]
	cached    *generic.Ordered[entity.WindowID, *entity.Window]
	placement port.Placement
}

func newWindowRegistry(placement port.Placement) *windowRegistry {
	return &windowRegistry{
		shown:     generic.NewOrdered[entity.WindowID, *entity.Window](),
		cached:    generic.NewOrdered[entity.WindowID, *entity.Window](),
		placement: placement,
	}
}

// show registers w as shown and parents its surface under its category container.
func (r *windowRegistry) show(w *entity.Window) {
	w.Surface().SetParent(r.placement.Container(w.Category()))
	r.shown.Set(w.ID(), w)
}

// canStore reports whether w could be moved into the cache without breaking disjointness.
func (r *windowRegistry) canStore(id entity.WindowID) error {
	if r.cached.Has(id) {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateCacheEntry, id)
	}
	return nil
}

func (r *windowRegistry) canStoreAll(ws []*entity.Window) error {
	for _, w := range ws {
		if err := r.canStore(w.ID()); err != nil {
			return err
		}
	}
	return nil
}

// store moves w from the shown registry into the cache and parks its surface.
func (r *windowRegistry) store(w *entity.Window) error {
	if err := r.canStore(w.ID()); err != nil {
		return err
	}
	r.shown.Delete(w.ID())
	r.cached.Set(w.ID(), w)
	w.Surface().SetParent(r.placement.CacheContainer())
	return nil
}

// take removes id from the cache. The caller re-registers it with show.
func (r *windowRegistry) take(id entity.WindowID) (*entity.Window, bool) {
	return r.cached.Delete(id)
}

// evictAll exits and destroys every cached instance.
func (r *windowRegistry) evictAll(ctx context.Context) int {
	return destroyAll(ctx, r.cached)
}

// dropShown exits and destroys every shown instance.
func (r *windowRegistry) dropShown(ctx context.Context) int {
	return destroyAll(ctx, r.shown)
}

// destroyAll unregisters each instance before exiting it, so an exit hook never
// sees a window that is about to be destroyed.
func destroyAll(ctx context.Context, set *generic.Ordered[entity.WindowID, *entity.Window]) int {
	n := 0
	for set.Len() > 0 {
		w, _ := set.Delete(set.Keys()[0])
		w.Exit(ctx, nil)
		w.Surface().Destroy()
		n++
	}
	return n
}

func (r *windowRegistry) activeShown() []*entity.Window {
	var active []*entity.Window
	r.shown.Range(func(_ entity.WindowID, w *entity.Window) bool {
		if w.IsActive() {
			active = append(active, w)
		}
		return true
	})
	return active
}
