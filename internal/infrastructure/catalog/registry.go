// Package catalog holds the in-memory window descriptor registry.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/bnema/wndstack/internal/cache/generic"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/domain/repository"
	"github.com/bnema/wndstack/internal/logging"
)

// Registry implements repository.DescriptorRepository.
// It is read-mostly; the lock only matters when config reloads call Sync
// from the watcher goroutine.
type Registry struct {
	mu          sync.RWMutex
	descriptors *generic.Ordered[entity.WindowID, *entity.Descriptor]
}

var _ repository.DescriptorRepository = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: generic.NewOrdered[entity.WindowID, *entity.Descriptor](),
	}
}

// Add builds and registers a descriptor. An empty id defaults to the template name.
func (r *Registry) Add(
	ctx context.Context,
	id entity.WindowID,
	path string,
	category entity.Category,
	policy entity.OpenPolicy,
	backdrop entity.Backdrop,
) (*entity.Descriptor, error) {
	d, err := entity.NewDescriptor(id, path, category, policy, backdrop)
	if err != nil {
		return nil, err
	}
	return r.Register(ctx, d)
}

// Register stores d. Identities are unique for the lifetime of the registry.
func (r *Registry) Register(ctx context.Context, d *entity.Descriptor) (*entity.Descriptor, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.descriptors.Has(d.ID) {
		return nil, fmt.Errorf("%w: %s", entity.ErrDuplicateIdentity, d.ID)
	}
	stored := *d
	r.descriptors.Set(d.ID, &stored)

	logging.FromContext(ctx).Debug().
		Str("window_id", string(d.ID)).
		Str("category", d.Category.String()).
		Str("open_policy", d.OpenPolicy.String()).
		Msg("window descriptor registered")
	return &stored, nil
}

// FindByID looks up a descriptor. The not-found error names the closest known identity.
func (r *Registry) FindByID(_ context.Context, id entity.WindowID) (*entity.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.descriptors.Get(id); ok {
		return d, nil
	}
	if suggestion, ok := r.suggestLocked(id); ok {
		return nil, fmt.Errorf("%w: %s (did you mean %s?)", entity.ErrDescriptorNotFound, id, suggestion)
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrDescriptorNotFound, id)
}

// List returns descriptors in registration order.
func (r *Registry) List(_ context.Context) ([]*entity.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.descriptors.Values(), nil
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.descriptors.Len()
}

// Suggest returns the registered identity closest to id, if any is close enough.
func (r *Registry) Suggest(id entity.WindowID) (entity.WindowID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.suggestLocked(id)
}

func (r *Registry) suggestLocked(id entity.WindowID) (entity.WindowID, bool) {
	maxDistance := len(id) / 3
	if maxDistance < 2 {
		maxDistance = 2
	}

	var best entity.WindowID
	bestDistance := maxDistance + 1
	for _, known := range r.descriptors.Keys() {
		d := levenshtein.ComputeDistance(string(id), string(known))
		if d < bestDistance {
			best, bestDistance = known, d
		}
	}
	return best, best != ""
}
