package catalog

import (
	"context"
	"errors"

	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/logging"
)

// SyncResult reports what a Sync did.
type SyncResult struct {
	Added     []entity.WindowID
	Unchanged int
	// Rejected lists identities whose metadata changed; descriptors never mutate.
	Rejected []entity.WindowID
	// Missing lists registered identities absent from the new set. They stay registered.
	Missing []entity.WindowID
}

// Sync merges a freshly loaded descriptor set into the registry.
func (r *Registry) Sync(ctx context.Context, descriptors []*entity.Descriptor) (SyncResult, error) {
	log := logging.FromContext(ctx)
	var result SyncResult
	var errs []error

	seen := make(map[entity.WindowID]struct{}, len(descriptors))
	for _, d := range descriptors {
		seen[d.ID] = struct{}{}

		existing, err := r.FindByID(ctx, d.ID)
		if err == nil {
			if existing.Equal(d) {
				result.Unchanged++
				continue
			}
			log.Warn().Str("window_id", string(d.ID)).Msg("descriptor changed on reload, keeping the registered version")
			result.Rejected = append(result.Rejected, d.ID)
			continue
		}

		if _, err := r.Register(ctx, d); err != nil {
			errs = append(errs, err)
			continue
		}
		result.Added = append(result.Added, d.ID)
	}

	all, _ := r.List(ctx)
	for _, d := range all {
		if _, ok := seen[d.ID]; !ok {
			result.Missing = append(result.Missing, d.ID)
		}
	}

	log.Info().
		Int("added", len(result.Added)).
		Int("unchanged", result.Unchanged).
		Int("rejected", len(result.Rejected)).
		Int("missing", len(result.Missing)).
		Msg("window catalog synced")
	return result, errors.Join(errs...)
}
