package repository

import (
	"context"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// DescriptorRepository is the source of window descriptors.
// Lookups of unknown identities return an error wrapping entity.ErrDescriptorNotFound.
type DescriptorRepository interface {
	Register(ctx context.Context, d *entity.Descriptor) (*entity.Descriptor, error)
	FindByID(ctx context.Context, id entity.WindowID) (*entity.Descriptor, error)
	List(ctx context.Context) ([]*entity.Descriptor, error)
}
