package port

import (
	"context"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// WindowFactory instantiates window content and its host surface for a descriptor.
// Creation is synchronous and must not leave anything attached to the host on error.
type WindowFactory interface {
	Create(ctx context.Context, d *entity.Descriptor) (entity.Content, entity.Surface, error)
}

// ContentProvider builds the window logic for a descriptor (for example from a script).
type ContentProvider interface {
	NewContent(ctx context.Context, d *entity.Descriptor) (entity.Content, error)
}

// Placement resolves the host containers windows are parented under.
type Placement interface {
	// Container returns the container for visible windows of a category.
	Container(category entity.Category) entity.Container
	// CacheContainer returns the container cached windows are parked in.
	CacheContainer() entity.Container
	// Purge destroys every host object under a container and returns how many were removed.
	Purge(c entity.Container) int
}

// WindowNavigator is the subset of the window manager exposed to window content,
// so hooks can open or close other windows.
type WindowNavigator interface {
	Open(ctx context.Context, id entity.WindowID, args entity.Args) (*entity.Window, error)
	Close(ctx context.Context, id entity.WindowID) error
	BackToRoot(ctx context.Context) error
}
