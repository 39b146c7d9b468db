package entity

import "errors"

// Registry errors.
var (
	ErrInvalidDescriptor  = errors.New("invalid window descriptor")
	ErrDuplicateIdentity  = errors.New("window identity already registered")
	ErrDescriptorNotFound = errors.New("window descriptor not found")
)

// Window manager errors.
var (
	// ErrAlreadyOpen is returned together with the existing instance; it is not fatal.
	ErrAlreadyOpen              = errors.New("window already open")
	ErrNotShown                 = errors.New("window is not shown")
	ErrStackOrderViolation      = errors.New("window is not on top of the visibility stack")
	ErrUnsupportedCloseCategory = errors.New("window category cannot be closed")
	ErrDuplicateCacheEntry      = errors.New("window already cached")
	ErrConstructionFailed       = errors.New("window construction failed")
	ErrTemplateNotFound         = errors.New("window template not found")
	ErrNoRootWindow             = errors.New("no root window configured")
	ErrResetInProgress          = errors.New("window manager is resetting")
)
