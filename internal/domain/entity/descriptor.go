// Package entity contains domain entities representing core window-management concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strings"
)

// WindowID uniquely identifies a window kind (and therefore its single live instance).
type WindowID string

// Category is a window's navigation/visibility class.
type Category int

const (
	CategoryNormal Category = iota // Participates in the back-navigation stack
	CategoryMain                   // Root window, cannot be closed
	CategoryFixed                  // Always-on overlay, cannot be closed
	CategoryPopup                  // Message boxes, floating windows
	CategoryFollow                 // Widgets attached to a world object
)

var categoryNames = map[Category]string{
	CategoryNormal: "normal",
	CategoryMain:   "main",
	CategoryFixed:  "fixed",
	CategoryPopup:  "popup",
	CategoryFollow: "follow",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Categories returns every category in container order (back to front).
func Categories() []Category {
	return []Category{CategoryFollow, CategoryMain, CategoryNormal, CategoryFixed, CategoryPopup}
}

// ParseCategory converts a config spelling into a Category.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidDescriptor, s)
}

// OpenPolicy determines which other active windows are hidden when a window opens.
type OpenPolicy int

const (
	OpenDoNothing OpenPolicy = iota
	OpenHideNormalsAndMain
	OpenHideAll
)

var openPolicyNames = map[OpenPolicy]string{
	OpenDoNothing:          "do_nothing",
	OpenHideNormalsAndMain: "hide_normals_and_main",
	OpenHideAll:            "hide_all",
}

func (p OpenPolicy) String() string {
	if name, ok := openPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("open_policy(%d)", int(p))
}

// Hides reports whether the policy hides other windows (and therefore restores them on close).
func (p OpenPolicy) Hides() bool {
	return p == OpenHideAll || p == OpenHideNormalsAndMain
}

// ParseOpenPolicy converts a config spelling into an OpenPolicy.
// Dashes and underscores are interchangeable.
func ParseOpenPolicy(s string) (OpenPolicy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for p, name := range openPolicyNames {
		if norm == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown open policy %q", ErrInvalidDescriptor, s)
}

// Backdrop is the background the host puts behind a window.
type Backdrop int

const (
	BackdropNone        Backdrop = iota // No background, no input blocking
	BackdropTransparent                 // Invisible background that blocks input
	BackdropDark                        // Dimmed background that blocks input
)

var backdropNames = map[Backdrop]string{
	BackdropNone:        "none",
	BackdropTransparent: "transparent",
	BackdropDark:        "dark",
}

func (b Backdrop) String() string {
	if name, ok := backdropNames[b]; ok {
		return name
	}
	return fmt.Sprintf("backdrop(%d)", int(b))
}

// ParseBackdrop converts a config spelling into a Backdrop.
func ParseBackdrop(s string) (Backdrop, error) {
	for b, name := range backdropNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown backdrop %q", ErrInvalidDescriptor, s)
}

// Descriptor is the static metadata of a window kind.
// Descriptors are registered once and never mutated afterwards.
type Descriptor struct {
	ID         WindowID
	Name       string // Last segment of Path
	Path       string // Template reference handed to the host
	Script     string // Optional content script, empty for plain windows
	Category   Category
	OpenPolicy OpenPolicy
	Backdrop   Backdrop
}

// NewDescriptor builds a validated descriptor. An empty id defaults to the
// template name (the last path segment).
func NewDescriptor(id WindowID, path string, category Category, policy OpenPolicy, backdrop Backdrop) (*Descriptor, error) {
	d := &Descriptor{
		ID:         id,
		Path:       path,
		Category:   category,
		OpenPolicy: policy,
		Backdrop:   backdrop,
	}
	d.Name = TemplateName(path)
	if d.ID == "" {
		d.ID = WindowID(d.Name)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// TemplateName returns the last segment of a template path.
func TemplateName(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// Validate checks identity and enum ranges.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	if strings.TrimSpace(string(d.ID)) == "" {
		return fmt.Errorf("%w: empty identity", ErrInvalidDescriptor)
	}
	if _, ok := categoryNames[d.Category]; !ok {
		return fmt.Errorf("%w: %s has %s", ErrInvalidDescriptor, d.ID, d.Category)
	}
	if _, ok := openPolicyNames[d.OpenPolicy]; !ok {
		return fmt.Errorf("%w: %s has %s", ErrInvalidDescriptor, d.ID, d.OpenPolicy)
	}
	if _, ok := backdropNames[d.Backdrop]; !ok {
		return fmt.Errorf("%w: %s has %s", ErrInvalidDescriptor, d.ID, d.Backdrop)
	}
	return nil
}

// Equal reports whether two descriptors carry the same metadata.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return *d == *other
}

// Closable reports whether windows of this category may be closed explicitly.
func (c Category) Closable() bool {
	return c == CategoryNormal || c == CategoryPopup
}
