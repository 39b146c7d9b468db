package port

import "github.com/bnema/wndstack/internal/domain/entity"

// WindowMetrics receives window manager activity.
type WindowMetrics interface {
	// WindowOpened is called for every successful open; reused is true for cache hits.
	WindowOpened(d *entity.Descriptor, reused bool)
	WindowClosed(d *entity.Descriptor)
	// WindowsHidden and WindowsRestored count affected-set moves.
	WindowsHidden(n int)
	WindowsRestored(n int)
	// OperationFailed is called with the operation name and a short reason.
	OperationFailed(op, reason string)
	Registries(shown, cached, stackDepth int)
}

// NopWindowMetrics discards everything.
type NopWindowMetrics struct{}

func (NopWindowMetrics) WindowOpened(*entity.Descriptor, bool) {}
func (NopWindowMetrics) WindowClosed(*entity.Descriptor) {}
func (NopWindowMetrics) WindowsHidden(int) {}
func (NopWindowMetrics) WindowsRestored(int) {}
func (NopWindowMetrics) OperationFailed(string, string) {}
func (NopWindowMetrics) Registries(int, int, int) {}
