package usecase

import "github.com/bnema/wndstack/internal/domain/entity"

// WindowStatus describes one live window instance.
type WindowStatus struct {
	ID         entity.WindowID `json:"id"`
	InstanceID string          `json:"instance_id"`
	Category   string          `json:"category"`
	State      string          `json:"state"`
	Visible    bool            `json:"visible"`
	PreviousID entity.WindowID `json:"previous_id,omitempty"`
}

// FrameStatus describes one visibility stack frame.
type FrameStatus struct {
	WindowID entity.WindowID   `json:"window_id"`
	Policy   string            `json:"policy"`
	Affected []entity.WindowID `json:"affected,omitempty"`
}

// WindowsSnapshot is a point-in-time copy of the manager state.
type WindowsSnapshot struct {
	Shown  []WindowStatus `json:"shown"`
	Cached []WindowStatus `json:"cached"`
	// Stack is ordered bottom to top.
	Stack []FrameStatus `json:"stack"`
}

// Snapshot copies the registries and the stack. The result shares nothing with the manager.
func (uc *ManageWindowsUseCase) Snapshot() WindowsSnapshot {
	snap := WindowsSnapshot{
		Shown:  make([]WindowStatus, 0, uc.windows.shown.Len()),
		Cached: make([]WindowStatus, 0, uc.windows.cached.Len()),
		Stack:  make([]FrameStatus, 0, uc.stack.Len()),
	}
	for _, w := range uc.windows.shown.Values() {
		snap.Shown = append(snap.Shown, statusOf(w))
	}
	for _, w := range uc.windows.cached.Values() {
		snap.Cached = append(snap.Cached, statusOf(w))
	}
	for _, f := range uc.stack.Frames() {
		snap.Stack = append(snap.Stack, FrameStatus{
			WindowID: f.WindowID,
			Policy:   f.Policy.String(),
			Affected: append([]entity.WindowID(nil), f.Affected...),
		})
	}
	return snap
}

// ShownIDs returns the shown identities in registration order.
func (s WindowsSnapshot) ShownIDs() []entity.WindowID { return statusIDs(s.Shown) }

// CachedIDs returns the cached identities in caching order.
func (s WindowsSnapshot) CachedIDs() []entity.WindowID { return statusIDs(s.Cached) }

// StackIDs returns the window identity of each frame, bottom to top.
func (s WindowsSnapshot) StackIDs() []entity.WindowID {
	ids := make([]entity.WindowID, len(s.Stack))
	for i, f := range s.Stack {
		ids[i] = f.WindowID
	}
	return ids
}

// Active returns the identities of shown windows that are in the active state.
func (s WindowsSnapshot) Active() []entity.WindowID {
	var ids []entity.WindowID
	for _, w := range s.Shown {
		if w.State == entity.StateActive.String() {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

func statusOf(w *entity.Window) WindowStatus {
	return WindowStatus{
		ID:         w.ID(),
		InstanceID: w.InstanceID(),
		Category:   w.Category().String(),
		State:      w.State().String(),
		Visible:    w.Surface().Visible(),
		PreviousID: w.PreviousID(),
	}
}

func statusIDs(ws []WindowStatus) []entity.WindowID {
	ids := make([]entity.WindowID, len(ws))
	for i, w := range ws {
		ids[i] = w.ID
	}
	return ids
}
