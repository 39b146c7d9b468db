package usecase

import "github.com/bnema/wndstack/internal/domain/entity"

// affectedWindows returns the active windows that opening a window with the
// given policy hides, in shown-registry order. The opening window is never included.
func affectedWindows(policy entity.OpenPolicy, opening entity.WindowID, active []*entity.Window) []*entity.Window {
	var affected []*entity.Window
	for _, w := range active {
		if w.ID() == opening || !w.IsActive() {
			continue
		}
		switch policy {
		case entity.OpenHideAll:
			affected = append(affected, w)
		case entity.OpenHideNormalsAndMain:
			if c := w.Category(); c == entity.CategoryNormal || c == entity.CategoryMain {
				affected = append(affected, w)
			}
		}
	}
	return affected
}

func windowIDs(ws []*entity.Window) []entity.WindowID {
	if len(ws) == 0 {
		return nil
	}
	ids := make([]entity.WindowID, len(ws))
	for i, w := range ws {
		ids[i] = w.ID()
	}
	return ids
}
