package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/wndstack/internal/application/port/mocks"
	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/domain/entity"
	repomocks "github.com/bnema/wndstack/internal/domain/repository/mocks"
)

func newTestManager(t *testing.T, opts ...usecase.Option) (*usecase.ManageWindowsUseCase, *fakeHost) {
	t.Helper()
	descriptors := fakeDescriptors{}
	descriptors.add(t, "main", entity.CategoryMain, entity.OpenDoNothing)
	descriptors.add(t, "hud", entity.CategoryFixed, entity.OpenDoNothing)
	descriptors.add(t, "cursor", entity.CategoryFollow, entity.OpenDoNothing)
	descriptors.add(t, "bag", entity.CategoryNormal, entity.OpenHideNormalsAndMain)
	descriptors.add(t, "shop", entity.CategoryNormal, entity.OpenHideAll)
	descriptors.add(t, "settings", entity.CategoryNormal, entity.OpenDoNothing)
	descriptors.add(t, "quests", entity.CategoryNormal, entity.OpenDoNothing)
	descriptors.add(t, "map", entity.CategoryNormal, entity.OpenDoNothing)
	descriptors.add(t, "tip", entity.CategoryPopup, entity.OpenDoNothing)

	host := newFakeHost()
	opts = append([]usecase.Option{usecase.WithRootWindow("main")}, opts...)
	return usecase.NewManageWindowsUseCase(descriptors, host, host, opts...), host
}

func shownIDs(uc *usecase.ManageWindowsUseCase) []entity.WindowID {
	var ids []entity.WindowID
	for _, w := range uc.Shown() {
		ids = append(ids, w.ID())
	}
	return ids
}

func cachedIDs(uc *usecase.ManageWindowsUseCase) []entity.WindowID {
	var ids []entity.WindowID
	for _, w := range uc.Cached() {
		ids = append(ids, w.ID())
	}
	return ids
}

func stackIDs(uc *usecase.ManageWindowsUseCase) []entity.WindowID {
	var ids []entity.WindowID
	for _, f := range uc.Stack() {
		ids = append(ids, f.WindowID)
	}
	return ids
}

func requireDisjoint(t *testing.T, uc *usecase.ManageWindowsUseCase) {
	t.Helper()
	cached := make(map[entity.WindowID]bool)
	for _, id := range cachedIDs(uc) {
		cached[id] = true
	}
	for _, id := range shownIDs(uc) {
		require.Falsef(t, cached[id], "%s is both shown and cached", id)
	}
}

func mustOpen(t *testing.T, ctx context.Context, uc *usecase.ManageWindowsUseCase, id entity.WindowID) *entity.Window {
	t.Helper()
	w, err := uc.Open(ctx, id, nil)
	require.NoError(t, err)
	requireDisjoint(t, uc)
	return w
}

func mustClose(t *testing.T, ctx context.Context, uc *usecase.ManageWindowsUseCase, id entity.WindowID) {
	t.Helper()
	require.NoError(t, uc.Close(ctx, id))
	requireDisjoint(t, uc)
}

func TestManageWindows_OpenFreshWindow(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	w := mustOpen(t, ctx, uc, "settings")

	assert.Equal(t, []string{"settings:init", "settings:enter"}, host.takeJournal())
	assert.Equal(t, entity.StateActive, w.State())
	assert.NotEmpty(t, w.InstanceID())

	surface := host.surfaces["settings"][0]
	assert.True(t, surface.visible)
	assert.Equal(t, "normal", surface.parent.Name())
	assert.Equal(t, 1, surface.raised)
	assert.Equal(t, []entity.WindowID{"settings"}, stackIDs(uc))
}

func TestManageWindows_OpenAlreadyShownReturnsExisting(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	first := mustOpen(t, ctx, uc, "tip")
	host.takeJournal()

	again, err := uc.Open(ctx, "tip", nil)
	require.ErrorIs(t, err, entity.ErrAlreadyOpen)
	assert.Same(t, first, again)
	assert.Equal(t, 1, host.created)
	assert.Empty(t, host.takeJournal())
	assert.Equal(t, []entity.WindowID{"tip"}, shownIDs(uc))
}

func TestManageWindows_ReopenReusesCachedInstance(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	first := mustOpen(t, ctx, uc, "settings")
	mustClose(t, ctx, uc, "settings")
	assert.Equal(t, []entity.WindowID{"settings"}, cachedIDs(uc))
	assert.Equal(t, "_cached_", host.surfaces["settings"][0].parent.Name())
	host.takeJournal()

	second := mustOpen(t, ctx, uc, "settings")

	assert.Same(t, first, second)
	assert.Equal(t, first.InstanceID(), second.InstanceID())
	assert.Equal(t, 1, host.created)
	assert.Equal(t, []string{"settings:resume"}, host.takeJournal())
	assert.Empty(t, cachedIDs(uc))
	assert.Equal(t, "normal", host.surfaces["settings"][0].parent.Name())
}

func TestManageWindows_CloseRestoresInLIFOOrder(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	mustOpen(t, ctx, uc, "main")
	mustOpen(t, ctx, uc, "bag")
	assert.Equal(t, []entity.WindowID{"bag"}, shownIDs(uc))
	assert.Equal(t, []entity.WindowID{"main"}, cachedIDs(uc))

	mustOpen(t, ctx, uc, "shop")
	assert.Equal(t, []entity.WindowID{"shop"}, shownIDs(uc))
	assert.Equal(t, []entity.WindowID{"bag", "shop"}, stackIDs(uc))
	host.takeJournal()

	mustClose(t, ctx, uc, "shop")
	assert.Equal(t, []entity.WindowID{"bag"}, shownIDs(uc))
	assert.Equal(t, []string{"shop:exit", "bag:resume"}, host.takeJournal())

	mustClose(t, ctx, uc, "bag")
	assert.Equal(t, []entity.WindowID{"main"}, shownIDs(uc))
	assert.Equal(t, []string{"bag:exit", "main:resume"}, host.takeJournal())
	assert.Empty(t, uc.Stack())
	assert.ElementsMatch(t, []entity.WindowID{"shop", "bag"}, cachedIDs(uc))
}

func TestManageWindows_HideAllRecordsAffectedInShownOrder(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	mustOpen(t, ctx, uc, "settings")
	mustOpen(t, ctx, uc, "quests")
	mustOpen(t, ctx, uc, "tip")
	host.takeJournal()

	mustOpen(t, ctx, uc, "shop")
	assert.Equal(t, []entity.WindowID{"shop"}, shownIDs(uc))
	assert.Equal(t,
		[]string{"shop:init", "shop:enter", "settings:pause", "quests:pause", "tip:pause"},
		host.takeJournal())

	top := uc.Stack()[len(uc.Stack())-1]
	assert.Equal(t, entity.WindowID("shop"), top.WindowID)
	assert.Equal(t, []entity.WindowID{"settings", "quests", "tip"}, top.Affected)
	assert.Equal(t, entity.OpenHideAll, top.Policy)

	mustClose(t, ctx, uc, "shop")
	assert.ElementsMatch(t, []entity.WindowID{"settings", "quests", "tip"}, shownIDs(uc))
	for _, id := range []entity.WindowID{"settings", "quests", "tip"} {
		assert.True(t, host.surfaces[id][0].visible, "%s should be visible again", id)
	}
	assert.Equal(t, []entity.WindowID{"settings", "quests"}, stackIDs(uc))
}

func TestManageWindows_HideNormalsAndMainKeepsOtherCategories(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestManager(t)

	mustOpen(t, ctx, uc, "main")
	mustOpen(t, ctx, uc, "hud")
	mustOpen(t, ctx, uc, "cursor")
	mustOpen(t, ctx, uc, "tip")
	mustOpen(t, ctx, uc, "settings")

	mustOpen(t, ctx, uc, "bag")

	assert.ElementsMatch(t, []entity.WindowID{"hud", "cursor", "tip", "bag"}, shownIDs(uc))
	assert.ElementsMatch(t, []entity.WindowID{"main", "settings"}, cachedIDs(uc))
}

func TestManageWindows_DoNothingPolicyLeavesOthersAlone(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	mustOpen(t, ctx, uc, "main")
	mustOpen(t, ctx, uc, "settings")
	assert.ElementsMatch(t, []entity.WindowID{"main", "settings"}, shownIDs(uc))
	assert.Empty(t, uc.Stack()[0].Affected)
	host.takeJournal()

	mustClose(t, ctx, uc, "settings")
	assert.Equal(t, []string{"settings:exit"}, host.takeJournal())
	assert.Equal(t, []entity.WindowID{"main"}, shownIDs(uc))
}

func TestManageWindows_CloseOutOfOrderChangesNothing(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	mustOpen(t, ctx, uc, "settings")
	mustOpen(t, ctx, uc, "quests")
	host.takeJournal()

	err := uc.Close(ctx, "settings")
	require.ErrorIs(t, err, entity.ErrStackOrderViolation)

	assert.Equal(t, []entity.WindowID{"settings", "quests"}, shownIDs(uc))
	assert.Equal(t, []entity.WindowID{"settings", "quests"}, stackIDs(uc))
	assert.Empty(t, cachedIDs(uc))
	assert.Empty(t, host.takeJournal())
}

func TestManageWindows_ClosePopupSkipsStack(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	mustOpen(t, ctx, uc, "settings")
	mustOpen(t, ctx, uc, "tip")
	host.takeJournal()

	mustClose(t, ctx, uc, "tip")
	assert.Equal(t, []string{"tip:exit"}, host.takeJournal())
	assert.Equal(t, []entity.WindowID{"settings"}, stackIDs(uc))
	assert.Equal(t, []entity.WindowID{"tip"}, cachedIDs(uc))
}

func TestManageWindows_CloseErrors(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestManager(t)

	mustOpen(t, ctx, uc, "main")
	mustOpen(t, ctx, uc, "hud")

	tests := []struct {
		name string
		id   entity.WindowID
		want error
	}{
		{name: "main window", id: "main", want: entity.ErrUnsupportedCloseCategory},
		{name: "fixed window", id: "hud", want: entity.ErrUnsupportedCloseCategory},
		{name: "not shown", id: "settings", want: entity.ErrNotShown},
		{name: "unknown", id: "nope", want: entity.ErrNotShown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Close(ctx, tt.id)
			require.ErrorIs(t, err, tt.want)
			assert.ElementsMatch(t, []entity.WindowID{"main", "hud"}, shownIDs(uc))
		})
	}
}

func TestManageWindows_CloseWindowRequiresCurrentInstance(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestManager(t)

	stale := mustOpen(t, ctx, uc, "tip")
	uc.Reset(ctx, false)
	current := mustOpen(t, ctx, uc, "tip")
	require.NotSame(t, stale, current)

	require.ErrorIs(t, uc.CloseWindow(ctx, stale), entity.ErrNotShown)
	require.ErrorIs(t, uc.CloseWindow(ctx, nil), entity.ErrNotShown)
	require.NoError(t, uc.CloseWindow(ctx, current))
	assert.Empty(t, shownIDs(uc))
}

func TestManageWindows_ResetBehavesLikeColdStart(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	mustOpen(t, ctx, uc, "main")
	mustOpen(t, ctx, uc, "bag")
	mustOpen(t, ctx, uc, "tip")
	mustClose(t, ctx, uc, "tip")
	host.takeJournal()

	uc.Reset(ctx, true)

	assert.Empty(t, uc.Shown())
	assert.Empty(t, uc.Cached())
	assert.Empty(t, uc.Stack())
	assert.Equal(t, 1, host.purged["follow"])
	assert.Equal(t, []string{"bag:exit", "main:exit"}, host.takeJournal())
	for id, surfaces := range host.surfaces {
		for _, s := range surfaces {
			assert.True(t, s.destroyed, "%s surface should be destroyed", id)
		}
	}

	w := mustOpen(t, ctx, uc, "bag")
	assert.Equal(t, []string{"bag:init", "bag:enter"}, host.takeJournal())
	assert.Len(t, host.surfaces["bag"], 2)
	assert.Same(t, host.surfaces["bag"][1], w.Surface())
}

func TestManageWindows_ResetKeepsFollowUnlessAsked(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	uc.Reset(ctx, false)
	assert.Zero(t, host.purged["follow"])
}

func TestManageWindows_BackToRoot(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	mustOpen(t, ctx, uc, "main")
	mustOpen(t, ctx, uc, "settings")
	mustOpen(t, ctx, uc, "tip")
	mustOpen(t, ctx, uc, "bag")
	host.takeJournal()

	require.NoError(t, uc.BackToRoot(ctx))

	assert.Empty(t, uc.Stack())
	assert.ElementsMatch(t, []entity.WindowID{"main", "tip"}, shownIDs(uc))
	assert.Equal(t, []string{"bag:exit", "main:resume"}, host.takeJournal())
	requireDisjoint(t, uc)

	require.NoError(t, uc.BackToRoot(ctx), "root already shown is not an error")
}

func TestManageWindows_BackToRootWithoutRoot(t *testing.T) {
	ctx := testContext()
	descriptors := fakeDescriptors{}
	host := newFakeHost()
	uc := usecase.NewManageWindowsUseCase(descriptors, host, host)

	require.ErrorIs(t, uc.BackToRoot(ctx), entity.ErrNoRootWindow)

	uc = usecase.NewManageWindowsUseCase(descriptors, host, host, usecase.WithRootWindow("gone"))
	require.ErrorIs(t, uc.BackToRoot(ctx), entity.ErrDescriptorNotFound)
}

func TestManageWindows_PreviousIDTracksStackTop(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestManager(t)

	settings := mustOpen(t, ctx, uc, "settings")
	quests := mustOpen(t, ctx, uc, "quests")
	tip := mustOpen(t, ctx, uc, "tip")

	assert.Empty(t, settings.PreviousID())
	assert.Equal(t, entity.WindowID("settings"), quests.PreviousID())
	assert.Equal(t, entity.WindowID("quests"), tip.PreviousID())
}

func TestManageWindows_HookMayOpenAnotherWindow(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	host.content("settings").onEnter = func(ctx context.Context) {
		_, err := uc.Open(ctx, "tip", nil)
		assert.NoError(t, err)
	}

	mustOpen(t, ctx, uc, "settings")
	assert.Equal(t, []entity.WindowID{"settings", "tip"}, shownIDs(uc))
	assert.Equal(t, []string{"settings:init", "settings:enter", "tip:init", "tip:enter"}, host.takeJournal())
}

func TestManageWindows_HookOpenHidingTheOpeningWindow(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	host.content("settings").onEnter = func(ctx context.Context) {
		_, err := uc.Open(ctx, "shop", nil)
		assert.NoError(t, err)
	}

	mustOpen(t, ctx, uc, "main")
	settings := mustOpen(t, ctx, uc, "settings")

	assert.Equal(t, entity.StatePaused, settings.State())
	assert.Equal(t, []entity.WindowID{"shop"}, shownIDs(uc))
	assert.Equal(t, []entity.WindowID{"main", "settings"}, cachedIDs(uc))
	assert.Equal(t, []entity.WindowID{"settings", "shop"}, stackIDs(uc))

	mustClose(t, ctx, uc, "shop")
	assert.Equal(t, []entity.WindowID{"main", "settings"}, shownIDs(uc))
	assert.Equal(t, []entity.WindowID{"settings"}, stackIDs(uc))

	mustClose(t, ctx, uc, "settings")
	assert.Equal(t, []entity.WindowID{"main"}, shownIDs(uc))
	assert.Empty(t, uc.Stack())
}

func TestManageWindows_HookOpenHiddenByTheOpeningWindow(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	host.content("shop").onEnter = func(ctx context.Context) {
		_, err := uc.Open(ctx, "quests", nil)
		assert.NoError(t, err)
	}

	mustOpen(t, ctx, uc, "main")
	mustOpen(t, ctx, uc, "shop")

	assert.Equal(t, []entity.WindowID{"shop"}, shownIDs(uc))
	assert.Equal(t, []entity.WindowID{"quests", "shop"}, stackIDs(uc))
	assert.Equal(t, []entity.WindowID{"main", "quests"}, uc.Stack()[1].Affected)

	mustClose(t, ctx, uc, "shop")
	assert.Equal(t, []entity.WindowID{"main", "quests"}, shownIDs(uc))
	mustClose(t, ctx, uc, "quests")
	assert.Equal(t, []entity.WindowID{"main"}, shownIDs(uc))
	assert.Empty(t, uc.Stack())
}

func TestManageWindows_ResetRefusesOpensFromExitHooks(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	var hookErr error
	host.content("settings").onExit = func(ctx context.Context) {
		_, hookErr = uc.Open(ctx, "tip", nil)
	}
	mustOpen(t, ctx, uc, "settings")

	uc.Reset(ctx, false)

	require.ErrorIs(t, hookErr, entity.ErrResetInProgress)
	assert.Empty(t, uc.Shown())
	assert.Empty(t, uc.Cached())
	assert.Empty(t, uc.Stack())
	assert.Empty(t, host.surfaces["tip"])
	assert.True(t, host.surfaces["settings"][0].destroyed)

	mustOpen(t, ctx, uc, "tip")
}

func TestManageWindows_ResetDrainsWindowsClosedByExitHooks(t *testing.T) {
	ctx := testContext()
	uc, host := newTestManager(t)

	host.content("quests").onExit = func(ctx context.Context) {
		assert.NoError(t, uc.Close(ctx, "tip"))
	}
	mustOpen(t, ctx, uc, "quests")
	mustOpen(t, ctx, uc, "tip")
	host.takeJournal()

	uc.Reset(ctx, false)

	assert.Empty(t, uc.Shown())
	assert.Empty(t, uc.Cached())
	assert.Equal(t, []string{"quests:exit", "tip:exit"}, host.takeJournal())
	for id, surfaces := range host.surfaces {
		for _, s := range surfaces {
			assert.True(t, s.destroyed, "%s surface should be destroyed", id)
			assert.False(t, s.visible, "%s surface should be hidden", id)
		}
	}
}

// The exit hook of bag sends the user back to root while bag's own frame is being
// unwound, so the windows it restores end up shown with no stack frames.
func TestManageWindows_CloseNormalWithEmptyStackRecovers(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestManager(t)

	fired := false
	mustOpen(t, ctx, uc, "quests")
	mustOpen(t, ctx, uc, "settings")
	mustOpen(t, ctx, uc, "bag")

	bagContent := findContent(t, uc, "bag")
	bagContent.onExit = func(ctx context.Context) {
		if fired {
			return
		}
		fired = true
		assert.NoError(t, uc.BackToRoot(ctx))
	}

	mustClose(t, ctx, uc, "bag")
	require.Empty(t, uc.Stack())
	assert.ElementsMatch(t, []entity.WindowID{"main", "quests", "settings"}, shownIDs(uc))

	// quests has no recorded predecessor: closed, nothing reopened.
	mustClose(t, ctx, uc, "quests")
	assert.ElementsMatch(t, []entity.WindowID{"main", "settings"}, shownIDs(uc))

	// settings was opened over quests, which is cached and valid: it comes back.
	mustClose(t, ctx, uc, "settings")
	assert.ElementsMatch(t, []entity.WindowID{"main", "quests"}, shownIDs(uc))
	assert.Equal(t, []entity.WindowID{"quests"}, stackIDs(uc))
}

func TestManageWindows_CloseWindowWithoutFrame(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestManager(t)

	fired := false
	mustOpen(t, ctx, uc, "quests")
	mustOpen(t, ctx, uc, "bag")
	findContent(t, uc, "bag").onExit = func(ctx context.Context) {
		if fired {
			return
		}
		fired = true
		assert.NoError(t, uc.BackToRoot(ctx))
	}
	mustClose(t, ctx, uc, "bag")
	require.Empty(t, uc.Stack())

	mustOpen(t, ctx, uc, "map")
	shown, stack := shownIDs(uc), stackIDs(uc)

	err := uc.Close(ctx, "quests")
	require.ErrorIs(t, err, entity.ErrStackOrderViolation)
	assert.ErrorContains(t, err, "quests has no frame, map is on top")
	assert.Equal(t, shown, shownIDs(uc))
	assert.Equal(t, stack, stackIDs(uc))
}

func findContent(t *testing.T, uc *usecase.ManageWindowsUseCase, id entity.WindowID) *recordingContent {
	t.Helper()
	w, ok := uc.Window(id)
	require.True(t, ok)
	c, ok := w.Content().(*recordingContent)
	require.True(t, ok)
	return c
}

func TestManageWindows_OpenUnknownWindow(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockDescriptorRepository(t)
	factory := portmocks.NewMockWindowFactory(t)
	host := newFakeHost()

	repo.EXPECT().FindByID(mock.Anything, entity.WindowID("ghost")).
		Return(nil, entity.ErrDescriptorNotFound).Once()

	uc := usecase.NewManageWindowsUseCase(repo, factory, host)
	_, err := uc.Open(ctx, "ghost", nil)

	require.ErrorIs(t, err, entity.ErrDescriptorNotFound)
	assert.Empty(t, uc.Shown())
}

func TestManageWindows_ConstructionFailureLeavesStateUntouched(t *testing.T) {
	ctx := testContext()
	descriptors := fakeDescriptors{}
	descriptors.add(t, "settings", entity.CategoryNormal, entity.OpenHideAll)
	factory := portmocks.NewMockWindowFactory(t)
	metrics := portmocks.NewMockWindowMetrics(t)
	host := newFakeHost()

	factory.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("template exploded")).Once()
	metrics.EXPECT().OperationFailed("open", "construction").Once()

	uc := usecase.NewManageWindowsUseCase(descriptors, factory, host, usecase.WithMetrics(metrics))
	w, err := uc.Open(ctx, "settings", nil)

	require.ErrorIs(t, err, entity.ErrConstructionFailed)
	assert.ErrorContains(t, err, "template exploded")
	assert.Nil(t, w)
	assert.Empty(t, uc.Shown())
	assert.Empty(t, uc.Cached())
	assert.Empty(t, uc.Stack())
}

func TestManageWindows_ReportsMetrics(t *testing.T) {
	ctx := testContext()
	descriptors := fakeDescriptors{}
	descriptors.add(t, "main", entity.CategoryMain, entity.OpenDoNothing)
	descriptors.add(t, "bag", entity.CategoryNormal, entity.OpenHideNormalsAndMain)
	host := newFakeHost()
	metrics := portmocks.NewMockWindowMetrics(t)

	uc := usecase.NewManageWindowsUseCase(descriptors, host, host,
		usecase.WithMetrics(metrics),
		usecase.WithIDGenerator(func() string { return "fixed-id" }),
	)

	metrics.EXPECT().WindowOpened(descriptors["main"], false).Once()
	metrics.EXPECT().WindowsHidden(0).Once()
	metrics.EXPECT().Registries(1, 0, 0).Once()
	root := mustOpen(t, ctx, uc, "main")
	assert.Equal(t, "fixed-id", root.InstanceID())

	metrics.EXPECT().WindowOpened(descriptors["bag"], false).Once()
	metrics.EXPECT().WindowsHidden(1).Once()
	metrics.EXPECT().Registries(1, 1, 1).Once()
	mustOpen(t, ctx, uc, "bag")

	metrics.EXPECT().WindowsRestored(1).Once()
	metrics.EXPECT().WindowClosed(descriptors["bag"]).Once()
	metrics.EXPECT().Registries(1, 1, 0).Once()
	mustClose(t, ctx, uc, "bag")

	metrics.EXPECT().OperationFailed("close", "unsupported_category").Once()
	require.ErrorIs(t, uc.Close(ctx, "main"), entity.ErrUnsupportedCloseCategory)
}

func TestManageWindows_Snapshot(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestManager(t)

	mustOpen(t, ctx, uc, "settings")
	mustOpen(t, ctx, uc, "shop")
	mustOpen(t, ctx, uc, "tip")

	snap := uc.Snapshot()
	assert.Equal(t, []entity.WindowID{"shop", "tip"}, snap.ShownIDs())
	assert.Equal(t, []entity.WindowID{"settings"}, snap.CachedIDs())
	assert.Equal(t, []entity.WindowID{"settings", "shop"}, snap.StackIDs())
	assert.Equal(t, []entity.WindowID{"shop", "tip"}, snap.Active())
	assert.Equal(t, "paused", snap.Cached[0].State)
	assert.False(t, snap.Cached[0].Visible)
	assert.Equal(t, "hide_all", snap.Stack[1].Policy)
	assert.Equal(t, []entity.WindowID{"settings"}, snap.Stack[1].Affected)

	mustClose(t, ctx, uc, "tip")
	mustClose(t, ctx, uc, "shop")
	assert.Equal(t, []entity.WindowID{"shop", "tip"}, snap.ShownIDs(), "snapshot is detached from later changes")
}
