package mcp

import (
	"context"
	"sync"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/infrastructure/catalog"
	"github.com/bnema/wndstack/internal/infrastructure/host"
	"github.com/bnema/wndstack/internal/infrastructure/scripting"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ctx := context.Background()
	registry := catalog.NewRegistry()
	for _, w := range []struct {
		id       entity.WindowID
		category entity.Category
		policy   entity.OpenPolicy
	}{
		{"main", entity.CategoryMain, entity.OpenDoNothing},
		{"bag", entity.CategoryNormal, entity.OpenHideNormalsAndMain},
		{"tip", entity.CategoryPopup, entity.OpenDoNothing},
	} {
		_, err := registry.Add(ctx, w.id, "ui/"+string(w.id), w.category, w.policy, entity.BackdropNone)
		require.NoError(t, err)
	}

	scene := host.NewScene()
	provider := scripting.NewProvider("")
	uc := usecase.NewManageWindowsUseCase(registry, host.NewFactory(scene, provider, ""), scene,
		usecase.WithRootWindow("main"))
	provider.SetNavigator(uc)
	return NewServer(uc, zerolog.Nop(), "test")
}

func TestServer_OpenAndClose(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	_, out, err := s.handleOpenWindow(ctx, nil, OpenWindowInput{WindowID: "main"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.InstanceID)
	assert.False(t, out.AlreadyOpen)

	_, out, err = s.handleOpenWindow(ctx, nil, OpenWindowInput{WindowID: "bag", Args: map[string]any{"tab": "potions"}})
	require.NoError(t, err)
	assert.Equal(t, []entity.WindowID{"bag"}, out.State.ShownIDs())
	assert.Equal(t, []entity.WindowID{"main"}, out.State.CachedIDs())

	again, out2, err := s.handleOpenWindow(ctx, nil, OpenWindowInput{WindowID: "bag"})
	require.NoError(t, err)
	assert.Nil(t, again)
	assert.True(t, out2.AlreadyOpen)
	assert.Equal(t, out.InstanceID, out2.InstanceID)

	_, closed, err := s.handleCloseWindow(ctx, nil, CloseWindowInput{WindowID: "bag"})
	require.NoError(t, err)
	assert.Equal(t, []entity.WindowID{"main"}, closed.State.ShownIDs())
	assert.Empty(t, closed.State.Stack)
}

func TestServer_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	_, _, err := s.handleOpenWindow(ctx, nil, OpenWindowInput{})
	assert.ErrorContains(t, err, "window_id is required")

	_, _, err = s.handleOpenWindow(ctx, nil, OpenWindowInput{WindowID: "bga"})
	assert.ErrorIs(t, err, entity.ErrDescriptorNotFound)
	assert.ErrorContains(t, err, "did you mean bag")

	_, _, err = s.handleCloseWindow(ctx, nil, CloseWindowInput{WindowID: "tip"})
	assert.ErrorIs(t, err, entity.ErrNotShown)
}

func TestServer_BackToRootResetAndStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	_, _, err := s.handleOpenWindow(ctx, nil, OpenWindowInput{WindowID: "bag"})
	require.NoError(t, err)
	_, _, err = s.handleOpenWindow(ctx, nil, OpenWindowInput{WindowID: "tip"})
	require.NoError(t, err)

	_, out, err := s.handleBackToRoot(ctx, nil, EmptyInput{})
	require.NoError(t, err)
	assert.Equal(t, []entity.WindowID{"tip", "main"}, out.State.ShownIDs())

	_, out, err = s.handleReset(ctx, nil, ResetInput{ClearFollow: true})
	require.NoError(t, err)
	assert.Empty(t, out.State.Shown)
	assert.Empty(t, out.State.Cached)

	_, out, err = s.handleStatus(ctx, nil, EmptyInput{})
	require.NoError(t, err)
	assert.Empty(t, out.State.Shown)
}

func TestServer_ConcurrentCallsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = s.handleOpenWindow(ctx, nil, OpenWindowInput{WindowID: "tip"})
			_, _, _ = s.handleCloseWindow(ctx, nil, CloseWindowInput{WindowID: "tip"})
			_, _, _ = s.handleStatus(ctx, nil, EmptyInput{})
		}()
	}
	wg.Wait()

	_, out, err := s.handleStatus(ctx, nil, EmptyInput{})
	require.NoError(t, err)
	assert.Empty(t, out.State.Shown)
	assert.Equal(t, []entity.WindowID{"tip"}, out.State.CachedIDs())
}

func TestServer_ToolsOverInMemoryTransport(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	_, err := s.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "open_window",
		Arguments: map[string]any{"window_id": "main"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "close_window",
		Arguments: map[string]any{"window_id": "main"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError, "main windows cannot be closed")
}
