package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wndstack/internal/domain/entity"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestScene_LayersFollowCategoryOrder(t *testing.T) {
	s := NewScene()

	var got []string
	for _, l := range s.Layers() {
		got = append(got, l.Name())
	}
	assert.Equal(t, []string{"follow", "main", "normal", "fixed", "popup"}, got)
	assert.Equal(t, CacheLayerName, s.CacheContainer().Name())
	assert.Equal(t, "popup", s.Container(entity.CategoryPopup).Name())
}

func TestNode_ParentRaiseAndVisibility(t *testing.T) {
	s := NewScene()
	a := s.NewNode("a")
	b := s.NewNode("b")

	a.SetParent(s.Container(entity.CategoryNormal))
	b.SetParent(s.Container(entity.CategoryNormal))
	a.SetVisible(true)
	b.SetVisible(true)
	assert.Equal(t, []string{"a", "b"}, names(s.Layer(entity.CategoryNormal).Nodes()))

	a.Raise()
	assert.Equal(t, []string{"b", "a"}, names(s.Layer(entity.CategoryNormal).Nodes()))
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "a", top.Name())

	a.SetParent(s.CacheContainer())
	a.SetVisible(false)
	assert.Equal(t, []string{"b"}, names(s.Layer(entity.CategoryNormal).Nodes()))
	assert.Equal(t, []string{"a"}, names(s.Cache().Nodes()))
	assert.Equal(t, []string{"b"}, names(s.Visible()))
}

func TestScene_VisibleDrawOrderSpansLayers(t *testing.T) {
	s := NewScene()
	popup := s.NewNode("tip")
	popup.SetParent(s.Container(entity.CategoryPopup))
	popup.SetVisible(true)
	root := s.NewNode("main")
	root.SetParent(s.Container(entity.CategoryMain))
	root.SetVisible(true)

	assert.Equal(t, []string{"main", "tip"}, names(s.Visible()))
}

func TestScene_PurgeDestroysEverythingInLayer(t *testing.T) {
	s := NewScene()
	s.Spawn(entity.CategoryFollow, "trail-1")
	s.Spawn(entity.CategoryFollow, "trail-2")
	kept := s.Spawn(entity.CategoryFixed, "hud")

	removed := s.Purge(s.Container(entity.CategoryFollow))

	assert.Equal(t, 2, removed)
	assert.Empty(t, s.Layer(entity.CategoryFollow).Nodes())
	assert.Equal(t, []string{"hud"}, names(s.Visible()))
	assert.False(t, kept.Destroyed())
}

func TestNode_DestroyIsFinal(t *testing.T) {
	s := NewScene()
	n := s.Spawn(entity.CategoryPopup, "tip")

	n.Destroy()
	n.Destroy()
	n.SetParent(s.Container(entity.CategoryPopup))
	n.SetVisible(true)

	assert.True(t, n.Destroyed())
	assert.False(t, n.Visible())
	assert.Nil(t, n.Layer())
	assert.Empty(t, s.Layer(entity.CategoryPopup).Nodes())
}
