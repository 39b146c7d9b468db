// Package host is a headless rendering host: one layer per window category,
// a parking layer for cached windows, and nodes standing in for window surfaces.
package host

import (
	"github.com/bnema/wndstack/internal/application/port"
	"github.com/bnema/wndstack/internal/domain/entity"
)

// CacheLayerName names the layer cached windows are parked in.
const CacheLayerName = "_cached_"

// Layer is a container of nodes kept in draw order (last is on top).
type Layer struct {
	name  string
	nodes []*Node
}

// Name implements entity.Container.
func (l *Layer) Name() string { return l.name }

// Nodes returns the nodes in draw order.
func (l *Layer) Nodes() []*Node {
	out := make([]*Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

func (l *Layer) attach(n *Node) {
	l.nodes = append(l.nodes, n)
	n.layer = l
}

func (l *Layer) detach(n *Node) {
	for i, existing := range l.nodes {
		if existing == n {
			l.nodes = append(l.nodes[:i], l.nodes[i+1:]...)
			break
		}
	}
	n.layer = nil
}

// Scene holds the layers of one UI session.
type Scene struct {
	layers map[entity.Category]*Layer
	order  []*Layer
	cache  *Layer
}

var _ port.Placement = (*Scene)(nil)

// NewScene creates a scene with a layer per category, back to front.
func NewScene() *Scene {
	s := &Scene{
		layers: make(map[entity.Category]*Layer),
		cache:  &Layer{name: CacheLayerName},
	}
	for _, c := range entity.Categories() {
		l := &Layer{name: c.String()}
		s.layers[c] = l
		s.order = append(s.order, l)
	}
	return s
}

// Container returns the layer for category.
func (s *Scene) Container(category entity.Category) entity.Container {
	return s.layer(category)
}

// CacheContainer returns the parking layer.
func (s *Scene) CacheContainer() entity.Container {
	return s.cache
}

// Purge destroys every node under c.
func (s *Scene) Purge(c entity.Container) int {
	l, ok := c.(*Layer)
	if !ok {
		return 0
	}
	nodes := l.Nodes()
	for _, n := range nodes {
		n.Destroy()
	}
	return len(nodes)
}

// NewNode creates a detached, hidden node.
func (s *Scene) NewNode(name string) *Node {
	return &Node{name: name}
}

// Spawn attaches a visible host object that no window owns, such as a
// cursor follower, to a category layer.
func (s *Scene) Spawn(category entity.Category, name string) *Node {
	n := &Node{name: name, visible: true}
	s.layer(category).attach(n)
	return n
}

// Layers returns the category layers back to front.
func (s *Scene) Layers() []*Layer {
	out := make([]*Layer, len(s.order))
	copy(out, s.order)
	return out
}

// Layer returns the layer for category.
func (s *Scene) Layer(category entity.Category) *Layer {
	return s.layer(category)
}

// Cache returns the parking layer.
func (s *Scene) Cache() *Layer {
	return s.cache
}

// Visible returns the visible nodes in draw order across all layers.
func (s *Scene) Visible() []*Node {
	var out []*Node
	for _, l := range s.order {
		for _, n := range l.nodes {
			if n.visible {
				out = append(out, n)
			}
		}
	}
	return out
}

// Top returns the topmost visible node.
func (s *Scene) Top() (*Node, bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return nil, false
	}
	return visible[len(visible)-1], true
}

func (s *Scene) layer(category entity.Category) *Layer {
	if l, ok := s.layers[category]; ok {
		return l
	}
	return s.layers[entity.CategoryNormal]
}
