package host

import "github.com/bnema/wndstack/internal/domain/entity"

// Node is the host-side object behind a window surface.
type Node struct {
	name      string
	visible   bool
	backdrop  entity.Backdrop
	layer     *Layer
	destroyed bool
}

var _ entity.Surface = (*Node)(nil)

func (n *Node) Name() string              { return n.name }
func (n *Node) Visible() bool             { return n.visible }
func (n *Node) Backdrop() entity.Backdrop { return n.backdrop }
func (n *Node) Destroyed() bool           { return n.destroyed }

// Layer returns the layer the node is attached to, or nil.
func (n *Node) Layer() *Layer { return n.layer }

func (n *Node) SetVisible(visible bool) {
	if n.destroyed {
		return
	}
	n.visible = visible
}

// SetParent moves the node under c, appending it on top of c's draw order.
func (n *Node) SetParent(c entity.Container) {
	if n.destroyed {
		return
	}
	if n.layer != nil {
		n.layer.detach(n)
	}
	if l, ok := c.(*Layer); ok {
		l.attach(n)
	}
}

// Raise moves the node to the top of its layer.
func (n *Node) Raise() {
	if n.layer == nil {
		return
	}
	l := n.layer
	l.detach(n)
	l.attach(n)
}

func (n *Node) SetBackdrop(b entity.Backdrop) {
	n.backdrop = b
}

// Destroy detaches the node for good. Further calls are ignored.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	if n.layer != nil {
		n.layer.detach(n)
	}
	n.visible = false
	n.destroyed = true
}
