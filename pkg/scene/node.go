// Package scene is a minimal scene graph that implements the tween target
// interfaces. It backs the command-line tools and previews, and serves as a
// reference for adapting other hosts.
package scene

import (
	"sync/atomic"

	"github.com/go-drift/tween/pkg/tween"
)

var nextID atomic.Uint64

// Node is a transform in a hierarchy. World values compose the parent's
// world value by translation for position and Euler addition for rotation;
// world scale is the component-wise product of the local scales.
type Node struct {
	Name string

	id       tween.EntityID
	parent   *Node
	children []*Node
	active   bool

	position tween.Vec3
	rotation tween.Vec3
	scale    tween.Vec3

	surfaces []tween.Surface
}

// NewNode creates an active root node with unit scale.
func NewNode(name string) *Node {
	return &Node{
		Name:   name,
		id:     tween.EntityID(nextID.Add(1)),
		active: true,
		scale:  tween.Vec3{1, 1, 1},
	}
}

// ID implements tween.Entity.
func (n *Node) ID() tween.EntityID { return n.id }

// Active reports whether the node and all its ancestors are active.
func (n *Node) Active() bool {
	for p := n; p != nil; p = p.parent {
		if !p.active {
			return false
		}
	}
	return true
}

// SetActive sets the node's own active flag.
func (n *Node) SetActive(active bool) { n.active = active }

// Transform implements tween.Entity.
func (n *Node) Transform() tween.Transform { return n }

// Surfaces returns the node's surfaces followed by those of its descendants,
// inactive ones included.
func (n *Node) Surfaces() []tween.Surface {
	out := append([]tween.Surface(nil), n.surfaces...)
	for _, c := range n.children {
		out = append(out, c.Surfaces()...)
	}
	return out
}

// AddSurface attaches a colorable surface to the node.
func (n *Node) AddSurface(s tween.Surface) *Node {
	n.surfaces = append(n.surfaces, s)
	return n
}

// AddChild reparents c under n, keeping c's local values.
func (n *Node) AddChild(c *Node) *Node {
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	return n
}

func (n *Node) removeChild(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children.
func (n *Node) Children() []*Node { return n.children }

// Value implements tween.Transform.
func (n *Node) Value(p tween.Property, local bool) tween.Vec3 {
	switch p {
	case tween.PropertyPosition:
		if local {
			return n.position
		}
		return n.Position()
	case tween.PropertyRotation:
		if local {
			return n.rotation
		}
		return n.Rotation()
	case tween.PropertyScale:
		if local {
			return n.scale
		}
		return n.Scale()
	}
	return tween.Vec3{}
}

// Apply implements tween.Transform. World scale cannot be written; scale is
// always applied locally.
func (n *Node) Apply(p tween.Property, local bool, v tween.Vec3) {
	switch p {
	case tween.PropertyPosition:
		if local {
			n.position = v
		} else {
			n.SetPosition(v)
		}
	case tween.PropertyRotation:
		if local {
			n.rotation = v
		} else {
			n.SetRotation(v)
		}
	case tween.PropertyScale:
		n.scale = v
	}
}

// LocalPosition returns the position relative to the parent.
func (n *Node) LocalPosition() tween.Vec3 { return n.position }

// SetLocalPosition sets the position relative to the parent.
func (n *Node) SetLocalPosition(v tween.Vec3) { n.position = v }

// Position returns the world position.
func (n *Node) Position() tween.Vec3 {
	if n.parent == nil {
		return n.position
	}
	return add(n.parent.Position(), n.position)
}

// SetPosition moves the node to the world position v.
func (n *Node) SetPosition(v tween.Vec3) {
	if n.parent == nil {
		n.position = v
		return
	}
	n.position = sub(v, n.parent.Position())
}

// LocalRotation returns the Euler rotation relative to the parent.
func (n *Node) LocalRotation() tween.Vec3 { return n.rotation }

// SetLocalRotation sets the Euler rotation relative to the parent.
func (n *Node) SetLocalRotation(v tween.Vec3) { n.rotation = v }

// Rotation returns the world Euler rotation in degrees.
func (n *Node) Rotation() tween.Vec3 {
	if n.parent == nil {
		return n.rotation
	}
	return add(n.parent.Rotation(), n.rotation)
}

// SetRotation sets the world Euler rotation.
func (n *Node) SetRotation(v tween.Vec3) {
	if n.parent == nil {
		n.rotation = v
		return
	}
	n.rotation = sub(v, n.parent.Rotation())
}

// LocalScale returns the scale relative to the parent.
func (n *Node) LocalScale() tween.Vec3 { return n.scale }

// SetLocalScale sets the scale relative to the parent.
func (n *Node) SetLocalScale(v tween.Vec3) { n.scale = v }

// Scale returns the world scale.
func (n *Node) Scale() tween.Vec3 {
	if n.parent == nil {
		return n.scale
	}
	ps := n.parent.Scale()
	return tween.Vec3{ps[0] * n.scale[0], ps[1] * n.scale[1], ps[2] * n.scale[2]}
}

func add(a, b tween.Vec3) tween.Vec3 {
	return tween.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub(a, b tween.Vec3) tween.Vec3 {
	return tween.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
