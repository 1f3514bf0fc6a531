package scene

import (
	m "github.com/Faultbox/spacescene/pkg/math"
)

// Object is anything that can be placed in a scene.
type Object interface {
	Base() *Node
}

// Node holds the transform and hierarchy shared by every object.
type Node struct {
	Name     string
	Position m.Vec3
	Rotation m.Euler
	Scale    m.Vec3
	Visible  bool

	parent   *Node
	children []Object
}

// NewNode returns a visible node with unit scale.
func NewNode(name string) Node {
	return Node{Name: name, Scale: m.V3(1, 1, 1), Visible: true}
}

// Base returns the node itself.
func (n *Node) Base() *Node { return n }

// LocalMatrix returns the T*R*S transform relative to the parent.
func (n *Node) LocalMatrix() m.Mat4 {
	return m.Compose(n.Position, n.Rotation, n.Scale)
}

// Parent returns the node this one is attached to, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Add attaches objects as children. An object already attached elsewhere is
// moved; adding an existing child again has no effect. Nil objects are ignored.
func (n *Node) Add(objs ...Object) {
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		child := obj.Base()
		if child == n || child.parent == n {
			continue
		}
		if child.parent != nil {
			child.parent.Remove(obj)
		}
		child.parent = n
		n.children = append(n.children, obj)
	}
}

// Remove detaches obj. It reports whether obj was a child.
func (n *Node) Remove(obj Object) bool {
	child := obj.Base()
	for i, c := range n.children {
		if c.Base() == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns a copy of the direct children.
func (n *Node) Children() []Object {
	out := make([]Object, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// Find returns the first descendant with the given name.
func (n *Node) Find(name string) Object {
	var found Object
	n.Traverse(func(obj Object, _ m.Mat4) bool {
		if found == nil && obj.Base().Name == name {
			found = obj
		}
		return found == nil
	})
	return found
}

// Traverse walks descendants depth-first with their world matrices.
// Returning false from fn skips that object's subtree.
func (n *Node) Traverse(fn func(obj Object, world m.Mat4) bool) {
	n.traverse(n.LocalMatrix(), fn)
}

func (n *Node) traverse(parentWorld m.Mat4, fn func(Object, m.Mat4) bool) {
	for _, c := range n.children {
		node := c.Base()
		world := parentWorld.Mul(node.LocalMatrix())
		if fn(c, world) {
			node.traverse(world, fn)
		}
	}
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() m.Vec3 {
	world := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		world = p.LocalMatrix().Mul(world)
	}
	return world.Translation()
}
