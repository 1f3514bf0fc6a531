// Package scene is the scene graph: a tree of transformable objects plus the
// background. It holds no GPU state; the renderer walks it each frame.
package scene

import (
	"github.com/Faultbox/spacescene/internal/engine/lighting"
	"github.com/Faultbox/spacescene/internal/engine/texture"
	m "github.com/Faultbox/spacescene/pkg/math"
)

// Scene is the root of the graph.
type Scene struct {
	Node

	// Background is drawn as a full-screen quad behind everything. Nil or
	// not-yet-loaded backgrounds fall back to the clear colour.
	Background      *texture.Texture
	BackgroundColor m.Color
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{Node: NewNode("scene")}
}

// DrawItem is a visible mesh with its world transform.
type DrawItem struct {
	Mesh  *Mesh
	World m.Mat4
}

// DrawList returns every visible drawable in traversal order.
// Hidden objects hide their whole subtree.
func (s *Scene) DrawList() []DrawItem {
	var items []DrawItem
	s.Traverse(func(obj Object, world m.Mat4) bool {
		if !obj.Base().Visible {
			return false
		}
		if d, ok := obj.(Drawable); ok {
			mesh := d.Drawable()
			if mesh.Geometry != nil && mesh.Material != nil {
				items = append(items, DrawItem{Mesh: mesh, World: world})
			}
		}
		return true
	})
	return items
}

// CollectLights fills buf with the scene's visible lights.
func (s *Scene) CollectLights(buf *lighting.Buffer) {
	buf.Clear()
	s.Traverse(func(obj Object, world m.Mat4) bool {
		if !obj.Base().Visible {
			return false
		}
		switch l := obj.(type) {
		case *PointLight:
			buf.AddPoint(world.Translation(), l.Light)
		case *AmbientLight:
			buf.AddAmbient(l.Light)
		}
		return true
	})
}

// SetHelpersVisible shows or hides every helper object.
func (s *Scene) SetHelpersVisible(visible bool) {
	s.Traverse(func(obj Object, _ m.Mat4) bool {
		if IsHelper(obj) {
			obj.Base().Visible = visible
		}
		return true
	})
}

// UpdateHelpers keeps light helpers attached to their lights.
func (s *Scene) UpdateHelpers() {
	s.Traverse(func(obj Object, _ m.Mat4) bool {
		if h, ok := obj.(*PointLightHelper); ok {
			h.Update()
		}
		return true
	})
}
