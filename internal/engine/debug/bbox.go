package debug

import (
	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/material"
	"github.com/Faultbox/spacescene/internal/engine/scene"
	m "github.com/Faultbox/spacescene/pkg/math"
)

// BBoxWireframe builds the 12 edges of an axis-aligned box, grown by padding on every side.
func BBoxWireframe(b geometry.Bounds, padding float32, color m.Color) *geometry.Geometry {
	lo := b.Min.Sub(m.V3(padding, padding, padding))
	hi := b.Max.Add(m.V3(padding, padding, padding))

	g := &geometry.Geometry{Name: "bbox", Mode: geometry.Lines}
	for i := 0; i < 8; i++ {
		p := lo
		if i&1 != 0 {
			p.X = hi.X
		}
		if i&2 != 0 {
			p.Y = hi.Y
		}
		if i&4 != 0 {
			p.Z = hi.Z
		}
		g.Vertices = append(g.Vertices, geometry.Vertex{Position: p.Array(), Color: color.Array()})
	}
	// Corners differing in exactly one bit share an edge.
	for a := uint32(0); a < 8; a++ {
		for _, bit := range []uint32{1, 2, 4} {
			if a&bit == 0 {
				g.Indices = append(g.Indices, a, a|bit)
			}
		}
	}
	return g
}

// BBoxHelper outlines a mesh's local bounds. It is attached as a child of
// the mesh so it follows the mesh transform.
type BBoxHelper struct {
	scene.Mesh
	Target *scene.Mesh
}

// AttachBBox adds a hidden bounding-box outline to target and returns it.
func AttachBBox(target *scene.Mesh, color m.Color) *BBoxHelper {
	h := &BBoxHelper{
		Mesh: scene.Mesh{
			Node:     scene.NewNode(target.Name + "-bbox"),
			Geometry: BBoxWireframe(target.Geometry.Bounds(), 0.05, color),
			Material: &material.Line{VertexColors: true},
		},
		Target: target,
	}
	h.Visible = false
	target.Add(h)
	return h
}
