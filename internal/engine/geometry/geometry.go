// Package geometry generates the vertex data for the primitive shapes the
// scene is built from. Everything here is CPU-side; the renderer uploads a
// Geometry to the GPU the first time it is drawn.
package geometry

import (
	"github.com/Faultbox/spacescene/pkg/math"
)

// Mode selects how indices are assembled into primitives.
type Mode int

const (
	Triangles Mode = iota
	Lines
)

func (m Mode) String() string {
	if m == Lines {
		return "lines"
	}
	return "triangles"
}

// Vertex is the interleaved vertex layout shared by every program.
// Tangent.w carries the bitangent handedness.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	Tangent  [4]float32
	Color    [3]float32
}

// Geometry is an indexed vertex buffer.
type Geometry struct {
	Name     string
	Mode     Mode
	Vertices []Vertex
	Indices  []uint32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 { return b.Max.Sub(b.Min) }

// Bounds returns the bounding box of all vertex positions.
func (g *Geometry) Bounds() Bounds {
	if len(g.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: math.FromArray(g.Vertices[0].Position),
		Max: math.FromArray(g.Vertices[0].Position),
	}
	for _, v := range g.Vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p[0]), Y: min(b.Min.Y, p[1]), Z: min(b.Min.Z, p[2])}
		b.Max = math.Vec3{X: max(b.Max.X, p[0]), Y: max(b.Max.Y, p[1]), Z: max(b.Max.Z, p[2])}
	}
	return b
}

// PrimitiveCount returns the number of triangles or line segments.
func (g *Geometry) PrimitiveCount() int {
	if g.Mode == Lines {
		return len(g.Indices) / 2
	}
	return len(g.Indices) / 3
}

// ComputeTangents fills Tangent from positions, normals and UVs.
// Tangents are accumulated per triangle, then Gram-Schmidt orthogonalised
// against the vertex normal.
func (g *Geometry) ComputeTangents() {
	if g.Mode != Triangles {
		return
	}
	n := len(g.Vertices)
	tan := make([]math.Vec3, n)
	bitan := make([]math.Vec3, n)

	for i := 0; i+2 < len(g.Indices); i += 3 {
		ia, ib, ic := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
		a, b, c := g.Vertices[ia], g.Vertices[ib], g.Vertices[ic]

		e1 := math.FromArray(b.Position).Sub(math.FromArray(a.Position))
		e2 := math.FromArray(c.Position).Sub(math.FromArray(a.Position))
		du1, dv1 := b.TexCoord[0]-a.TexCoord[0], b.TexCoord[1]-a.TexCoord[1]
		du2, dv2 := c.TexCoord[0]-a.TexCoord[0], c.TexCoord[1]-a.TexCoord[1]

		det := du1*dv2 - du2*dv1
		if det == 0 {
			continue
		}
		r := 1 / det
		sdir := e1.Scale(dv2).Sub(e2.Scale(dv1)).Scale(r)
		tdir := e2.Scale(du1).Sub(e1.Scale(du2)).Scale(r)

		for _, idx := range [3]uint32{ia, ib, ic} {
			tan[idx] = tan[idx].Add(sdir)
			bitan[idx] = bitan[idx].Add(tdir)
		}
	}

	for i := range g.Vertices {
		nrm := math.FromArray(g.Vertices[i].Normal)
		t := tan[i]
		// Orthogonalise and fall back to any perpendicular when UVs are degenerate.
		t = t.Sub(nrm.Scale(nrm.Dot(t))).Normalize()
		if t == (math.Vec3{}) {
			t = perpendicular(nrm)
		}
		w := float32(1)
		if nrm.Cross(t).Dot(bitan[i]) < 0 {
			w = -1
		}
		g.Vertices[i].Tangent = [4]float32{t.X, t.Y, t.Z, w}
	}
}

func perpendicular(n math.Vec3) math.Vec3 {
	axis := math.V3(1, 0, 0)
	if n.X > 0.9 || n.X < -0.9 {
		axis = math.V3(0, 1, 0)
	}
	return axis.Sub(n.Scale(n.Dot(axis))).Normalize()
}

// SetColor paints every vertex with c. Used by line helpers and vertex-coloured materials.
func (g *Geometry) SetColor(c math.Color) {
	for i := range g.Vertices {
		g.Vertices[i].Color = c.Array()
	}
}
