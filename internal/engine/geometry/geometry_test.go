package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/spacescene/pkg/math"
)

func requireValidIndices(t *testing.T, g *Geometry) {
	t.Helper()
	for i, idx := range g.Indices {
		require.Less(t, int(idx), len(g.Vertices), "index %d out of range in %s", i, g.Name)
	}
	if g.Mode == Triangles {
		require.Zero(t, len(g.Indices)%3, "%s index count not a multiple of 3", g.Name)
	} else {
		require.Zero(t, len(g.Indices)%2, "%s index count not a multiple of 2", g.Name)
	}
}

// requireOutwardWinding checks that every triangle's geometric normal points away from the origin.
func requireOutwardWinding(t *testing.T, g *Geometry) {
	t.Helper()
	for i := 0; i < len(g.Indices); i += 3 {
		a := math.FromArray(g.Vertices[g.Indices[i]].Position)
		b := math.FromArray(g.Vertices[g.Indices[i+1]].Position)
		c := math.FromArray(g.Vertices[g.Indices[i+2]].Position)
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		require.Greater(t, n.Dot(centroid), float32(0), "%s triangle %d winds inward", g.Name, i/3)
	}
}

func TestBox(t *testing.T) {
	g := Box(12, 12, 12)
	requireValidIndices(t, g)
	requireOutwardWinding(t, g)

	assert.Len(t, g.Vertices, 24)
	assert.Len(t, g.Indices, 36)
	assert.Equal(t, 12, g.PrimitiveCount())

	b := g.Bounds()
	assert.Equal(t, math.V3(-6, -6, -6), b.Min)
	assert.Equal(t, math.V3(6, 6, 6), b.Max)
}

func TestSphere(t *testing.T) {
	g := Sphere(10, 32, 32)
	requireValidIndices(t, g)
	requireOutwardWinding(t, g)

	assert.Len(t, g.Vertices, 33*33)
	// Pole rows contribute one triangle per segment instead of two.
	assert.Equal(t, 2*32*32-2*32, g.PrimitiveCount())

	for _, v := range g.Vertices {
		p := math.FromArray(v.Position)
		assert.InDelta(t, 10, p.Length(), 1e-3)
		assert.InDelta(t, 1, math.FromArray(v.Normal).Length(), 1e-3)
	}
}

func TestSphereClampsSegments(t *testing.T) {
	g := Sphere(1, 1, 1)
	assert.Len(t, g.Vertices, 4*3)
}

func TestTorusKnot(t *testing.T) {
	g := TorusKnot(5, 1, 250, 5, 9, 15)
	requireValidIndices(t, g)

	assert.Len(t, g.Vertices, 251*6)
	assert.Equal(t, 250*5*2, g.PrimitiveCount())

	// Every vertex sits at tube distance from the knot curve.
	b := g.Bounds()
	size := b.Size()
	assert.LessOrEqual(t, size.X, float32(2*(5*1.5+1))+0.01)
	assert.Greater(t, size.X, float32(10))
}

func TestIcosahedron(t *testing.T) {
	tests := []struct {
		detail    int
		triangles int
	}{
		{0, 20},
		{1, 80},
		{2, 180},
	}
	for _, tt := range tests {
		g := Icosahedron(7, tt.detail)
		requireValidIndices(t, g)
		requireOutwardWinding(t, g)
		assert.Equal(t, tt.triangles, g.PrimitiveCount(), "detail %d", tt.detail)
		for _, v := range g.Vertices {
			assert.InDelta(t, 7, math.FromArray(v.Position).Length(), 1e-3)
		}
	}
}

func TestIcosahedronIsFlatShaded(t *testing.T) {
	g := Icosahedron(7, 0)
	for i := 0; i < len(g.Indices); i += 3 {
		n0 := g.Vertices[g.Indices[i]].Normal
		assert.Equal(t, n0, g.Vertices[g.Indices[i+1]].Normal)
		assert.Equal(t, n0, g.Vertices[g.Indices[i+2]].Normal)
	}
}

func TestTangentsAreUnitAndPerpendicular(t *testing.T) {
	for _, g := range []*Geometry{Box(1, 1, 1), Sphere(1, 8, 6), TorusKnot(5, 1, 40, 5, 2, 3)} {
		for _, v := range g.Vertices {
			tan := math.V3(v.Tangent[0], v.Tangent[1], v.Tangent[2])
			n := math.FromArray(v.Normal)
			assert.InDelta(t, 1, tan.Length(), 1e-3, g.Name)
			assert.InDelta(t, 0, tan.Dot(n), 1e-3, g.Name)
			assert.Contains(t, []float32{-1, 1}, v.Tangent[3])
		}
	}
}

func TestGrid(t *testing.T) {
	centre := math.Hex(0x444444)
	lines := math.Hex(0x888888)
	g := Grid(200, 50, centre, lines)
	requireValidIndices(t, g)

	assert.Equal(t, Lines, g.Mode)
	assert.Equal(t, 51*2, g.PrimitiveCount())

	b := g.Bounds()
	assert.Equal(t, math.V3(-100, 0, -100), b.Min)
	assert.Equal(t, math.V3(100, 0, 100), b.Max)

	var centreVerts int
	for _, v := range g.Vertices {
		if v.Color == centre.Array() {
			centreVerts++
		}
	}
	assert.Equal(t, 4, centreVerts, "one line pair through the origin")
}

func TestWireOctahedron(t *testing.T) {
	g := WireOctahedron(1)
	requireValidIndices(t, g)
	assert.Equal(t, Lines, g.Mode)
	assert.Len(t, g.Vertices, 6)
	assert.Equal(t, 12, g.PrimitiveCount())
}
