package geometry

import "github.com/Faultbox/spacescene/pkg/math"

// Grid builds a square line grid on the XZ plane. The centre lines use
// centreColor, every other line gridColor.
func Grid(size float32, divisions int, centreColor, gridColor math.Color) *Geometry {
	divisions = max(1, divisions)
	g := &Geometry{Name: "grid", Mode: Lines}

	centre := divisions / 2
	step := size / float32(divisions)
	half := size / 2

	k := -half
	for i := 0; i <= divisions; i++ {
		c := gridColor
		if i == centre {
			c = centreColor
		}
		g.addLine(math.V3(-half, 0, k), math.V3(half, 0, k), c)
		g.addLine(math.V3(k, 0, -half), math.V3(k, 0, half), c)
		k += step
	}
	return g
}

// WireOctahedron builds the 12 edges of an octahedron with the given radius.
// It is the gizmo drawn at a point light's position.
func WireOctahedron(radius float32) *Geometry {
	g := &Geometry{Name: "wire-octahedron", Mode: Lines}
	tips := []math.Vec3{
		math.V3(radius, 0, 0), math.V3(-radius, 0, 0),
		math.V3(0, radius, 0), math.V3(0, -radius, 0),
		math.V3(0, 0, radius), math.V3(0, 0, -radius),
	}
	for _, t := range tips {
		g.Vertices = append(g.Vertices, Vertex{Position: t.Array(), Normal: t.Normalize().Array()})
	}
	// Equator ring (x, z, -x, -z) plus each ring point joined to both poles.
	ring := []uint32{0, 4, 1, 5}
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		g.Indices = append(g.Indices, a, b, a, 2, a, 3)
	}
	return g
}

func (g *Geometry) addLine(a, b math.Vec3, c math.Color) {
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices,
		Vertex{Position: a.Array(), Color: c.Array()},
		Vertex{Position: b.Array(), Color: c.Array()},
	)
	g.Indices = append(g.Indices, base, base+1)
}
