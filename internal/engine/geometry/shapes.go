package geometry

import (
	gomath "math"

	"github.com/Faultbox/spacescene/pkg/math"
)

// Box builds an axis-aligned box centred on the origin with one quad per face.
func Box(width, height, depth float32) *Geometry {
	g := &Geometry{Name: "box"}
	hw, hh, hd := width/2, height/2, depth/2

	// Each face: normal, u axis, v axis. Corners are origin ± u ± v.
	faces := []struct {
		normal, u, v math.Vec3
		nd, ud, vd   float32
	}{
		{math.V3(1, 0, 0), math.V3(0, 0, -1), math.V3(0, 1, 0), hw, hd, hh},  // +x
		{math.V3(-1, 0, 0), math.V3(0, 0, 1), math.V3(0, 1, 0), hw, hd, hh},  // -x
		{math.V3(0, 1, 0), math.V3(1, 0, 0), math.V3(0, 0, -1), hh, hw, hd},  // +y
		{math.V3(0, -1, 0), math.V3(1, 0, 0), math.V3(0, 0, 1), hh, hw, hd},  // -y
		{math.V3(0, 0, 1), math.V3(1, 0, 0), math.V3(0, 1, 0), hd, hw, hh},   // +z
		{math.V3(0, 0, -1), math.V3(-1, 0, 0), math.V3(0, 1, 0), hd, hw, hh}, // -z
	}

	for _, f := range faces {
		base := uint32(len(g.Vertices))
		centre := f.normal.Scale(f.nd)
		corners := [4][2]float32{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}
		for _, c := range corners {
			p := centre.Add(f.u.Scale(c[0] * f.ud)).Add(f.v.Scale(c[1] * f.vd))
			g.Vertices = append(g.Vertices, Vertex{
				Position: p.Array(),
				Normal:   f.normal.Array(),
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		// corners: 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right (counter-clockwise from outside)
		g.Indices = append(g.Indices,
			base+0, base+2, base+1,
			base+2, base+3, base+1,
		)
	}

	g.ComputeTangents()
	return g
}

// Sphere builds a UV sphere. widthSegments >= 3, heightSegments >= 2.
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)
	g := &Geometry{Name: "sphere"}

	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)

		// Shift the pole UVs half a segment so pole triangles are not skewed.
		uOffset := 0.0
		if iy == 0 {
			uOffset = 0.5 / float64(widthSegments)
		} else if iy == heightSegments {
			uOffset = -0.5 / float64(widthSegments)
		}

		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			sinV := gomath.Sin(v * gomath.Pi)
			p := math.V3(
				float32(-float64(radius)*gomath.Cos(u*2*gomath.Pi)*sinV),
				float32(float64(radius)*gomath.Cos(v*gomath.Pi)),
				float32(float64(radius)*gomath.Sin(u*2*gomath.Pi)*sinV),
			)
			row[ix] = uint32(len(g.Vertices))
			g.Vertices = append(g.Vertices, Vertex{
				Position: p.Array(),
				Normal:   p.Normalize().Array(),
				TexCoord: [2]float32{float32(u + uOffset), float32(1 - v)},
			})
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}

	g.ComputeTangents()
	return g
}

// TorusKnot builds a (p, q) torus knot tube.
func TorusKnot(radius, tube float32, tubularSegments, radialSegments, p, q int) *Geometry {
	tubularSegments = max(3, tubularSegments)
	radialSegments = max(3, radialSegments)
	g := &Geometry{Name: "torus-knot"}

	curve := func(u float64) math.Vec3 {
		cu, su := gomath.Cos(u), gomath.Sin(u)
		quOverP := float64(q) / float64(p) * u
		cs := gomath.Cos(quOverP)
		r := float64(radius)
		return math.V3(
			float32(r*(2+cs)*0.5*cu),
			float32(r*(2+cs)*su*0.5),
			float32(r*gomath.Sin(quOverP)*0.5),
		)
	}

	for i := 0; i <= tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments) * float64(p) * gomath.Pi * 2

		// Frenet-style frame from the curve and a point slightly ahead of it.
		p1 := curve(u)
		p2 := curve(u + 0.01)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b = b.Normalize()
		n = n.Normalize()

		for j := 0; j <= radialSegments; j++ {
			v := float64(j) / float64(radialSegments) * gomath.Pi * 2
			cx := -tube * float32(gomath.Cos(v))
			cy := tube * float32(gomath.Sin(v))

			pos := p1.Add(n.Scale(cx)).Add(b.Scale(cy))
			g.Vertices = append(g.Vertices, Vertex{
				Position: pos.Array(),
				Normal:   pos.Sub(p1).Normalize().Array(),
				TexCoord: [2]float32{float32(i) / float32(tubularSegments), float32(j) / float32(radialSegments)},
			})
		}
	}

	stride := uint32(radialSegments + 1)
	for j := uint32(1); j <= uint32(tubularSegments); j++ {
		for i := uint32(1); i <= uint32(radialSegments); i++ {
			a := stride*(j-1) + (i - 1)
			b := stride*j + (i - 1)
			c := stride*j + i
			d := stride*(j-1) + i
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	g.ComputeTangents()
	return g
}

// Icosahedron builds a flat-shaded icosahedron. detail > 0 subdivides each
// face and pushes the new vertices onto the sphere.
func Icosahedron(radius float32, detail int) *Geometry {
	t := float32((1 + gomath.Sqrt(5)) / 2)
	base := []math.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	g := &Geometry{Name: "icosahedron"}
	cols := detail + 1
	for _, f := range faces {
		a, b, c := base[f[0]], base[f[1]], base[f[2]]

		// Rows of points between edge a-c and edge b-c.
		rows := make([][]math.Vec3, cols+1)
		for i := 0; i <= cols; i++ {
			aj := a.Lerp(c, float32(i)/float32(cols))
			bj := b.Lerp(c, float32(i)/float32(cols))
			n := cols - i
			rows[i] = make([]math.Vec3, n+1)
			for j := 0; j <= n; j++ {
				if j == 0 && i == cols {
					rows[i][j] = aj
				} else {
					rows[i][j] = aj.Lerp(bj, float32(j)/float32(n))
				}
			}
		}
		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					g.addFlatTriangle(rows[i][k+1], rows[i+1][k], rows[i][k], radius)
				} else {
					g.addFlatTriangle(rows[i][k+1], rows[i+1][k+1], rows[i+1][k], radius)
				}
			}
		}
	}

	g.ComputeTangents()
	return g
}

// addFlatTriangle projects a, b, c onto the sphere and appends them with a shared face normal.
func (g *Geometry) addFlatTriangle(a, b, c math.Vec3, radius float32) {
	pts := [3]math.Vec3{
		a.Normalize().Scale(radius),
		b.Normalize().Scale(radius),
		c.Normalize().Scale(radius),
	}
	normal := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0])).Normalize()
	// Keep the winding facing outward.
	if normal.Dot(pts[0]) < 0 {
		pts[1], pts[2] = pts[2], pts[1]
		normal = normal.Neg()
	}

	base := uint32(len(g.Vertices))
	for _, p := range pts {
		g.Vertices = append(g.Vertices, Vertex{
			Position: p.Array(),
			Normal:   normal.Array(),
			TexCoord: sphericalUV(p),
		})
	}
	g.Indices = append(g.Indices, base, base+1, base+2)
}

func sphericalUV(p math.Vec3) [2]float32 {
	n := p.Normalize()
	u := gomath.Atan2(float64(n.Z), -float64(n.X))/(2*gomath.Pi) + 0.5
	v := gomath.Atan2(-float64(n.Y), gomath.Sqrt(float64(n.X*n.X+n.Z*n.Z)))/gomath.Pi + 0.5
	return [2]float32{float32(u), float32(v)}
}
