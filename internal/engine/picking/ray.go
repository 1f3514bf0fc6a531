// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/spacescene/internal/engine/geometry"
	m "github.com/Faultbox/spacescene/pkg/math"
)

// Ray is Origin + t*Direction. Direction is unit length for rays built from
// the screen; transformed rays keep t comparable across spaces instead.
type Ray struct {
	Origin    m.Vec3
	Direction m.Vec3
}

// ScreenToRay converts window coordinates to a world-space ray.
// invViewProj is the inverse of projection * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj m.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // window Y points down

	near := invViewProj.MulPoint(m.V3(ndcX, ndcY, -1))
	far := invViewProj.MulPoint(m.V3(ndcX, ndcY, 1))
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// At returns the point at parameter t.
func (r Ray) At(t float32) m.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform maps the ray into another space without renormalising, so hit
// distances found there are valid in the original space.
func (r Ray) Transform(mat m.Mat4) Ray {
	return Ray{Origin: mat.MulPoint(r.Origin), Direction: mat.MulDirection(r.Direction)}
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (m.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return m.Vec3{}, false
	}
	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return m.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB tests the ray against a box with the slab method. If the
// ray starts inside the box the exit distance is returned.
func (r Ray) IntersectAABB(box geometry.Bounds) (float32, bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
