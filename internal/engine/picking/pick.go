package picking

import (
	"github.com/Faultbox/spacescene/internal/engine/camera"
	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/scene"
)

// Hit is the nearest mesh under a ray.
type Hit struct {
	Mesh     *scene.Mesh
	Distance float32
}

// Pick returns the closest visible triangle mesh whose bounding box the ray
// crosses. Line meshes such as helpers are never picked.
func Pick(s *scene.Scene, ray Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, item := range s.DrawList() {
		g := item.Mesh.Geometry
		if g.Mode != geometry.Triangles {
			continue
		}
		local := ray.Transform(item.World.Inverse())
		t, hit := local.IntersectAABB(g.Bounds())
		if hit && (!found || t < best.Distance) {
			best = Hit{Mesh: item.Mesh, Distance: t}
			found = true
		}
	}
	return best, found
}

// PickScreen casts a ray through a window position.
func PickScreen(s *scene.Scene, cam *camera.PerspectiveCamera, x, y float32, width, height int) (Hit, bool) {
	if width <= 0 || height <= 0 {
		return Hit{}, false
	}
	inv := cam.ProjectionMatrix().Mul(cam.ViewMatrix()).Inverse()
	return Pick(s, ScreenToRay(x, y, float32(width), float32(height), inv))
}
