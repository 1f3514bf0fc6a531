// Package showcase assembles the demo scene: four shapes, two lights, two
// helpers, a textured background and an orbiting camera. It has no GL
// dependency so the whole scene can be built and stepped in tests.
package showcase

import (
	gomath "math"

	"github.com/Faultbox/spacescene/internal/config"
	"github.com/Faultbox/spacescene/internal/engine/camera"
	"github.com/Faultbox/spacescene/internal/engine/debug"
	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/material"
	"github.com/Faultbox/spacescene/internal/engine/picking"
	"github.com/Faultbox/spacescene/internal/engine/scene"
	"github.com/Faultbox/spacescene/internal/engine/texture"
	m "github.com/Faultbox/spacescene/pkg/math"
)

// TextureSource hands out texture handles that may still be loading.
type TextureSource interface {
	Load(path string) *texture.Texture
}

// Showcase is the populated scene plus everything the frame step mutates.
type Showcase struct {
	Scene    *scene.Scene
	Camera   *camera.PerspectiveCamera
	Controls *camera.OrbitControls

	Cube        *scene.Mesh
	Icosahedron *scene.Mesh
	Smile       *scene.Mesh
	TorusKnot   *scene.Mesh

	PointLight  *scene.PointLight
	Ambient     *scene.AmbientLight
	LightHelper *scene.PointLightHelper
	Grid        *scene.GridHelper

	Bounds []*debug.BBoxHelper

	selected      *scene.Mesh
	width, height int

	cubeSpin   float32
	sphereSpin float32
	frames     uint64
}

// Build creates the scene described by cfg. Textures are requested from
// textures and never waited on.
func Build(cfg *config.Config, textures TextureSource) *Showcase {
	s := &Showcase{
		Scene:      scene.New(),
		width:      cfg.Graphics.Width,
		height:     cfg.Graphics.Height,
		cubeSpin:   cfg.Animation.CubeSpin,
		sphereSpin: cfg.Animation.SphereSpin,
	}
	load := func(p string) *texture.Texture {
		if p == "" || textures == nil {
			return nil
		}
		return textures.Load(cfg.AssetPath(p))
	}

	aspect := float32(cfg.Graphics.Width) / float32(max(cfg.Graphics.Height, 1))
	s.Camera = camera.NewPerspective(cfg.Camera.FOV, aspect, cfg.Camera.Near, cfg.Camera.Far)
	s.Camera.Position = m.FromArray(cfg.Camera.Position)

	s.Cube = scene.NewMesh("cube", geometry.Box(12, 12, 12), material.NewStandard(m.Hex(0x1E90FF)))
	s.Cube.Position = m.V3(-2, 0, -20)
	s.Cube.Rotation = m.Euler{X: gomath.Pi / 4, Y: gomath.Pi / 4}

	s.Icosahedron = scene.NewMesh("icosahedron", geometry.Icosahedron(7, 0), material.NewPhong(m.Hex(0xFFD700)))
	s.Icosahedron.Position = m.V3(20, 0, -5)

	s.PointLight = scene.NewPointLight("point-light", m.Hex(0xFFFFFF), m.V3(5, 5, 5))
	s.Ambient = scene.NewAmbientLight("ambient-light", m.Hex(0x404040))

	s.LightHelper = scene.NewPointLightHelper(s.PointLight, 1)
	s.Grid = scene.NewGridHelper(200, 50, m.Hex(0x444444), m.Hex(0x888888))

	s.Scene.Background = load(cfg.Assets.Background)

	smile := material.NewBasic()
	smile.Map = load(cfg.Assets.Smile)
	s.Smile = scene.NewMesh("smile", geometry.Sphere(10, 32, 32), smile)

	knotGeom := geometry.TorusKnot(5, 1, 250, 5, 9, 15)
	knot := material.NewStandard(m.Hex(0xFFFFFF))
	knot.NormalMap = load(cfg.Assets.NormalMap)
	knot.Roughness = 0
	knot.Metalness = 0.8
	s.TorusKnot = scene.NewMesh("torus-knot", knotGeom, knot)
	s.TorusKnot.Position = m.V3(0, 20, 0)

	s.Scene.Add(s.Cube, s.Icosahedron, s.PointLight, s.Ambient, s.LightHelper, s.Grid, s.Smile, s.TorusKnot)
	s.SetHelpersVisible(cfg.Debug.ShowHelpers)

	for _, mesh := range []*scene.Mesh{s.Cube, s.Icosahedron, s.Smile, s.TorusKnot} {
		s.Bounds = append(s.Bounds, debug.AttachBBox(mesh, m.Hex(0xFFFF00)))
	}

	s.Controls = camera.NewOrbitControls(s.Camera)
	s.Controls.EnableDamping = cfg.Controls.EnableDamping
	s.Controls.DampingFactor = cfg.Controls.DampingFactor
	s.Controls.RotateSpeed = cfg.Controls.RotateSpeed
	s.Controls.ZoomSpeed = cfg.Controls.ZoomSpeed
	s.Controls.PanSpeed = cfg.Controls.PanSpeed
	s.Controls.MinDistance = cfg.Controls.MinDistance
	s.Controls.MaxDistance = cfg.Controls.MaxDistance
	s.Controls.SetViewportHeight(cfg.Graphics.Height)
	s.Controls.SaveState()

	return s
}

// Frame advances the animation by one step and applies pending camera input.
func (s *Showcase) Frame() {
	s.Cube.Rotation.X += s.cubeSpin
	s.Cube.Rotation.Y += s.cubeSpin
	s.Smile.Rotation.Y += s.sphereSpin

	s.Controls.Update()
	s.Scene.UpdateHelpers()
	s.frames++
}

// Frames returns the number of completed Frame calls.
func (s *Showcase) Frames() uint64 { return s.frames }

// Resize matches the camera to a new viewport size. Zero sizes are ignored.
func (s *Showcase) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.Camera.SetAspect(float32(width) / float32(height))
	s.Controls.SetViewportHeight(height)
}

// SetHelpersVisible shows or hides the light gizmo and the grid.
func (s *Showcase) SetHelpersVisible(visible bool) {
	s.Scene.SetHelpersVisible(visible)
}

// HelpersVisible reports whether the helpers are shown.
func (s *Showcase) HelpersVisible() bool { return s.Grid.Visible }

// ToggleBounds flips the bounding-box outlines and returns the new state.
func (s *Showcase) ToggleBounds() bool {
	visible := len(s.Bounds) > 0 && !s.Bounds[0].Visible
	for _, b := range s.Bounds {
		b.Visible = visible
	}
	s.selected = nil
	return visible
}

// Select outlines mesh alone. A nil mesh clears the selection.
func (s *Showcase) Select(mesh *scene.Mesh) {
	s.selected = mesh
	for _, b := range s.Bounds {
		b.Visible = mesh != nil && b.Target == mesh
	}
}

// Selected returns the outlined mesh, if any.
func (s *Showcase) Selected() *scene.Mesh { return s.selected }

// SelectAt picks the mesh under a window position. Clicking empty space or
// the current selection clears it.
func (s *Showcase) SelectAt(x, y int) *scene.Mesh {
	hit, ok := picking.PickScreen(s.Scene, s.Camera, float32(x)+0.5, float32(y)+0.5, s.width, s.height)
	if !ok || hit.Mesh == s.selected {
		s.Select(nil)
		return nil
	}
	s.Select(hit.Mesh)
	return hit.Mesh
}
