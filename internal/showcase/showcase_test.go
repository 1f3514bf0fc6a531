package showcase

import (
	gomath "math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/spacescene/internal/config"
	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/material"
	"github.com/Faultbox/spacescene/internal/engine/scene"
	"github.com/Faultbox/spacescene/internal/engine/texture"
	m "github.com/Faultbox/spacescene/pkg/math"
)

type recordingSource struct {
	paths []string
}

func (r *recordingSource) Load(path string) *texture.Texture {
	r.paths = append(r.paths, path)
	return texture.New(path)
}

func build(t *testing.T) (*Showcase, *recordingSource) {
	t.Helper()
	src := &recordingSource{}
	return Build(config.Default(), src), src
}

func TestSceneHasEightChildren(t *testing.T) {
	s, _ := build(t)
	assert.Equal(t, 8, s.Scene.ChildCount())

	var lights, helpers, meshes int
	for _, c := range s.Scene.Children() {
		switch {
		case scene.IsHelper(c):
			helpers++
		case isLight(c):
			lights++
		default:
			meshes++
		}
	}
	assert.Equal(t, 4, meshes)
	assert.Equal(t, 2, lights)
	assert.Equal(t, 2, helpers)
}

func isLight(obj scene.Object) bool {
	switch obj.(type) {
	case *scene.PointLight, *scene.AmbientLight:
		return true
	}
	return false
}

func TestCameraParameters(t *testing.T) {
	s, _ := build(t)
	assert.Equal(t, float32(75), s.Camera.FOV)
	assert.Equal(t, float32(0.1), s.Camera.Near)
	assert.Equal(t, float32(1000), s.Camera.Far)
	assert.Equal(t, m.V3(-10, 0, 30), s.Camera.Position)
	assert.InDelta(t, 1280.0/720.0, s.Camera.Aspect, 1e-6)
}

func TestObjectPlacement(t *testing.T) {
	s, _ := build(t)

	assert.Equal(t, m.V3(-2, 0, -20), s.Cube.Position)
	assert.InDelta(t, gomath.Pi/4, s.Cube.Rotation.X, 1e-7)
	assert.InDelta(t, gomath.Pi/4, s.Cube.Rotation.Y, 1e-7)
	assert.Equal(t, m.V3(20, 0, -5), s.Icosahedron.Position)
	assert.Equal(t, m.Vec3{}, s.Smile.Position)
	assert.Equal(t, m.V3(0, 20, 0), s.TorusKnot.Position)
	assert.Equal(t, m.V3(5, 5, 5), s.PointLight.Position)
	assert.Equal(t, m.V3(5, 5, 5), s.LightHelper.Position)
}

func TestMaterials(t *testing.T) {
	s, src := build(t)

	cube := s.Cube.Material.(*material.Standard)
	assert.Equal(t, uint32(0x1E90FF), cube.Color.Hex())

	ico := s.Icosahedron.Material.(*material.Phong)
	assert.Equal(t, uint32(0xFFD700), ico.Color.Hex())

	smile := s.Smile.Material.(*material.Basic)
	require.NotNil(t, smile.Map)
	assert.Equal(t, filepath.Join(".", "images/smile.jpg"), smile.Map.Path)

	knot := s.TorusKnot.Material.(*material.Standard)
	require.NotNil(t, knot.NormalMap)
	assert.Equal(t, float32(0), knot.Roughness)
	assert.Equal(t, float32(0.8), knot.Metalness)

	assert.Equal(t, uint32(0xFFFFFF), s.PointLight.Light.Color.Hex())
	assert.Equal(t, uint32(0x404040), s.Ambient.Light.Color.Hex())
	assert.NotNil(t, s.Scene.Background)
	assert.Len(t, src.paths, 3)
}

func TestGeometryShapes(t *testing.T) {
	s, _ := build(t)
	assert.Equal(t, m.V3(12, 12, 12), s.Cube.Geometry.Bounds().Size())
	assert.Equal(t, 20, s.Icosahedron.Geometry.PrimitiveCount())
	assert.Equal(t, 32*32*2-2*32, s.Smile.Geometry.PrimitiveCount())
	assert.Equal(t, 250*5*2, s.TorusKnot.Geometry.PrimitiveCount())
	assert.Equal(t, geometry.Lines, s.Grid.Geometry.Mode)
	assert.Equal(t, 51*2, s.Grid.Geometry.PrimitiveCount())
}

func TestFrameRotations(t *testing.T) {
	s, _ := build(t)
	const n = 100
	for i := 0; i < n; i++ {
		s.Frame()
	}

	assert.Equal(t, uint64(n), s.Frames())
	assert.InDelta(t, gomath.Pi/4+0.01*n, s.Cube.Rotation.X, 1e-4)
	assert.InDelta(t, gomath.Pi/4+0.01*n, s.Cube.Rotation.Y, 1e-4)
	assert.Zero(t, s.Cube.Rotation.Z)
	assert.InDelta(t, 0.05*n, s.Smile.Rotation.Y, 1e-4)
	assert.Zero(t, s.Smile.Rotation.X)
}

func TestRotationIsNotWrapped(t *testing.T) {
	s, _ := build(t)
	for i := 0; i < 1000; i++ {
		s.Frame()
	}
	assert.Greater(t, s.Smile.Rotation.Y, float32(2*gomath.Pi))
}

func TestFramesLeaveEverythingElseAlone(t *testing.T) {
	s, _ := build(t)
	cam := s.Camera.Position
	light := s.PointLight.Position
	vertices := append([]geometry.Vertex(nil), s.TorusKnot.Geometry.Vertices...)
	ico := s.Icosahedron.Rotation

	for i := 0; i < 50; i++ {
		s.Frame()
	}

	assert.Equal(t, cam, s.Camera.Position)
	assert.Equal(t, light, s.PointLight.Position)
	assert.Equal(t, light, s.LightHelper.Position)
	assert.Equal(t, vertices, s.TorusKnot.Geometry.Vertices)
	assert.Equal(t, ico, s.Icosahedron.Rotation)
	assert.Equal(t, 8, s.Scene.ChildCount())
}

func TestResize(t *testing.T) {
	s, _ := build(t)
	s.Resize(800, 400)
	assert.Equal(t, float32(2), s.Camera.Aspect)

	s.Resize(0, 0)
	assert.Equal(t, float32(2), s.Camera.Aspect, "minimised window keeps the last aspect")
}

func TestHelpersVisibility(t *testing.T) {
	cfg := config.Default()
	cfg.Debug.ShowHelpers = false
	s := Build(cfg, nil)

	assert.False(t, s.HelpersVisible())
	assert.Len(t, s.Scene.DrawList(), 4)

	s.SetHelpersVisible(true)
	assert.True(t, s.HelpersVisible())
	assert.Len(t, s.Scene.DrawList(), 6)
}

func TestToggleBounds(t *testing.T) {
	s, _ := build(t)
	before := len(s.Scene.DrawList())

	assert.True(t, s.ToggleBounds())
	assert.Len(t, s.Scene.DrawList(), before+4)
	assert.False(t, s.ToggleBounds())
	assert.Len(t, s.Scene.DrawList(), before)
}

func TestBuildWithoutTextures(t *testing.T) {
	s := Build(config.Default(), nil)
	assert.Nil(t, s.Scene.Background)
	assert.Nil(t, s.Smile.Material.(*material.Basic).Map)
	assert.Equal(t, 8, s.Scene.ChildCount())
}

func TestBuildUsesAnimationConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.CubeSpin = 0
	cfg.Animation.SphereSpin = 0.1
	s := Build(cfg, nil)
	s.Frame()

	assert.InDelta(t, gomath.Pi/4, s.Cube.Rotation.X, 1e-7)
	assert.InDelta(t, 0.1, s.Smile.Rotation.Y, 1e-7)
}

func TestSelectShowsOnlyThatOutline(t *testing.T) {
	s, _ := build(t)
	s.Select(s.Cube)
	assert.Same(t, s.Cube, s.Selected())
	for _, b := range s.Bounds {
		assert.Equal(t, b.Target == s.Cube, b.Visible, b.Target.Name)
	}

	s.Select(nil)
	assert.Nil(t, s.Selected())
	for _, b := range s.Bounds {
		assert.False(t, b.Visible)
	}
}

func TestSelectAt(t *testing.T) {
	s, _ := build(t)

	// The camera looks at the origin, where the smile sphere sits.
	assert.Same(t, s.Smile, s.SelectAt(640, 360))
	assert.Same(t, s.Smile, s.Selected())

	assert.Nil(t, s.SelectAt(640, 360), "clicking the selection clears it")
	assert.Nil(t, s.Selected())

	s.Select(s.Cube)
	assert.Nil(t, s.SelectAt(640, 719), "empty space clears the selection")
	assert.Nil(t, s.Selected())
}

func TestToggleBoundsClearsSelection(t *testing.T) {
	s, _ := build(t)
	s.Select(s.Cube)
	s.ToggleBounds()
	assert.Nil(t, s.Selected())
}
