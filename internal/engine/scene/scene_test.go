package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/lighting"
	"github.com/Faultbox/spacescene/internal/engine/material"
	m "github.com/Faultbox/spacescene/pkg/math"
)

func newCube() *Mesh {
	return NewMesh("cube", geometry.Box(1, 1, 1), material.NewStandard(m.Hex(0x1E90FF)))
}

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("n")
	assert.True(t, n.Visible)
	assert.Equal(t, m.V3(1, 1, 1), n.Scale)
	assert.True(t, n.LocalMatrix().ApproxEqual(m.Identity()))
}

func TestAddIsIdempotent(t *testing.T) {
	s := New()
	cube := newCube()
	s.Add(cube)
	s.Add(cube)
	s.Add(nil)

	assert.Equal(t, 1, s.ChildCount())
	assert.Same(t, &s.Node, cube.Parent())
}

func TestAddMovesBetweenParents(t *testing.T) {
	s := New()
	group := NewMesh("group", nil, nil)
	cube := newCube()
	s.Add(group, cube)
	group.Add(cube)

	assert.Equal(t, 1, s.ChildCount())
	assert.Equal(t, 1, group.ChildCount())
	assert.Same(t, &group.Node, cube.Parent())
}

func TestRemove(t *testing.T) {
	s := New()
	cube := newCube()
	s.Add(cube)

	assert.True(t, s.Remove(cube))
	assert.False(t, s.Remove(cube))
	assert.Nil(t, cube.Parent())
	assert.Zero(t, s.ChildCount())
}

func TestTraverseComposesWorldMatrices(t *testing.T) {
	s := New()
	parent := NewMesh("parent", nil, nil)
	parent.Position = m.V3(10, 0, 0)
	child := newCube()
	child.Position = m.V3(0, 5, 0)
	parent.Add(child)
	s.Add(parent)

	items := s.DrawList()
	require.Len(t, items, 1, "meshes without geometry are skipped")
	assert.True(t, items[0].World.Translation().ApproxEqual(m.V3(10, 5, 0)))
	assert.True(t, child.WorldPosition().ApproxEqual(m.V3(10, 5, 0)))
}

func TestHiddenSubtreeIsSkipped(t *testing.T) {
	s := New()
	parent := newCube()
	parent.Add(newCube())
	parent.Visible = false
	s.Add(parent)

	assert.Empty(t, s.DrawList())
}

func TestFind(t *testing.T) {
	s := New()
	parent := newCube()
	child := NewMesh("smile", geometry.Sphere(1, 8, 8), material.NewBasic())
	parent.Add(child)
	s.Add(parent)

	assert.Same(t, child, s.Find("smile"))
	assert.Nil(t, s.Find("nope"))
}

func TestCollectLights(t *testing.T) {
	s := New()
	s.Add(
		NewPointLight("light", m.Hex(0xFFFFFF), m.V3(5, 5, 5)),
		NewAmbientLight("ambient", m.Hex(0x404040)),
	)

	buf := lighting.NewBuffer(0)
	s.CollectLights(buf)
	assert.Equal(t, 1, buf.Count())
	assert.Equal(t, []float32{5, 5, 5}, buf.Positions()[:3])
	assert.InDelta(t, 0x40/255.0, buf.Ambient()[0], 1e-6)
}

func TestPointLightHelperFollowsLight(t *testing.T) {
	light := NewPointLight("light", m.Hex(0xFF0000), m.V3(5, 5, 5))
	h := NewPointLightHelper(light, 0)
	assert.Equal(t, m.V3(5, 5, 5), h.Position)
	assert.Equal(t, geometry.Lines, h.Geometry.Mode)

	light.Position = m.V3(1, 2, 3)
	light.Light.Color = m.Hex(0x00FF00)
	s := New()
	s.Add(light, h)
	s.UpdateHelpers()

	assert.Equal(t, m.V3(1, 2, 3), h.Position)
	assert.Equal(t, m.Hex(0x00FF00), h.Material.(*material.Line).Color)
}

func TestHelpersToggle(t *testing.T) {
	s := New()
	light := NewPointLight("light", m.Hex(0xFFFFFF), m.V3(5, 5, 5))
	s.Add(newCube(), light, NewPointLightHelper(light, 1),
		NewGridHelper(200, 50, m.Hex(0x444444), m.Hex(0x888888)))
	require.Len(t, s.DrawList(), 3)

	s.SetHelpersVisible(false)
	items := s.DrawList()
	require.Len(t, items, 1)
	assert.Equal(t, "cube", items[0].Mesh.Name)

	s.SetHelpersVisible(true)
	assert.Len(t, s.DrawList(), 3)
}

func TestIsHelper(t *testing.T) {
	assert.True(t, IsHelper(NewGridHelper(10, 2, m.Color{}, m.Color{})))
	assert.False(t, IsHelper(newCube()))
}
