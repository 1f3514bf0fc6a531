package scene

import (
	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/lighting"
	"github.com/Faultbox/spacescene/internal/engine/material"
	m "github.com/Faultbox/spacescene/pkg/math"
)

// Drawable is an object the renderer draws.
type Drawable interface {
	Object
	Drawable() *Mesh
}

// Mesh pairs a geometry with a material.
type Mesh struct {
	Node
	Geometry *geometry.Geometry
	Material material.Material
}

// NewMesh creates a mesh at the origin.
func NewMesh(name string, g *geometry.Geometry, mat material.Material) *Mesh {
	return &Mesh{Node: NewNode(name), Geometry: g, Material: mat}
}

func (mesh *Mesh) Drawable() *Mesh { return mesh }

// PointLight places a point light in the scene.
type PointLight struct {
	Node
	Light lighting.PointLight
}

// NewPointLight creates a point light of the given colour at position.
func NewPointLight(name string, color m.Color, position m.Vec3) *PointLight {
	l := &PointLight{Node: NewNode(name), Light: lighting.NewPointLight(color)}
	l.Position = position
	return l
}

// AmbientLight adds uniform light to every surface.
type AmbientLight struct {
	Node
	Light lighting.AmbientLight
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(name string, color m.Color) *AmbientLight {
	return &AmbientLight{Node: NewNode(name), Light: lighting.NewAmbientLight(color)}
}

// PointLightHelper draws a small wireframe octahedron at a light's position,
// tinted with the light colour.
type PointLightHelper struct {
	Mesh
	Light *PointLight
}

// NewPointLightHelper creates a helper for light. size is the octahedron radius.
func NewPointLightHelper(light *PointLight, size float32) *PointLightHelper {
	if size <= 0 {
		size = 1
	}
	h := &PointLightHelper{
		Mesh: Mesh{
			Node:     NewNode(light.Name + "-helper"),
			Geometry: geometry.WireOctahedron(size),
			Material: &material.Line{Color: light.Light.Color},
		},
		Light: light,
	}
	h.Update()
	return h
}

// Update moves the helper onto the light and copies its colour.
func (h *PointLightHelper) Update() {
	h.Position = h.Light.WorldPosition()
	if line, ok := h.Material.(*material.Line); ok {
		line.Color = h.Light.Light.Color
	}
}

// GridHelper is a flat reference grid on the XZ plane.
type GridHelper struct {
	Mesh
	Size      float32
	Divisions int
}

// NewGridHelper creates a grid of size units split into divisions cells per side.
func NewGridHelper(size float32, divisions int, centreColor, gridColor m.Color) *GridHelper {
	return &GridHelper{
		Mesh: Mesh{
			Node:     NewNode("grid-helper"),
			Geometry: geometry.Grid(size, divisions, centreColor, gridColor),
			Material: &material.Line{VertexColors: true},
		},
		Size:      size,
		Divisions: divisions,
	}
}

// IsHelper reports whether obj is a debug helper rather than scene content.
func IsHelper(obj Object) bool {
	switch obj.(type) {
	case *PointLightHelper, *GridHelper:
		return true
	}
	return false
}
