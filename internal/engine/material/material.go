// Package material describes how a mesh surface is shaded. Materials are plain
// data; the renderer picks a shader program from Kind and uploads the fields as
// uniforms.
package material

import (
	"github.com/Faultbox/spacescene/internal/engine/texture"
	"github.com/Faultbox/spacescene/pkg/math"
)

// Kind identifies the shading model.
type Kind int

const (
	KindBasic Kind = iota
	KindPhong
	KindStandard
	KindLine
)

var kindNames = map[Kind]string{
	KindBasic:    "basic",
	KindPhong:    "phong",
	KindStandard: "standard",
	KindLine:     "line",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Material is implemented by every shading model.
type Material interface {
	Kind() Kind
	// Textures lists the textures the material samples, nil entries omitted.
	Textures() []*texture.Texture
}

// Basic is unlit: Color, optionally multiplied by Map.
type Basic struct {
	Color math.Color
	Map   *texture.Texture
}

// NewBasic returns a white unlit material.
func NewBasic() *Basic {
	return &Basic{Color: math.Hex(0xFFFFFF)}
}

func (m *Basic) Kind() Kind { return KindBasic }

func (m *Basic) Textures() []*texture.Texture { return nonNil(m.Map) }

// Phong is Blinn-Phong lit with a specular highlight.
type Phong struct {
	Color     math.Color
	Specular  math.Color
	Shininess float32
	Map       *texture.Texture
}

// NewPhong returns a Phong material with the common defaults (specular 0x111111, shininess 30).
func NewPhong(color math.Color) *Phong {
	return &Phong{
		Color:     color,
		Specular:  math.Hex(0x111111),
		Shininess: 30,
	}
}

func (m *Phong) Kind() Kind { return KindPhong }

func (m *Phong) Textures() []*texture.Texture { return nonNil(m.Map) }

// Standard is a metallic-roughness physically based material.
type Standard struct {
	Color       math.Color
	Roughness   float32
	Metalness   float32
	Map         *texture.Texture
	NormalMap   *texture.Texture
	NormalScale float32
}

// NewStandard returns a standard material with roughness 1 and metalness 0.
func NewStandard(color math.Color) *Standard {
	return &Standard{
		Color:       color,
		Roughness:   1,
		Metalness:   0,
		NormalScale: 1,
	}
}

func (m *Standard) Kind() Kind { return KindStandard }

func (m *Standard) Textures() []*texture.Texture { return nonNil(m.Map, m.NormalMap) }

// Line draws vertex-coloured lines, optionally overriding the colour.
type Line struct {
	Color        math.Color
	VertexColors bool
}

func (m *Line) Kind() Kind { return KindLine }

func (m *Line) Textures() []*texture.Texture { return nil }

func nonNil(ts ...*texture.Texture) []*texture.Texture {
	var out []*texture.Texture
	for _, t := range ts {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}
