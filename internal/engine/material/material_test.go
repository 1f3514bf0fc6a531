package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/spacescene/internal/engine/texture"
	"github.com/Faultbox/spacescene/pkg/math"
)

func TestDefaults(t *testing.T) {
	s := NewStandard(math.Hex(0x1E90FF))
	assert.Equal(t, KindStandard, s.Kind())
	assert.Equal(t, float32(1), s.Roughness)
	assert.Zero(t, s.Metalness)
	assert.Empty(t, s.Textures())

	p := NewPhong(math.Hex(0xFFD700))
	assert.Equal(t, KindPhong, p.Kind())
	assert.Equal(t, float32(30), p.Shininess)

	b := NewBasic()
	assert.Equal(t, math.Hex(0xFFFFFF), b.Color)
}

func TestTexturesSkipsNil(t *testing.T) {
	normal := texture.New("normals/textureNormal.png")
	s := NewStandard(math.Hex(0xFFFFFF))
	s.NormalMap = normal

	assert.Equal(t, []*texture.Texture{normal}, s.Textures())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "basic", KindBasic.String())
	assert.Equal(t, "line", KindLine.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
