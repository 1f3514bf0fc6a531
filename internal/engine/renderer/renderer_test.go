package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/material"
)

func TestViewport(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		ratio         float32
		wantW, wantH  int32
	}{
		{"unit ratio", 1280, 720, 1, 1280, 720},
		{"retina", 1280, 720, 2, 2560, 1440},
		{"fractional", 1001, 501, 1.5, 1502, 752},
		{"zero ratio means one", 800, 600, 0, 800, 600},
		{"negative size clamps", -5, 10, 1, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := viewport(tt.width, tt.height, tt.ratio)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestVertexLayoutIsTightlyPacked(t *testing.T) {
	assert.Equal(t, int32(60), vertexStride)

	var floats int32
	for i, a := range vertexLayout {
		assert.Equal(t, uint32(i), a.location)
		assert.Equal(t, uintptr(floats*4), a.offset)
		floats += a.size
	}
	assert.Equal(t, vertexStride, floats*4)
}

func TestGLMode(t *testing.T) {
	assert.Equal(t, uint32(gl.TRIANGLES), glMode(geometry.Triangles))
	assert.Equal(t, uint32(gl.LINES), glMode(geometry.Lines))
}

func TestEveryMaterialHasAProgram(t *testing.T) {
	kinds := map[material.Kind]bool{}
	for _, src := range programSources() {
		assert.NotEmpty(t, src.vertex)
		assert.NotEmpty(t, src.fragment)
		kinds[src.kind] = true
	}
	for _, k := range []material.Kind{material.KindBasic, material.KindPhong, material.KindStandard, material.KindLine} {
		assert.True(t, kinds[k], k.String())
	}
}

func TestLightDefines(t *testing.T) {
	assert.Equal(t, []string{"MAX_POINT_LIGHTS 8"}, lightDefines())
}

type viewportCall struct{ w, h int32 }

func recordingSurface() (*Surface, *[]viewportCall) {
	var calls []viewportCall
	s := NewSurface(func(x, y, w, h int32) {
		calls = append(calls, viewportCall{w, h})
	})
	return s, &calls
}

func TestSurfaceResize(t *testing.T) {
	s, calls := recordingSurface()
	s.SetPixelRatio(2)
	assert.Empty(t, *calls, "no viewport before a size is known")

	s.SetSize(800, 600)
	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, []viewportCall{{1600, 1200}}, *calls)

	s.SetSize(1024, 512)
	assert.Equal(t, viewportCall{2048, 1024}, (*calls)[len(*calls)-1])
}

func TestSurfacePixelRatioChangeKeepsSize(t *testing.T) {
	s, calls := recordingSurface()
	s.SetSize(640, 480)
	s.SetPixelRatio(1.5)

	w, h := s.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, float32(1.5), s.PixelRatio())
	assert.Equal(t, viewportCall{960, 720}, (*calls)[len(*calls)-1])

	s.SetPixelRatio(0)
	assert.Equal(t, float32(1), s.PixelRatio())
}

func TestNilViewportFunc(t *testing.T) {
	s := NewSurface(nil)
	s.SetSize(10, 10)
	vw, vh := s.Viewport()
	assert.Equal(t, int32(10), vw)
	assert.Equal(t, int32(10), vh)
}
