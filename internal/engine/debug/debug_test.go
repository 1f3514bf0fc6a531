package debug

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/material"
	"github.com/Faultbox/spacescene/internal/engine/scene"
	m "github.com/Faultbox/spacescene/pkg/math"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
}

func TestPixelsToImageFlips(t *testing.T) {
	// 1x2: bottom row red, top row green.
	pixels := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	img, err := PixelsToImage(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
}

func TestPixelsToImageErrors(t *testing.T) {
	_, err := PixelsToImage(make([]byte, 3), 1, 1)
	assert.ErrorContains(t, err, "size mismatch")
	_, err = PixelsToImage(nil, 0, 0)
	assert.ErrorContains(t, err, "invalid screenshot size")
}

func TestCaptureWritesUniqueFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "spacescene")
	sc.now = fixedClock

	pixels := make([]byte, 2*2*4)
	first, err := sc.CaptureFromPixels(pixels, 2, 2)
	require.NoError(t, err)
	second, err := sc.CaptureFromPixels(pixels, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "spacescene_2024-03-01_12-30-45.png"), first)
	assert.Equal(t, filepath.Join(dir, "spacescene_2024-03-01_12-30-45_2.png"), second)
	for _, f := range []string{first, second} {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestBBoxWireframe(t *testing.T) {
	b := geometry.Bounds{Min: m.V3(-1, -1, -1), Max: m.V3(1, 1, 1)}
	g := BBoxWireframe(b, 0.5, m.Hex(0xFF0000))

	assert.Equal(t, geometry.Lines, g.Mode)
	assert.Len(t, g.Vertices, 8)
	assert.Equal(t, 12, g.PrimitiveCount())
	got := g.Bounds()
	assert.Equal(t, m.V3(-1.5, -1.5, -1.5), got.Min)
	assert.Equal(t, m.V3(1.5, 1.5, 1.5), got.Max)
	for i := 0; i < len(g.Indices); i += 2 {
		a := m.FromArray(g.Vertices[g.Indices[i]].Position)
		c := m.FromArray(g.Vertices[g.Indices[i+1]].Position)
		assert.InDelta(t, 3, a.Distance(c), 1e-5, "every edge spans one side")
	}
}

func TestAttachBBox(t *testing.T) {
	cube := scene.NewMesh("cube", geometry.Box(12, 12, 12), material.NewStandard(m.Hex(0x1E90FF)))
	h := AttachBBox(cube, m.Hex(0xFFFF00))

	assert.False(t, h.Visible)
	assert.Equal(t, 1, cube.ChildCount())
	assert.Same(t, &cube.Node, h.Parent())
	assert.Equal(t, "cube-bbox", h.Name)
}

func TestFrameCounter(t *testing.T) {
	start := fixedClock()
	c := NewFrameCounter(time.Second, start)

	now := start
	for i := 0; i < 59; i++ {
		now = now.Add(16 * time.Millisecond)
		_, ok := c.Tick(now)
		assert.False(t, ok)
	}
	now = start.Add(time.Second)
	r, ok := c.Tick(now)
	require.True(t, ok)
	assert.Equal(t, 60, r.Frames)
	assert.InDelta(t, 60, r.FPS, 1e-9)
	assert.Equal(t, time.Second/60, r.Avg)
	assert.Equal(t, 56*time.Millisecond, r.Worst)

	_, ok = c.Tick(now.Add(time.Millisecond))
	assert.False(t, ok, "a new interval has started")
}
