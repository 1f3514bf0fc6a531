package renderer

import "math"

// ViewportFunc sets the GL viewport. gl.Viewport satisfies it.
type ViewportFunc func(x, y, width, height int32)

// Surface tracks the logical output size and pixel ratio and keeps the
// viewport at size * ratio.
type Surface struct {
	width, height int
	ratio         float32
	setViewport   ViewportFunc
}

// NewSurface returns a surface with ratio 1 that reports viewport changes
// to fn. A nil fn only does the bookkeeping.
func NewSurface(fn ViewportFunc) *Surface {
	if fn == nil {
		fn = func(_, _, _, _ int32) {}
	}
	return &Surface{ratio: 1, setViewport: fn}
}

// SetPixelRatio sets the drawable-to-logical size ratio. Non-positive values mean 1.
func (s *Surface) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	s.ratio = ratio
	if s.width > 0 && s.height > 0 {
		s.SetSize(s.width, s.height)
	}
}

// SetSize sets the logical output size and updates the viewport.
func (s *Surface) SetSize(width, height int) {
	s.width, s.height = width, height
	vw, vh := s.Viewport()
	s.setViewport(0, 0, vw, vh)
}

// Size returns the logical output size.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// PixelRatio returns the current pixel ratio.
func (s *Surface) PixelRatio() float32 { return s.ratio }

// Viewport returns the drawable size in pixels.
func (s *Surface) Viewport() (int32, int32) {
	return viewport(s.width, s.height, s.ratio)
}

func viewport(width, height int, ratio float32) (int32, int32) {
	if ratio <= 0 {
		ratio = 1
	}
	w := int32(math.Round(float64(float32(width) * ratio)))
	h := int32(math.Round(float64(float32(height) * ratio)))
	return max(w, 0), max(h, 0)
}
