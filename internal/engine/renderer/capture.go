package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spacescene/internal/engine/camera"
	"github.com/Faultbox/spacescene/internal/engine/framebuffer"
	"github.com/Faultbox/spacescene/internal/engine/scene"
)

// Capture renders the scene at scale times the drawable size and returns
// RGBA rows, bottom row first. A scale of one or less reads back the last
// frame instead of drawing again.
func (r *Renderer) Capture(s *scene.Scene, cam *camera.PerspectiveCamera, scale int) ([]byte, int, int, error) {
	if scale <= 1 {
		pixels, w, h := r.ReadPixels()
		return pixels, w, h, nil
	}

	vw, vh := r.surface.Viewport()
	var limit int32
	gl.GetIntegerv(gl.MAX_RENDERBUFFER_SIZE, &limit)
	w, h := framebuffer.ScaledSize(int(vw), int(vh), scale, int(limit))
	if w == 0 || h == 0 {
		return nil, 0, 0, nil
	}

	if r.offscreen == nil {
		fb, err := framebuffer.New(w, h)
		if err != nil {
			return nil, 0, 0, err
		}
		r.offscreen = fb
	} else {
		r.offscreen.Resize(w, h)
	}

	restore := r.offscreen.Bind()
	r.Render(s, cam)
	pixels := r.offscreen.ReadPixels()
	restore()

	r.log.Debug("offscreen capture", zap.Int("width", w), zap.Int("height", h), zap.Int("scale", scale))
	return pixels, w, h, nil
}
