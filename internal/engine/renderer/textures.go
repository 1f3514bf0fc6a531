package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spacescene/internal/engine/texture"
)

type gpuTexture struct {
	id      uint32
	version uint64
}

// texture returns the GL name for t once its pixels are available, uploading
// new pixels whenever the texture version changes. Pending and failed
// textures report false.
func (r *Renderer) texture(t *texture.Texture) (uint32, bool) {
	if t == nil {
		return 0, false
	}
	img, version := t.Pixels()
	if img == nil {
		return 0, false
	}
	gt, ok := r.textures[t]
	if ok && gt.version == version {
		return gt.id, true
	}
	if !ok {
		gt = &gpuTexture{}
		gl.GenTextures(1, &gt.id)
		r.textures[t] = gt
	}

	b := img.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, gt.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, 8.0)
	gt.version = version

	r.log.Debug("texture uploaded",
		zap.String("path", t.Path),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
		zap.Uint64("version", version),
	)
	return gt.id, true
}

// createFallbackTexture makes the 1x1 white texture bound to samplers with no map.
func (r *Renderer) createFallbackTexture() uint32 {
	white := []uint8{255, 255, 255, 255}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&white[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return id
}

// bindMap binds t to a texture unit and reports whether it is usable.
func (r *Renderer) bindMap(unit uint32, t *texture.Texture) bool {
	id, ok := r.texture(t)
	if !ok {
		id = r.fallback
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
	return ok
}
