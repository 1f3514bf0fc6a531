// Package renderer draws a scene graph with OpenGL 4.1 core.
//
// All methods must be called from the thread that owns the GL context.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spacescene/internal/engine/camera"
	"github.com/Faultbox/spacescene/internal/engine/framebuffer"
	"github.com/Faultbox/spacescene/internal/engine/geometry"
	"github.com/Faultbox/spacescene/internal/engine/lighting"
	"github.com/Faultbox/spacescene/internal/engine/material"
	"github.com/Faultbox/spacescene/internal/engine/scene"
	"github.com/Faultbox/spacescene/internal/engine/shader"
	"github.com/Faultbox/spacescene/internal/engine/texture"
	"github.com/Faultbox/spacescene/internal/logger"
	m "github.com/Faultbox/spacescene/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	PixelRatio float32
	// Gamma encodes the output; 0 writes linear values.
	Gamma float32
	// GammaInput linearises material and light colours before shading.
	GammaInput bool
}

// Stats describes the last rendered frame.
type Stats struct {
	DrawCalls  int
	Triangles  int
	Lines      int
	Geometries int
	Textures   int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	surface *Surface
	log     *zap.Logger

	programs   map[material.Kind]*shader.Program
	background *shader.Program
	emptyVAO   uint32

	meshes   map[*geometry.Geometry]*gpuMesh
	textures map[*texture.Texture]*gpuTexture
	fallback uint32

	lights *lighting.Buffer
	stats  Stats

	offscreen *framebuffer.Framebuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		surface:  NewSurface(gl.Viewport),
		log:      logger.Named("renderer"),
		programs: make(map[material.Kind]*shader.Program),
		meshes:   make(map[*geometry.Geometry]*gpuMesh),
		textures: make(map[*texture.Texture]*gpuTexture),
	}
	lightGamma := float32(0)
	if cfg.GammaInput {
		lightGamma = cfg.Gamma
	}
	r.lights = lighting.NewBuffer(lightGamma)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	if err := r.createPrograms(); err != nil {
		r.Close()
		return nil, err
	}
	gl.GenVertexArrays(1, &r.emptyVAO)
	r.fallback = r.createFallbackTexture()

	r.SetPixelRatio(cfg.PixelRatio)
	r.SetSize(cfg.Width, cfg.Height)
	return r, nil
}

// SetPixelRatio sets the drawable-to-logical size ratio. Non-positive values mean 1.
func (r *Renderer) SetPixelRatio(ratio float32) {
	r.surface.SetPixelRatio(ratio)
}

// SetSize sets the logical output size; the viewport covers size * pixel ratio.
func (r *Renderer) SetSize(width, height int) {
	r.surface.SetSize(width, height)
	vw, vh := r.surface.Viewport()
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int32("viewport_width", vw),
		zap.Int32("viewport_height", vh),
	)
}

// Size returns the logical output size.
func (r *Renderer) Size() (int, int) { return r.surface.Size() }

// PixelRatio returns the current pixel ratio.
func (r *Renderer) PixelRatio() float32 { return r.surface.PixelRatio() }

// Stats returns counters from the last Render call.
func (r *Renderer) Stats() Stats { return r.stats }

// Render draws the scene from the camera's point of view.
func (r *Renderer) Render(s *scene.Scene, cam *camera.PerspectiveCamera) {
	r.stats = Stats{}

	// Clear
	bg := s.BackgroundColor
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// Background first; it writes no depth.
	if s.Background != nil {
		r.drawBackground(s.Background)
	}

	// Lights
	s.CollectLights(r.lights)
	if d := r.lights.Dropped(); d > 0 {
		r.log.Debug("point lights over limit", zap.Int("dropped", d))
	}

	frame := frameState{
		view:      cam.ViewMatrix(),
		proj:      cam.ProjectionMatrix(),
		cameraPos: cam.Position,
	}
	// Meshes and helpers
	for _, item := range s.DrawList() {
		r.drawMesh(&frame, item)
	}

	gl.BindVertexArray(0)
	r.stats.Geometries = len(r.meshes)
	r.stats.Textures = len(r.textures)
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for g, gm := range r.meshes {
		gm.delete()
		delete(r.meshes, g)
	}
	for t, gt := range r.textures {
		gl.DeleteTextures(1, &gt.id)
		delete(r.textures, t)
	}
	if r.fallback != 0 {
		gl.DeleteTextures(1, &r.fallback)
		r.fallback = 0
	}
	if r.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.emptyVAO)
		r.emptyVAO = 0
	}
	for k, p := range r.programs {
		p.Delete()
		delete(r.programs, k)
	}
	if r.background != nil {
		r.background.Delete()
		r.background = nil
	}
	if r.offscreen != nil {
		r.offscreen.Delete()
		r.offscreen = nil
	}
}

// ReadPixels returns the drawable contents as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	vw, vh := r.surface.Viewport()
	w, h := int(vw), int(vh)
	if w == 0 || h == 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, vw, vh, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

type frameState struct {
	view, proj m.Mat4
	cameraPos  m.Vec3
}
