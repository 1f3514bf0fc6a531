// Package app owns the window, the GL renderer and the main loop that drives
// the showcase scene.
package app

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/Faultbox/spacescene/internal/config"
	"github.com/Faultbox/spacescene/internal/engine/camera"
	"github.com/Faultbox/spacescene/internal/engine/debug"
	"github.com/Faultbox/spacescene/internal/engine/input"
	"github.com/Faultbox/spacescene/internal/engine/renderer"
	"github.com/Faultbox/spacescene/internal/engine/scene"
	"github.com/Faultbox/spacescene/internal/engine/texture"
	"github.com/Faultbox/spacescene/internal/engine/window"
	"github.com/Faultbox/spacescene/internal/logger"
	"github.com/Faultbox/spacescene/internal/showcase"
)

// Title is the window title.
const Title = "Space Scene"

// frameRenderer is the part of *renderer.Renderer the loop drives.
type frameRenderer interface {
	SetPixelRatio(ratio float32)
	SetSize(width, height int)
	Size() (int, int)
	Render(s *scene.Scene, cam *camera.PerspectiveCamera)
	Capture(s *scene.Scene, cam *camera.PerspectiveCamera, scale int) ([]byte, int, int, error)
	Stats() renderer.Stats
	Close()
}

// display is the part of *window.Window the loop drives.
type display interface {
	PixelRatio() float32
	SwapBuffers()
	Close()
}

// App is the running application.
type App struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	window   display
	renderer frameRenderer
	input    *input.Input
	textures *texture.Loader
	show     *showcase.Showcase
	shots    *debug.ScreenshotCapture
	dispatch *dispatcher

	// Set by F12; taken after the next render, before the swap.
	screenshotPending bool
}

// New creates the window, the GL context and the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("assets", cfg.Assets.Dir),
	)

	win, err := window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	a.window = win

	// The window may open at a different size than requested (fullscreen, tiling WMs).
	width, height := win.Size()
	ratio := cfg.Graphics.PixelRatio
	if ratio <= 0 {
		ratio = win.PixelRatio()
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	rend, err := renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		PixelRatio: ratio,
		Gamma:      cfg.Graphics.Gamma,
		GammaInput: cfg.Graphics.GammaInput,
	})
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer = rend

	a.input = input.New()
	a.textures = texture.NewLoader("", texture.DefaultWorkers, logger.Named("texture"))
	a.show = showcase.Build(cfg, a.textures)
	a.show.Resize(width, height)
	a.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "spacescene")
	a.dispatch = newDispatcher(a.show)

	a.log.Info("initialized", zap.Int("objects", a.show.Scene.ChildCount()))
	return a, nil
}

// Run drives the frame loop until the window closes or ESC is pressed.
func (a *App) Run() error {
	a.running = true

	var frameBudget time.Duration
	if a.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.config.Graphics.FPSLimit)
	}
	fps := debug.NewFrameCounter(time.Second, time.Now())

	a.log.Info("starting frame loop")

	for a.running {
		frameStart := time.Now()

		// Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
		}
		if !a.running {
			break
		}

		// Update and render
		a.frame()

		if report, ok := fps.Tick(time.Now()); ok {
			a.logStats(report)
		}

		// Frame limiting
		if frameBudget > 0 {
			if spare := frameBudget - time.Since(frameStart); spare > 0 {
				time.Sleep(spare)
			}
		}
	}

	a.log.Info("frame loop stopped", zap.Uint64("frames", a.show.Frames()))
	return nil
}

// handle routes one input event through the dispatcher and runs its command.
func (a *App) handle(event input.Event) {
	a.apply(a.dispatch.handle(event), event)
}

// frame steps the scene, draws it and presents it. A pending screenshot
// reads the back buffer between the draw and the swap, while it still
// holds this frame.
func (a *App) frame() {
	a.show.Frame()
	a.renderer.Render(a.show.Scene, a.show.Camera)
	if a.screenshotPending {
		a.screenshotPending = false
		a.screenshot()
	}
	a.window.SwapBuffers()
}

func (a *App) apply(cmd command, event input.Event) {
	switch cmd {
	case cmdQuit:
		a.running = false
	case cmdResize:
		a.renderer.SetPixelRatio(a.window.PixelRatio())
		a.renderer.SetSize(event.Width, event.Height)
	case cmdScreenshot:
		a.screenshotPending = true
	case cmdReloadTextures:
		a.log.Info("reloading textures", zap.Int("count", a.textures.Len()))
		a.textures.Reload()
	}
}

func (a *App) screenshot() {
	pixels, w, h, err := a.renderer.Capture(a.show.Scene, a.show.Camera, a.config.Debug.ScreenshotScale)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(len(pixels)))),
	)
}

func (a *App) logStats(r debug.FrameReport) {
	stats := a.renderer.Stats()
	log := a.log.Debug
	if a.config.Debug.LogFPS {
		log = a.log.Info
	}
	log("frame stats",
		zap.String("fps", fmt.Sprintf("%.1f", r.FPS)),
		zap.Duration("avg", r.Avg),
		zap.Duration("worst", r.Worst),
		zap.Int("draw_calls", stats.DrawCalls),
		zap.String("triangles", humanize.Comma(int64(stats.Triangles))),
		zap.Int("textures", stats.Textures),
	)
}

// Close releases everything in reverse order of creation.
func (a *App) Close() {
	a.log.Info("closing")

	if a.textures != nil {
		a.textures.Wait()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
