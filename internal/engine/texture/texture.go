// Package texture loads image files into RGBA pixel buffers ready for GPU
// upload. Decoding runs off the render thread; a Texture handle is usable
// immediately and simply has no pixels until its decode finishes.
package texture

import (
	"image"
	"sync"
)

// State is the load state of a texture.
type State int

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Texture is a handle to image data that may still be loading.
// Pixels are stored bottom row first, the order OpenGL expects.
type Texture struct {
	Path string

	mu      sync.RWMutex
	state   State
	img     *image.RGBA
	err     error
	version uint64
}

// New returns a pending texture for path.
func New(path string) *Texture {
	return &Texture{Path: path}
}

// FromImage returns a ready texture wrapping img. img must already be flipped for GL.
func FromImage(name string, img *image.RGBA) *Texture {
	t := New(name)
	t.resolve(img, nil)
	return t
}

// State returns the current load state.
func (t *Texture) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Err returns the load error of a failed texture.
func (t *Texture) Err() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}

// Pixels returns the decoded image and its version. The version increases
// every time new pixels arrive, so callers can detect reloads. The image is nil
// until the texture is ready.
func (t *Texture) Pixels() (*image.RGBA, uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.img, t.version
}

// Size returns the pixel dimensions, or zero while pending.
func (t *Texture) Size() (int, int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// resolve records the outcome of a decode. A failed reload keeps the previous pixels.
func (t *Texture) resolve(img *image.RGBA, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.err = err
		if t.img == nil {
			t.state = Failed
		}
		return
	}
	t.img = img
	t.err = nil
	t.state = Ready
	t.version++
}
