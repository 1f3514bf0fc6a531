package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultWorkers is the decode concurrency used when NewLoader gets zero.
const DefaultWorkers = 4

// Loader decodes image files in the background. Each path maps to a single
// Texture handle; repeat loads return the cached handle.
type Loader struct {
	root string
	log  *zap.Logger

	group  errgroup.Group
	flight singleflight.Group
	// Replaced in tests to hold a worker busy.
	readFile func(string) ([]byte, error)

	mu    sync.Mutex
	cache map[string]*Texture

	// Decodes that found every worker busy wait here for the drain goroutine.
	queueMu  sync.Mutex
	queue    []func() error
	draining bool
	drained  sync.WaitGroup
}

type decoded struct {
	img    *image.RGBA
	format string
	size   int
}

// NewLoader creates a loader resolving relative paths against root.
// At most workers files are decoded at once; Load never waits for a slot.
func NewLoader(root string, workers int, log *zap.Logger) *Loader {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{
		root:     root,
		log:      log,
		readFile: os.ReadFile,
		cache:    make(map[string]*Texture),
	}
	l.group.SetLimit(workers)
	return l
}

// Load returns the texture for path and starts decoding it if this is the
// first request. It never returns nil and never reports an error; failures
// are logged and leave the texture in the Failed state.
func (l *Loader) Load(path string) *Texture {
	key := filepath.Clean(path)

	l.mu.Lock()
	tex, ok := l.cache[key]
	if !ok {
		tex = New(path)
		l.cache[key] = tex
	}
	l.mu.Unlock()

	if !ok {
		l.start(key, tex)
	}
	return tex
}

// Reload decodes every cached texture again. Handles keep their old pixels
// until the new ones arrive.
func (l *Loader) Reload() {
	l.mu.Lock()
	pending := make(map[string]*Texture, len(l.cache))
	for k, t := range l.cache {
		pending[k] = t
	}
	l.mu.Unlock()

	for key, tex := range pending {
		l.start(key, tex)
	}
}

// Wait blocks until every started decode has finished.
func (l *Loader) Wait() {
	l.drained.Wait()
	_ = l.group.Wait()
}

// Len returns the number of distinct textures requested.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}

func (l *Loader) start(key string, tex *Texture) {
	job := l.decodeJob(key, tex)
	if l.group.TryGo(job) {
		return
	}

	// All workers are busy. Queue the job rather than block the caller,
	// which is usually the render thread.
	l.queueMu.Lock()
	l.queue = append(l.queue, job)
	if !l.draining {
		l.draining = true
		l.drained.Add(1)
		go l.drain()
	}
	l.queueMu.Unlock()
}

// drain hands queued jobs to the worker group, waiting for free slots.
func (l *Loader) drain() {
	defer l.drained.Done()
	for {
		l.queueMu.Lock()
		if len(l.queue) == 0 {
			l.draining = false
			l.queueMu.Unlock()
			return
		}
		job := l.queue[0]
		l.queue = l.queue[1:]
		l.queueMu.Unlock()

		l.group.Go(job)
	}
}

func (l *Loader) decodeJob(key string, tex *Texture) func() error {
	return func() error {
		// Concurrent reloads of the same file share one read and decode.
		v, err, shared := l.flight.Do(key, func() (any, error) {
			return l.decodeFile(key)
		})
		if err != nil {
			l.log.Warn("texture load failed", zap.String("path", tex.Path), zap.Error(err))
			tex.resolve(nil, err)
			return nil
		}
		d := v.(decoded)
		tex.resolve(d.img, nil)
		l.log.Debug("texture loaded",
			zap.String("path", tex.Path),
			zap.String("format", d.format),
			zap.Int("width", d.img.Bounds().Dx()),
			zap.Int("height", d.img.Bounds().Dy()),
			zap.String("size", humanize.Bytes(uint64(d.size))),
			zap.Bool("shared", shared))
		return nil
	}
}

func (l *Loader) decodeFile(key string) (decoded, error) {
	full := key
	if !filepath.IsAbs(full) && l.root != "" {
		full = filepath.Join(l.root, key)
	}
	data, err := l.readFile(full)
	if err != nil {
		return decoded{}, fmt.Errorf("reading texture: %w", err)
	}
	img, format, err := DecodeBytes(data)
	if err != nil {
		return decoded{}, fmt.Errorf("%s: %w", key, err)
	}
	return decoded{img: img, format: format, size: len(data)}, nil
}
