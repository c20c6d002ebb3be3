package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"
)

// Loader decodes images off the game goroutine and hands the results back
// through Poll, so callbacks always run on the goroutine that polls.
type Loader struct {
	sources []fs.FS

	mu      sync.Mutex
	done    []func()
	pending int
}

// NewLoader creates a loader that tries each source in order.
func NewLoader(sources ...fs.FS) *Loader {
	var srcs []fs.FS
	for _, s := range sources {
		if s != nil {
			srcs = append(srcs, s)
		}
	}
	return &Loader{sources: srcs}
}

// Load starts decoding path. Exactly one of onSuccess or onError runs during a
// later Poll.
func (l *Loader) Load(path string, onSuccess func(image.Image), onError func(error)) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()

	go func() {
		img, err := l.decode(path)
		l.mu.Lock()
		defer l.mu.Unlock()
		l.done = append(l.done, func() {
			if err != nil {
				if onError != nil {
					onError(err)
				}
				return
			}
			if onSuccess != nil {
				onSuccess(img)
			}
		})
	}()
}

// Poll runs the callbacks of every finished load and returns how many ran.
func (l *Loader) Poll() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	done := l.done
	l.done = nil
	l.pending -= len(done)
	l.mu.Unlock()

	for _, fn := range done {
		fn()
	}
	return len(done)
}

// Pending reports loads whose callbacks have not run yet.
func (l *Loader) Pending() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

func (l *Loader) decode(path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	var lastErr error
	for _, src := range l.sources {
		b, err := fs.ReadFile(src, clean)
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", path, err)
		}
		return img, nil
	}
	if lastErr == nil {
		lastErr = fs.ErrNotExist
	}
	return nil, fmt.Errorf("assets: load %s: %w", path, lastErr)
}
