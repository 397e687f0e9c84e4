package gamewin

import (
	"fmt"
	"sort"

	"github.com/esimov/gamewin/assets"
)

// Demo is a self-contained program run by a Loop.
type Demo interface {
	Scene
	// Init creates the windows and loads the media of the demo.
	Init(d Driver) error
	// Close frees every resource acquired by Init.
	Close() error
}

var demos = map[string]func(Config) Demo{
	"splash": func(cfg Config) Demo { return NewSplash(cfg) },
	"multi":  func(cfg Config) Demo { return NewMultiWindow(cfg) },
	"scroll": func(cfg Config) Demo { return NewScroll(cfg) },
}

// Demos returns the names of the available demos.
func Demos() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDemo returns the demo registered under name.
func NewDemo(name string, cfg Config) (Demo, error) {
	fn, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q, available demos: %v", name, Demos())
	}
	return fn(cfg), nil
}

// isQuitRequest reports whether the event asks the single window demos to stop.
func isQuitRequest(e Event) bool {
	switch e := e.(type) {
	case QuitEvent:
		return true
	case KeyEvent:
		return e.State == Pressed && e.Key == KeyEscape
	}
	return false
}

// loadImage loads the image at path into tex,
// or the embedded image named builtin when path is empty.
func loadImage(tex *Texture, path, builtin string) error {
	if path == "" {
		return tex.LoadFromFS(assets.FS, builtin)
	}
	return tex.LoadFromFile(path)
}
