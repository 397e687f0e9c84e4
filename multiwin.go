package gamewin

import (
	"fmt"
	"image/color"
	"log"

	"github.com/esimov/gamewin/utils"
	"golang.org/x/image/font"
)

// MultiWindow opens several independent windows, each one tracking its
// own focus state. The digit keys bring the matching window to front.
type MultiWindow struct {
	// Log receives the failures of the optional windows.
	// The standard logger is used when nil.
	Log *log.Logger

	cfg     Config
	windows []*Window
	labels  []*Texture
	face    font.Face
}

// NewMultiWindow returns the multiple windows demo.
func NewMultiWindow(cfg Config) *MultiWindow {
	n := utils.Clamp(cfg.Windows, 1, MaxWindows)

	m := &MultiWindow{
		cfg:     cfg,
		windows: make([]*Window, n),
		labels:  make([]*Texture, n),
	}
	for i := range m.windows {
		m.windows[i] = NewWindow(cfg.Title, cfg.Width, cfg.Height)
		m.labels[i] = NewTexture()
	}
	return m
}

func (m *MultiWindow) logger() *log.Logger {
	if m.Log != nil {
		return m.Log
	}
	return log.Default()
}

// Init creates the windows. The first window is mandatory,
// the others are created on a best effort basis.
func (m *MultiWindow) Init(d Driver) error {
	if err := m.windows[0].Init(d); err != nil {
		return fmt.Errorf("window 0 could not be created: %w", err)
	}
	for i, w := range m.windows[1:] {
		if err := w.Init(d); err != nil {
			m.logger().Printf(utils.DecorateText("window %d could not be created: %v", utils.ErrorMessage), i+1, err)
		}
	}

	face, err := DefaultFont(m.cfg.FontSize)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	m.face = face

	for i, w := range m.windows {
		if err := m.labels[i].LoadFromRenderedText(fmt.Sprintf("Window %d", i+1), color.Black, face); err != nil {
			return fmt.Errorf("failed to render text texture: %w", err)
		}
		label := m.labels[i]
		win := w
		w.SetScene(func(r *Renderer) error {
			x := (win.Width() - label.Width()) / 2
			y := (win.Height() - label.Height()) / 2
			return label.Render(r, x, y)
		})
	}
	return nil
}

// HandleEvent dispatches the event to every window.
func (m *MultiWindow) HandleEvent(e Event) (bool, error) {
	if _, ok := e.(QuitEvent); ok {
		return true, nil
	}
	for _, w := range m.windows {
		if err := w.HandleEvent(e); err != nil {
			return false, err
		}
	}

	if ev, ok := e.(KeyEvent); ok && ev.State == Pressed && !ev.Repeat {
		if k, ok := ev.Key.Digit(); ok && k <= len(m.windows) {
			if w := m.windows[k-1]; w.Renderer() != nil {
				if err := w.Focus(); err != nil {
					return false, err
				}
			}
		}
	}
	return false, nil
}

// Frame renders every window and requests quit once all of them are closed.
func (m *MultiWindow) Frame() (bool, error) {
	for _, w := range m.windows {
		if err := w.Render(); err != nil {
			return false, err
		}
	}

	for _, w := range m.windows {
		if w.IsShown() {
			return false, nil
		}
	}
	return true, nil
}

// Windows returns the windows of the demo.
func (m *MultiWindow) Windows() []*Window { return m.windows }

// Close frees the labels and destroys every window.
func (m *MultiWindow) Close() error {
	var firstErr error

	for i, w := range m.windows {
		m.labels[i].Free()
		if err := w.Free(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if m.face != nil {
		m.face.Close()
		m.face = nil
	}
	return firstErr
}
