package gamewin

import (
	"fmt"

	"github.com/esimov/gamewin/utils"
)

// Default caption and size of a window.
const (
	DefaultTitle  = "SDL Tutorial"
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Window is a window with its own renderer which keeps track of its
// visibility, dimensions, and mouse and keyboard focus.
type Window struct {
	handle   Handle
	renderer *Renderer
	scene    func(r *Renderer) error

	id    uint32
	title string

	width  int
	height int

	mouseFocus    bool
	keyboardFocus bool
	fullScreen    bool
	minimized     bool
	shown         bool
}

// NewWindow returns a window which is not yet created on screen.
// Zero dimensions fall back to the defaults.
func NewWindow(title string, width, height int) *Window {
	if title == "" {
		title = DefaultTitle
	}
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return &Window{
		title:  title,
		width:  width,
		height: height,
	}
}

// SetScene registers the function drawing the window content on Render.
func (w *Window) SetScene(fn func(r *Renderer) error) {
	w.scene = fn
}

// Init creates the window and its renderer using the driver.
func (w *Window) Init(d Driver) error {
	if w.handle != nil {
		return nil
	}
	if w.width <= 0 || w.height <= 0 {
		w.width, w.height = DefaultWidth, DefaultHeight
	}

	h, err := d.CreateWindow(WindowConfig{
		Title:     w.title,
		Width:     w.width,
		Height:    w.height,
		Resizable: true,
	})
	if err != nil {
		return fmt.Errorf("window could not be created: %w", err)
	}
	if h == nil {
		return fmt.Errorf("window could not be created: %w", ErrNoWindow)
	}

	w.handle = h
	w.renderer = NewRenderer(h, w.width, w.height)
	w.renderer.SetDrawColor(0xff, 0xff, 0xff, 0xff)
	w.id = h.ID()

	w.mouseFocus = true
	w.keyboardFocus = true
	w.shown = true

	return nil
}

// HandleEvent updates the window state from the events addressed to it.
func (w *Window) HandleEvent(e Event) error {
	if w.handle == nil {
		return nil
	}

	switch e := e.(type) {
	case WindowEvent:
		if e.WindowID != w.id {
			return nil
		}
		updateCaption := false

		switch e.Event {
		case WindowShown:
			w.shown = true
		case WindowHidden:
			w.shown = false
		case WindowSizeChanged:
			w.width, w.height = int(e.Data1), int(e.Data2)
			if w.width > 0 && w.height > 0 {
				w.renderer.Resize(w.width, w.height)
				return w.renderer.Present()
			}
		case WindowExposed:
			return w.renderer.Present()
		case WindowEnter:
			w.mouseFocus = true
			updateCaption = true
		case WindowLeave:
			w.mouseFocus = false
			updateCaption = true
		case WindowFocusGained:
			w.keyboardFocus = true
			updateCaption = true
		case WindowFocusLost:
			w.keyboardFocus = false
			updateCaption = true
		case WindowMinimized:
			w.minimized = true
		case WindowMaximized, WindowRestored:
			w.minimized = false
		case WindowClose:
			w.handle.Hide()
		}

		if updateCaption {
			w.handle.SetTitle(w.Caption())
		}
	case KeyEvent:
		if e.State != Pressed || e.Repeat || e.Key != KeyReturn {
			return nil
		}
		if e.WindowID != 0 && e.WindowID != w.id {
			return nil
		}
		return w.toggleFullscreen()
	}
	return nil
}

func (w *Window) toggleFullscreen() error {
	if err := w.handle.SetFullscreen(!w.fullScreen); err != nil {
		return fmt.Errorf("could not toggle fullscreen: %w", err)
	}
	w.fullScreen = !w.fullScreen
	if w.fullScreen {
		w.minimized = false
	}
	return nil
}

// Caption returns the window title decorated with the focus state.
func (w *Window) Caption() string {
	return fmt.Sprintf("%s - MouseFocus:%s KeyboardFocus:%s",
		w.title, utils.OnOff(w.mouseFocus), utils.OnOff(w.keyboardFocus))
}

// Focus shows the window if it is hidden and raises it above the others.
func (w *Window) Focus() error {
	if w.handle == nil {
		return ErrNoWindow
	}
	if !w.shown {
		w.handle.Show()
	}
	w.handle.Raise()

	return nil
}

// Render clears the window, draws its scene and presents the result.
// Minimized windows are not drawn.
func (w *Window) Render() error {
	if w.handle == nil || w.minimized {
		return nil
	}
	w.renderer.SetDrawColor(0xff, 0xff, 0xff, 0xff)
	w.renderer.Clear()

	if w.scene != nil {
		if err := w.scene(w.renderer); err != nil {
			return err
		}
	}
	return w.renderer.Present()
}

// Free destroys the renderer and the window.
func (w *Window) Free() error {
	var err error

	if w.handle != nil {
		w.renderer.Destroy()
		err = w.handle.Destroy()
	}
	w.handle = nil
	w.renderer = nil

	w.mouseFocus = false
	w.keyboardFocus = false
	w.fullScreen = false
	w.minimized = false
	w.shown = false
	w.width = 0
	w.height = 0

	return err
}

// ID returns the identifier assigned by the driver.
func (w *Window) ID() uint32 { return w.id }

// Renderer returns the window renderer, nil before Init.
func (w *Window) Renderer() *Renderer { return w.renderer }

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

func (w *Window) HasMouseFocus() bool    { return w.mouseFocus }
func (w *Window) HasKeyboardFocus() bool { return w.keyboardFocus }
func (w *Window) IsMinimized() bool      { return w.minimized }
func (w *Window) IsShown() bool          { return w.shown }
func (w *Window) IsFullscreen() bool     { return w.fullScreen }
