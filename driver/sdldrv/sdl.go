//go:build sdl

package sdldrv

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/esimov/gamewin"
	"github.com/veandco/go-sdl2/sdl"
)

var windowEvents = map[uint8]gamewin.WindowEventID{
	sdl.WINDOWEVENT_SHOWN:        gamewin.WindowShown,
	sdl.WINDOWEVENT_HIDDEN:       gamewin.WindowHidden,
	sdl.WINDOWEVENT_EXPOSED:      gamewin.WindowExposed,
	sdl.WINDOWEVENT_SIZE_CHANGED: gamewin.WindowSizeChanged,
	sdl.WINDOWEVENT_MINIMIZED:    gamewin.WindowMinimized,
	sdl.WINDOWEVENT_MAXIMIZED:    gamewin.WindowMaximized,
	sdl.WINDOWEVENT_RESTORED:     gamewin.WindowRestored,
	sdl.WINDOWEVENT_ENTER:        gamewin.WindowEnter,
	sdl.WINDOWEVENT_LEAVE:        gamewin.WindowLeave,
	sdl.WINDOWEVENT_FOCUS_GAINED: gamewin.WindowFocusGained,
	sdl.WINDOWEVENT_FOCUS_LOST:   gamewin.WindowFocusLost,
	sdl.WINDOWEVENT_CLOSE:        gamewin.WindowClose,
}

var keys = map[sdl.Keycode]gamewin.Key{
	sdl.K_UP:     gamewin.KeyUp,
	sdl.K_DOWN:   gamewin.KeyDown,
	sdl.K_LEFT:   gamewin.KeyLeft,
	sdl.K_RIGHT:  gamewin.KeyRight,
	sdl.K_RETURN: gamewin.KeyReturn,
	sdl.K_ESCAPE: gamewin.KeyEscape,
	sdl.K_1:      gamewin.Key1,
	sdl.K_2:      gamewin.Key2,
	sdl.K_3:      gamewin.Key3,
	sdl.K_4:      gamewin.Key4,
	sdl.K_5:      gamewin.Key5,
	sdl.K_6:      gamewin.Key6,
	sdl.K_7:      gamewin.Key7,
	sdl.K_8:      gamewin.Key8,
	sdl.K_9:      gamewin.Key9,
}

// Driver is a gamewin.Driver backed by SDL2.
type Driver struct{}

// New initializes the SDL video subsystem.
func New() (*Driver, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("SDL could not initialize: %w", err)
	}
	// Linear texture filtering, ignored when not available.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	return &Driver{}, nil
}

// CreateWindow opens a window with a hardware accelerated, vsynced renderer.
func (d *Driver) CreateWindow(cfg gamewin.WindowConfig) (gamewin.Handle, error) {
	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("renderer could not be created: %w", err)
	}

	id, err := win.GetID()
	if err != nil {
		renderer.Destroy()
		win.Destroy()
		return nil, err
	}
	return &Window{win: win, renderer: renderer, id: id}, nil
}

// PollEvent converts the next SDL event understood by the demos.
func (d *Driver) PollEvent() gamewin.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e := convert(ev); e != nil {
			return e
		}
	}
	return nil
}

// Quit shuts SDL down.
func (d *Driver) Quit() error {
	sdl.Quit()
	return nil
}

func convert(ev sdl.Event) gamewin.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return gamewin.QuitEvent{}
	case *sdl.WindowEvent:
		id, ok := windowEvents[e.Event]
		if !ok {
			return nil
		}
		return gamewin.WindowEvent{
			WindowID: e.WindowID,
			Event:    id,
			Data1:    e.Data1,
			Data2:    e.Data2,
		}
	case *sdl.KeyboardEvent:
		k, ok := keys[e.Keysym.Sym]
		if !ok {
			k = gamewin.KeyUnknown
		}
		state := gamewin.Released
		if e.Type == sdl.KEYDOWN {
			state = gamewin.Pressed
		}
		return gamewin.KeyEvent{
			WindowID: e.WindowID,
			State:    state,
			Key:      k,
			Repeat:   e.Repeat != 0,
		}
	}
	return nil
}

// Window is an SDL window implementing gamewin.Handle.
type Window struct {
	win      *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	size     image.Point
	id       uint32
}

// ID implements gamewin.Handle.
func (w *Window) ID() uint32 { return w.id }

// SetTitle implements gamewin.Handle.
func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

// SetFullscreen implements gamewin.Handle.
func (w *Window) SetFullscreen(enabled bool) error {
	var flags uint32
	if enabled {
		flags = sdl.WINDOW_FULLSCREEN
	}
	return w.win.SetFullscreen(flags)
}

// Show implements gamewin.Handle.
func (w *Window) Show() { w.win.Show() }

// Hide implements gamewin.Handle.
func (w *Window) Hide() { w.win.Hide() }

// Raise implements gamewin.Handle.
func (w *Window) Raise() { w.win.Raise() }

// Present streams the frame into a texture and copies it to the window.
func (w *Window) Present(frame *image.NRGBA) error {
	size := frame.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	if w.texture == nil || w.size != size {
		if w.texture != nil {
			w.texture.Destroy()
		}
		tex, err := w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
			int32(size.X), int32(size.Y))
		if err != nil {
			w.texture = nil
			return fmt.Errorf("unable to create the streaming texture: %w", err)
		}
		w.texture = tex
		w.size = size
	}

	rect := &sdl.Rect{X: 0, Y: 0, W: int32(size.X), H: int32(size.Y)}
	pix := frame.Pix[frame.PixOffset(frame.Rect.Min.X, frame.Rect.Min.Y):]
	if err := w.texture.Update(rect, unsafe.Pointer(&pix[0]), frame.Stride); err != nil {
		return fmt.Errorf("unable to update the texture: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()

	return nil
}

// Destroy releases the texture, the renderer and the window.
func (w *Window) Destroy() error {
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.win == nil {
		return nil
	}
	err := w.win.Destroy()
	w.win = nil

	return err
}
