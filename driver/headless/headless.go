// Package headless implements an in-memory windowing driver.
// Events are scripted with Push and the presented frames are kept
// in memory, which makes it suitable for tests and offline rendering.
package headless

import (
	"errors"
	"image"
	"image/draw"
	"sort"
	"sync"

	"github.com/esimov/gamewin"
)

var (
	ErrClosed         = errors.New("headless: driver closed")
	ErrDestroyed      = errors.New("headless: window destroyed")
	ErrTooManyWindows = errors.New("headless: too many windows")
	ErrUnknownWindow  = errors.New("headless: unknown window")
)

// Driver is an in-memory gamewin.Driver.
type Driver struct {
	// MaxWindows limits the number of windows open at the same time.
	// Zero means no limit.
	MaxWindows int

	mu      sync.Mutex
	nextID  uint32
	windows map[uint32]*Window
	queue   []gamewin.Event
	closed  bool
}

// New returns an empty driver.
func New() *Driver {
	return &Driver{windows: make(map[uint32]*Window)}
}

// CreateWindow implements gamewin.Driver. Window identifiers start at 1.
func (d *Driver) CreateWindow(cfg gamewin.WindowConfig) (gamewin.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrClosed
	}
	if d.MaxWindows > 0 && len(d.windows) >= d.MaxWindows {
		return nil, ErrTooManyWindows
	}
	d.nextID++

	w := &Window{
		d:         d,
		id:        d.nextID,
		title:     cfg.Title,
		width:     cfg.Width,
		height:    cfg.Height,
		resizable: cfg.Resizable,
		shown:     true,
	}
	d.windows[w.id] = w

	return w, nil
}

// PollEvent implements gamewin.Driver.
func (d *Driver) PollEvent() gamewin.Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.queue) == 0 {
		return nil
	}
	e := d.queue[0]
	d.queue = d.queue[1:]

	return e
}

// Quit destroys the remaining windows and closes the driver.
func (d *Driver) Quit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, w := range d.windows {
		w.destroyed = true
		delete(d.windows, id)
	}
	d.queue = nil
	d.closed = true

	return nil
}

// Push appends events to the queue.
func (d *Driver) Push(events ...gamewin.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.queue = append(d.queue, events...)
}

// Pending returns the number of queued events.
func (d *Driver) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.queue)
}

// Close emulates the user clicking the close button of a window.
func (d *Driver) Close(id uint32) {
	d.Push(gamewin.WindowEvent{WindowID: id, Event: gamewin.WindowClose})
}

// Resize emulates the user resizing a window.
func (d *Driver) Resize(id uint32, width, height int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.windows[id]
	if !ok {
		return ErrUnknownWindow
	}
	w.width, w.height = width, height
	d.queue = append(d.queue, gamewin.WindowEvent{
		WindowID: id,
		Event:    gamewin.WindowSizeChanged,
		Data1:    int32(width),
		Data2:    int32(height),
	})
	return nil
}

// Window returns the open window with the given id, nil if there is none.
func (d *Driver) Window(id uint32) *Window {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.windows[id]
}

// Windows returns the open windows ordered by id.
func (d *Driver) Windows() []*Window {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := make([]*Window, 0, len(d.windows))
	for _, w := range d.windows {
		res = append(res, w)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].id < res[j].id })

	return res
}

// Window is a window created by the headless driver.
type Window struct {
	d *Driver

	id        uint32
	title     string
	width     int
	height    int
	resizable bool

	fullscreen bool
	shown      bool
	destroyed  bool
	raised     int
	presents   int

	frame *image.NRGBA
}

// ID implements gamewin.Handle.
func (w *Window) ID() uint32 { return w.id }

// SetTitle implements gamewin.Handle.
func (w *Window) SetTitle(title string) {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	w.title = title
}

// SetFullscreen implements gamewin.Handle.
func (w *Window) SetFullscreen(enabled bool) error {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	if w.destroyed {
		return ErrDestroyed
	}
	w.fullscreen = enabled
	return nil
}

// Show implements gamewin.Handle and posts a shown event.
func (w *Window) Show() {
	w.setShown(true, gamewin.WindowShown)
}

// Hide implements gamewin.Handle and posts a hidden event.
func (w *Window) Hide() {
	w.setShown(false, gamewin.WindowHidden)
}

func (w *Window) setShown(shown bool, ev gamewin.WindowEventID) {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	if w.destroyed || w.shown == shown {
		return
	}
	w.shown = shown
	w.d.queue = append(w.d.queue, gamewin.WindowEvent{WindowID: w.id, Event: ev})
}

// Raise implements gamewin.Handle.
func (w *Window) Raise() {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	w.raised++
}

// Present implements gamewin.Handle. The frame is copied.
func (w *Window) Present(frame *image.NRGBA) error {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	if w.destroyed {
		return ErrDestroyed
	}
	b := frame.Bounds()
	if w.frame == nil || w.frame.Bounds().Size() != b.Size() {
		w.frame = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(w.frame, w.frame.Bounds(), frame, b.Min, draw.Src)
	w.presents++

	return nil
}

// Destroy implements gamewin.Handle.
func (w *Window) Destroy() error {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	if w.destroyed {
		return ErrDestroyed
	}
	w.destroyed = true
	delete(w.d.windows, w.id)

	return nil
}

// Title returns the current window caption.
func (w *Window) Title() string {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	return w.title
}

// Size returns the window dimensions.
func (w *Window) Size() (int, int) {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	return w.width, w.height
}

// IsFullscreen reports whether the window is in fullscreen mode.
func (w *Window) IsFullscreen() bool {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	return w.fullscreen
}

// IsShown reports whether the window is visible.
func (w *Window) IsShown() bool {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	return w.shown
}

// IsDestroyed reports whether the window has been destroyed.
func (w *Window) IsDestroyed() bool {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	return w.destroyed
}

// Raised returns how many times the window has been raised.
func (w *Window) Raised() int {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	return w.raised
}

// Presents returns the number of presented frames.
func (w *Window) Presents() int {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	return w.presents
}

// Frame returns a copy of the last presented frame, nil if none.
func (w *Window) Frame() *image.NRGBA {
	w.d.mu.Lock()
	defer w.d.mu.Unlock()

	if w.frame == nil {
		return nil
	}
	dst := image.NewNRGBA(w.frame.Bounds())
	copy(dst.Pix, w.frame.Pix)

	return dst
}
