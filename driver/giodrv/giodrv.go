// Package giodrv implements the default windowing driver on top of Gio.
//
// Every window runs its own event loop in a separate goroutine and feeds
// a single queue consumed by PollEvent. As with every Gio program, app.Main
// must be called from the main goroutine.
package giodrv

import (
	"errors"
	"image"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/esimov/gamewin"
)

var (
	ErrClosed    = errors.New("giodrv: driver closed")
	ErrDestroyed = errors.New("giodrv: window destroyed")
)

// quitTimeout bounds the time Quit waits for the windows to be torn down.
const quitTimeout = 2 * time.Second

// Driver is a gamewin.Driver backed by Gio windows.
type Driver struct {
	mu      sync.Mutex
	nextID  uint32
	windows map[uint32]*Window
	queue   []gamewin.Event
	closed  bool

	wg sync.WaitGroup
}

// New returns a Gio driver.
func New() *Driver {
	return &Driver{windows: make(map[uint32]*Window)}
}

// CreateWindow opens a new OS window.
func (d *Driver) CreateWindow(cfg gamewin.WindowConfig) (gamewin.Handle, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, ErrClosed
	}
	d.nextID++
	w := &Window{
		d:     d,
		id:    d.nextID,
		title: cfg.Title,
		size:  image.Pt(cfg.Width, cfg.Height),
		keys:  make(map[gamewin.Key]bool),
	}
	d.windows[w.id] = w
	d.mu.Unlock()

	w.open()

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

// Quit closes the remaining windows and waits for their event loops to end.
func (d *Driver) Quit() error {
	d.mu.Lock()
	d.closed = true
	windows := make([]*Window, 0, len(d.windows))
	for _, w := range d.windows {
		windows = append(windows, w)
	}
	d.mu.Unlock()

	for _, w := range windows {
		w.Destroy()
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-time.After(quitTimeout):
		return errors.New("giodrv: timeout while closing the windows")
	}
}

func (d *Driver) post(events ...gamewin.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.queue = append(d.queue, events...)
}

// destroyed is called by the event loop of a window once the OS window is gone.
// A QuitEvent follows the destruction of the last live window.
func (d *Driver) destroyed(w *Window, byUser bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if byUser {
		d.queue = append(d.queue, gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowClose})
	}
	for _, other := range d.windows {
		if other.alive() {
			return
		}
	}
	d.queue = append(d.queue, gamewin.QuitEvent{})
}

func (d *Driver) forget(w *Window) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.windows, w.id)
}

func newAppWindow(title string, size image.Point) *app.Window {
	return app.NewWindow(
		app.Title(title),
		app.Size(unit.Dp(float32(size.X)), unit.Dp(float32(size.Y))),
	)
}
