package giodrv

import (
	"image"
	"image/draw"
	"sync"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/gamewin"
)

// keySet lists the keys reported to the demos.
const keySet = key.Set("↑|↓|←|→|⏎|⌤|⎋|1|2|3|4|5|6|7|8|9")

var keyNames = map[string]gamewin.Key{
	key.NameUpArrow:    gamewin.KeyUp,
	key.NameDownArrow:  gamewin.KeyDown,
	key.NameLeftArrow:  gamewin.KeyLeft,
	key.NameRightArrow: gamewin.KeyRight,
	key.NameReturn:     gamewin.KeyReturn,
	key.NameEnter:      gamewin.KeyReturn,
	key.NameEscape:     gamewin.KeyEscape,
	"1":                gamewin.Key1,
	"2":                gamewin.Key2,
	"3":                gamewin.Key3,
	"4":                gamewin.Key4,
	"5":                gamewin.Key5,
	"6":                gamewin.Key6,
	"7":                gamewin.Key7,
	"8":                gamewin.Key8,
	"9":                gamewin.Key9,
}

// Window is a Gio window implementing gamewin.Handle.
type Window struct {
	d  *Driver
	id uint32

	mu       sync.Mutex
	win      *app.Window
	title    string
	size     image.Point
	mode     app.WindowMode
	stage    system.Stage
	frame    *image.NRGBA
	keys     map[gamewin.Key]bool
	live     bool
	destroy  bool
	hidden   bool
	exposed  bool
	released bool
}

// ID implements gamewin.Handle.
func (w *Window) ID() uint32 { return w.id }

// open creates the OS window and starts its event loop.
func (w *Window) open() {
	w.mu.Lock()
	w.win = newAppWindow(w.title, w.size)
	w.live = true
	w.destroy = false
	w.exposed = false
	w.mode = app.Windowed
	w.stage = system.StagePaused
	win := w.win
	w.mu.Unlock()

	w.d.wg.Add(1)
	go w.run(win)
}

func (w *Window) alive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.live
}

// window returns the OS window if it is still alive.
func (w *Window) window() *app.Window {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.live {
		return nil
	}
	return w.win
}

func (w *Window) run(win *app.Window) {
	defer w.d.wg.Done()

	var ops op.Ops
	for e := range win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			w.handleInput(gtx)
			w.layout(gtx)
			e.Frame(gtx.Ops)
		case app.ConfigEvent:
			w.configure(e.Config)
		case system.StageEvent:
			w.setStage(e.Stage)
		case system.DestroyEvent:
			w.mu.Lock()
			byUser := !w.destroy
			w.live = false
			released := w.released
			w.mu.Unlock()

			if released {
				w.d.forget(w)
			}
			w.d.destroyed(w, byUser)
			return
		}
	}
}

func (w *Window) handleInput(gtx layout.Context) {
	for _, ev := range gtx.Events(w) {
		switch ev := ev.(type) {
		case key.Event:
			w.handleKey(ev)
		case pointer.Event:
			switch ev.Type {
			case pointer.Enter:
				w.d.post(gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowEnter})
			case pointer.Leave:
				w.d.post(gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowLeave})
			}
		}
	}
}

// handleKey converts a Gio key event. Gio does not report key repeats,
// they are detected by tracking the keys being held down.
func (w *Window) handleKey(ev key.Event) {
	k, ok := keyNames[ev.Name]
	if !ok || ev.Modifiers != 0 {
		return
	}

	w.mu.Lock()
	held := w.keys[k]
	state := gamewin.Pressed
	if ev.State == key.Release {
		state = gamewin.Released
		delete(w.keys, k)
	} else {
		w.keys[k] = true
	}
	w.mu.Unlock()

	w.d.post(gamewin.KeyEvent{
		WindowID: w.id,
		State:    state,
		Key:      k,
		Repeat:   state == gamewin.Pressed && held,
	})
}

func (w *Window) layout(gtx layout.Context) {
	w.mu.Lock()
	first := !w.exposed
	w.exposed = true
	frame := w.frame
	if frame != nil {
		paint.NewImageOp(frame).Add(gtx.Ops)
	}
	w.mu.Unlock()

	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	pointer.InputOp{Tag: w, Types: pointer.Enter | pointer.Leave}.Add(gtx.Ops)
	key.InputOp{Tag: w, Keys: keySet}.Add(gtx.Ops)
	key.FocusOp{Tag: w}.Add(gtx.Ops)
	if frame != nil {
		paint.PaintOp{}.Add(gtx.Ops)
	}
	area.Pop()

	if first {
		w.d.post(gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowExposed})
	}
}

func (w *Window) configure(cfg app.Config) {
	var events []gamewin.Event

	w.mu.Lock()
	if cfg.Size != w.size && cfg.Size.X > 0 && cfg.Size.Y > 0 {
		w.size = cfg.Size
		events = append(events, gamewin.WindowEvent{
			WindowID: w.id,
			Event:    gamewin.WindowSizeChanged,
			Data1:    int32(cfg.Size.X),
			Data2:    int32(cfg.Size.Y),
		})
	}
	if cfg.Mode != w.mode {
		var ev gamewin.WindowEventID
		switch cfg.Mode {
		case app.Minimized:
			ev = gamewin.WindowMinimized
		case app.Maximized:
			ev = gamewin.WindowMaximized
		default:
			if w.mode == app.Minimized || w.mode == app.Maximized {
				ev = gamewin.WindowRestored
			}
		}
		w.mode = cfg.Mode
		if ev != 0 {
			events = append(events, gamewin.WindowEvent{WindowID: w.id, Event: ev})
		}
	}
	w.mu.Unlock()

	w.d.post(events...)
}

func (w *Window) setStage(stage system.Stage) {
	w.mu.Lock()
	old := w.stage
	w.stage = stage
	w.mu.Unlock()

	switch {
	case stage == system.StageRunning && old != system.StageRunning:
		w.d.post(gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowFocusGained})
	case stage != system.StageRunning && old == system.StageRunning:
		w.d.post(gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowFocusLost})
	}
}

// SetTitle implements gamewin.Handle.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()

	if win := w.window(); win != nil {
		win.Option(app.Title(title))
	}
}

// SetFullscreen implements gamewin.Handle.
func (w *Window) SetFullscreen(enabled bool) error {
	win := w.window()
	if win == nil {
		return ErrDestroyed
	}
	if enabled {
		win.Option(app.Fullscreen.Option())
	} else {
		win.Option(app.Windowed.Option())
	}
	return nil
}

// Show implements gamewin.Handle. A window closed by the user is reopened.
func (w *Window) Show() {
	w.mu.Lock()
	if !w.hidden {
		w.mu.Unlock()
		return
	}
	w.hidden = false
	live, win := w.live, w.win
	w.mu.Unlock()

	if live && win != nil {
		win.Option(app.Windowed.Option())
		win.Perform(system.ActionRaise)
	} else {
		w.open()
	}
	w.d.post(gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowShown})
}

// Hide implements gamewin.Handle. Gio has no hidden state,
// so the window is minimized.
func (w *Window) Hide() {
	w.mu.Lock()
	if w.hidden {
		w.mu.Unlock()
		return
	}
	w.hidden = true
	w.mu.Unlock()

	if win := w.window(); win != nil {
		win.Perform(system.ActionMinimize)
	}
	w.d.post(gamewin.WindowEvent{WindowID: w.id, Event: gamewin.WindowHidden})
}

// Raise implements gamewin.Handle.
func (w *Window) Raise() {
	if win := w.window(); win != nil {
		win.Perform(system.ActionRaise)
	}
}

// Present implements gamewin.Handle. The frame is copied and
// displayed on the next Gio frame.
func (w *Window) Present(frame *image.NRGBA) error {
	w.mu.Lock()
	if w.released {
		w.mu.Unlock()
		return ErrDestroyed
	}
	b := frame.Bounds()
	if w.frame == nil || w.frame.Bounds().Size() != b.Size() {
		w.frame = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(w.frame, w.frame.Bounds(), frame, b.Min, draw.Src)
	win := w.win
	live := w.live
	w.mu.Unlock()

	if live {
		win.Invalidate()
	}
	return nil
}

// Destroy implements gamewin.Handle.
func (w *Window) Destroy() error {
	w.mu.Lock()
	if w.released {
		w.mu.Unlock()
		return ErrDestroyed
	}
	w.released = true
	w.destroy = true
	live := w.live
	win := w.win
	w.mu.Unlock()

	if !live {
		w.d.forget(w)
		return nil
	}
	win.Perform(system.ActionClose)

	return nil
}
