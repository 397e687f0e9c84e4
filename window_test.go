package gamewin

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func initWindow(t *testing.T) (*Window, *fakeHandle) {
	t.Helper()

	d := &fakeDriver{}
	w := NewWindow("", 0, 0)
	if err := w.Init(d); err != nil {
		t.Fatal(err)
	}
	return w, d.handles[0]
}

func windowEvent(id uint32, ev WindowEventID) WindowEvent {
	return WindowEvent{WindowID: id, Event: ev}
}

func TestWindow_Init(t *testing.T) {
	assert := assert.New(t)

	w, h := initWindow(t)
	assert.Equal(uint32(1), w.ID())
	assert.Equal(WindowConfig{Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight, Resizable: true}, h.cfg)
	assert.Equal(DefaultWidth, w.Width())
	assert.Equal(DefaultHeight, w.Height())
	assert.True(w.IsShown())
	assert.True(w.HasMouseFocus())
	assert.True(w.HasKeyboardFocus())
	assert.False(w.IsMinimized())
	assert.False(w.IsFullscreen())
	assert.Equal(white, w.Renderer().DrawColor())
	assert.Equal("SDL Tutorial - MouseFocus:On KeyboardFocus:On", w.Caption())

	assert.NoError(w.Init(&fakeDriver{}), "a second Init should be a no-op")
	assert.Equal(uint32(1), w.ID())
}

func TestWindow_InitFailure(t *testing.T) {
	assert := assert.New(t)

	w := NewWindow("failing", 10, 10)
	assert.ErrorIs(w.Init(&fakeDriver{createErr: errFake}), errFake)
	assert.Nil(w.Renderer())
	assert.False(w.IsShown())

	assert.ErrorIs(w.Init(&fakeDriver{nilHandle: true}), ErrNoWindow)
	assert.ErrorIs(w.Focus(), ErrNoWindow)
	assert.NoError(w.HandleEvent(windowEvent(0, WindowShown)))
	assert.NoError(w.Render())
}

func TestWindow_HandleEvent(t *testing.T) {
	assert := assert.New(t)

	w, h := initWindow(t)

	assert.NoError(w.HandleEvent(windowEvent(1, WindowLeave)))
	assert.False(w.HasMouseFocus())
	assert.Equal("SDL Tutorial - MouseFocus:Off KeyboardFocus:On", h.title)

	assert.NoError(w.HandleEvent(windowEvent(1, WindowFocusLost)))
	assert.False(w.HasKeyboardFocus())
	assert.Equal("SDL Tutorial - MouseFocus:Off KeyboardFocus:Off", h.title)

	assert.NoError(w.HandleEvent(windowEvent(1, WindowEnter)))
	assert.NoError(w.HandleEvent(windowEvent(1, WindowFocusGained)))
	assert.Equal("SDL Tutorial - MouseFocus:On KeyboardFocus:On", h.title)

	// events addressed to another window are ignored
	assert.NoError(w.HandleEvent(windowEvent(2, WindowLeave)))
	assert.True(w.HasMouseFocus())

	assert.NoError(w.HandleEvent(windowEvent(1, WindowMinimized)))
	assert.True(w.IsMinimized())
	assert.NoError(w.HandleEvent(windowEvent(1, WindowRestored)))
	assert.False(w.IsMinimized())
	assert.NoError(w.HandleEvent(windowEvent(1, WindowMinimized)))
	assert.NoError(w.HandleEvent(windowEvent(1, WindowMaximized)))
	assert.False(w.IsMinimized())

	assert.NoError(w.HandleEvent(windowEvent(1, WindowHidden)))
	assert.False(w.IsShown())
	assert.NoError(w.HandleEvent(windowEvent(1, WindowShown)))
	assert.True(w.IsShown())

	assert.NoError(w.HandleEvent(windowEvent(1, WindowExposed)))
	assert.Equal(1, h.presents)

	assert.NoError(w.HandleEvent(WindowEvent{WindowID: 1, Event: WindowSizeChanged, Data1: 320, Data2: 200}))
	assert.Equal(320, w.Width())
	assert.Equal(200, w.Height())
	assert.Equal(image.Rect(0, 0, 320, 200), w.Renderer().Canvas().Bounds())
	assert.Equal(2, h.presents)

	assert.NoError(w.HandleEvent(WindowEvent{WindowID: 1, Event: WindowSizeChanged}))
	assert.Equal(2, h.presents, "a zero sized window should not be presented")

	assert.NoError(w.HandleEvent(windowEvent(1, WindowClose)))
	assert.Equal(1, h.hides)
}

func TestWindow_Fullscreen(t *testing.T) {
	assert := assert.New(t)

	w, h := initWindow(t)
	ret := KeyEvent{WindowID: 1, State: Pressed, Key: KeyReturn}

	assert.NoError(w.HandleEvent(windowEvent(1, WindowMinimized)))
	assert.NoError(w.HandleEvent(ret))
	assert.True(w.IsFullscreen())
	assert.True(h.fullscreen)
	assert.False(w.IsMinimized(), "entering fullscreen should clear the minimized state")

	repeat := ret
	repeat.Repeat = true
	assert.NoError(w.HandleEvent(repeat))
	assert.True(w.IsFullscreen())

	assert.NoError(w.HandleEvent(KeyEvent{WindowID: 1, State: Released, Key: KeyReturn}))
	assert.True(w.IsFullscreen())

	assert.NoError(w.HandleEvent(KeyEvent{WindowID: 2, State: Pressed, Key: KeyReturn}))
	assert.True(w.IsFullscreen())

	assert.NoError(w.HandleEvent(KeyEvent{State: Pressed, Key: KeyReturn}))
	assert.False(w.IsFullscreen())
	assert.False(h.fullscreen)

	h.fullscreenErr = errFake
	assert.ErrorIs(w.HandleEvent(ret), errFake)
	assert.False(w.IsFullscreen())
}

func TestWindow_Focus(t *testing.T) {
	assert := assert.New(t)

	w, h := initWindow(t)
	assert.NoError(w.Focus())
	assert.Zero(h.shows)
	assert.Equal(1, h.raises)

	assert.NoError(w.HandleEvent(windowEvent(1, WindowHidden)))
	assert.NoError(w.Focus())
	assert.Equal(1, h.shows)
	assert.Equal(2, h.raises)
}

func TestWindow_Render(t *testing.T) {
	assert := assert.New(t)

	w, h := initWindow(t)
	w.SetScene(func(r *Renderer) error {
		r.SetDrawColor(0xff, 0, 0, 0xff)
		r.FillRect(image.Rect(0, 0, 1, 1))
		return nil
	})

	assert.NoError(w.Render())
	assert.Equal(1, h.presents)
	assert.Equal(red, h.lastFrame.NRGBAAt(0, 0))
	assert.Equal(white, h.lastFrame.NRGBAAt(1, 1))

	// the canvas is cleared to white on every frame
	w.SetScene(nil)
	assert.NoError(w.Render())
	assert.Equal(white, h.lastFrame.NRGBAAt(0, 0))

	assert.NoError(w.HandleEvent(windowEvent(1, WindowMinimized)))
	assert.NoError(w.Render())
	assert.Equal(2, h.presents, "minimized windows should not be rendered")

	w.SetScene(func(r *Renderer) error { return errFake })
	assert.NoError(w.HandleEvent(windowEvent(1, WindowRestored)))
	assert.ErrorIs(w.Render(), errFake)
}

func TestWindow_Free(t *testing.T) {
	assert := assert.New(t)

	w, h := initWindow(t)
	assert.NoError(w.Free())
	assert.True(h.destroyed)
	assert.Nil(w.Renderer())
	assert.Zero(w.Width())
	assert.Zero(w.Height())
	assert.False(w.IsShown())
	assert.False(w.HasMouseFocus())
	assert.False(w.HasKeyboardFocus())

	assert.NoError(w.Free())
	assert.NoError(w.Render())
}

func TestWindow_InitAfterFree(t *testing.T) {
	assert := assert.New(t)

	w, _ := initWindow(t)
	assert.NoError(w.HandleEvent(KeyEvent{WindowID: 1, State: Pressed, Key: KeyReturn}))
	assert.NoError(w.HandleEvent(windowEvent(1, WindowMinimized)))
	assert.True(w.IsFullscreen())
	assert.True(w.IsMinimized())

	assert.NoError(w.Free())
	assert.False(w.IsFullscreen())
	assert.False(w.IsMinimized())

	d := &fakeDriver{}
	assert.NoError(w.Init(d))
	assert.NoError(w.Render())
	assert.Equal(1, d.handles[0].presents)
	assert.False(d.handles[0].fullscreen)
}
