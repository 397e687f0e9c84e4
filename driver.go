package gamewin

import (
	"errors"
	"image"
)

// ErrNoWindow is returned by operations requiring an initialized window.
var ErrNoWindow = errors.New("window not initialized")

// WindowConfig describes a window to be created by a Driver.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// Driver abstracts the multimedia library used for windowing and input.
type Driver interface {
	// CreateWindow opens a new, shown window.
	CreateWindow(cfg WindowConfig) (Handle, error)
	// PollEvent returns the next pending event or nil if the queue is empty.
	PollEvent() Event
	// Quit releases the resources held by the driver.
	Quit() error
}

// Handle is a window owned by a Driver.
type Handle interface {
	ID() uint32
	SetTitle(title string)
	SetFullscreen(enabled bool) error
	Show()
	Hide()
	Raise()
	// Present displays the frame in the window. The frame is copied,
	// so the caller may reuse it right after the call.
	Present(frame *image.NRGBA) error
	Destroy() error
}
