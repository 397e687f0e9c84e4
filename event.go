package gamewin

import "fmt"

// Event is implemented by every event delivered by a Driver.
type Event interface {
	ImplementsEvent()
}

// QuitEvent is sent when the user requests the application to quit.
type QuitEvent struct{}

// KeyState is the state of a key in a KeyEvent.
type KeyState uint8

const (
	// Pressed is the state of a pressed key.
	Pressed KeyState = iota
	// Released is the state of a released key.
	Released
)

// Key identifies the keys the demos react on.
type Key uint16

// Keys reported by the drivers. Every other key is reported as KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyReturn
	KeyEscape
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Digit returns the numeric value of a digit key and true,
// or 0 and false when k is not a digit key.
func (k Key) Digit() (int, bool) {
	if k >= Key1 && k <= Key9 {
		return int(k-Key1) + 1, true
	}
	return 0, false
}

// KeyEvent is generated when a key is pressed or released.
type KeyEvent struct {
	// WindowID is the window with keyboard focus. Zero means no specific window.
	WindowID uint32
	State    KeyState
	Key      Key
	// Repeat is true for the auto-repeated presses of a held key.
	Repeat bool
}

// WindowEventID is the kind of a WindowEvent.
type WindowEventID uint8

// Window events, mirroring the SDL window event ids.
const (
	WindowShown WindowEventID = iota + 1
	WindowHidden
	WindowExposed
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
)

var windowEventNames = map[WindowEventID]string{
	WindowShown:       "shown",
	WindowHidden:      "hidden",
	WindowExposed:     "exposed",
	WindowSizeChanged: "size-changed",
	WindowMinimized:   "minimized",
	WindowMaximized:   "maximized",
	WindowRestored:    "restored",
	WindowEnter:       "enter",
	WindowLeave:       "leave",
	WindowFocusGained: "focus-gained",
	WindowFocusLost:   "focus-lost",
	WindowClose:       "close",
}

func (id WindowEventID) String() string {
	if s, ok := windowEventNames[id]; ok {
		return s
	}
	return fmt.Sprintf("WindowEventID(%d)", uint8(id))
}

// WindowEvent reports a change in the state of a window.
type WindowEvent struct {
	WindowID uint32
	Event    WindowEventID
	// Data1 and Data2 hold the new width and height on WindowSizeChanged.
	Data1, Data2 int32
}

func (QuitEvent) ImplementsEvent()   {}
func (KeyEvent) ImplementsEvent()    {}
func (WindowEvent) ImplementsEvent() {}
