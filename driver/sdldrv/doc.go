// Package sdldrv implements a windowing driver on top of SDL2.
//
// The driver is compiled only with the sdl build tag, since it requires
// the SDL2 development libraries and cgo:
//
//	go build -tags sdl ./cmd/gamewin
//
// SDL must be driven from the main OS thread. Callers are expected
// to lock it with runtime.LockOSThread before calling New.
package sdldrv
