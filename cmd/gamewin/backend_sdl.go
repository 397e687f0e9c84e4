//go:build sdl

package main

import (
	"runtime"

	"github.com/esimov/gamewin"
	"github.com/esimov/gamewin/driver/sdldrv"
)

func init() {
	// SDL calls have to be issued from the main thread.
	runtime.LockOSThread()

	backends["sdl"] = runSDL
	defaultBackend = "sdl"
}

func runSDL(run func(d gamewin.Driver) error) error {
	d, err := sdldrv.New()
	if err != nil {
		return err
	}
	err = run(d)
	if qerr := d.Quit(); qerr != nil && err == nil {
		err = qerr
	}
	return err
}
