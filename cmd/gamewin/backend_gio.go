//go:build !sdl

package main

import (
	"gioui.org/app"
	"github.com/esimov/gamewin"
	"github.com/esimov/gamewin/driver/giodrv"
)

func init() {
	backends["gio"] = runGio
	defaultBackend = "gio"
}

// runGio runs the demo in a separate goroutine, since app.Main
// takes over the main goroutine and never returns.
func runGio(run func(d gamewin.Driver) error) error {
	d := giodrv.New()
	go func() {
		err := run(d)
		if qerr := d.Quit(); qerr != nil && err == nil {
			err = qerr
		}
		finish(err)
	}()
	app.Main()

	return nil
}
