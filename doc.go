/*
Package gamewin is a small collection of multimedia demos covering window
creation, event polling, image and text rendering and simple collision
detection, written against a backend neutral windowing driver.

The package provides a command line interface running the demos on the Gio,
SDL2 or headless backends. To check the supported flags type:

	$ gamewin --help

The demos can also be driven from a self constructed environment:

	package main

	import (
		"context"
		"log"

		"github.com/esimov/gamewin"
		"github.com/esimov/gamewin/driver/headless"
	)

	func main() {
		d := headless.New()
		defer d.Quit()

		demo := gamewin.NewSplash(gamewin.DefaultConfig())
		if err := demo.Init(d); err != nil {
			log.Fatal(err)
		}
		defer demo.Close()

		loop := &gamewin.Loop{FPS: 60, MaxFrames: 1}
		if _, err := loop.Run(context.Background(), d, demo); err != nil {
			log.Fatal(err)
		}
	}
*/
package gamewin
