// Package assets embeds the images used by the demos when no path is given.
package assets

import "embed"

// Names of the embedded images.
const (
	Splash     = "splash.png"
	Background = "bg.png"
	Dot        = "dot.png"
)

// FS holds the embedded images.
//
//go:embed *.png
var FS embed.FS
