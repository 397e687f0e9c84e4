package headless

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/gamewin/utils"
	"golang.org/x/image/bmp"
)

// snapshotExts lists the file extensions supported by Snapshot.
var snapshotExts = []string{"", ".jpg", ".jpeg", ".png", ".bmp"}

var (
	ErrNoFrame           = errors.New("headless: nothing presented yet")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Encode writes the image to w. The format is chosen from the file
// extension when w is a file, jpeg otherwise.
func Encode(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		return EncodeAs(w, filepath.Ext(w.Name()), img)
	default:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	}
}

// EncodeAs writes the image to w in the format given by the file extension.
func EncodeAs(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case "", ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Snapshot saves the last frame presented in the window to path.
func (d *Driver) Snapshot(id uint32, path string) error {
	w := d.Window(id)
	if w == nil {
		return fmt.Errorf("snapshot of window %d: %w", id, ErrUnknownWindow)
	}
	frame := w.Frame()
	if frame == nil {
		return fmt.Errorf("snapshot of window %d: %w", id, ErrNoFrame)
	}

	if ext := strings.ToLower(filepath.Ext(path)); !utils.Contains(snapshotExts, ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the snapshot file: %w", err)
	}
	if err := Encode(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("unable to encode the snapshot: %w", err)
	}
	return f.Close()
}
