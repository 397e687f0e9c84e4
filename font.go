package gamewin

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFont opens a TrueType/OpenType font file at the given point size.
func LoadFont(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	return parseFont(data, size)
}

// DefaultFont returns the Go Regular font at the given point size.
func DefaultFont(size float64) (font.Face, error) {
	return parseFont(goregular.TTF, size)
}

func parseFont(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create font face: %w", err)
	}
	return face, nil
}
