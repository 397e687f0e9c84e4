// Package imop implements the pixel operations used by the software renderer
// when a texture is copied onto a window canvas: the blend modes known from
// the classic 2D rendering APIs (none, alpha blend, additive, modulate and
// multiply), color and alpha modulation, and color keying.
//
// The image/draw core package implements only source-over-destination and
// source, without modulation, which is why the composition is done here
// pixel by pixel.
package imop

import (
	"errors"
	"fmt"
	"strings"
)

// BlendMode selects how a source pixel is combined with the destination.
type BlendMode int

const (
	// BlendNone: dstRGBA = srcRGBA
	BlendNone BlendMode = iota
	// BlendBlend: dstRGB = srcRGB*srcA + dstRGB*(1-srcA), dstA = srcA + dstA*(1-srcA)
	BlendBlend
	// BlendAdd: dstRGB = srcRGB*srcA + dstRGB, dstA = dstA
	BlendAdd
	// BlendMod: dstRGB = srcRGB*dstRGB, dstA = dstA
	BlendMod
	// BlendMul: dstRGB = srcRGB*dstRGB + dstRGB*(1-srcA), dstA = dstA
	BlendMul
)

// ErrUnsupportedBlend is returned when a blend mode name is not recognized.
var ErrUnsupportedBlend = errors.New("unsupported blend mode")

var blendNames = []string{"none", "blend", "add", "mod", "mul"}

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
	return blendNames[m]
}

// Valid reports whether m is one of the supported blend modes.
func (m BlendMode) Valid() bool {
	return m >= BlendNone && m <= BlendMul
}

// ParseBlendMode converts a blend mode name (as used on the command line)
// to its BlendMode value.
func ParseBlendMode(name string) (BlendMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range blendNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return BlendNone, fmt.Errorf("%w: %q", ErrUnsupportedBlend, name)
}
