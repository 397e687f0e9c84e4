package imop

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(rect image.Rectangle, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(rect)
	draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(BlendBlend, op.Get())
	assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, op.Modulation())

	op.Set(BlendAdd)
	assert.Equal(BlendAdd, op.Get())

	op.Set(BlendMode(42))
	assert.Equal(BlendAdd, op.Get())
}

func TestComp_BlendModes(t *testing.T) {
	rect := image.Rect(0, 0, 1, 1)

	testCases := []struct {
		name     string
		mode     BlendMode
		src      color.NRGBA
		dst      color.NRGBA
		expected []uint8
	}{
		{
			name:     "none copies the source",
			mode:     BlendNone,
			src:      color.NRGBA{R: 200, G: 100, B: 50, A: 128},
			dst:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			expected: []uint8{200, 100, 50, 128},
		},
		{
			name:     "blend with opaque source",
			mode:     BlendBlend,
			src:      color.NRGBA{R: 200, G: 100, B: 50, A: 255},
			dst:      color.NRGBA{R: 10, G: 20, B: 30, A: 255},
			expected: []uint8{200, 100, 50, 255},
		},
		{
			name:     "blend with transparent source",
			mode:     BlendBlend,
			src:      color.NRGBA{R: 200, G: 100, B: 50, A: 0},
			dst:      color.NRGBA{R: 10, G: 20, B: 30, A: 255},
			expected: []uint8{10, 20, 30, 255},
		},
		{
			name:     "additive saturates",
			mode:     BlendAdd,
			src:      color.NRGBA{R: 100, G: 200, B: 0, A: 255},
			dst:      color.NRGBA{R: 100, G: 100, B: 100, A: 255},
			expected: []uint8{200, 255, 100, 255},
		},
		{
			name:     "modulate keeps the destination alpha",
			mode:     BlendMod,
			src:      color.NRGBA{R: 200, G: 100, B: 50, A: 10},
			dst:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			expected: []uint8{200, 100, 50, 255},
		},
		{
			name:     "multiply with opaque source",
			mode:     BlendMul,
			src:      color.NRGBA{R: 200, G: 100, B: 50, A: 255},
			dst:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			expected: []uint8{200, 100, 50, 255},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op := InitOp()
			op.Set(tc.mode)

			dst := fill(rect, tc.dst)
			op.Draw(dst, rect, fill(rect, tc.src), image.Point{})
			assert.EqualValues(t, tc.expected, dst.Pix)
		})
	}
}

func TestComp_Modulation(t *testing.T) {
	assert := assert.New(t)
	rect := image.Rect(0, 0, 1, 1)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	op := InitOp()
	op.Set(BlendNone)
	op.SetColorMod(0, 255, 255)

	dst := fill(rect, white)
	op.Draw(dst, rect, fill(rect, color.NRGBA{R: 200, G: 100, B: 50, A: 255}), image.Point{})
	assert.EqualValues([]uint8{0, 100, 50, 255}, dst.Pix)

	op = InitOp()
	op.SetAlphaMod(0)

	dst = fill(rect, white)
	op.Draw(dst, rect, fill(rect, color.NRGBA{R: 200, G: 100, B: 50, A: 255}), image.Point{})
	assert.EqualValues([]uint8{255, 255, 255, 255}, dst.Pix)
}

func TestComp_Clipping(t *testing.T) {
	assert := assert.New(t)

	red := color.NRGBA{R: 255, A: 255}
	transparent := color.NRGBA{}

	op := InitOp()
	op.Set(BlendNone)

	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	src := fill(image.Rect(0, 0, 5, 5), red)

	// Partially outside of the destination on the top-left corner.
	op.Draw(dst, image.Rect(-2, -2, 3, 3), src, image.Point{})
	assert.Equal(red, dst.NRGBAAt(0, 0))
	assert.Equal(red, dst.NRGBAAt(2, 2))
	assert.Equal(transparent, dst.NRGBAAt(3, 3))

	// Destination rectangle larger than the source.
	dst = image.NewNRGBA(image.Rect(0, 0, 10, 10))
	op.Draw(dst, image.Rect(6, 6, 16, 16), src, image.Point{})
	assert.Equal(red, dst.NRGBAAt(9, 9))
	assert.Equal(transparent, dst.NRGBAAt(5, 5))

	// Completely outside.
	dst = image.NewNRGBA(image.Rect(0, 0, 10, 10))
	op.Draw(dst, image.Rect(20, 20, 25, 25), src, image.Point{})
	assert.Equal(make([]uint8, len(dst.Pix)), dst.Pix)
}

func TestBlend_Parse(t *testing.T) {
	assert := assert.New(t)

	mode, err := ParseBlendMode(" ADD ")
	assert.NoError(err)
	assert.Equal(BlendAdd, mode)
	assert.Equal("add", mode.String())

	_, err = ParseBlendMode("overlay")
	assert.True(errors.Is(err, ErrUnsupportedBlend))
	assert.Equal("BlendMode(9)", BlendMode(9).String())
}

func TestColorKey(t *testing.T) {
	assert := assert.New(t)

	cyan := color.NRGBA{G: 0xff, B: 0xff, A: 0xff}
	img := fill(image.Rect(0, 0, 4, 4), cyan)
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 0xff, B: 0xff, A: 0xff})

	n := ColorKey(img, cyan)
	assert.Equal(15, n)
	assert.Equal(color.NRGBA{}, img.NRGBAAt(0, 0))
	assert.Equal(uint8(0xff), img.NRGBAAt(1, 1).A)
}
