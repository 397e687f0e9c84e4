package imop

import (
	"image"
	"image/color"
)

// ColorKey makes every pixel of img matching the key color fully transparent.
// The alpha channel of the key is not compared. It returns the number of
// keyed pixels.
func ColorKey(img *image.NRGBA, key color.NRGBA) int {
	var n int

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.Pix[i : i+4 : i+4]
			if p[0] == key.R && p[1] == key.G && p[2] == key.B {
				p[0], p[1], p[2], p[3] = 0, 0, 0, 0
				n++
			}
			i += 4
		}
	}
	return n
}
