package imop

import (
	"image"
	"image/color"

	"github.com/esimov/gamewin/utils"
)

// Composite holds the state applied when a source bitmap is drawn over a
// destination: the blend mode and the color/alpha modulation.
type Composite struct {
	blend BlendMode
	mod   color.NRGBA
}

// InitOp returns a Composite using alpha blending and no modulation.
func InitOp() *Composite {
	return &Composite{
		blend: BlendBlend,
		mod:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Set activates one of the supported blend modes. Unknown modes are ignored.
func (op *Composite) Set(mode BlendMode) {
	if mode.Valid() {
		op.blend = mode
	}
}

// Get returns the currently active blend mode.
func (op *Composite) Get() BlendMode {
	return op.blend
}

// SetColorMod sets the color multiplied into every source pixel.
func (op *Composite) SetColorMod(r, g, b uint8) {
	op.mod.R, op.mod.G, op.mod.B = r, g, b
}

// SetAlphaMod sets the alpha multiplied into every source pixel.
func (op *Composite) SetAlphaMod(a uint8) {
	op.mod.A = a
}

// Modulation returns the current color and alpha modulation.
func (op *Composite) Modulation() color.NRGBA {
	return op.mod
}

// Draw composes the src pixels starting at sp into the r rectangle of dst.
// The rectangle is clipped against both the destination and the source bounds.
func (op *Composite) Draw(dst *image.NRGBA, r image.Rectangle, src *image.NRGBA, sp image.Point) {
	clipped := r.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))
	srcRect := image.Rectangle{Min: sp, Max: sp.Add(clipped.Size())}.Intersect(src.Bounds())
	if srcRect.Empty() {
		return
	}
	clipped.Min = clipped.Min.Add(srcRect.Min.Sub(sp))
	clipped.Max = clipped.Min.Add(srcRect.Size())

	var (
		mr = float64(op.mod.R) / 255
		mg = float64(op.mod.G) / 255
		mb = float64(op.mod.B) / 255
		ma = float64(op.mod.A) / 255
	)

	dx, dy := clipped.Dx(), clipped.Dy()
	for y := 0; y < dy; y++ {
		si := src.PixOffset(srcRect.Min.X, srcRect.Min.Y+y)
		di := dst.PixOffset(clipped.Min.X, clipped.Min.Y+y)

		for x := 0; x < dx; x++ {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]

			rsn := float64(s[0]) / 255 * mr
			gsn := float64(s[1]) / 255 * mg
			bsn := float64(s[2]) / 255 * mb
			asn := float64(s[3]) / 255 * ma

			rbn := float64(d[0]) / 255
			gbn := float64(d[1]) / 255
			bbn := float64(d[2]) / 255
			abn := float64(d[3]) / 255

			var rn, gn, bn, an float64

			// applying the blend mode formula
			switch op.blend {
			case BlendNone:
				rn, gn, bn, an = rsn, gsn, bsn, asn
			case BlendBlend:
				rn = rsn*asn + rbn*(1-asn)
				gn = gsn*asn + gbn*(1-asn)
				bn = bsn*asn + bbn*(1-asn)
				an = asn + abn*(1-asn)
			case BlendAdd:
				rn = rsn*asn + rbn
				gn = gsn*asn + gbn
				bn = bsn*asn + bbn
				an = abn
			case BlendMod:
				rn = rsn * rbn
				gn = gsn * gbn
				bn = bsn * bbn
				an = abn
			case BlendMul:
				rn = rsn*rbn + rbn*(1-asn)
				gn = gsn*gbn + gbn*(1-asn)
				bn = bsn*bbn + bbn*(1-asn)
				an = abn
			}

			d[0] = denorm(rn)
			d[1] = denorm(gn)
			d[2] = denorm(bn)
			d[3] = denorm(an)

			si += 4
			di += 4
		}
	}
}

// denorm converts a normalized color channel back to its 8 bit value.
func denorm(v float64) uint8 {
	return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
}
