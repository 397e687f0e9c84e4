package gamewin

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/gamewin/imop"
	"github.com/esimov/gamewin/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyTexture is returned when rendering a texture without image data.
var ErrEmptyTexture = errors.New("texture is empty")

// ColorKey is the color made transparent when an image is loaded from a file.
var ColorKey = color.NRGBA{R: 0, G: 0xff, B: 0xff, A: 0xff}

// Flip describes the mirroring applied by RenderEx.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)

// Texture wraps an image together with the drawing state used
// when it is copied onto a renderer.
type Texture struct {
	img    *image.NRGBA
	width  int
	height int
	op     *imop.Composite
}

// NewTexture returns an empty texture.
func NewTexture() *Texture {
	return &Texture{op: imop.InitOp()}
}

// LoadFromFile loads the image at path, which can be a local file or an
// http(s) URL. Any previously loaded image is released. Pixels matching
// ColorKey become transparent.
func (t *Texture) LoadFromFile(path string) error {
	t.Free()

	src, err := openImage(path)
	if err != nil {
		return fmt.Errorf("unable to load image %s: %w", path, err)
	}
	t.setKeyed(src)

	return nil
}

// LoadFromFS loads the named image from fsys, applying the same
// color keying as LoadFromFile.
func (t *Texture) LoadFromFS(fsys fs.FS, name string) error {
	t.Free()

	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("unable to load image %s: %w", name, err)
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		return fmt.Errorf("unable to decode image %s: %w", name, err)
	}
	t.setKeyed(src)

	return nil
}

func (t *Texture) setKeyed(src image.Image) {
	img := imaging.Clone(src)
	imop.ColorKey(img, ColorKey)
	t.set(img)
}

// LoadFromImage creates the texture from an already decoded image.
func (t *Texture) LoadFromImage(src image.Image) error {
	t.Free()

	if src == nil || src.Bounds().Empty() {
		return fmt.Errorf("unable to create texture: %w", ErrEmptyTexture)
	}
	t.set(imaging.Clone(src))

	return nil
}

// LoadFromRenderedText renders the text with the given face and color
// and uses the result as the texture image.
func (t *Texture) LoadFromRenderedText(text string, c color.Color, face font.Face) error {
	t.Free()

	d := &font.Drawer{Face: face}
	m := face.Metrics()

	w := d.MeasureString(text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("unable to render text surface %q: %w", text, ErrEmptyTexture)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Src = image.NewUniform(c)
	d.Dot = fixed.P(0, m.Ascent.Ceil())
	d.DrawString(text)
	t.set(img)

	return nil
}

func (t *Texture) set(img *image.NRGBA) {
	t.img = img
	t.width = img.Bounds().Dx()
	t.height = img.Bounds().Dy()
}

// Free releases the image and resets the drawing state.
func (t *Texture) Free() {
	if t.img != nil {
		t.img = nil
		t.width = 0
		t.height = 0
	}
	t.op = imop.InitOp()
}

// SetColor sets the color modulation.
func (t *Texture) SetColor(red, green, blue uint8) {
	t.op.SetColorMod(red, green, blue)
}

// SetBlendMode sets the blending used when rendering.
func (t *Texture) SetBlendMode(mode imop.BlendMode) {
	t.op.Set(mode)
}

// SetAlpha sets the alpha modulation.
func (t *Texture) SetAlpha(alpha uint8) {
	t.op.SetAlphaMod(alpha)
}

// BlendMode returns the active blend mode.
func (t *Texture) BlendMode() imop.BlendMode {
	return t.op.Get()
}

// Width returns the image width, or 0 for an empty texture.
func (t *Texture) Width() int { return t.width }

// Height returns the image height, or 0 for an empty texture.
func (t *Texture) Height() int { return t.height }

// Image returns the texture pixels.
func (t *Texture) Image() *image.NRGBA { return t.img }

// Render draws the whole texture with its top-left corner at (x, y).
func (t *Texture) Render(r *Renderer, x, y int) error {
	return t.RenderEx(r, x, y, nil, 0, nil, FlipNone)
}

// RenderEx draws the clip region of the texture (the whole texture when nil)
// at (x, y). The texture is rotated clockwise by angle degrees around center,
// which is relative to the destination corner and defaults to the middle
// of the destination quad, after being flipped.
func (t *Texture) RenderEx(r *Renderer, x, y int, clip *image.Rectangle, angle float64, center *image.Point, flip Flip) error {
	if t.img == nil {
		return ErrEmptyTexture
	}

	srcRect := t.img.Bounds()
	qw, qh := t.width, t.height
	var off image.Point
	if clip != nil {
		srcRect = clip.Intersect(srcRect)
		qw, qh = clip.Dx(), clip.Dy()
		// the part of the clip outside of the texture is left undrawn
		off = srcRect.Min.Sub(clip.Min)
	}
	if srcRect.Empty() {
		return nil
	}

	cx, cy := float64(qw)/2, float64(qh)/2
	if center != nil {
		cx, cy = float64(center.X), float64(center.Y)
	}
	x, y = x+off.X, y+off.Y
	cx, cy = cx-float64(off.X), cy-float64(off.Y)
	w, h := srcRect.Dx(), srcRect.Dy()

	if angle == 0 && flip == FlipNone {
		t.op.Draw(r.Canvas(), image.Rect(x, y, x+w, y+h), t.img, srcRect.Min)
		return nil
	}

	part := imaging.Crop(t.img, srcRect)
	if flip&FlipHorizontal != 0 {
		part = imaging.FlipH(part)
	}
	if flip&FlipVertical != 0 {
		part = imaging.FlipV(part)
	}
	if math.Mod(angle, 360) == 0 {
		t.op.Draw(r.Canvas(), image.Rect(x, y, x+w, y+h), part, image.Point{})
		return nil
	}

	// imaging rotates counter-clockwise around the image center,
	// so the quad center is rotated around the requested center first.
	rotated := imaging.Rotate(part, -angle, color.Transparent)

	theta := angle * math.Pi / 180
	sin, cos := math.Sincos(theta)
	qx, qy := float64(w)/2-cx, float64(h)/2-cy
	mx := cx + qx*cos - qy*sin
	my := cy + qx*sin + qy*cos

	rb := rotated.Bounds()
	px := x + int(math.Round(mx-float64(rb.Dx())/2))
	py := y + int(math.Round(my-float64(rb.Dy())/2))
	t.op.Draw(r.Canvas(), image.Rect(px, py, px+rb.Dx(), py+rb.Dy()), rotated, rb.Min)

	return nil
}

// openImage decodes a local image file or downloads it first when path is an URL.
func openImage(path string) (image.Image, error) {
	if !utils.IsValidUrl(path) {
		ctype, err := utils.DetectContentType(path)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(ctype, "image") {
			return nil, fmt.Errorf("%s is not an image file", path)
		}
		return imaging.Open(path)
	}

	f, err := utils.DownloadImage(path)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	return imaging.Decode(f)
}
