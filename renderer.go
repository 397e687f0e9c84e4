package gamewin

import (
	"image"
	"image/color"
	"image/draw"
)

// Renderer is a software renderer bound to a window handle.
// Drawing happens on an in-memory canvas which is pushed
// to the window on Present.
type Renderer struct {
	handle    Handle
	canvas    *image.NRGBA
	drawColor color.NRGBA
}

// NewRenderer creates a renderer with a canvas of the given size.
// The draw color is initialized to opaque white.
func NewRenderer(h Handle, width, height int) *Renderer {
	return &Renderer{
		handle:    h,
		canvas:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		drawColor: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// SetDrawColor sets the color used by Clear and FillRect.
func (r *Renderer) SetDrawColor(red, green, blue, alpha uint8) {
	r.drawColor = color.NRGBA{R: red, G: green, B: blue, A: alpha}
}

// DrawColor returns the current draw color.
func (r *Renderer) DrawColor() color.NRGBA {
	return r.drawColor
}

// Clear fills the whole canvas with the draw color.
func (r *Renderer) Clear() {
	draw.Draw(r.canvas, r.canvas.Bounds(), &image.Uniform{r.drawColor}, image.Point{}, draw.Src)
}

// FillRect fills the rectangle with the draw color, blending it over the canvas.
func (r *Renderer) FillRect(rect image.Rectangle) {
	draw.Draw(r.canvas, rect.Intersect(r.canvas.Bounds()), &image.Uniform{r.drawColor}, image.Point{}, draw.Over)
}

// Canvas returns the image the renderer draws on.
func (r *Renderer) Canvas() *image.NRGBA {
	return r.canvas
}

// Size returns the canvas dimensions.
func (r *Renderer) Size() (int, int) {
	b := r.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the canvas with a new one of the given size,
// keeping the overlapping region of the old content.
func (r *Renderer) Resize(width, height int) {
	if w, h := r.Size(); w == width && h == height {
		return
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), r.canvas, image.Point{}, draw.Src)
	r.canvas = canvas
}

// Present pushes the canvas to the window.
func (r *Renderer) Present() error {
	if r.handle == nil {
		return ErrNoWindow
	}
	return r.handle.Present(r.canvas)
}

// Destroy detaches the renderer from its window.
func (r *Renderer) Destroy() {
	r.handle = nil
}
