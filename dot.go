package gamewin

import "image"

const (
	// DotWidth and DotHeight are the dimensions of the dot.
	DotWidth  = 20
	DotHeight = 20
	// DotVelocity is the maximum axis velocity of the dot, in pixels per frame.
	DotVelocity = 10
)

// Dot is a small sprite moved around with the arrow keys.
type Dot struct {
	posX, posY int
	velX, velY int

	collider Circle
}

// NewDot places a dot with its top-left corner at (x, y).
func NewDot(x, y int) *Dot {
	d := &Dot{posX: x, posY: y}
	d.collider.R = DotWidth / 2
	d.shiftColliders()

	return d
}

// HandleEvent adjusts the velocity on arrow key presses and releases.
// Auto-repeated presses are ignored.
func (d *Dot) HandleEvent(e Event) {
	ke, ok := e.(KeyEvent)
	if !ok || ke.Repeat {
		return
	}

	sign := 1
	if ke.State == Released {
		sign = -1
	}
	switch ke.Key {
	case KeyUp:
		d.velY -= sign * DotVelocity
	case KeyDown:
		d.velY += sign * DotVelocity
	case KeyLeft:
		d.velX -= sign * DotVelocity
	case KeyRight:
		d.velX += sign * DotVelocity
	}
}

// Move advances the dot by its velocity, one axis at a time. A move is undone
// if it takes the dot out of the level or into one of the colliders.
func (d *Dot) Move(level image.Rectangle, walls []Box, circles []Circle) {
	d.posX += d.velX
	d.shiftColliders()

	if d.posX < level.Min.X || d.posX+DotWidth > level.Max.X || d.collides(walls, circles) {
		d.posX -= d.velX
		d.shiftColliders()
	}

	d.posY += d.velY
	d.shiftColliders()

	if d.posY < level.Min.Y || d.posY+DotHeight > level.Max.Y || d.collides(walls, circles) {
		d.posY -= d.velY
		d.shiftColliders()
	}
}

func (d *Dot) collides(walls []Box, circles []Circle) bool {
	for _, w := range walls {
		if CheckCircleBox(d.collider, w) {
			return true
		}
	}
	for _, c := range circles {
		if CheckCircles(d.collider, c) {
			return true
		}
	}
	return false
}

// shiftColliders aligns the collision circle to the center of the dot.
func (d *Dot) shiftColliders() {
	d.collider.X = d.posX + d.collider.R
	d.collider.Y = d.posY + d.collider.R
}

// Collider returns the collision circle of the dot.
func (d *Dot) Collider() Circle { return d.collider }

// Position returns the top-left corner of the dot.
func (d *Dot) Position() image.Point { return image.Pt(d.posX, d.posY) }

// Velocity returns the current velocity of the dot.
func (d *Dot) Velocity() image.Point { return image.Pt(d.velX, d.velY) }

// Render draws the dot texture at the dot position.
func (d *Dot) Render(r *Renderer, tex *Texture) error {
	return tex.Render(r, d.posX, d.posY)
}
