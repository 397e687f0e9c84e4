package gamewin

import "image"

// Circle is a collision circle centered at (X, Y).
type Circle struct {
	X, Y int
	R    int
}

// Box is an axis aligned collision box.
type Box struct {
	X, Y int
	W, H int
}

// BoxFromRect converts an image.Rectangle to a Box.
func BoxFromRect(r image.Rectangle) Box {
	return Box{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// DistanceSquared returns the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CheckCircles reports whether two circles overlap. Touching circles do not collide.
func CheckCircles(a, b Circle) bool {
	total := a.R + b.R
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < total*total
}

// CheckCircleBox reports whether the circle overlaps the box.
func CheckCircleBox(a Circle, b Box) bool {
	// closest point on the collision box
	var cx, cy int

	switch {
	case a.X < b.X:
		cx = b.X
	case a.X > b.X+b.W:
		cx = b.X + b.W
	default:
		cx = a.X
	}

	switch {
	case a.Y < b.Y:
		cy = b.Y
	case a.Y > b.Y+b.H:
		cy = b.Y + b.H
	default:
		cy = a.Y
	}

	return DistanceSquared(a.X, a.Y, cx, cy) < a.R*a.R
}
