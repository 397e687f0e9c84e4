package gamewin

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func press(k Key) KeyEvent   { return KeyEvent{State: Pressed, Key: k} }
func release(k Key) KeyEvent { return KeyEvent{State: Released, Key: k} }

func TestDot_HandleEvent(t *testing.T) {
	assert := assert.New(t)

	d := NewDot(0, 0)
	assert.Equal(Circle{X: 10, Y: 10, R: 10}, d.Collider())

	d.HandleEvent(press(KeyRight))
	d.HandleEvent(press(KeyDown))
	assert.Equal(image.Pt(DotVelocity, DotVelocity), d.Velocity())

	repeat := press(KeyRight)
	repeat.Repeat = true
	d.HandleEvent(repeat)
	assert.Equal(image.Pt(DotVelocity, DotVelocity), d.Velocity())

	d.HandleEvent(press(KeyLeft))
	assert.Equal(image.Pt(0, DotVelocity), d.Velocity())

	d.HandleEvent(release(KeyLeft))
	d.HandleEvent(release(KeyRight))
	d.HandleEvent(release(KeyDown))
	d.HandleEvent(press(KeyEscape))
	d.HandleEvent(QuitEvent{})
	assert.Equal(image.Pt(0, 0), d.Velocity())

	d.HandleEvent(press(KeyUp))
	assert.Equal(image.Pt(0, -DotVelocity), d.Velocity())
}

func TestDot_MoveInsideLevel(t *testing.T) {
	assert := assert.New(t)

	level := image.Rect(0, 0, 45, 45)
	d := NewDot(0, 0)
	d.HandleEvent(press(KeyRight))
	d.HandleEvent(press(KeyDown))

	d.Move(level, nil, nil)
	assert.Equal(image.Pt(10, 10), d.Position())
	assert.Equal(Circle{X: 20, Y: 20, R: 10}, d.Collider())

	d.Move(level, nil, nil)
	d.Move(level, nil, nil)
	assert.Equal(image.Pt(20, 20), d.Position(), "the dot should stop at the level edges")

	d.HandleEvent(release(KeyRight))
	d.HandleEvent(release(KeyDown))
	d.HandleEvent(press(KeyLeft))
	for i := 0; i < 5; i++ {
		d.Move(level, nil, nil)
	}
	assert.Equal(image.Pt(0, 20), d.Position())
	assert.Equal(Circle{X: 10, Y: 30, R: 10}, d.Collider())
}

func TestDot_MoveCollisions(t *testing.T) {
	assert := assert.New(t)

	level := image.Rect(0, 0, 200, 200)
	wall := Box{X: 35, Y: 0, W: 10, H: 200}

	d := NewDot(0, 0)
	d.HandleEvent(press(KeyRight))
	d.Move(level, []Box{wall}, nil)
	assert.Equal(image.Pt(10, 0), d.Position())

	d.Move(level, []Box{wall}, nil)
	assert.Equal(image.Pt(10, 0), d.Position(), "the wall should block the dot")

	other := Circle{X: 40, Y: 65, R: 10}
	d = NewDot(30, 30)
	d.HandleEvent(press(KeyDown))
	d.Move(level, nil, []Circle{other})
	assert.Equal(image.Pt(30, 30), d.Position(), "the circle should block the dot")

	d.HandleEvent(release(KeyDown))
	d.HandleEvent(press(KeyUp))
	d.Move(level, nil, []Circle{other})
	assert.Equal(image.Pt(30, 20), d.Position())
}
