package gamewin

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer(t *testing.T) {
	assert := assert.New(t)

	h := &fakeHandle{id: 1}
	r := NewRenderer(h, 4, 3)
	assert.Equal(white, r.DrawColor())

	w, hh := r.Size()
	assert.Equal(4, w)
	assert.Equal(3, hh)

	r.SetDrawColor(0, 0, 0xff, 0xff)
	r.Clear()
	assert.Equal(blue, r.Canvas().NRGBAAt(3, 2))

	r.SetDrawColor(0xff, 0, 0, 0xff)
	r.FillRect(image.Rect(1, 1, 10, 10))
	assert.Equal(blue, r.Canvas().NRGBAAt(0, 0))
	assert.Equal(red, r.Canvas().NRGBAAt(3, 2))

	assert.NoError(r.Present())
	assert.Equal(1, h.presents)
	assert.Equal(red, h.lastFrame.NRGBAAt(1, 1))

	r.Resize(2, 5)
	w, hh = r.Size()
	assert.Equal(2, w)
	assert.Equal(5, hh)
	assert.Equal(red, r.Canvas().NRGBAAt(1, 1), "the overlapping content should be kept")
	assert.Zero(r.Canvas().NRGBAAt(1, 4).A)

	r.Destroy()
	assert.ErrorIs(r.Present(), ErrNoWindow)
}
