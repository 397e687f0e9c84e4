package gamewin

import (
	"errors"
	"image"
)

var errFake = errors.New("fake failure")

type fakeDriver struct {
	nextID    uint32
	handles   []*fakeHandle
	queue     []Event
	createErr error
	nilHandle bool
}

func (d *fakeDriver) CreateWindow(cfg WindowConfig) (Handle, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	if d.nilHandle {
		return nil, nil
	}
	d.nextID++
	h := &fakeHandle{id: d.nextID, cfg: cfg, title: cfg.Title, shown: true}
	d.handles = append(d.handles, h)

	return h, nil
}

func (d *fakeDriver) PollEvent() Event {
	if len(d.queue) == 0 {
		return nil
	}
	e := d.queue[0]
	d.queue = d.queue[1:]

	return e
}

func (d *fakeDriver) Quit() error { return nil }

type fakeHandle struct {
	id    uint32
	cfg   WindowConfig
	title string

	fullscreen    bool
	fullscreenErr error
	shown         bool
	shows         int
	hides         int
	raises        int
	presents      int
	destroyed     bool
	lastFrame     *image.NRGBA
}

func (h *fakeHandle) ID() uint32            { return h.id }
func (h *fakeHandle) SetTitle(title string) { h.title = title }

func (h *fakeHandle) SetFullscreen(enabled bool) error {
	if h.fullscreenErr != nil {
		return h.fullscreenErr
	}
	h.fullscreen = enabled
	return nil
}

func (h *fakeHandle) Show() {
	h.shown = true
	h.shows++
}

func (h *fakeHandle) Hide() {
	h.shown = false
	h.hides++
}

func (h *fakeHandle) Raise() { h.raises++ }

func (h *fakeHandle) Present(frame *image.NRGBA) error {
	h.presents++
	h.lastFrame = image.NewNRGBA(frame.Bounds())
	copy(h.lastFrame.Pix, frame.Pix)

	return nil
}

func (h *fakeHandle) Destroy() error {
	h.destroyed = true
	return nil
}
