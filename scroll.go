package gamewin

import (
	"fmt"
	"image"

	"github.com/esimov/gamewin/assets"
)

// ScrollOffset moves the background offset one pixel to the left,
// wrapping around once the whole background has scrolled out.
func ScrollOffset(offset, width int) int {
	offset--
	if offset < -width {
		offset = 0
	}
	return offset
}

// Scroll renders an endlessly scrolling background with a dot
// moved by the arrow keys on top of it.
type Scroll struct {
	cfg Config
	win *Window
	dot *Dot

	background *Texture
	dotTexture *Texture

	offset int
}

// NewScroll returns the scrolling background demo.
func NewScroll(cfg Config) *Scroll {
	return &Scroll{
		cfg:        cfg,
		win:        NewWindow(cfg.Title, cfg.Width, cfg.Height),
		dot:        NewDot(0, 0),
		background: NewTexture(),
		dotTexture: NewTexture(),
	}
}

// Init creates the window and loads the dot and background textures.
func (s *Scroll) Init(d Driver) error {
	if err := s.win.Init(d); err != nil {
		return err
	}
	if err := loadImage(s.dotTexture, s.cfg.DotImage, assets.Dot); err != nil {
		return fmt.Errorf("failed to load dot texture: %w", err)
	}
	s.dotTexture.SetBlendMode(s.cfg.Blend)

	if err := loadImage(s.background, s.cfg.Background, assets.Background); err != nil {
		return fmt.Errorf("failed to load background texture: %w", err)
	}
	s.win.SetScene(s.render)

	return nil
}

// HandleEvent implements Scene.
func (s *Scroll) HandleEvent(e Event) (bool, error) {
	if isQuitRequest(e) {
		return true, nil
	}
	s.dot.HandleEvent(e)
	return false, s.win.HandleEvent(e)
}

// Frame moves the dot, scrolls the background and renders the window.
func (s *Scroll) Frame() (bool, error) {
	if !s.win.IsShown() {
		return true, nil
	}
	s.dot.Move(image.Rect(0, 0, s.win.Width(), s.win.Height()), nil, nil)
	s.offset = ScrollOffset(s.offset, s.background.Width())

	return false, s.win.Render()
}

func (s *Scroll) render(r *Renderer) error {
	if err := s.background.Render(r, s.offset, 0); err != nil {
		return err
	}
	if err := s.background.Render(r, s.offset+s.background.Width(), 0); err != nil {
		return err
	}
	return s.dot.Render(r, s.dotTexture)
}

// Offset returns the current background scrolling offset.
func (s *Scroll) Offset() int { return s.offset }

// Dot returns the dot moved by the user.
func (s *Scroll) Dot() *Dot { return s.dot }

// Window returns the demo window.
func (s *Scroll) Window() *Window { return s.win }

// Close frees the textures and destroys the window.
func (s *Scroll) Close() error {
	s.dotTexture.Free()
	s.background.Free()
	return s.win.Free()
}
