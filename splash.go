package gamewin

import (
	"fmt"

	"github.com/esimov/gamewin/assets"
)

// Splash shows a static image in a single window until the user quits.
type Splash struct {
	cfg   Config
	win   *Window
	image *Texture
}

// NewSplash returns the splash screen demo.
func NewSplash(cfg Config) *Splash {
	return &Splash{
		cfg:   cfg,
		win:   NewWindow(cfg.Title, cfg.Width, cfg.Height),
		image: NewTexture(),
	}
}

// Init creates the window and loads the splash image.
func (s *Splash) Init(d Driver) error {
	if err := s.win.Init(d); err != nil {
		return err
	}
	if err := loadImage(s.image, s.cfg.SplashImage, assets.Splash); err != nil {
		return fmt.Errorf("failed to load media: %w", err)
	}
	s.win.SetScene(func(r *Renderer) error {
		return s.image.Render(r, 0, 0)
	})
	return nil
}

// HandleEvent implements Scene.
func (s *Splash) HandleEvent(e Event) (bool, error) {
	if isQuitRequest(e) {
		return true, nil
	}
	return false, s.win.HandleEvent(e)
}

// Frame blits the image and updates the window.
func (s *Splash) Frame() (bool, error) {
	if !s.win.IsShown() {
		return true, nil
	}
	return false, s.win.Render()
}

// Window returns the demo window.
func (s *Splash) Window() *Window { return s.win }

// Close frees the image and destroys the window.
func (s *Splash) Close() error {
	s.image.Free()
	return s.win.Free()
}
