package gamewin

import (
	"errors"
	"fmt"

	"github.com/esimov/gamewin/imop"
)

// MaxWindows is the number of windows which can be focused with the digit keys.
const MaxWindows = 9

// Config holds the settings shared by the demos.
type Config struct {
	Title  string
	Width  int
	Height int

	// Windows is the number of windows opened by the multi window demo.
	Windows int
	// FPS caps the frame rate. Zero disables the cap.
	FPS int
	// Frames stops the main loop after the given number of frames. Zero means no limit.
	Frames int64

	// SplashImage, Background and DotImage are image paths or URLs.
	// The embedded images are used when empty.
	SplashImage string
	Background  string
	DotImage    string
	// Blend is the blend mode of the sprites drawn over the background.
	Blend imop.BlendMode
	// FontSize is the point size of the window labels.
	FontSize float64
}

// DefaultConfig returns the default demo settings.
func DefaultConfig() Config {
	return Config{
		Title:    DefaultTitle,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Windows:  3,
		FPS:      60,
		Blend:    imop.BlendBlend,
		FontSize: 28,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	var errs []string

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Sprintf("invalid window size %dx%d", c.Width, c.Height))
	}
	if c.Windows < 1 || c.Windows > MaxWindows {
		errs = append(errs, fmt.Sprintf("the number of windows should be between 1 and %d, got %d", MaxWindows, c.Windows))
	}
	if c.FPS < 0 {
		errs = append(errs, fmt.Sprintf("negative frame rate: %d", c.FPS))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Sprintf("negative frame limit: %d", c.Frames))
	}
	if !c.Blend.Valid() {
		errs = append(errs, fmt.Sprintf("invalid blend mode: %v", c.Blend))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Sprintf("invalid font size: %v", c.FontSize))
	}

	if len(errs) == 0 {
		return nil
	}
	err := errors.New(errs[0])
	for _, e := range errs[1:] {
		err = fmt.Errorf("%w; %s", err, e)
	}
	return err
}
