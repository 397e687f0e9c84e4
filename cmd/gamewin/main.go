package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/esimov/gamewin"
	"github.com/esimov/gamewin/driver/headless"
	"github.com/esimov/gamewin/imop"
	"github.com/esimov/gamewin/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┌─┐┌┬┐┌─┐┬ ┬┬┌┐┌
│ ┬├─┤│││├┤ │││││││
└─┘┴ ┴┴ ┴└─┘└┴┘┴┘└┘

Multimedia windowing demos.
    Version: %s

`

// Version indicates the current build version.
var Version string

// backend opens a driver, calls run with it and releases the driver.
type backend func(run func(d gamewin.Driver) error) error

var (
	backends = map[string]backend{
		"headless": runHeadless,
	}
	// defaultBackend is set by the build specific backend files.
	defaultBackend = "headless"
)

var spinner *utils.Spinner

var (
	// Flags
	demoName    = flag.String("demo", "multi", "Demo to run: "+strings.Join(gamewin.Demos(), ", "))
	backendName = flag.String("backend", "", "Windowing backend: gio, sdl (sdl build tag) or headless")
	title       = flag.String("title", gamewin.DefaultTitle, "Window title")
	width       = flag.Int("width", gamewin.DefaultWidth, "Window width")
	height      = flag.Int("height", gamewin.DefaultHeight, "Window height")
	windows     = flag.Int("windows", 3, "Number of windows opened by the multi demo")
	fps         = flag.Int("fps", 60, "Frame rate cap, 0 to disable")
	frames      = flag.Int64("frames", 0, "Stop after the given number of frames, 0 for no limit (1 for the headless backend)")
	splash      = flag.String("splash", "", "Splash image path or URL (embedded image when empty)")
	background  = flag.String("bg", "", "Scrolling background image path or URL (embedded image when empty)")
	dotImage    = flag.String("dot", "", "Dot image path or URL (embedded image when empty)")
	blend       = flag.String("blend", imop.BlendBlend.String(), "Blend mode of the dot: none, blend, add, mod, mul")
	snapshot    = flag.String("snapshot", "", "Save the last frame of the first window (headless backend only)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	utils.DisableColors(!isTerm)

	mode, err := imop.ParseBlendMode(*blend)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid blend mode: %v", utils.ErrorMessage), err)
	}

	cfg := gamewin.DefaultConfig()
	cfg.Title = *title
	cfg.Width = *width
	cfg.Height = *height
	cfg.Windows = *windows
	cfg.FPS = *fps
	cfg.Frames = *frames
	cfg.SplashImage = *splash
	cfg.Background = *background
	cfg.DotImage = *dotImage
	cfg.Blend = mode

	if *backendName == "" {
		*backendName = defaultBackend
	}
	run, ok := backends[*backendName]
	if !ok {
		flag.Usage()
		log.Fatalf(utils.DecorateText("\nUnsupported backend %q, available backends: %s", utils.ErrorMessage),
			*backendName, strings.Join(backendNames(), ", "))
	}
	if *backendName == "headless" && cfg.Frames == 0 {
		cfg.Frames = 1
	}
	if *snapshot != "" && *backendName != "headless" {
		log.Fatalf(utils.DecorateText("The -snapshot flag requires the headless backend", utils.ErrorMessage))
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf(utils.DecorateText("Invalid settings: %v", utils.ErrorMessage), err)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ GAMEWIN", utils.StatusMessage),
		utils.DecorateText("is loading the media...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)
	if !isTerm {
		spinner.SetWriter(os.Stderr, false)
	}

	finish(run(func(d gamewin.Driver) error {
		return runDemo(d, cfg)
	}))
}

// runDemo initializes the selected demo and runs its main loop until the
// user quits, the frame limit is reached or the process is interrupted.
func runDemo(d gamewin.Driver, cfg gamewin.Config) (err error) {
	demo, err := gamewin.NewDemo(*demoName, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := demo.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	spinner.Start()
	err = demo.Init(d)
	if err != nil {
		spinner.StopMsg = utils.DecorateText("⚡ GAMEWIN failed to initialize ✘", utils.ErrorMessage)
	} else {
		spinner.StopMsg = fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ GAMEWIN", utils.StatusMessage),
			utils.DecorateText("is loading the media... ✔", utils.DefaultMessage))
	}
	spinner.Stop()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &gamewin.Loop{FPS: cfg.FPS, MaxFrames: cfg.Frames}
	stats, err := loop.Run(ctx, d, demo)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}

	if hd, ok := d.(*headless.Driver); ok && *snapshot != "" {
		ws := hd.Windows()
		if len(ws) == 0 {
			return fmt.Errorf("no window to take a snapshot of: %w", gamewin.ErrNoWindow)
		}
		if err := hd.Snapshot(ws[0].ID(), *snapshot); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\nThe snapshot has been saved as: %s\n",
			utils.DecorateText(*snapshot, utils.SuccessMessage))
	}

	fmt.Fprintf(os.Stderr, "\n%d frames rendered in %s (%s)\n", stats.Frames,
		utils.DecorateText(utils.FormatTime(stats.Elapsed), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("%.1f fps", stats.AverageFPS()), utils.StatusMessage))

	return nil
}

// finish reports the error, if any, and terminates the process.
func finish(err error) {
	if err != nil {
		spinner.RestoreCursor()
		log.Fatalf(
			utils.DecorateText("\nError running the demo: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
	os.Exit(0)
}

func runHeadless(run func(d gamewin.Driver) error) error {
	d := headless.New()
	err := run(d)
	if qerr := d.Quit(); qerr != nil && err == nil {
		err = qerr
	}
	return err
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
