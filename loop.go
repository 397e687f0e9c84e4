package gamewin

import (
	"context"
	"time"
)

// Scene is driven by a Loop: it receives every polled event
// and is stepped once per frame.
type Scene interface {
	HandleEvent(e Event) (quit bool, err error)
	Frame() (quit bool, err error)
}

// Stats holds the statistics of a finished Loop run.
type Stats struct {
	Frames  int64
	Elapsed time.Duration
}

// AverageFPS returns the number of frames per second over the whole run.
func (s Stats) AverageFPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// Loop runs the event loop of a scene.
type Loop struct {
	// FPS caps the frame rate. Zero disables the cap.
	FPS int
	// MaxFrames stops the loop after the given number of frames. Zero means no limit.
	MaxFrames int64
	// Clock is used by the frame timers, SystemClock when nil.
	Clock Clock

	sleep func(time.Duration)
}

// Run polls the driver until its event queue is empty, passes each event to
// the scene, then steps the scene. It returns when the scene requests to quit,
// the frame limit is reached or the context is cancelled.
func (l *Loop) Run(ctx context.Context, d Driver, s Scene) (stats Stats, err error) {
	clock := l.Clock
	if clock == nil {
		clock = SystemClock()
	}
	sleep := l.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var ticksPerFrame time.Duration
	if l.FPS > 0 {
		ticksPerFrame = time.Second / time.Duration(l.FPS)
	}

	fpsTimer := NewTimer(clock)
	capTimer := NewTimer(clock)
	fpsTimer.Start()

	defer func() {
		stats.Elapsed = fpsTimer.Ticks()
	}()

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}
		capTimer.Start()

		quit := false
		for e := d.PollEvent(); e != nil; e = d.PollEvent() {
			q, err := s.HandleEvent(e)
			if err != nil {
				return stats, err
			}
			quit = quit || q
		}
		if quit {
			return stats, nil
		}

		quit, err = s.Frame()
		stats.Frames++
		if err != nil || quit {
			return stats, err
		}
		if l.MaxFrames > 0 && stats.Frames >= l.MaxFrames {
			return stats, nil
		}

		if ticks := capTimer.Ticks(); ticks < ticksPerFrame {
			sleep(ticksPerFrame - ticks)
		}
	}
}
