package planetarium

// This file contains the chasing fragment animation, a run of pixels in one
// color that moves one position per step along the strip over a background
// color, wrapping around at the end of the strip

import (
	"time"

	"github.com/pkg/errors"

	"github.com/gvard/planetarium-led/model"
)

type ChaseOptions struct {
	Start      int
	Length     int
	Color      model.RGB
	Background model.RGB

	// Speed is the pause between steps, Duration the total running time
	Speed    time.Duration
	Duration time.Duration

	Pixels   int
	Universe int
}

func (opts *ChaseOptions) validate() (fg model.Color, bg model.Color, err error) {
	if err = validateGeometry(opts.Pixels, opts.Universe); err != nil {
		return fg, bg, err
	}
	if opts.Start < 0 || opts.Start >= opts.Pixels {
		return fg, bg, &model.RangeError{Field: "start", Value: opts.Start, Min: 0, Max: opts.Pixels - 1}
	}
	if opts.Length < 1 || opts.Length > opts.Pixels {
		return fg, bg, &model.RangeError{Field: "length", Value: opts.Length, Min: 1, Max: opts.Pixels}
	}
	if fg, err = opts.Color.Color(); err != nil {
		return fg, bg, errors.Wrap(err, "fragment color")
	}
	if bg, err = opts.Background.Color(); err != nil {
		return fg, bg, errors.Wrap(err, "background color")
	}
	if opts.Speed <= 0 {
		return fg, bg, errors.Errorf("speed %v must be positive", opts.Speed)
	}
	if opts.Duration <= 0 {
		return fg, bg, errors.Errorf("duration %v must be positive", opts.Duration)
	}
	return fg, bg, nil
}

// InFragment reports whether pixel i is covered by a fragment of the given
// length that begins at start, the fragment wraps at the end of the strip
func InFragment(i int, start int, length int, pixels int) bool {
	offset := ((i-start)%pixels + pixels) % pixels
	return offset < length
}

// ChaseFrame renders the strip with the fragment beginning at start
func ChaseFrame(start int, length int, fg model.Color, bg model.Color, pixels int) (frame *Frame) {
	frame = &Frame{}
	for i := 0; i < pixels; i++ {
		if InFragment(i, start, length, pixels) {
			frame.SetPixel(i, fg)
		} else {
			frame.SetPixel(i, bg)
		}
	}
	return frame
}

type chaseStepper struct {
	fg, bg   model.Color
	length   int
	pixels   int
	start    int
	began    time.Time
	duration time.Duration
}

// next checks the elapsed time once per step, the last frame can therefore
// run past the duration by up to one step
func (cs *chaseStepper) next(now time.Time) (frame *Frame, ok bool) {
	if cs.began.IsZero() {
		cs.began = now
	}
	if now.Sub(cs.began) >= cs.duration {
		return nil, false
	}
	frame = ChaseFrame(cs.start, cs.length, cs.fg, cs.bg, cs.pixels)
	cs.start = (cs.start + 1) % cs.pixels
	return frame, true
}

// Chase moves the fragment along the strip until the duration has elapsed
func Chase(sink FrameSink, opts ChaseOptions, quitC <-chan struct{}) (err error) {
	r := newRunner("chase", sink, uint16(opts.Universe), opts.Speed)

	fg, bg, err := opts.validate()
	if err != nil {
		return r.reject(err)
	}

	logger.Debug("chase starting", "color", fg.Hex(), "background", bg.Hex(),
		"start", opts.Start, "length", opts.Length, "speed", opts.Speed.String(), "duration", opts.Duration.String())

	return r.run(&chaseStepper{
		fg:       fg,
		bg:       bg,
		length:   opts.Length,
		pixels:   opts.Pixels,
		start:    opts.Start,
		duration: opts.Duration,
	}, quitC)
}
