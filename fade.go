package planetarium

// This file contains the linear fade between black and a target color.  Every
// pixel carries the same color on any given step, each component being scaled
// by step/steps and truncated.

import (
	"time"

	"github.com/pkg/errors"

	"github.com/gvard/planetarium-led/model"
)

type FadeOptions struct {
	Target model.RGB
	Steps  int

	// Delay is the pause after each frame
	Delay      time.Duration
	Descending bool

	Pixels   int
	Universe int
}

// Centiseconds converts the delay units used by the fade command line into a
// duration
func Centiseconds(cs float64) time.Duration {
	return time.Duration(cs * float64(10*time.Millisecond))
}

func validateGeometry(pixels int, universe int) (err error) {
	if pixels < 1 || pixels > model.MaxPixels {
		return &model.RangeError{Field: "pixels", Value: pixels, Min: 1, Max: model.MaxPixels}
	}
	if universe < 0 || universe > model.MaxUniverse {
		return &model.RangeError{Field: "universe", Value: universe, Min: 0, Max: model.MaxUniverse}
	}
	return nil
}

func (opts *FadeOptions) validate() (target model.Color, err error) {
	if target, err = opts.Target.Color(); err != nil {
		return target, err
	}
	// A zero step count has no defined intermediate values, see DESIGN.md
	if opts.Steps < 1 {
		return target, errors.Errorf("step count %d must be at least 1", opts.Steps)
	}
	if opts.Delay < 0 {
		return target, errors.Errorf("delay %v is negative", opts.Delay)
	}
	return target, validateGeometry(opts.Pixels, opts.Universe)
}

// FadeFrame is the frame shown at a step of a fade with the given number of
// steps.  Channels are floor(component * step / steps).
func FadeFrame(target model.Color, step int, steps int, pixels int) (frame *Frame) {
	scale := func(v uint8) uint8 {
		return uint8(int(v) * step / steps)
	}
	return solidFrame(model.Color{R: scale(target.R), G: scale(target.G), B: scale(target.B)}, pixels)
}

type fadeStepper struct {
	target model.Color
	steps  int
	pixels int
	desc   bool
	step   int
}

func (fs *fadeStepper) next(now time.Time) (frame *Frame, ok bool) {
	if fs.step > fs.steps {
		return nil, false
	}
	s := fs.step
	if fs.desc {
		s = fs.steps - fs.step
	}
	fs.step++
	return FadeFrame(fs.target, s, fs.steps, fs.pixels), true
}

// Fade sends steps+1 frames to the sink, from black up to the target color or
// from the target color down to black when Descending is set
func Fade(sink FrameSink, opts FadeOptions, quitC <-chan struct{}) (err error) {
	r := newRunner("fade", sink, uint16(opts.Universe), opts.Delay)

	target, err := opts.validate()
	if err != nil {
		return r.reject(err)
	}

	logger.Debug("fade starting", "color", target.Hex(), "steps", opts.Steps,
		"delay", opts.Delay.String(), "descending", opts.Descending)

	return r.run(&fadeStepper{
		target: target,
		steps:  opts.Steps,
		pixels: opts.Pixels,
		desc:   opts.Descending,
	}, quitC)
}
