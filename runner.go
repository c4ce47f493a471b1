package planetarium

// This file contains the frame pacing loop shared by the animations.  Frames
// are produced, sent and then the loop sleeps for a fixed delay, the sleep can
// be cut short by closing the quit channel.

import (
	"time"
)

type State int

const (
	Idle State = iota
	Stepping
	Done
)

func (state State) String() string {
	switch state {
	case Idle:
		return "idle"
	case Stepping:
		return "stepping"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// stepper yields the next frame of an animation, ok is false once the
// animation has no more frames to give
type stepper interface {
	next(now time.Time) (frame *Frame, ok bool)
}

type runner struct {
	op       string
	sink     FrameSink
	universe uint16
	delay    time.Duration

	state  State
	frames int

	// now is replaced by tests that need to control the clock
	now func() time.Time
}

func newRunner(op string, sink FrameSink, universe uint16, delay time.Duration) (r *runner) {
	return &runner{
		op:       op,
		sink:     sink,
		universe: universe,
		delay:    delay,
		state:    Idle,
		now:      time.Now,
	}
}

// reject moves straight to Done without sending anything
func (r *runner) reject(err error) error {
	r.state = Done
	logger.Error("parameters rejected, nothing sent", "op", r.op, "error", err.Error())
	return invalid(r.op, err)
}

func (r *runner) run(st stepper, quitC <-chan struct{}) (err error) {
	r.state = Stepping
	defer func() {
		r.state = Done
		logger.Debug("animation finished", "op", r.op, "frames", r.frames)
	}()

	for {
		frame, ok := st.next(r.now())
		if !ok {
			return nil
		}
		r.sink.Send(r.universe, frame)
		r.frames++

		select {
		case <-time.After(r.delay):
		case <-quitC:
			return ErrInterrupted
		}
	}
}
