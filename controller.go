package planetarium

// This file contains the entry points used by the command line tools.  Each
// operation opens its own socket to the configured Art-Net node, runs to
// completion and releases the socket on the way out.

import (
	"github.com/gvard/planetarium-led/model"
)

// sinkCloser is a FrameSink that owns a resource, the Sender in production
type sinkCloser interface {
	FrameSink
	Close() error
}

type Controller struct {
	cfg  *model.Config
	dial func() (sinkCloser, error)
}

func NewController(cfg *model.Config) (ctl *Controller) {
	ctl = &Controller{cfg: cfg}
	ctl.dial = func() (sinkCloser, error) {
		return NewSender(cfg.IP, cfg.Port)
	}
	return ctl
}

func (ctl *Controller) Config() *model.Config {
	return ctl.cfg
}

func (ctl *Controller) open(op string) (sink sinkCloser, err error) {
	if sink, err = ctl.dial(); err != nil {
		logger.Error("could not open the controller socket", "op", op, "addr", ctl.cfg.Addr(), "error", err.Error())
		return nil, err
	}
	return sink, nil
}

// Fade runs a fade using the configured strip geometry, the Pixels and
// Universe members of opts are overwritten
func (ctl *Controller) Fade(opts FadeOptions, quitC <-chan struct{}) (err error) {
	opts.Pixels = ctl.cfg.Pixels
	opts.Universe = ctl.cfg.Universe

	// Check before opening the socket so that rejected input causes no I/O
	if _, err = opts.validate(); err != nil {
		return newRunner("fade", nil, 0, 0).reject(err)
	}

	sink, err := ctl.open("fade")
	if err != nil {
		return err
	}
	defer sink.Close()

	if err = Fade(sink, opts, quitC); err == nil {
		logger.Info("faded to color", "color", opts.Target, "descending", opts.Descending)
	}
	return err
}

// Chase runs the chasing fragment using the configured strip geometry
func (ctl *Controller) Chase(opts ChaseOptions, quitC <-chan struct{}) (err error) {
	opts.Pixels = ctl.cfg.Pixels
	opts.Universe = ctl.cfg.Universe

	if _, _, err = opts.validate(); err != nil {
		return newRunner("chase", nil, 0, 0).reject(err)
	}

	sink, err := ctl.open("chase")
	if err != nil {
		return err
	}
	defer sink.Close()

	return Chase(sink, opts, quitC)
}

// TurnOff sends a single frame with every channel at zero
func (ctl *Controller) TurnOff() (err error) {
	sink, err := ctl.open("off")
	if err != nil {
		return err
	}
	defer sink.Close()

	TurnOff(sink, uint16(ctl.cfg.Universe))
	logger.Debug("turn off frame sent", "addr", ctl.cfg.Addr(), "universe", ctl.cfg.Universe)
	return nil
}

func TurnOff(sink FrameSink, universe uint16) {
	sink.Send(universe, &Frame{})
}
