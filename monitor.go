package planetarium

// This file contains a listener for ArtDMX traffic.  It is used to watch what
// the animations, or any other Art-Net source on the segment, are sending
// without needing a physical node attached.

import (
	"net"
	"time"

	"github.com/go-stack/stack"
	"github.com/pkg/errors"
)

// DMXMsg is one decoded ArtDMX datagram
type DMXMsg struct {
	Source   string `hash:"-"`
	Universe uint16
	Frame    Frame
}

type Monitor struct {
	conn net.PacketConn
}

// NewMonitor binds the listening socket, listen is host:port and usually
// ":6454"
func NewMonitor(listen string) (mon *Monitor, err error) {
	conn, errGo := net.ListenPacket("udp4", listen)
	if errGo != nil {
		return nil, errors.Wrapf(errGo, "listening on %s", listen)
	}
	return &Monitor{conn: conn}, nil
}

func (mon *Monitor) Addr() net.Addr {
	return mon.conn.LocalAddr()
}

// Run decodes datagrams and forwards them to msgC until quitC is closed.  The
// socket is closed when Run returns.
func (mon *Monitor) Run(msgC chan<- *DMXMsg, quitC <-chan struct{}) {
	defer mon.conn.Close()

	buf := make([]byte, 2048)
	for {
		select {
		case <-quitC:
			return
		default:
		}

		// Wake regularly so that the quit channel is noticed on a quiet network
		mon.conn.SetReadDeadline(time.Now().Add(250 * time.Millisecond))
		n, addr, errGo := mon.conn.ReadFrom(buf)
		if errGo != nil {
			if netErr, ok := errGo.(net.Error); ok && netErr.Timeout() {
				continue
			}
			logger.Warn("monitor read failed", "error", errGo.Error(), "stack", stack.Trace().TrimRuntime())
			return
		}

		universe, frame, err := DecodeDMX(buf[:n])
		if err != nil {
			logger.Debug("datagram ignored", "source", addr.String(), "error", err.Error())
			continue
		}

		msg := &DMXMsg{
			Source:   addr.String(),
			Universe: universe,
			Frame:    *frame,
		}
		select {
		case msgC <- msg:
		case <-time.After(750 * time.Millisecond):
			logger.Warn("monitor message dropped", "source", msg.Source, "universe", universe)
		case <-quitC:
			return
		}
	}
}

// StartMonitor listens for Art-Net traffic and returns the channel used to
// subscribe to the decoded messages
func StartMonitor(listen string, quitC <-chan struct{}) (mon *Monitor, subscribeC chan chan *DMXMsg, err error) {
	if mon, err = NewMonitor(listen); err != nil {
		return nil, nil, err
	}

	msgC, subscribeC := startFanOut(quitC)
	go mon.Run(msgC, quitC)

	return mon, subscribeC, nil
}
