package planetarium

// This file contains the UDP side of the Art-Net output.  Frames are written as
// single datagrams with no acknowledgement, a failed write is logged and the
// caller carries on with its next frame.

import (
	"net"
	"strconv"

	"github.com/go-stack/stack"
	"github.com/pkg/errors"

	logxi "github.com/mgutz/logxi/v1"

	"github.com/gvard/planetarium-led/model"
)

var (
	logger = logxi.New("planetarium")
)

// SetLogLevel changes the level of the package logger, for example to
// logxi.LevelDebug when a tool is run verbosely
func SetLogLevel(level int) {
	logger.SetLevel(level)
}

// FrameSink accepts frames for a universe.  Implementations do not report
// failures back to the animation, they deal with them on their own.
type FrameSink interface {
	Send(universe uint16, frame *Frame)
}

// Sender transmits ArtDMX datagrams from a single UDP socket
type Sender struct {
	conn net.PacketConn
	dest *net.UDPAddr

	sent   int
	failed int
}

// NewSender opens the socket used to reach ip:port, an empty ip selects the
// limited broadcast address.  The runtime enables SO_BROADCAST on every
// datagram socket so no further options are needed before broadcasting.
func NewSender(ip string, port int) (sender *Sender, err error) {
	if len(ip) == 0 {
		ip = model.BroadcastIP
	}
	if port == 0 {
		port = model.DefaultPort
	}

	dest, errGo := net.ResolveUDPAddr("udp4", net.JoinHostPort(ip, strconv.Itoa(port)))
	if errGo != nil {
		return nil, errors.Wrapf(errGo, "resolving %s", ip)
	}

	conn, errGo := net.ListenPacket("udp4", ":0")
	if errGo != nil {
		return nil, errors.Wrap(errGo, "opening udp socket")
	}

	return &Sender{
		conn: conn,
		dest: dest,
	}, nil
}

func (sender *Sender) Send(universe uint16, frame *Frame) {
	pkt := EncodeDMX(universe, frame)
	if _, errGo := sender.conn.WriteTo(pkt, sender.dest); errGo != nil {
		sender.failed++
		logger.Warn("frame not sent", "addr", sender.dest.String(), "universe", universe,
			"error", errGo.Error(), "stack", stack.Trace().TrimRuntime())
		return
	}
	sender.sent++
}

// Stats returns the number of datagrams written and the number that failed
func (sender *Sender) Stats() (sent int, failed int) {
	return sender.sent, sender.failed
}

func (sender *Sender) Addr() (addr *net.UDPAddr) {
	return sender.dest
}

func (sender *Sender) Close() (err error) {
	if errGo := sender.conn.Close(); errGo != nil {
		return errors.Wrap(errGo, "closing udp socket")
	}
	return nil
}

// SendFrame opens a socket for one datagram and releases it straight away
func SendFrame(ip string, port int, universe uint16, frame *Frame) (err error) {
	sender, err := NewSender(ip, port)
	if err != nil {
		return err
	}
	defer sender.Close()

	sender.Send(universe, frame)
	return nil
}
