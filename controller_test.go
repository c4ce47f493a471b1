package planetarium

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvard/planetarium-led/model"
)

// listenLoopback returns a socket standing in for an Art-Net node together
// with a configuration that points at it
func listenLoopback(t *testing.T) (conn net.PacketConn, cfg *model.Config) {
	conn, errGo := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, errGo)

	cfg = model.DefaultConfig()
	cfg.IP = "127.0.0.1"
	cfg.Port = conn.LocalAddr().(*net.UDPAddr).Port
	cfg.Pixels = 8
	cfg.Universe = 3
	return conn, cfg
}

func receive(t *testing.T, conn net.PacketConn, count int) (frames []*Frame) {
	buf := make([]byte, 2048)
	for len(frames) < count {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		n, _, errGo := conn.ReadFrom(buf)
		require.NoError(t, errGo)
		require.Equal(t, PacketLen, n)

		universe, frame, err := DecodeDMX(buf[:n])
		require.NoError(t, err)
		assert.Equal(t, uint16(3), universe)
		frames = append(frames, frame)
	}
	return frames
}

func TestControllerFadeOverUDP(t *testing.T) {
	conn, cfg := listenLoopback(t)
	defer conn.Close()

	ctl := NewController(cfg)
	err := ctl.Fade(FadeOptions{Target: model.RGB{G: 255}, Steps: 2, Delay: time.Millisecond}, nil)
	require.NoError(t, err)

	frames := receive(t, conn, 3)
	for i, green := range []uint8{0, 127, 255} {
		assert.Equal(t, model.Color{G: green}, frames[i].Pixel(7))
		assert.Equal(t, model.Black, frames[i].Pixel(8), "pixels beyond the strip stay dark")
	}
}

func TestControllerTurnOff(t *testing.T) {
	conn, cfg := listenLoopback(t)
	defer conn.Close()

	require.NoError(t, NewController(cfg).TurnOff())

	frames := receive(t, conn, 1)
	assert.Equal(t, Frame{}, *frames[0])
}

type countingSink struct {
	captureSink
	closed bool
}

func (sink *countingSink) Close() error {
	sink.closed = true
	return nil
}

func TestControllerReleasesSink(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Pixels = 10

	sink := &countingSink{}
	ctl := NewController(cfg)
	ctl.dial = func() (sinkCloser, error) {
		return sink, nil
	}

	err := ctl.Chase(ChaseOptions{
		Length:     2,
		Color:      model.RGB{R: 255},
		Background: model.RGB{B: 255},
		Speed:      time.Millisecond,
		Duration:   5 * time.Millisecond,
	}, nil)
	require.NoError(t, err)
	assert.True(t, sink.closed)
	assert.NotEmpty(t, sink.frames)
}

func TestControllerValidatesBeforeDialing(t *testing.T) {
	dialed := false
	ctl := NewController(model.DefaultConfig())
	ctl.dial = func() (sinkCloser, error) {
		dialed = true
		return &countingSink{}, nil
	}

	err := ctl.Fade(FadeOptions{Target: model.RGB{R: 256}, Steps: 10}, nil)
	assert.True(t, IsValidation(err))

	err = ctl.Chase(ChaseOptions{Length: 0, Speed: time.Millisecond, Duration: time.Millisecond}, nil)
	assert.True(t, IsValidation(err))

	assert.False(t, dialed)
}

func TestSenderSwallowsErrors(t *testing.T) {
	conn, _ := listenLoopback(t)
	port := conn.LocalAddr().(*net.UDPAddr).Port
	defer conn.Close()

	sender, err := NewSender("127.0.0.1", port)
	require.NoError(t, err)
	sender.Send(0, &Frame{})

	// A send on a closed socket is logged and counted, not returned
	require.NoError(t, sender.Close())
	sender.Send(0, &Frame{})

	sent, failed := sender.Stats()
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
}

func TestSenderDefaultsToBroadcast(t *testing.T) {
	sender, err := NewSender("", 0)
	require.NoError(t, err)
	defer sender.Close()

	assert.Equal(t, model.BroadcastIP, sender.Addr().IP.String())
	assert.Equal(t, model.DefaultPort, sender.Addr().Port)
}
