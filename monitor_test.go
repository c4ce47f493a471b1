package planetarium

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvard/planetarium-led/model"
)

func TestChangeTracker(t *testing.T) {
	tracker := newChangeTracker()

	a := &DMXMsg{Source: "10.0.0.1:6454", Universe: 0, Frame: *solidFrame(model.Color{R: 1}, 4)}
	b := &DMXMsg{Source: "10.0.0.2:6454", Universe: 0, Frame: *solidFrame(model.Color{R: 1}, 4)}
	c := &DMXMsg{Source: "10.0.0.1:6454", Universe: 1, Frame: *solidFrame(model.Color{R: 1}, 4)}

	assert.True(t, tracker.changed(a))
	assert.False(t, tracker.changed(a))
	assert.False(t, tracker.changed(b), "the source address does not count as a change")
	assert.True(t, tracker.changed(c), "universes are tracked separately")

	a.Frame[0] = 2
	assert.True(t, tracker.changed(a))
}

func TestLitPixels(t *testing.T) {
	assert.Equal(t, 0, litPixels(&Frame{}))
	assert.Equal(t, 12, litPixels(solidFrame(model.Color{B: 1}, 12)))
	assert.Equal(t, model.MaxPixels, litPixels(solidFrame(model.White, model.MaxPixels)))
}

func TestMonitorReportsChanges(t *testing.T) {
	quitC := make(chan struct{})
	defer close(quitC)

	mon, subscribeC, err := StartMonitor("127.0.0.1:0", quitC)
	require.NoError(t, err)

	changeC := make(chan *Change, 10)
	go WatchChanges(subscribeC, func(change *Change) {
		changeC <- change
	}, quitC)

	sender, err := NewSender("127.0.0.1", mon.Addr().(*net.UDPAddr).Port)
	require.NoError(t, err)
	defer sender.Close()

	first := solidFrame(model.Color{R: 9}, 3)
	second := solidFrame(model.Color{G: 9}, 5)

	// The subscription is picked up asynchronously so keep sending the first
	// frame until it is reported
	var change *Change
	deadline := time.After(5 * time.Second)
	for change == nil {
		sender.Send(4, first)
		select {
		case change = <-changeC:
		case <-time.After(20 * time.Millisecond):
		case <-deadline:
			t.Fatal("no change reported for the first frame")
		}
	}
	assert.Equal(t, uint16(4), change.Msg.Universe)
	assert.Equal(t, 3, change.Lit)

	sender.Send(4, first)
	sender.Send(4, second)

	select {
	case change = <-changeC:
		// Repeats of the first frame are suppressed
		assert.Equal(t, *second, change.Msg.Frame)
		assert.Equal(t, 5, change.Lit)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for the second frame")
	}
}
