package planetarium

// This file contains a subscriber for monitored Art-Net traffic that reports a
// universe only when its channel data differs from the last message seen for
// that universe

import (
	"bytes"

	"github.com/cnf/structhash"
)

// Change describes a universe whose contents differ from the previous message
type Change struct {
	Msg *DMXMsg

	// Lit is the number of pixels that are not black
	Lit int
}

func litPixels(frame *Frame) (lit int) {
	for i := 0; i < len(frame)/3; i++ {
		if frame[3*i] != 0 || frame[3*i+1] != 0 || frame[3*i+2] != 0 {
			lit++
		}
	}
	return lit
}

type changeTracker struct {
	last map[uint16][]byte
}

func newChangeTracker() *changeTracker {
	return &changeTracker{last: map[uint16][]byte{}}
}

func (tracker *changeTracker) changed(msg *DMXMsg) bool {
	hash := structhash.Md5(msg, 1)
	if last, isPresent := tracker.last[msg.Universe]; isPresent && bytes.Equal(last, hash) {
		return false
	}
	tracker.last[msg.Universe] = hash
	return true
}

// WatchChanges subscribes to the monitor and calls report for every message
// that changes the contents of its universe.  It returns once quitC is closed.
func WatchChanges(subscribeC chan chan *DMXMsg, report func(change *Change), quitC <-chan struct{}) {
	msgC := make(chan *DMXMsg, 10)
	subscribeC <- msgC

	tracker := newChangeTracker()
	for {
		select {
		case msg := <-msgC:
			if msg == nil || !tracker.changed(msg) {
				continue
			}
			report(&Change{Msg: msg, Lit: litPixels(&msg.Frame)})
		case <-quitC:
			return
		}
	}
}
