package planetarium

import (
	"sync"
	"time"
)

type subs struct {
	subs []chan *DMXMsg
	sync.Mutex
}

// startFanOut implements a broadcast mechanism for decoded ArtDMX messages,
// relaying them to subscribers.  The function returns the channel to which
// messages get sent and a channel that can be used to add listeners.
//
func startFanOut(quitC <-chan struct{}) (inC chan *DMXMsg, subC chan chan *DMXMsg) {
	inC = make(chan *DMXMsg, 1)
	subC = make(chan chan *DMXMsg, 1)

	listeners := &subs{
		subs: []chan *DMXMsg{},
	}

	go func(quitC <-chan struct{}) {
		defer logger.Debug("fanout stopped")
		for {
			select {
			case <-quitC:
				return
			case sub := <-subC:
				if nil != sub {
					listeners.Lock()
					listeners.subs = append(listeners.subs, sub)
					listeners.Unlock()
					logger.Debug("subscription added")
				}
			case msg := <-inC:
				// Subscribers that do not accept within the timeout miss the message
				listeners.Lock()
				for _, ch := range listeners.subs {
					select {
					case ch <- msg:
					case <-time.After(250 * time.Millisecond):
						logger.Debug("subscription failed to send", "universe", msg.Universe)
					}
				}
				listeners.Unlock()
			}
		}
	}(quitC)

	return inC, subC
}
