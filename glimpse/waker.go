package glimpse

import (
	"errors"
	"sync/atomic"
)

var ErrLoopTerminated = errors.New("glimpse: event loop terminated")

type wakeState struct {
	// set by Wake, consumed by the event loop after it unblocks
	pending    atomic.Bool
	terminated atomic.Bool

	// unblocks the platform loop, must be safe to call from any goroutine
	post func() error
}

// Waker interrupts a blocked Window.Run. Copies share the same state and
// may be used concurrently from any goroutine.
type Waker struct {
	state *wakeState
}

// NewWaker creates a waker that calls post to unblock the event loop. post must
// be safe to call from any goroutine.
func NewWaker(post func() error) Waker {
	return Waker{state: &wakeState{post: post}}
}

// Wake makes the event loop deliver an Awakened event. Multiple calls may be
// coalesced into a single Awakened event, but a call is never lost: the
// pending flag is set before the loop is unblocked.
func (w Waker) Wake() error {
	if w.state.terminated.Load() {
		return ErrLoopTerminated
	}

	w.state.pending.Store(true)
	return w.state.post()
}

func (w Waker) Clone() Waker {
	return Waker{state: w.state}
}

// takePending reports whether Wake was called since the last call.
func (w Waker) takePending() bool {
	return w.state.pending.Swap(false)
}

func (w Waker) terminate() {
	w.state.terminated.Store(true)
}
