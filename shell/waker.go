package shell

import (
	"github.com/oliverbestmann/servoshell/embedder"
	"github.com/oliverbestmann/servoshell/glimpse"
)

// eventLoopWaker hands the platform wake proxy to the engine.
type eventLoopWaker struct {
	proxy glimpse.Waker
}

func (w eventLoopWaker) Clone() embedder.EventLoopWaker {
	return eventLoopWaker{proxy: w.proxy.Clone()}
}

// Wake is called by the engine when the main thread needs to wake up.
// Waking a loop that no longer exists is fatal.
func (w eventLoopWaker) Wake() {
	Handle(w.proxy.Wake(), "wakeup eventloop failed")
}
