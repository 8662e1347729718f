package glimpse

// dispatcher hands platform events to the handler passed to Run. Events
// arriving while no handler is installed are queued.
type dispatcher struct {
	handle func(event Event)
	queued []Event
}

func (d *dispatcher) dispatch(event Event) {
	if d.handle == nil {
		d.queued = append(d.queued, event)
		return
	}

	d.handle(event)
}

// start installs handle and flushes the queued events into it.
func (d *dispatcher) start(handle func(event Event)) {
	d.handle = handle

	queued := d.queued
	d.queued = nil

	for _, event := range queued {
		handle(event)
	}
}

func (d *dispatcher) stop() {
	d.handle = nil
}

// pumpEvents runs one iteration of the event loop. wait blocks until the
// platform has events or was woken up and delivers the events to d. An
// Awakened event follows if Wake was called since the last iteration.
func pumpEvents(wait func(), waker Waker, d *dispatcher) {
	wait()

	if waker.takePending() {
		d.dispatch(Awakened{})
	}
}
