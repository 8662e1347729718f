package glimpse

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// signalWaker behaves like glfw.PostEmptyEvent: posts are coalesced while
// the loop has not picked them up yet.
func signalWaker() (Waker, chan struct{}) {
	signal := make(chan struct{}, 1)

	waker := NewWaker(func() error {
		select {
		case signal <- struct{}{}:
		default:
		}

		return nil
	})

	return waker, signal
}

func TestWakeConcurrentBatches(t *testing.T) {
	waker, signal := signalWaker()

	for _, goroutines := range []int{1, 2, 16, 128} {
		for batch := 0; batch < 20; batch++ {
			var wg sync.WaitGroup
			for idx := 0; idx < goroutines; idx++ {
				wg.Add(1)

				// every goroutine uses its own clone
				w := waker.Clone()
				go func() {
					defer wg.Done()
					if err := w.Wake(); err != nil {
						t.Errorf("wake: %s", err)
					}
				}()
			}

			wg.Wait()

			select {
			case <-signal:
			case <-time.After(5 * time.Second):
				t.Fatalf("loop was not woken up, goroutines=%d batch=%d", goroutines, batch)
			}

			if !waker.takePending() {
				t.Fatalf("no pending wake observed, goroutines=%d batch=%d", goroutines, batch)
			}

			// everything of this batch was coalesced into one observation
			select {
			case <-signal:
				t.Fatalf("unexpected second wakeup in batch")
			default:
			}

			if waker.takePending() {
				t.Fatalf("pending flag not cleared")
			}
		}
	}
}

func TestWakeWhileLoopRunningNeverLost(t *testing.T) {
	waker, signal := signalWaker()

	const goroutines = 32
	const wakesPerGoroutine = 100

	done := make(chan struct{})

	var wg sync.WaitGroup
	for idx := 0; idx < goroutines; idx++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range wakesPerGoroutine {
				_ = waker.Clone().Wake()
			}
		}()
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	observed := 0

	// consume like the event loop does until all producers are finished
	for {
		select {
		case <-signal:
			if waker.takePending() {
				observed++
			}

			continue

		case <-done:
		}

		break
	}

	// a wake issued after the last observation must still be visible
	select {
	case <-signal:
		if waker.takePending() {
			observed++
		}
	default:
		if waker.takePending() {
			t.Fatalf("pending wake without a posted signal")
		}
	}

	if observed == 0 {
		t.Fatalf("no wake observed")
	}
}

func TestWakeAfterTerminate(t *testing.T) {
	waker, _ := signalWaker()
	clone := waker.Clone()

	waker.terminate()

	if err := clone.Wake(); !errors.Is(err, ErrLoopTerminated) {
		t.Fatalf("expected ErrLoopTerminated, got %v", err)
	}
}

func TestWakePropagatesPostError(t *testing.T) {
	errPost := errors.New("post failed")
	waker := NewWaker(func() error { return errPost })

	if err := waker.Wake(); !errors.Is(err, errPost) {
		t.Fatalf("expected post error, got %v", err)
	}
}
