package shell

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/oliverbestmann/servoshell/embedder"
	"github.com/oliverbestmann/servoshell/glimpse"
)

// recorder collects calls of the fake window and engine in call order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.calls...)
}

type fakeNative struct {
	egl, wayland, x11 uintptr
	context           glimpse.RawContext
	probes            int
}

func (n *fakeNative) EGLDisplay() (uintptr, bool)     { n.probes++; return n.egl, n.egl != 0 }
func (n *fakeNative) WaylandDisplay() (uintptr, bool) { n.probes++; return n.wayland, n.wayland != 0 }
func (n *fakeNative) X11Display() (uintptr, bool)     { n.probes++; return n.x11, n.x11 != 0 }
func (n *fakeNative) Context() glimpse.RawContext     { return n.context }

// fakeWindow replays a fixed list of platform events in Run.
type fakeWindow struct {
	rec    *recorder
	events []glimpse.Event
	native *fakeNative

	swapErr error
	posts   int
	closed  bool
}

func (f *fakeWindow) LoadGL() (glimpse.GLInfo, error) {
	f.rec.record("platform:LoadGL")
	return glimpse.GLInfo{Version: "3.2 fake", Renderer: "fake"}, nil
}

// fakeProcs are the entry points the fake GL context provides.
var fakeProcs = map[string]*byte{
	"glClear":      new(byte),
	"glClearColor": new(byte),
}

func (f *fakeWindow) ProcAddress(name string) unsafe.Pointer {
	return unsafe.Pointer(fakeProcs[name])
}

func (f *fakeWindow) SwapBuffers() error {
	f.rec.record("platform:SwapBuffers")
	return f.swapErr
}

func (f *fakeWindow) Resize(width, height int) {
	f.rec.record("platform:Resize %dx%d", width, height)
}

func (f *fakeWindow) NewWaker() glimpse.Waker {
	return glimpse.NewWaker(func() error {
		if f.closed {
			return glimpse.ErrLoopTerminated
		}

		f.posts++
		return nil
	})
}

func (f *fakeWindow) Native() glimpse.NativeHandles {
	return f.native
}

func (f *fakeWindow) Run(handle func(event glimpse.Event)) error {
	f.rec.record("platform:Run")

	for _, event := range f.events {
		handle(event)
	}

	return nil
}

func (f *fakeWindow) Terminate() {
	f.rec.record("platform:Terminate")
	f.closed = true
}

// fakeEngine records every event it receives.
type fakeEngine struct {
	rec     *recorder
	browser embedder.BrowserID

	window   embedder.WindowMethods
	embedder embedder.EmbedderMethods

	mu      sync.Mutex
	batches [][]embedder.WindowEvent

	// closes the handshake channel instead of answering
	dropHandshake bool
}

func (e *fakeEngine) Version() string { return "fake/1.0" }

func (e *fakeEngine) HandleEvents(events []embedder.WindowEvent) {
	e.mu.Lock()
	e.batches = append(e.batches, events)
	e.mu.Unlock()

	if len(events) == 0 {
		e.rec.record("engine:Poll")
	}

	for _, event := range events {
		switch event := event.(type) {
		case embedder.NewBrowser:
			e.rec.record("engine:NewBrowser %s", event.URL)

			// answer asynchronously like a real engine would
			go func() {
				if e.dropHandshake {
					close(event.Response)
					return
				}

				event.Response <- e.browser
			}()

		case embedder.SelectBrowser:
			e.rec.record("engine:SelectBrowser %d", event.Browser)

		case embedder.MouseWindowMove:
			e.rec.record("engine:MouseWindowMove %v", event.Point)

		case embedder.Reload:
			e.rec.record("engine:Reload %d", event.Browser)

		case embedder.Scroll:
			e.rec.record("engine:Scroll %v %v %s", event.Location.Delta, event.Pointer, event.Phase)

		case embedder.Resize:
			e.rec.record("engine:Resize")
		}
	}
}

func (e *fakeEngine) Batches() [][]embedder.WindowEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([][]embedder.WindowEvent(nil), e.batches...)
}

func (e *fakeEngine) factory() embedder.NewEngine {
	return func(window embedder.WindowMethods, emb embedder.EmbedderMethods) (embedder.Engine, error) {
		e.rec.record("engine:New")
		e.window = window
		e.embedder = emb
		return e, nil
	}
}

func windowFactory(win *fakeWindow) func(glimpse.WindowOptions) (glimpse.Window, error) {
	return func(opts glimpse.WindowOptions) (glimpse.Window, error) {
		win.rec.record("platform:NewWindow %dx%d", opts.Width, opts.Height)
		return win, nil
	}
}

// testGL is a function table backed by fakeProcs.
func testGL() *embedder.GL {
	return embedder.NewGL("3.2 fake", "fake", (&fakeWindow{}).ProcAddress)
}

var errCreateWindow = errors.New("no display")

// expectFatal asserts that fn terminates the process.
func expectFatal(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a fatal error")
		}
	}()

	fn()
}
