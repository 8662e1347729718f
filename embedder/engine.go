package embedder

import "net/url"

// BrowserID identifies a browsing context managed by the engine.
type BrowserID uint64

// Engine is the browser engine as seen by the embedder.
type Engine interface {
	// HandleEvents processes a batch of events. An empty batch lets the
	// engine run pending internal work after the event loop was woken up.
	HandleEvents(events []WindowEvent)

	Version() string
}

// NewEngine constructs an engine that renders into the given window.
type NewEngine func(window WindowMethods, embedder EmbedderMethods) (Engine, error)

// WindowEvent is one of the semantic events below.
type WindowEvent interface {
	isWindowEvent()
}

// NewBrowser asks the engine to create a browsing context for URL. The
// engine sends the identity of the new context on Response.
type NewBrowser struct {
	URL      *url.URL
	Response chan<- BrowserID
}

type SelectBrowser struct {
	Browser BrowserID
}

// MouseWindowMove carries the pointer position in device pixels.
type MouseWindowMove struct {
	Point DevicePoint
}

type Reload struct {
	Browser BrowserID
}

type Scroll struct {
	Location ScrollLocation
	Pointer  DeviceIntPoint
	Phase    TouchEventType
}

// Resize tells the engine that the window size changed. The engine queries
// the new size from the window.
type Resize struct{}

func (NewBrowser) isWindowEvent()      {}
func (SelectBrowser) isWindowEvent()   {}
func (MouseWindowMove) isWindowEvent() {}
func (Reload) isWindowEvent()          {}
func (Scroll) isWindowEvent()          {}
func (Resize) isWindowEvent()          {}
