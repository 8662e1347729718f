package glimpse

import "github.com/oliverbestmann/servoshell/glm"

// Event is a raw platform event as delivered by Window.Run.
type Event interface {
	isEvent()
}

// Awakened is delivered after one or more calls to Waker.Wake.
type Awakened struct{}

// CursorMoved carries the cursor position in window local pixels.
type CursorMoved struct {
	Position glm.Vec2d
}

type KeyboardInput struct {
	Key   Key
	State ElementState
}

type MouseWheel struct {
	Delta ScrollDelta
	Phase TouchPhase
}

type Resized struct {
	Width  int
	Height int
}

func (Awakened) isEvent()      {}
func (CursorMoved) isEvent()   {}
func (KeyboardInput) isEvent() {}
func (MouseWheel) isEvent()    {}
func (Resized) isEvent()       {}

type ScrollDeltaKind uint8

const (
	LineDelta ScrollDeltaKind = iota
	PixelDelta
)

// ScrollDelta is a scroll amount in lines or in pixels, depending on Kind.
type ScrollDelta struct {
	Kind  ScrollDeltaKind
	Delta glm.Vec2f
}

type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "Started"
	case TouchMoved:
		return "Moved"
	case TouchEnded:
		return "Ended"
	case TouchCancelled:
		return "Cancelled"
	default:
		return "TouchPhase(?)"
	}
}
