package shell

import (
	"fmt"

	"github.com/oliverbestmann/servoshell/embedder"
	"github.com/oliverbestmann/servoshell/glimpse"
	"github.com/oliverbestmann/servoshell/glm"
)

// LineHeight is the number of pixels scrolled per line of wheel input.
const LineHeight = 38

// translator converts platform events into engine events. It is only used
// from the event loop thread.
type translator struct {
	browser embedder.BrowserID

	// last known cursor position, scroll events carry none
	pointer glm.Vec2d
}

// translate returns the batch of engine events for a platform event. It
// returns false if the event is not of interest to the engine. Awakened
// yields an empty batch that must still be forwarded.
func (t *translator) translate(event glimpse.Event) ([]embedder.WindowEvent, bool) {
	switch event := event.(type) {
	case glimpse.Awakened:
		return []embedder.WindowEvent{}, true

	case glimpse.CursorMoved:
		t.pointer = event.Position

		return []embedder.WindowEvent{
			embedder.MouseWindowMove{Point: glm.Convert[float32](event.Position)},
		}, true

	case glimpse.KeyboardInput:
		if event.State != glimpse.Pressed || event.Key != glimpse.KeyR {
			return nil, false
		}

		return []embedder.WindowEvent{
			embedder.Reload{Browser: t.browser},
		}, true

	case glimpse.MouseWheel:
		return []embedder.WindowEvent{
			embedder.Scroll{
				Location: scrollLocationOf(event.Delta),
				Pointer:  glm.Convert[int32](t.pointer),
				Phase:    touchEventTypeOf(event.Phase),
			},
		}, true

	case glimpse.Resized:
		return []embedder.WindowEvent{embedder.Resize{}}, true

	default:
		return nil, false
	}
}

func scrollLocationOf(delta glimpse.ScrollDelta) embedder.ScrollLocation {
	if delta.Kind == glimpse.LineDelta {
		// only the vertical axis is scaled
		return embedder.ScrollLocation{Delta: delta.Delta.Mul(glm.Vec2f{1, LineHeight})}
	}

	return embedder.ScrollLocation{Delta: delta.Delta}
}

// touchEventTypeOf maps a cancelled gesture to a release.
func touchEventTypeOf(phase glimpse.TouchPhase) embedder.TouchEventType {
	switch phase {
	case glimpse.TouchStarted:
		return embedder.TouchDown
	case glimpse.TouchMoved:
		return embedder.TouchMove
	case glimpse.TouchEnded:
		return embedder.TouchUp
	case glimpse.TouchCancelled:
		return embedder.TouchUp
	}

	panic(fmt.Sprintf("unknown touch phase %d", phase))
}
