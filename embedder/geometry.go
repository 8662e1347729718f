package embedder

import "github.com/oliverbestmann/servoshell/glm"

type DevicePoint = glm.Vec2f
type DeviceIntPoint = glm.Vec2i

// ScrollLocation is a scroll delta in device pixels.
type ScrollLocation struct {
	Delta glm.Vec2f
}

type TouchEventType uint8

const (
	TouchDown TouchEventType = iota
	TouchMove
	TouchUp
	TouchCancel
)

func (t TouchEventType) String() string {
	switch t {
	case TouchDown:
		return "Down"
	case TouchMove:
		return "Move"
	case TouchUp:
		return "Up"
	case TouchCancel:
		return "Cancel"
	default:
		return "TouchEventType(?)"
	}
}
