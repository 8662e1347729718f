package embedder

type AnimationState uint8

const (
	AnimationIdle AnimationState = iota
	AnimationAnimating
)

// WindowMethods is used by the compositor. All methods must be called on the
// thread that runs the event loop.
type WindowMethods interface {
	// PrepareForComposite reports whether the window is ready to
	// composite a frame of the given size.
	PrepareForComposite(width, height int) bool

	// Present swaps the front and back buffer.
	Present()

	GL() *GL

	SetAnimationState(state AnimationState)

	GLContext() GLContext
	NativeDisplay() NativeDisplay
	GLAPI() GLAPI
}

// EventLoopWaker wakes up the embedder's event loop. It may be used from any
// goroutine. Use Clone to hand a waker to another goroutine.
type EventLoopWaker interface {
	Clone() EventLoopWaker
	Wake()
}

type EmbedderMethods interface {
	CreateEventLoopWaker() EventLoopWaker

	RegisterVRServices(services *VRServiceManager, heartbeats *[]VRMainThreadHeartbeat)
	RegisterWebXR(registry *XRRegistry)
}

// VRServiceManager collects the VR services offered by the embedder.
type VRServiceManager struct {
	Services []string
}

type VRMainThreadHeartbeat interface {
	Heartbeat()
}

// XRRegistry collects the WebXR device discoveries offered by the embedder.
type XRRegistry struct {
	Discoveries []string
}
