package glimpse

// ContextKind is the kind of raw GL context handle the platform created.
type ContextKind uint8

const (
	ContextUnknown ContextKind = iota
	ContextEGL
	ContextGLX
)

func (k ContextKind) String() string {
	switch k {
	case ContextEGL:
		return "EGL"
	case ContextGLX:
		return "GLX"
	case ContextUnknown:
		return "Unknown"
	default:
		return "ContextKind(?)"
	}
}

type RawContext struct {
	Kind   ContextKind
	Handle uintptr
}

// NativeHandles probes the windowing backend for its raw handles. A probe
// reports false if the backend in use does not provide that handle.
type NativeHandles interface {
	EGLDisplay() (uintptr, bool)
	WaylandDisplay() (uintptr, bool)
	X11Display() (uintptr, bool)

	Context() RawContext
}
