package embedder

// NativeDisplay is the display connection of the windowing backend.
type NativeDisplay struct {
	Kind   DisplayKind
	Handle uintptr
}

type DisplayKind uint8

const (
	DisplayUnknown DisplayKind = iota
	DisplayEGL
	DisplayWayland
	DisplayX11
)

func (k DisplayKind) String() string {
	switch k {
	case DisplayEGL:
		return "EGL"
	case DisplayWayland:
		return "Wayland"
	case DisplayX11:
		return "X11"
	default:
		return "Unknown"
	}
}

// GLContext is the raw GL context the compositor renders with, shared with
// the media player.
type GLContext struct {
	Kind   GLContextKind
	Handle uintptr
}

type GLContextKind uint8

const (
	GLContextEGL GLContextKind = iota + 1
	GLContextGLX
)

func (k GLContextKind) String() string {
	switch k {
	case GLContextEGL:
		return "EGL"
	case GLContextGLX:
		return "GLX"
	default:
		return "GLContextKind(?)"
	}
}

type GLAPI uint8

const (
	GLAPINone GLAPI = iota
	GLAPIOpenGL
	GLAPIOpenGL3
	GLAPIGLES
)
