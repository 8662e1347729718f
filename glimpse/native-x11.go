//go:build linux && !wayland

package glimpse

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// the x11 build of glfw exposes GLX, so ask for a native (GLX) context
const contextCreationAPI = glfw.NativeContextAPI

type glfwNative struct {
	win *glfw.Window
}

func (n glfwNative) EGLDisplay() (uintptr, bool) {
	return 0, false
}

func (n glfwNative) WaylandDisplay() (uintptr, bool) {
	return 0, false
}

func (n glfwNative) X11Display() (uintptr, bool) {
	display := uintptr(unsafe.Pointer(glfw.GetX11Display()))
	return display, display != 0
}

func (n glfwNative) Context() RawContext {
	switch n.win.GetAttrib(glfw.ContextCreationAPI) {
	case glfw.NativeContextAPI:
		return RawContext{
			Kind:   ContextGLX,
			Handle: uintptr(unsafe.Pointer(n.win.GetGLXContext())),
		}

	default:
		return RawContext{Kind: ContextUnknown}
	}
}
