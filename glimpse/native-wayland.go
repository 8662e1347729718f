//go:build linux && wayland

package glimpse

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// wayland only supports EGL contexts
const contextCreationAPI = glfw.EGLContextAPI

type glfwNative struct {
	win *glfw.Window
}

func (n glfwNative) EGLDisplay() (uintptr, bool) {
	display := uintptr(unsafe.Pointer(glfw.GetEGLDisplay()))
	return display, display != 0
}

func (n glfwNative) WaylandDisplay() (uintptr, bool) {
	display := uintptr(unsafe.Pointer(glfw.GetWaylandDisplay()))
	return display, display != 0
}

func (n glfwNative) X11Display() (uintptr, bool) {
	return 0, false
}

func (n glfwNative) Context() RawContext {
	switch n.win.GetAttrib(glfw.ContextCreationAPI) {
	case glfw.EGLContextAPI:
		return RawContext{
			Kind:   ContextEGL,
			Handle: uintptr(unsafe.Pointer(n.win.GetEGLContext())),
		}

	default:
		return RawContext{Kind: ContextUnknown}
	}
}
