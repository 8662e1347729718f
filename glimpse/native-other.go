//go:build !linux

package glimpse

import "github.com/go-gl/glfw/v3.3/glfw"

const contextCreationAPI = glfw.NativeContextAPI

// glfwNative on platforms without EGL, GLX, Wayland or X11 handles.
type glfwNative struct {
	win *glfw.Window
}

func (n glfwNative) EGLDisplay() (uintptr, bool)     { return 0, false }
func (n glfwNative) WaylandDisplay() (uintptr, bool) { return 0, false }
func (n glfwNative) X11Display() (uintptr, bool)     { return 0, false }

func (n glfwNative) Context() RawContext {
	return RawContext{Kind: ContextUnknown}
}
