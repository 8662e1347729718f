package embedder

import "unsafe"

// GL is the function table of the window's GL context. It must only be used
// on the thread that owns the context.
type GL struct {
	Version  string
	Renderer string

	procAddress func(name string) unsafe.Pointer
}

func NewGL(version, renderer string, procAddress func(name string) unsafe.Pointer) *GL {
	return &GL{
		Version:     version,
		Renderer:    renderer,
		procAddress: procAddress,
	}
}

// ProcAddress resolves a GL entry point by name. It returns nil if the
// context does not provide the function.
func (gl *GL) ProcAddress(name string) unsafe.Pointer {
	return gl.procAddress(name)
}
