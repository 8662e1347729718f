package glimpse

import "unsafe"

// Window is the native window together with its GL context. All methods
// except NewWaker must be called from the thread that created the window.
type Window interface {
	// LoadGL loads the GL functions through the current context.
	LoadGL() (GLInfo, error)

	// ProcAddress resolves a GL entry point of the current context.
	ProcAddress(name string) unsafe.Pointer

	// SwapBuffers presents the back buffer.
	SwapBuffers() error

	// Resize adjusts the GL surface after the window was resized to width x
	// height screen coordinates. The surface itself is sized in framebuffer
	// pixels, which differ from screen coordinates on HiDPI displays, so the
	// arguments only describe the resize.
	Resize(width, height int)

	// NewWaker returns the proxy that interrupts a blocked Run from
	// any goroutine.
	NewWaker() Waker

	// Native exposes the raw native handles of the window.
	Native() NativeHandles

	// Run blocks waiting for platform events and calls handle for each of
	// them until the window is asked to close. Events that arrive before Run,
	// like the resize caused by showing the window, are queued and handed to
	// handle first.
	Run(handle func(event Event)) error

	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// requested OpenGL core profile version
	GLMajor int
	GLMinor int

	VSync bool

	// record a cpu profile for the lifetime of the window
	Profile bool
}

func (opts WindowOptions) withDefaults() WindowOptions {
	if opts.Width == 0 {
		opts.Width = 800
	}

	if opts.Height == 0 {
		opts.Height = 600
	}

	if opts.Title == "" {
		opts.Title = "Servo"
	}

	if opts.GLMajor == 0 {
		opts.GLMajor, opts.GLMinor = 3, 2
	}

	return opts
}
