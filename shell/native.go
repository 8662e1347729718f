package shell

import (
	"fmt"

	"github.com/oliverbestmann/servoshell/embedder"
	"github.com/oliverbestmann/servoshell/glimpse"
)

// resolveNativeDisplay asks for an EGL display first, then for a Wayland and
// finally for an X11 display.
func resolveNativeDisplay(native glimpse.NativeHandles) embedder.NativeDisplay {
	if display, ok := native.EGLDisplay(); ok {
		return embedder.NativeDisplay{Kind: embedder.DisplayEGL, Handle: display}
	}

	if display, ok := native.WaylandDisplay(); ok {
		return embedder.NativeDisplay{Kind: embedder.DisplayWayland, Handle: display}
	}

	if display, ok := native.X11Display(); ok {
		return embedder.NativeDisplay{Kind: embedder.DisplayX11, Handle: display}
	}

	return embedder.NativeDisplay{Kind: embedder.DisplayUnknown}
}

// resolveGLContext maps the raw context handle of the platform to the
// context shared with the media player. There is no fallback.
func resolveGLContext(raw glimpse.RawContext) (embedder.GLContext, error) {
	switch raw.Kind {
	case glimpse.ContextEGL:
		return embedder.GLContext{Kind: embedder.GLContextEGL, Handle: raw.Handle}, nil

	case glimpse.ContextGLX:
		return embedder.GLContext{Kind: embedder.GLContextGLX, Handle: raw.Handle}, nil

	default:
		return embedder.GLContext{}, fmt.Errorf("%w: %s", ErrUnsupportedContext, raw.Kind)
	}
}
