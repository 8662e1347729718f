package shell

import (
	"log/slog"
	"sync"

	"github.com/oliverbestmann/servoshell/embedder"
	"github.com/oliverbestmann/servoshell/glimpse"
)

// Window bundles the native window, its GL function table and the wake
// proxy. The engine sees it through Compositor and Embedder.
type Window struct {
	platform glimpse.Window
	gl       *embedder.GL
	waker    eventLoopWaker

	// resolved on first use, display servers do not change at runtime
	nativeOnce    sync.Once
	nativeDisplay embedder.NativeDisplay
	glContext     embedder.GLContext
}

func NewWindow(platform glimpse.Window, gl *embedder.GL) *Window {
	return &Window{
		platform: platform,
		gl:       gl,
		waker:    eventLoopWaker{proxy: platform.NewWaker()},
	}
}

// Compositor returns the methods used by the engine's compositor.
func (w *Window) Compositor() embedder.WindowMethods {
	return compositorMethods{w}
}

// Embedder returns the methods used by the engine during setup.
func (w *Window) Embedder() embedder.EmbedderMethods {
	return embedderMethods{w}
}

func (w *Window) resolveNative() {
	w.nativeOnce.Do(func() {
		native := w.platform.Native()

		glContext, err := resolveGLContext(native.Context())
		Handle(err, "resolve gl context")

		w.glContext = glContext
		w.nativeDisplay = resolveNativeDisplay(native)

		slog.Info("Resolved native handles",
			slog.String("display", w.nativeDisplay.Kind.String()),
			slog.String("context", w.glContext.Kind.String()),
		)
	})
}

type compositorMethods struct {
	w *Window
}

func (c compositorMethods) PrepareForComposite(width, height int) bool {
	return true
}

func (c compositorMethods) Present() {
	Handle(c.w.platform.SwapBuffers(), "present frame")
}

func (c compositorMethods) GL() *embedder.GL {
	return c.w.gl
}

// SetAnimationState is ignored, frames are not throttled.
func (c compositorMethods) SetAnimationState(state embedder.AnimationState) {
}

func (c compositorMethods) GLContext() embedder.GLContext {
	c.w.resolveNative()
	return c.w.glContext
}

func (c compositorMethods) NativeDisplay() embedder.NativeDisplay {
	c.w.resolveNative()
	return c.w.nativeDisplay
}

func (c compositorMethods) GLAPI() embedder.GLAPI {
	return embedder.GLAPIOpenGL3
}

type embedderMethods struct {
	w *Window
}

func (e embedderMethods) CreateEventLoopWaker() embedder.EventLoopWaker {
	return e.w.waker.Clone()
}

// VR and WebXR are not supported, nothing is registered.
func (e embedderMethods) RegisterVRServices(*embedder.VRServiceManager, *[]embedder.VRMainThreadHeartbeat) {
}

func (e embedderMethods) RegisterWebXR(*embedder.XRRegistry) {
}
