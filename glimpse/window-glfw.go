package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/servoshell/glm"
	"github.com/pkg/profile"
)

func init() {
	// glfw and the GL context are bound to the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	waker Waker

	// receives the events of the glfw callbacks
	events dispatcher
}

// NewWindow creates and shows a window and makes its GL context current on
// the calling thread.
func NewWindow(opts WindowOptions) (Window, error) {
	opts = opts.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextCreationAPI, contextCreationAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	}

	w := &glfwWindow{
		win: window,
		waker: NewWaker(func() error {
			glfw.PostEmptyEvent()
			return nil
		}),
	}

	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}

	configureInput(window, &w.events)

	// callbacks fired by showing the window are queued until Run
	window.Show()

	slog.Info("Window created",
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
	)

	return w, nil
}

func (g *glfwWindow) LoadGL() (GLInfo, error) {
	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		return GLInfo{}, fmt.Errorf("load gl functions: %w", err)
	}

	info := GLInfo{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}

	slog.Info("GL loaded",
		slog.String("version", info.Version),
		slog.String("renderer", info.Renderer),
	)

	return info, nil
}

func (g *glfwWindow) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (g *glfwWindow) SwapBuffers() (err error) {
	// glfw reports errors by panicking
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("swap buffers: %v", r)
		}
	}()

	g.win.SwapBuffers()
	return nil
}

func (g *glfwWindow) Resize(width, height int) {
	// the surface follows the window, only the viewport needs updating
	fbWidth, fbHeight := g.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	slog.Debug("Resize surface",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("framebufferWidth", fbWidth),
		slog.Int("framebufferHeight", fbHeight),
	)
}

func (g *glfwWindow) NewWaker() Waker {
	return g.waker.Clone()
}

func (g *glfwWindow) Native() NativeHandles {
	return glfwNative{win: g.win}
}

func (g *glfwWindow) Run(handle func(event Event)) error {
	g.events.start(handle)
	defer g.events.stop()

	for !g.win.ShouldClose() {
		// callbacks registered in configureInput run inside WaitEvents
		pumpEvents(glfw.WaitEvents, g.waker, &g.events)
	}

	return nil
}

func (g *glfwWindow) Terminate() {
	g.waker.terminate()

	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func configureInput(window *glfw.Window, events *dispatcher) {
	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		state := Pressed
		if action == glfw.Release {
			state = Released
		}

		events.dispatch(KeyboardInput{Key: keyOf(glfwKey), State: state})
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		events.dispatch(CursorMoved{Position: glm.Vec2d{xpos, ypos}})
	})

	// glfw reports wheel offsets in lines and has no notion of a gesture
	window.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		events.dispatch(MouseWheel{
			Delta: ScrollDelta{Kind: LineDelta, Delta: glm.Vec2f{float32(xoff), float32(yoff)}},
			Phase: TouchMoved,
		})
	})

	window.SetSizeCallback(func(_win *glfw.Window, width int, height int) {
		events.dispatch(Resized{Width: width, Height: height})
	})
}
