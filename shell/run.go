package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/oliverbestmann/servoshell/embedder"
	"github.com/oliverbestmann/servoshell/glimpse"
)

type RunOptions struct {
	// constructs the engine. This is the only field that is required
	NewEngine embedder.NewEngine

	HomeURL string

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// record a cpu profile while the window is open
	Profile bool

	// creates the platform window, defaults to glimpse.NewWindow
	newWindow func(opts glimpse.WindowOptions) (glimpse.Window, error)
}

// Run creates the window, boots the engine, opens the home page and then
// forwards platform events to the engine until the window is closed.
func Run(opts RunOptions) error {
	if opts.NewEngine == nil {
		return errors.New("NewEngine must not be nil")
	}

	if opts.HomeURL == "" {
		opts.HomeURL = "https://servo.org"
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.newWindow == nil {
		opts.newWindow = glimpse.NewWindow
	}

	homeURL, err := url.Parse(opts.HomeURL)
	if err != nil {
		return fmt.Errorf("parse home url: %w", err)
	}

	// create the window, its gl context is current after this call
	platform, err := opts.newWindow(glimpse.WindowOptions{
		Width:   opts.WindowWidth,
		Height:  opts.WindowHeight,
		Title:   opts.WindowTitle,
		VSync:   true,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer platform.Terminate()

	info, err := platform.LoadGL()
	if err != nil {
		return fmt.Errorf("load gl: %w", err)
	}

	gl := embedder.NewGL(info.Version, info.Renderer, platform.ProcAddress)
	window := NewWindow(platform, gl)

	slog.Debug("Resources", slog.String("path", resourcesPath()))

	engine, err := opts.NewEngine(window.Compositor(), window.Embedder())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	slog.Info("Engine started", slog.String("version", engine.Version()))

	browser, err := openBrowser(engine, homeURL)
	if err != nil {
		return err
	}

	loop := &eventLoop{
		platform:   platform,
		engine:     engine,
		translator: translator{browser: browser},
	}

	return platform.Run(loop.handle)
}

// openBrowser requests a browsing context for the home page, waits for its
// identity and selects it.
func openBrowser(engine embedder.Engine, homeURL *url.URL) (embedder.BrowserID, error) {
	response := make(chan embedder.BrowserID, 1)
	engine.HandleEvents([]embedder.WindowEvent{
		embedder.NewBrowser{URL: homeURL, Response: response},
	})

	browser, ok := <-response
	if !ok {
		return 0, fmt.Errorf("%w: response channel closed", ErrHandshake)
	}

	slog.Info("Browser created",
		slog.String("url", homeURL.String()),
		slog.Uint64("browser", uint64(browser)),
	)

	engine.HandleEvents([]embedder.WindowEvent{
		embedder.SelectBrowser{Browser: browser},
	})

	return browser, nil
}

// resourcesPath is where the engine resources would live. Nothing reads it.
func resourcesPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "resources"
	}

	return filepath.Join(cwd, "resources")
}

type eventLoop struct {
	platform   glimpse.Window
	engine     embedder.Engine
	translator translator
}

func (l *eventLoop) handle(event glimpse.Event) {
	events, ok := l.translator.translate(event)
	if !ok {
		return
	}

	l.engine.HandleEvents(events)

	// the engine learns about the new size before the surface changes
	if resized, ok := event.(glimpse.Resized); ok {
		l.platform.Resize(resized.Width, resized.Height)
	}
}
