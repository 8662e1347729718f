package glimpse

// GLInfo describes the GL context after its functions were loaded.
type GLInfo struct {
	Version  string
	Renderer string
}
