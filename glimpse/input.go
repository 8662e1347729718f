package glimpse

import "github.com/go-gl/glfw/v3.3/glfw"

type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

// Key is a virtual key code. Only letters, digits and a few control keys
// are mapped, everything else is KeyUnknown.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyBackspace
	KeyTab

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	}

	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	default:
		return "Unknown"
	}
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape:    KeyEscape,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeySpace:     KeySpace,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyTab:       KeyTab,
}

func keyOf(glfwKey glfw.Key) Key {
	switch {
	case glfwKey >= glfw.KeyA && glfwKey <= glfw.KeyZ:
		return KeyA + Key(glfwKey-glfw.KeyA)
	case glfwKey >= glfw.Key0 && glfwKey <= glfw.Key9:
		return Key0 + Key(glfwKey-glfw.Key0)
	}

	// missing keys map to KeyUnknown
	return glfwToKey[glfwKey]
}
