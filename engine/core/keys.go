package core

// Key is a keyboard key code. Values follow GLFW's key code space.
type Key int

// Subset of key codes; any code in [0, MaxKeys) may be queried.
const (
	KeyUnknown   Key = -1
	KeySpace     Key = 32
	Key0         Key = 48
	Key9         Key = 57
	KeyA         Key = 65
	KeyD         Key = 68
	KeyE         Key = 69
	KeyP         Key = 80
	KeyQ         Key = 81
	KeyS         Key = 83
	KeyW         Key = 87
	KeyZ         Key = 90
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyF1        Key = 290
	KeyF12       Key = 301
	KeyLeftShift Key = 340
	KeyLeftCtrl  Key = 341
	KeyLeftAlt   Key = 342
	KeyLast      Key = 348
)

// Button is a mouse button code.
type Button int

const (
	MouseButtonLeft   Button = 0
	MouseButtonRight  Button = 1
	MouseButtonMiddle Button = 2
	MouseButtonLast   Button = 7
)

// Action is what happened to a key or button.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Down reports whether the action leaves the key held.
func (a Action) Down() bool { return a != Release }

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
