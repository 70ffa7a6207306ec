package core

// Capacities of the input tables. Codes outside [0, Max) are never stored.
const (
	MaxKeys    = 1024
	MaxButtons = 32
)

// Input is the polled keyboard/mouse snapshot of one window.
// The zero value reports nothing pressed and a cursor at (0, 0).
type Input struct {
	keys           [MaxKeys]bool
	buttons        [MaxButtons]bool
	mouseX, mouseY float64
}

// SetKey records the state of key. It reports false and leaves the
// table untouched if key is out of range.
func (in *Input) SetKey(key Key, down bool) bool {
	if key < 0 || int(key) >= MaxKeys {
		return false
	}
	in.keys[key] = down
	return true
}

// SetButton records the state of a mouse button, with the same range rule as SetKey.
func (in *Input) SetButton(b Button, down bool) bool {
	if b < 0 || int(b) >= MaxButtons {
		return false
	}
	in.buttons[b] = down
	return true
}

func (in *Input) SetCursor(x, y float64) { in.mouseX, in.mouseY = x, y }

func (in *Input) IsKeyPressed(key Key) bool {
	if key < 0 || int(key) >= MaxKeys {
		return false
	}
	return in.keys[key]
}

func (in *Input) IsMouseButtonPressed(b Button) bool {
	if b < 0 || int(b) >= MaxButtons {
		return false
	}
	return in.buttons[b]
}

func (in *Input) MousePosition() (float64, float64) { return in.mouseX, in.mouseY }

// Reset clears every key, button and the cursor.
func (in *Input) Reset() { *in = Input{} }
