// Package input turns host keyboard state into a per-frame Keyboard
// snapshot stored as an ECS singleton.
package input

// Key is a host-independent keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyEscape
	KeyQ
)

var keyNames = map[Key]string{
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyA:      "A",
	KeyD:      "D",
	KeyW:      "W",
	KeyS:      "S",
	KeyEscape: "Escape",
	KeyQ:      "Q",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// AllKeys lists every key a Source is polled for.
var AllKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyA, KeyD, KeyW, KeyS, KeyEscape, KeyQ}
