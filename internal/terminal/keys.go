package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/ballgame/internal/input"
)

// HeldKeys is an input.Source for terminals, which report key presses and
// auto-repeats but never releases. A key counts as held until hold has
// passed since its last event.
type HeldKeys struct {
	hold time.Duration
	now  func() time.Time
	last *intmap.Map[input.Key, int64]
}

// NewHeldKeys returns a source holding keys for hold after each press.
// A nil clock uses time.Now.
func NewHeldKeys(hold time.Duration, clock func() time.Time) *HeldKeys {
	if clock == nil {
		clock = time.Now
	}
	return &HeldKeys{
		hold: hold,
		now:  clock,
		last: intmap.New[input.Key, int64](len(input.AllKeys)),
	}
}

// Press records a key event for key.
func (h *HeldKeys) Press(key input.Key) {
	h.last.Put(key, h.now().UnixNano())
}

// Release forgets key.
func (h *HeldKeys) Release(key input.Key) {
	h.last.Del(key)
}

func (h *HeldKeys) IsKeyPressed(key input.Key) bool {
	at, ok := h.last.Get(key)
	if !ok {
		return false
	}
	return h.now().UnixNano()-at < h.hold.Nanoseconds()
}

var tcellKeys = map[tcell.Key]input.Key{
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyEscape: input.KeyEscape,
}

var runeKeys = map[rune]input.Key{
	'a': input.KeyA,
	'd': input.KeyD,
	'w': input.KeyW,
	's': input.KeyS,
	'q': input.KeyQ,
}

// translateKey maps a tcell key event onto an input.Key.
func translateKey(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeKeys[unicode.ToLower(ev.Rune())]
		return k, ok
	}
	k, ok := tcellKeys[ev.Key()]
	return k, ok
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}
