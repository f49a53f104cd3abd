package input

import "github.com/kamstrup/intmap"

// Keyboard is the set of keys held down during the current frame.
type Keyboard struct {
	pressed *intmap.Map[Key, bool]
}

// NewKeyboard returns a snapshot with the given keys held.
func NewKeyboard(keys ...Key) Keyboard {
	kb := Keyboard{pressed: intmap.New[Key, bool](len(AllKeys))}
	for _, k := range keys {
		kb.pressed.Put(k, true)
	}
	return kb
}

// Pressed reports whether key is held.
func (kb *Keyboard) Pressed(key Key) bool {
	if kb.pressed == nil {
		return false
	}
	held, _ := kb.pressed.Get(key)
	return held
}

// AnyPressed reports whether any of keys is held.
func (kb *Keyboard) AnyPressed(keys ...Key) bool {
	for _, k := range keys {
		if kb.Pressed(k) {
			return true
		}
	}
	return false
}

// Set marks key as held or released.
func (kb *Keyboard) Set(key Key, held bool) {
	if kb.pressed == nil {
		kb.pressed = intmap.New[Key, bool](len(AllKeys))
	}
	if held {
		kb.pressed.Put(key, true)
	} else {
		kb.pressed.Del(key)
	}
}

// Reset releases every key.
func (kb *Keyboard) Reset() {
	if kb.pressed != nil {
		kb.pressed.Clear()
	}
}

// Held returns the held keys in AllKeys order.
func (kb *Keyboard) Held() []Key {
	var held []Key
	for _, k := range AllKeys {
		if kb.Pressed(k) {
			held = append(held, k)
		}
	}
	return held
}
