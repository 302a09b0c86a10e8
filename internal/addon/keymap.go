package addon

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ContextViewport is the input context the addon binds into. Chords only
// fire while this context is active (e.g. not while the console is open).
const ContextViewport = "viewport"

// Chord is one keyboard shortcut: a key plus modifier state. Modifiers must
// match exactly, so ctrl+x does not also fire on ctrl+shift+x.
type Chord struct {
	Key   int32
	Ctrl  bool
	Shift bool
	Alt   bool
}

func (c Chord) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	parts = append(parts, keyName(c.Key))
	return strings.Join(parts, "+")
}

// keyCodes maps the key names accepted in chord strings (prefs and defaults)
// to raylib key codes. Letters and digits; extend as bindings need.
var keyCodes = map[string]int32{
	"a": rl.KeyA, "b": rl.KeyB, "c": rl.KeyC, "d": rl.KeyD, "e": rl.KeyE,
	"f": rl.KeyF, "g": rl.KeyG, "h": rl.KeyH, "i": rl.KeyI, "j": rl.KeyJ,
	"k": rl.KeyK, "l": rl.KeyL, "m": rl.KeyM, "n": rl.KeyN, "o": rl.KeyO,
	"p": rl.KeyP, "q": rl.KeyQ, "r": rl.KeyR, "s": rl.KeyS, "t": rl.KeyT,
	"u": rl.KeyU, "v": rl.KeyV, "w": rl.KeyW, "x": rl.KeyX, "y": rl.KeyY,
	"z": rl.KeyZ,
	"0": rl.KeyZero, "1": rl.KeyOne, "2": rl.KeyTwo, "3": rl.KeyThree,
	"4": rl.KeyFour, "5": rl.KeyFive, "6": rl.KeySix, "7": rl.KeySeven,
	"8": rl.KeyEight, "9": rl.KeyNine,
	"delete": rl.KeyDelete, "backspace": rl.KeyBackspace,
}

func keyName(code int32) string {
	for name, c := range keyCodes {
		if c == code {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", code)
}

// ParseChord parses a chord string like "ctrl+x" or "shift+q": zero or more
// of ctrl/shift/alt joined with '+', ending in a key name.
func ParseChord(s string) (Chord, error) {
	var c Chord
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for i, p := range parts {
		switch p {
		case "ctrl":
			c.Ctrl = true
		case "shift":
			c.Shift = true
		case "alt":
			c.Alt = true
		default:
			if i != len(parts)-1 {
				return Chord{}, fmt.Errorf("chord %q: unknown modifier %q", s, p)
			}
			code, ok := keyCodes[p]
			if !ok {
				return Chord{}, fmt.Errorf("chord %q: unknown key %q", s, p)
			}
			c.Key = code
		}
	}
	if c.Key == 0 {
		return Chord{}, fmt.Errorf("chord %q: missing key", s)
	}
	return c, nil
}

// Keymap binds chords to operator ids within one input context. Bind and
// Unbind are symmetric, mirroring Menus.
type Keymap struct {
	Context  string
	bindings map[Chord]string
}

// NewKeymap returns an empty keymap for the given input context.
func NewKeymap(context string) *Keymap {
	return &Keymap{Context: context, bindings: make(map[Chord]string)}
}

// Bind maps a chord to an operator id. Binding an already-bound chord is an
// error so addons cannot silently steal each other's shortcuts.
func (k *Keymap) Bind(c Chord, opID string) error {
	if bound, ok := k.bindings[c]; ok {
		return fmt.Errorf("bind %s: chord already bound to %q", c, bound)
	}
	k.bindings[c] = opID
	return nil
}

// Unbind removes the binding for the chord, if any.
func (k *Keymap) Unbind(c Chord) {
	delete(k.bindings, c)
}

// Lookup returns the operator id bound to the chord.
func (k *Keymap) Lookup(c Chord) (string, bool) {
	id, ok := k.bindings[c]
	return id, ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Pressed returns the operator id of a chord whose key was pressed this
// frame with matching modifier state. Call once per frame while the keymap's
// input context is active.
func (k *Keymap) Pressed() (string, bool) {
	for c, id := range k.bindings {
		if !rl.IsKeyPressed(c.Key) {
			continue
		}
		if modDown(rl.KeyLeftControl, rl.KeyRightControl) != c.Ctrl {
			continue
		}
		if modDown(rl.KeyLeftShift, rl.KeyRightShift) != c.Shift {
			continue
		}
		if modDown(rl.KeyLeftAlt, rl.KeyRightAlt) != c.Alt {
			continue
		}
		return id, true
	}
	return "", false
}

func modDown(left, right int32) bool {
	return rl.IsKeyDown(left) || rl.IsKeyDown(right)
}
