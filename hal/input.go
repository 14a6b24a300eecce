package hal

import (
	"fmt"
	"strings"
)

// Button is one of the handheld's logical buttons.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonL
	ButtonR

	NumButtons
)

var buttonNames = [NumButtons]string{
	ButtonUp:    "up",
	ButtonDown:  "down",
	ButtonLeft:  "left",
	ButtonRight: "right",
	ButtonL:     "l",
	ButtonR:     "r",
}

func (b Button) String() string {
	if b < NumButtons {
		return buttonNames[b]
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

// ParseButtons parses a comma separated list of button names, e.g. "up,l".
// An empty string yields no buttons.
func ParseButtons(s string) ([]Button, error) {
	var out []Button
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		b, ok := lookupButton(f)
		if !ok {
			return nil, fmt.Errorf("unknown button %q", f)
		}
		out = append(out, b)
	}
	return out, nil
}

func lookupButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// buttonSource reports whether a button is currently down on some device.
type buttonSource func(Button) bool

// heldInput latches a buttonSource once per Poll so that every read within a
// frame sees the same state.
type heldInput struct {
	source buttonSource
	held   [NumButtons]bool
}

func (in *heldInput) Poll() {
	for i := range in.held {
		in.held[i] = in.source != nil && in.source(Button(i))
	}
}

func (in *heldInput) Pressed(b Button) bool {
	if b >= NumButtons {
		return false
	}
	return in.held[b]
}

func holdSource(buttons []Button) buttonSource {
	var set [NumButtons]bool
	for _, b := range buttons {
		if b < NumButtons {
			set[b] = true
		}
	}
	return func(b Button) bool { return set[b] }
}
