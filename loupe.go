package loupe

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventWheel        EventType = iota // wheel or trackpad scroll
	EventPointerDown                   // pointer button pressed
	EventPointerMove                   // pointer moved (button held or not)
	EventPointerUp                     // pointer button released
	EventPointerLeave                  // pointer left the surface entirely
	EventDoubleClick                   // double click or double tap
	EventTouchStart                    // one or more contacts began
	EventTouchMove                     // one or more contacts moved
	EventTouchEnd                      // one or more contacts lifted

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"wheel", "pointerdown", "pointermove", "pointerup", "pointerleave",
	"dblclick", "touchstart", "touchmove", "touchend",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

var modifierNames = []struct {
	mod  KeyModifiers
	name string
}{
	{ModShift, "shift"},
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModMeta, "meta"},
}

// String returns the modifiers joined with "+", e.g. "ctrl+meta".
func (m KeyModifiers) String() string {
	var parts []string
	for _, mn := range modifierNames {
		if m&mn.mod != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseKeyModifiers parses a "+" or ","-separated modifier list such as
// "ctrl+meta". "cmd" and "super" are accepted as aliases for meta, "option"
// for alt and "control" for ctrl.
func ParseKeyModifiers(s string) (KeyModifiers, error) {
	var mods KeyModifiers
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "command", "super":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("parse modifiers %q: unknown key %q", s, f)
		}
	}
	return mods, nil
}

// UnmarshalYAML accepts either a scalar ("ctrl+meta") or a sequence
// ([ctrl, meta]).
func (m *KeyModifiers) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		mods, err := ParseKeyModifiers(value.Value)
		if err != nil {
			return err
		}
		*m = mods
		return nil
	case yaml.SequenceNode:
		var mods KeyModifiers
		for _, item := range value.Content {
			one, err := ParseKeyModifiers(item.Value)
			if err != nil {
				return err
			}
			mods |= one
		}
		*m = mods
		return nil
	}
	return fmt.Errorf("line %d: modifiers must be a string or a list", value.Line)
}

// MarshalYAML writes the modifiers in their "ctrl+meta" form.
func (m KeyModifiers) MarshalYAML() (any, error) {
	return m.String(), nil
}
