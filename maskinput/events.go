package maskinput

import "strings"

// EventKind identifies which widget event is being handled.
type EventKind uint8

const (
	EventValueChange EventKind = iota
	EventKeyDown
	EventKeyPress
	EventPaste
)

func (k EventKind) String() string {
	switch k {
	case EventValueChange:
		return "value-change"
	case EventKeyDown:
		return "key-down"
	case EventKeyPress:
		return "key-press"
	case EventPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// Named keys. Character keys use the character itself as Name.
const (
	KeyBackspace = "backspace"
	KeyDelete    = "delete"
	KeyEnter     = "enter"
)

// Key is a key stroke with its modifier state.
type Key struct {
	Name string

	Ctrl, Meta, Alt, Shift bool
}

func (k Key) is(name string) bool {
	return strings.EqualFold(k.Name, name)
}

// Undo is ctrl/meta+Z, or ctrl/meta+shift+Y.
func (k Key) isUndo() bool {
	if !k.Ctrl && !k.Meta {
		return false
	}
	if k.Shift {
		return k.is("y")
	}
	return k.is("z")
}

// Redo is ctrl/meta+Y, or ctrl/meta+shift+Z.
func (k Key) isRedo() bool {
	if !k.Ctrl && !k.Meta {
		return false
	}
	if k.Shift {
		return k.is("z")
	}
	return k.is("y")
}

// Event is one widget event. Handlers call PreventDefault to stop the
// widget's own default action; OnChange receives the same *Event.
type Event struct {
	Kind EventKind
	Key  Key

	// Text is the widget's current text for EventValueChange and the
	// clipboard text for EventPaste.
	Text string

	defaultPrevented bool
}

func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// ValueChange builds the event a widget emits after its text changed.
func ValueChange(text string) *Event {
	return &Event{Kind: EventValueChange, Text: text}
}

// KeyDown builds a key-down event.
func KeyDown(k Key) *Event {
	return &Event{Kind: EventKeyDown, Key: k}
}

// KeyPress builds a key-press event for a character key.
func KeyPress(k Key) *Event {
	return &Event{Kind: EventKeyPress, Key: k}
}

// Paste builds a paste event carrying clipboard text.
func Paste(text string) *Event {
	return &Event{Kind: EventPaste, Text: text}
}
