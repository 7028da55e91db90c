package maskinput

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/masked/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) {
	if !m.field.Focused() {
		return
	}

	// Bracketed paste is literal text and never triggers shortcuts.
	if msg.Paste && msg.Type == tea.KeyRunes {
		m.paste(string(msg.Runes))
		return
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Undo):
		m.keyDown(Key{Name: "z", Ctrl: true})
	case key.Matches(msg, km.Redo):
		m.keyDown(Key{Name: "y", Ctrl: true})
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	case key.Matches(msg, km.Backspace):
		if ev := m.keyDown(Key{Name: KeyBackspace}); !ev.DefaultPrevented() {
			m.native(m.field.DeleteBackward)
		}
	case key.Matches(msg, km.Delete):
		if ev := m.keyDown(Key{Name: KeyDelete}); !ev.DefaultPrevented() {
			m.native(m.field.DeleteForward)
		}
	case key.Matches(msg, km.Enter):
		if ev := m.keyDown(Key{Name: KeyEnter}); !ev.DefaultPrevented() {
			m.ctrl.Dispatch(KeyPress(Key{Name: KeyEnter}))
		}

	case key.Matches(msg, km.Left):
		m.field.Move(MotionLeft, false)
	case key.Matches(msg, km.Right):
		m.field.Move(MotionRight, false)
	case key.Matches(msg, km.ShiftLeft):
		m.field.Move(MotionLeft, true)
	case key.Matches(msg, km.ShiftRight):
		m.field.Move(MotionRight, true)
	case key.Matches(msg, km.Home):
		m.field.Move(MotionHome, false)
	case key.Matches(msg, km.End):
		m.field.Move(MotionEnd, false)
	case key.Matches(msg, km.ShiftHome):
		m.field.Move(MotionHome, true)
	case key.Matches(msg, km.ShiftEnd):
		m.field.Move(MotionEnd, true)

	default:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		} else if msg.Type != tea.KeyRunes {
			return
		}
		for _, ch := range grapheme.Split(text) {
			m.typeChar(Key{Name: ch, Alt: msg.Alt})
		}
	}
}

// typeChar fires key-down then key-press for one character and inserts it
// natively when neither was prevented.
func (m Model) typeChar(k Key) {
	if ev := m.keyDown(k); ev.DefaultPrevented() {
		return
	}
	ev := KeyPress(k)
	m.ctrl.Dispatch(ev)
	if ev.DefaultPrevented() || k.Alt {
		return
	}
	m.native(func() bool { return m.field.InsertText(k.Name) })
}

func (m Model) keyDown(k Key) *Event {
	ev := KeyDown(k)
	m.ctrl.Dispatch(ev)
	return ev
}

func (m Model) paste(text string) {
	ev := Paste(text)
	m.ctrl.Dispatch(ev)
	if ev.DefaultPrevented() {
		return
	}
	m.native(func() bool { return m.field.InsertText(text) })
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.paste(s)
}

// native runs a default action and reports a resulting text change to the
// controller, as an input element fires its change event.
func (m Model) native(action func() bool) {
	if action() {
		m.ctrl.Dispatch(ValueChange(m.field.Text()))
	}
}
