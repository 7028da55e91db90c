package maskinput

import (
	"github.com/iw2rmb/masked/internal/grapheme"
	"github.com/iw2rmb/masked/mask"
)

// Field is a single-line text-entry widget kept in memory. It implements
// Widget and carries the default actions a native input performs when its
// events are not prevented. Positions are grapheme indices.
type Field struct {
	text []string

	// anchor stays put while head moves during shift-extended selection.
	anchor int
	head   int

	focused   bool
	maxLength int

	// rev counts native caret moves and edits.
	rev uint64
}

func NewField() *Field { return &Field{} }

func (f *Field) Text() string { return grapheme.Join(f.text) }

// Len returns the text length in graphemes.
func (f *Field) Len() int { return len(f.text) }

// SetText replaces the text. A changed text moves the caret to the end.
func (f *Field) SetText(text string) {
	next := grapheme.Split(text)
	if grapheme.Join(next) == f.Text() {
		return
	}
	f.text = next
	f.anchor, f.head = len(f.text), len(f.text)
}

func (f *Field) Selection() mask.Selection {
	return mask.Selection{Start: f.anchor, End: f.head}.Normalize()
}

func (f *Field) SetSelection(sel mask.Selection) {
	sel = sel.Clamp(len(f.text))
	f.anchor, f.head = sel.Start, sel.End
}

// SelectionRevision implements SelectionRevisioner.
func (f *Field) SelectionRevision() uint64 { return f.rev }

// Head returns the moving end of the selection, where the caret is drawn.
func (f *Field) Head() int { return f.head }

func (f *Field) Focus() { f.focused = true }

func (f *Field) Blur() { f.focused = false }

func (f *Field) Focused() bool { return f.focused }

func (f *Field) MaxLength() int { return f.maxLength }

// SetMaxLength limits typed and pasted input. Zero means unlimited.
func (f *Field) SetMaxLength(n int) {
	if n < 0 {
		n = 0
	}
	f.maxLength = n
}

// InsertText replaces the selection with s, truncated to the remaining
// capacity. It reports whether the text changed.
func (f *Field) InsertText(s string) bool {
	ins := grapheme.Split(s)
	sel := f.Selection()
	if f.maxLength > 0 {
		room := f.maxLength - (len(f.text) - (sel.End - sel.Start))
		if room < 0 {
			room = 0
		}
		if len(ins) > room {
			ins = ins[:room]
		}
	}
	if len(ins) == 0 && sel.IsCollapsed() {
		return false
	}
	f.replace(sel, ins)
	return true
}

// DeleteBackward deletes the selection or the grapheme before the caret.
func (f *Field) DeleteBackward() bool {
	sel := f.Selection()
	if sel.IsCollapsed() {
		if sel.Start == 0 {
			return false
		}
		sel.Start--
	}
	f.replace(sel, nil)
	return true
}

// DeleteForward deletes the selection or the grapheme after the caret.
func (f *Field) DeleteForward() bool {
	sel := f.Selection()
	if sel.IsCollapsed() {
		if sel.End >= len(f.text) {
			return false
		}
		sel.End++
	}
	f.replace(sel, nil)
	return true
}

func (f *Field) replace(sel mask.Selection, ins []string) {
	out := make([]string, 0, len(f.text)-(sel.End-sel.Start)+len(ins))
	out = append(out, f.text[:sel.Start]...)
	out = append(out, ins...)
	out = append(out, f.text[sel.End:]...)
	f.text = out
	caret := sel.Start + len(ins)
	f.anchor, f.head = caret, caret
	f.rev++
}

// Motion is a caret movement.
type Motion uint8

const (
	MotionLeft Motion = iota
	MotionRight
	MotionHome
	MotionEnd
)

// Move moves the caret. With extend the anchor stays and the selection
// grows or shrinks; without it a range collapses toward the motion.
func (f *Field) Move(mo Motion, extend bool) {
	f.rev++
	n := len(f.text)
	sel := f.Selection()
	next := f.head
	switch mo {
	case MotionLeft:
		if !extend && !sel.IsCollapsed() {
			f.anchor, f.head = sel.Start, sel.Start
			return
		}
		next--
	case MotionRight:
		if !extend && !sel.IsCollapsed() {
			f.anchor, f.head = sel.End, sel.End
			return
		}
		next++
	case MotionHome:
		next = 0
	case MotionEnd:
		next = n
	}
	if next < 0 {
		next = 0
	}
	if next > n {
		next = n
	}
	f.head = next
	if !extend {
		f.anchor = next
	}
}

var (
	_ Widget              = (*Field)(nil)
	_ SelectionRevisioner = (*Field)(nil)
)
