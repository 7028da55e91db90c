package mask

import (
	"slices"

	"github.com/iw2rmb/masked/internal/grapheme"
)

// Input types a single character at the selection. It returns false, leaving
// the mask untouched, when ch does not fit the target slot or the caret is at
// the end of the pattern.
func (m *Mask) Input(ch string) bool {
	if !grapheme.IsSingle(ch) {
		return false
	}
	prev := m.snapshot()
	if !m.insert(ch) {
		return false
	}
	m.recordEdit(prev)
	return true
}

// insert applies one character without touching history.
func (m *Mask) insert(ch string) bool {
	n := m.pattern.Len()
	if m.sel.IsCollapsed() && m.sel.Start == n {
		return false
	}

	idx := m.sel.Start
	if first := m.pattern.FirstEditable(); idx < first {
		idx = first
	}
	if m.pattern.IsEditable(idx) {
		if !m.pattern.validAt(ch, idx) {
			return false
		}
		m.value[idx] = m.pattern.transform(ch, idx)
	}

	// Blank out the rest of a replaced range.
	for i := m.sel.End - 1; i > idx; i-- {
		if m.pattern.IsEditable(i) {
			m.value[i] = m.placeholder
		}
	}

	next := idx + 1
	for next < n && !m.pattern.IsEditable(next) {
		next++
	}
	m.sel = Caret(next)
	return true
}

// Backspace clears the slot before the caret, or every slot in a range
// selection, and leaves the caret at the start of what was removed.
func (m *Mask) Backspace() bool {
	if m.sel.Start == 0 && m.sel.End == 0 {
		return false
	}
	prev := m.snapshot()

	if m.sel.IsCollapsed() {
		i := m.sel.Start - 1
		if m.pattern.IsEditable(i) {
			m.value[i] = m.placeholder
		}
		m.sel = Caret(i)
	} else {
		for i := m.sel.End - 1; i >= m.sel.Start; i-- {
			if m.pattern.IsEditable(i) {
				m.value[i] = m.placeholder
			}
		}
		m.sel = Caret(m.sel.Start)
	}

	m.recordEdit(prev)
	return true
}

// Paste inserts text at the selection as one edit. Static pattern characters
// may appear in text. If any character is rejected the whole paste is rolled
// back and Paste returns false, as does a paste that changes nothing.
func (m *Mask) Paste(text string) bool {
	chars := grapheme.Split(text)
	if len(chars) == 0 {
		return false
	}
	prev := m.snapshot()
	rollback := func() bool {
		m.value = prev.value
		m.sel = prev.sel
		return false
	}
	m.value = append([]string(nil), m.value...)

	// A caret inside a static prefix only accepts a paste that spells the
	// rest of that prefix.
	if first := m.pattern.FirstEditable(); m.sel.Start < first {
		lead := first - m.sel.Start
		if len(chars) < lead {
			return rollback()
		}
		for i := 0; i < lead; i++ {
			if chars[i] != m.pattern.StaticAt(m.sel.Start+i) {
				return rollback()
			}
		}
		chars = chars[lead:]
		m.sel.Start = first
		if m.sel.End < first {
			m.sel.End = first
		}
	}

	// pending is the next static character text may spell after insert
	// has stepped over a run of static characters.
	pending := m.sel.Start
	for _, ch := range chars {
		if m.sel.Start > m.pattern.LastEditable() {
			break
		}
		at := m.sel.Start
		if m.insert(ch) {
			if first := m.pattern.FirstEditable(); at < first {
				at = first
			}
			pending = at + 1
			continue
		}
		if pending < m.sel.Start && ch == m.pattern.StaticAt(pending) {
			pending++
			continue
		}
		return rollback()
	}
	if m.sel == prev.sel && slices.Equal(m.value, prev.value) {
		return false
	}

	m.recordEdit(prev)
	return true
}
