package mask

type maskSnapshot struct {
	value []string
	sel   Selection
}

// historyState holds one undo snapshot per accepted edit, so n edits are
// always reverted by exactly n undos.
type historyState struct {
	undo []maskSnapshot
	redo []maskSnapshot
}

func (m *Mask) snapshot() maskSnapshot {
	return maskSnapshot{
		value: append([]string(nil), m.value...),
		sel:   m.sel,
	}
}

func (m *Mask) restore(s maskSnapshot) {
	value := m.pattern.format(nil)
	copy(value, s.value)
	m.value = value
	m.sel = s.sel.Clamp(m.pattern.Len())
}

func (m *Mask) resetHistory() {
	m.hist = historyState{}
}

// recordEdit is called after an effective edit with the state captured
// before it.
func (m *Mask) recordEdit(prev maskSnapshot) {
	m.pushUndo(prev)
	m.hist.redo = nil
}

func (m *Mask) pushUndo(s maskSnapshot) {
	limit := m.historyLimit
	if limit <= 0 {
		return
	}
	m.hist.undo = append(m.hist.undo, s)
	if len(m.hist.undo) > limit {
		m.hist.undo = m.hist.undo[len(m.hist.undo)-limit:]
	}
}

func (m *Mask) CanUndo() bool { return len(m.hist.undo) > 0 }

func (m *Mask) CanRedo() bool { return len(m.hist.redo) > 0 }

// Undo restores the state before the most recent edit.
func (m *Mask) Undo() bool {
	if len(m.hist.undo) == 0 {
		return false
	}
	cur := m.snapshot()

	i := len(m.hist.undo) - 1
	prev := m.hist.undo[i]
	m.hist.undo = m.hist.undo[:i]
	m.hist.redo = append(m.hist.redo, cur)

	m.restore(prev)
	return true
}

// Redo re-applies the most recently undone edit.
func (m *Mask) Redo() bool {
	if len(m.hist.redo) == 0 {
		return false
	}
	cur := m.snapshot()

	i := len(m.hist.redo) - 1
	next := m.hist.redo[i]
	m.hist.redo = m.hist.redo[:i]
	m.pushUndo(cur)

	m.restore(next)
	return true
}
