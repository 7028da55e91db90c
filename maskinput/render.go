package maskinput

import (
	"strings"

	"github.com/iw2rmb/masked/internal/grapheme"
)

func (m Model) View() string {
	attrs := m.ctrl.Attributes()
	st := m.cfg.Style
	focused := m.field.Focused()

	var sb strings.Builder
	width := 0

	if m.field.Len() == 0 {
		ph := grapheme.Split(attrs.Placeholder)
		for i, ch := range ph {
			if focused && i == 0 {
				sb.WriteString(st.Cursor.Render(ch))
			} else {
				sb.WriteString(st.Placeholder.Render(ch))
			}
			width += grapheme.Width(ch)
		}
		if focused && len(ph) == 0 {
			sb.WriteString(st.Cursor.Render(" "))
			width++
		}
		return pad(sb.String(), width, attrs.Size)
	}

	clusters := grapheme.Split(m.field.Text())
	sel := m.field.Selection()
	head := m.field.Head()
	for i, ch := range clusters {
		switch {
		case focused && sel.IsCollapsed() && i == head:
			sb.WriteString(st.Cursor.Render(ch))
		case !sel.IsCollapsed() && i >= sel.Start && i < sel.End:
			sb.WriteString(st.Selection.Render(ch))
		default:
			sb.WriteString(st.Text.Render(ch))
		}
		width += grapheme.Width(ch)
	}
	if focused && sel.IsCollapsed() && head >= len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
		width++
	}
	return pad(sb.String(), width, attrs.Size)
}

func pad(s string, width, size int) string {
	if width >= size {
		return s
	}
	return s + strings.Repeat(" ", size-width)
}
