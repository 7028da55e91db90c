package mask

import (
	"fmt"

	"github.com/iw2rmb/masked/internal/grapheme"
)

// Options configures New.
type Options struct {
	Pattern string
	Value   string

	// PlaceholderChar fills unfilled slots. Empty means DefaultPlaceholder.
	PlaceholderChar string

	// FormatCharacters are merged over DefaultFormatCharacters.
	FormatCharacters FormatCharacters

	Selection Selection

	HistoryLimit int // default: 1000; negative disables history
}

// PatternOptions seeds the state after a pattern swap.
type PatternOptions struct {
	Value     string
	Selection Selection
}

// Mask is the masked-value model: a pattern, the formatted value, a
// selection, and undo/redo history. It is not safe for concurrent use.
type Mask struct {
	pattern     *Pattern
	rules       FormatCharacters
	placeholder string

	value      []string
	emptyValue string
	sel        Selection

	historyLimit int
	hist         historyState
}

func New(opt Options) (*Mask, error) {
	if opt.Pattern == "" {
		return nil, ErrNoPattern
	}
	placeholder := opt.PlaceholderChar
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	if grapheme.Count(placeholder) > 1 {
		return nil, fmt.Errorf("%w: %q", ErrPlaceholder, placeholder)
	}
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}

	m := &Mask{
		rules:        mergeFormatCharacters(opt.FormatCharacters),
		placeholder:  placeholder,
		historyLimit: opt.HistoryLimit,
	}
	if err := m.SetPattern(opt.Pattern, PatternOptions{Value: opt.Value, Selection: opt.Selection}); err != nil {
		return nil, err
	}
	return m, nil
}

// SetPattern re-templates the mask in place. The value is re-derived from
// opt.Value, the selection is set to opt.Selection and history is cleared.
// On error the mask keeps its previous pattern and state.
func (m *Mask) SetPattern(source string, opt PatternOptions) error {
	p, err := ParsePattern(source, m.rules, m.placeholder)
	if err != nil {
		return err
	}
	m.pattern = p
	m.SetValue(opt.Value)
	m.emptyValue = grapheme.Join(p.format(nil))
	m.sel = opt.Selection.Clamp(p.Len())
	m.resetHistory()
	return nil
}

// SetValue replaces the content. value may be a raw value or a display value;
// static characters that line up with the pattern are skipped. Selection and
// history are left alone.
func (m *Mask) SetValue(value string) {
	m.value = m.pattern.format(grapheme.Split(value))
}

// Pattern returns the active pattern.
func (m *Mask) Pattern() *Pattern { return m.pattern }

// PlaceholderChar returns the character shown in unfilled slots.
func (m *Mask) PlaceholderChar() string { return m.placeholder }

// Value returns the display value.
func (m *Mask) Value() string { return grapheme.Join(m.value) }

// EmptyValue returns the display value with every editable slot unfilled.
func (m *Mask) EmptyValue() string { return m.emptyValue }

// IsEmpty reports whether no editable slot holds user input.
func (m *Mask) IsEmpty() bool { return m.Value() == m.emptyValue }

// RawValue returns the characters in editable slots, placeholders included,
// so slot alignment survives SetPattern.
func (m *Mask) RawValue() string {
	out := make([]string, 0, len(m.value))
	for i, ch := range m.value {
		if m.pattern.IsEditable(i) {
			out = append(out, ch)
		}
	}
	return grapheme.Join(out)
}

// Selection returns the current selection.
func (m *Mask) Selection() Selection { return m.sel }

// SetSelection assigns the selection, clamped to the pattern length.
func (m *Mask) SetSelection(s Selection) {
	m.sel = s.Clamp(m.pattern.Len())
}

// PatternLen returns the number of display positions in the active pattern.
func (m *Mask) PatternLen() int { return m.pattern.Len() }
