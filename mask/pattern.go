package mask

import (
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/masked/internal/grapheme"
)

type slot struct {
	char string
	rule *FormatCharacter
}

// Pattern is a parsed mask template. It is immutable once built.
type Pattern struct {
	source string
	slots  []slot

	placeholder string

	firstEditable int
	lastEditable  int
}

// ParsePattern parses source against the given slot rules. A nil rules map
// uses DefaultFormatCharacters.
func ParsePattern(source string, rules FormatCharacters, placeholder string) (*Pattern, error) {
	if source == "" {
		return nil, ErrNoPattern
	}
	if rules == nil {
		rules = DefaultFormatCharacters()
	}

	chars := grapheme.Split(source)
	p := &Pattern{
		source:        source,
		slots:         make([]slot, 0, len(chars)),
		placeholder:   placeholder,
		firstEditable: -1,
		lastEditable:  -1,
	}
	for i := 0; i < len(chars); i++ {
		ch := chars[i]
		if ch == string(EscapeChar) {
			if i == len(chars)-1 {
				return nil, fmt.Errorf("%w: %q", ErrTrailingEscape, source)
			}
			i++
			p.slots = append(p.slots, slot{char: chars[i]})
			continue
		}
		if r, size := utf8.DecodeRuneInString(ch); size == len(ch) {
			if fc, ok := rules[r]; ok {
				rule := fc
				idx := len(p.slots)
				if p.firstEditable < 0 {
					p.firstEditable = idx
				}
				p.lastEditable = idx
				p.slots = append(p.slots, slot{char: ch, rule: &rule})
				continue
			}
		}
		p.slots = append(p.slots, slot{char: ch})
	}
	if p.firstEditable < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoEditable, source)
	}
	return p, nil
}

// Source returns the pattern as written, escapes included.
func (p *Pattern) Source() string { return p.source }

// Len returns the number of display positions.
func (p *Pattern) Len() int { return len(p.slots) }

// FirstEditable returns the index of the first editable slot.
func (p *Pattern) FirstEditable() int { return p.firstEditable }

// LastEditable returns the index of the last editable slot.
func (p *Pattern) LastEditable() int { return p.lastEditable }

// IsEditable reports whether display position i accepts input.
func (p *Pattern) IsEditable(i int) bool {
	return i >= 0 && i < len(p.slots) && p.slots[i].rule != nil
}

// StaticAt returns the fixed character at i, or "" for editable or
// out-of-range positions.
func (p *Pattern) StaticAt(i int) string {
	if i < 0 || i >= len(p.slots) || p.slots[i].rule != nil {
		return ""
	}
	return p.slots[i].char
}

func (p *Pattern) validAt(ch string, i int) bool {
	if !p.IsEditable(i) || ch == "" {
		return false
	}
	return p.slots[i].rule.Validate(ch)
}

func (p *Pattern) transform(ch string, i int) string {
	if !p.IsEditable(i) || p.slots[i].rule.Transform == nil {
		return ch
	}
	return p.slots[i].rule.Transform(ch)
}

// format lays value out over the pattern. Editable slots take the next
// valid character or the placeholder; static characters present in value at
// the matching position are consumed.
func (p *Pattern) format(value []string) []string {
	out := make([]string, len(p.slots))
	vi := 0
	for i, s := range p.slots {
		if s.rule != nil {
			if vi < len(value) && p.validAt(value[vi], i) {
				out[i] = p.transform(value[vi], i)
			} else {
				out[i] = p.placeholder
			}
			vi++
			continue
		}
		out[i] = s.char
		if vi < len(value) && value[vi] == s.char {
			vi++
		}
	}
	return out
}
