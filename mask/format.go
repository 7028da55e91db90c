package mask

import (
	"strings"
	"unicode/utf8"
)

// EscapeChar makes the following pattern character static.
const EscapeChar = '\\'

// DefaultPlaceholder fills unfilled editable slots.
const DefaultPlaceholder = "_"

// FormatCharacter describes one kind of editable slot.
type FormatCharacter struct {
	// Validate reports whether ch may occupy the slot.
	Validate func(ch string) bool
	// Transform rewrites an accepted character. Optional.
	Transform func(ch string) string
}

// FormatCharacters maps pattern runes to slot rules.
type FormatCharacters map[rune]FormatCharacter

// DefaultFormatCharacters returns the built-in slot rules:
//
//	1  digit
//	a  letter
//	A  letter, upper-cased
//	*  letter or digit
//	#  letter or digit, upper-cased
func DefaultFormatCharacters() FormatCharacters {
	return FormatCharacters{
		'1': {Validate: isDigit},
		'a': {Validate: isLetter},
		'A': {Validate: isLetter, Transform: strings.ToUpper},
		'*': {Validate: isAlnum},
		'#': {Validate: isAlnum, Transform: strings.ToUpper},
	}
}

// merge returns the defaults overlaid with custom. A custom entry with a nil
// Validate removes the default rule for that rune.
func mergeFormatCharacters(custom FormatCharacters) FormatCharacters {
	out := DefaultFormatCharacters()
	for r, fc := range custom {
		if fc.Validate == nil {
			delete(out, r)
			continue
		}
		out[r] = fc
	}
	return out
}

func singleASCII(ch string) (byte, bool) {
	if len(ch) != 1 || !utf8.ValidString(ch) {
		return 0, false
	}
	return ch[0], true
}

func isDigit(ch string) bool {
	c, ok := singleASCII(ch)
	return ok && c >= '0' && c <= '9'
}

func isLetter(ch string) bool {
	c, ok := singleASCII(ch)
	return ok && (c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z')
}

func isAlnum(ch string) bool {
	return isDigit(ch) || isLetter(ch)
}
