package mask

import "errors"

var (
	// ErrNoPattern is returned when a mask is built without a pattern.
	ErrNoPattern = errors.New("mask: pattern is required")
	// ErrNoEditable is returned for patterns without any format character.
	ErrNoEditable = errors.New("mask: pattern has no editable characters")
	// ErrTrailingEscape is returned for patterns ending in a lone escape.
	ErrTrailingEscape = errors.New("mask: pattern ends with an escape character")
	// ErrPlaceholder is returned when the placeholder is longer than one character.
	ErrPlaceholder = errors.New("mask: placeholder must be a single character")
)
