package maskinput

import "github.com/iw2rmb/masked/mask"

// Engine owns the masked value, its selection and its history. The
// controller only reads it and calls its operations; *mask.Mask is the
// default implementation.
type Engine interface {
	Value() string
	RawValue() string
	EmptyValue() string
	PatternLen() int

	SetPattern(pattern string, opt mask.PatternOptions) error
	SetValue(value string)

	Input(ch string) bool
	Backspace() bool
	Paste(text string) bool
	Undo() bool
	Redo() bool

	Selection() mask.Selection
	SetSelection(sel mask.Selection)
}

// EngineFunc builds an Engine from the initial configuration.
type EngineFunc func(opt mask.Options) (Engine, error)

// NewMaskEngine builds the default engine.
func NewMaskEngine(opt mask.Options) (Engine, error) {
	m, err := mask.New(opt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

var _ Engine = (*mask.Mask)(nil)
