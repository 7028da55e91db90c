package maskinput

import (
	"log/slog"

	"github.com/iw2rmb/masked/mask"
)

// Config configures a Controller and the Model built around it.
type Config struct {
	// Pattern is the mask template, e.g. "11/11" or "(111) 111-1111".
	Pattern string
	// Value is the initial value, raw or formatted.
	Value string

	// Forwarded to the engine.
	PlaceholderChar  string
	FormatCharacters mask.FormatCharacters
	HistoryLimit     int

	// Size is the visible width in characters. Default: pattern length.
	Size int
	// Placeholder is shown while the field is empty. Default: the empty value.
	Placeholder string

	// OnChange is called with the triggering event after the widget has been
	// updated. Rejected edits never call it.
	OnChange func(ev *Event)

	// NewEngine builds the engine. Default: NewMaskEngine.
	NewEngine EngineFunc
	// Scheduler runs deferred selection restores. Default: a TaskQueue the
	// owner drains with Controller.RunDeferred. Model installs its own.
	Scheduler Scheduler
	// Logger receives debug records. Default: discarded.
	Logger *slog.Logger

	// Model only.
	KeyMap    KeyMap
	Style     Style
	Clipboard Clipboard
}

func (c Config) engineOptions() mask.Options {
	return mask.Options{
		Pattern:          c.Pattern,
		Value:            c.Value,
		PlaceholderChar:  c.PlaceholderChar,
		FormatCharacters: c.FormatCharacters,
		HistoryLimit:     c.HistoryLimit,
	}
}
